// Package mongostore MongoDB üzerinde çalışan varsayılan backend'dir.
package mongostore

import (
	"context"
	"fmt"
	"log"

	"siparis-backend/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	productsCollection = "products"
	ordersCollection   = "orders"
	settingsCollection = "settings"
)

// Connect bağlantıyı açar, ping atar ve index'leri hazırlar.
func Connect(ctx context.Context, uri, database string) (*store.Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo bağlantısı açılamadı: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping başarısız: %w", err)
	}

	db := client.Database(database)
	if err := ensureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	log.Printf("MongoDB bağlantısı başarılı (db=%s)", database)

	return store.New(
		&productRepo{coll: db.Collection(productsCollection)},
		&orderRepo{coll: db.Collection(ordersCollection)},
		&settingsRepo{coll: db.Collection(settingsCollection)},
		client.Disconnect,
	), nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(ordersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("orders index oluşturulamadı: %w", err)
	}
	return nil
}
