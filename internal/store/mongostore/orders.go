package mongostore

import (
	"context"
	"errors"
	"time"

	"siparis-backend/internal/models"
	"siparis-backend/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type orderDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	models.Order `bson:",inline"`
}

func (d orderDocument) model() models.Order {
	o := d.Order
	o.ID = d.ID.Hex()
	if o.Items == nil {
		o.Items = []models.OrderItem{}
	}
	return o
}

type orderRepo struct {
	coll *mongo.Collection
}

func (r *orderRepo) List(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, store.Wrap("list orders", err)
	}

	var docs []orderDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, store.Wrap("list orders", err)
	}

	res := make([]models.Order, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.model())
	}
	return res, nil
}

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	// BSON tarihleri milisaniye hassasiyetinde
	o.ApplyDefaults(time.Now().UTC().Truncate(time.Millisecond))

	doc := orderDocument{ID: primitive.NewObjectID(), Order: *o}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return store.Wrap("create order", err)
	}
	o.ID = doc.ID.Hex()
	return nil
}

func (r *orderRepo) Update(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrNotFound
	}

	var doc orderDocument
	fields := patch.Fields()
	if len(fields) == 0 {
		err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	} else {
		err = r.coll.FindOneAndUpdate(ctx,
			bson.M{"_id": oid},
			bson.M{"$set": bson.M(fields)},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&doc)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, store.Wrap("update order", err)
	}

	o := doc.model()
	return &o, nil
}

func (r *orderRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return store.Wrap("delete order", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
