package mongostore

import (
	"context"
	"errors"

	"siparis-backend/internal/models"
	"siparis-backend/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type productDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	models.Product `bson:",inline"`
}

func (d productDocument) model() models.Product {
	p := d.Product
	p.ID = d.ID.Hex()
	return p
}

type productRepo struct {
	coll *mongo.Collection
}

func (r *productRepo) List(ctx context.Context) ([]models.Product, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, store.Wrap("list products", err)
	}

	var docs []productDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, store.Wrap("list products", err)
	}

	res := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.model())
	}
	return res, nil
}

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	doc := productDocument{ID: primitive.NewObjectID(), Product: *p}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return store.Wrap("create product", err)
	}
	p.ID = doc.ID.Hex()
	return nil
}

func (r *productRepo) Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Geçersiz ObjectID ile eşleşen kayıt olamaz
		return nil, store.ErrNotFound
	}

	var doc productDocument
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
		return nil, store.Wrap("update product", err)
	}

	p := doc.model()
	return &p, nil
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return store.Wrap("delete product", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
