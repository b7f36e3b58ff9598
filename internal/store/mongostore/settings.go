package mongostore

import (
	"context"
	"errors"

	"siparis-backend/internal/models"
	"siparis-backend/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// settingsRepo tek dokümanı sabit _id ile tutar, filtresiz "ilk kayıt" araması yapılmaz.
type settingsRepo struct {
	coll *mongo.Collection
}

func (r *settingsRepo) filter() bson.M {
	return bson.M{"_id": models.SettingsKey}
}

func (r *settingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	var s models.Settings
	err := r.coll.FindOne(ctx, r.filter()).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, store.Wrap("get settings", err)
	}
	return &s, nil
}

func (r *settingsRepo) GetOrCreateDefault(ctx context.Context) (*models.Settings, error) {
	def := models.DefaultSettings()

	// $setOnInsert ile eşzamanlı ilk okumalarda tek kayıt oluşur
	var s models.Settings
	err := r.coll.FindOneAndUpdate(ctx,
		r.filter(),
		bson.M{"$setOnInsert": bson.M{
			"restaurantName": def.RestaurantName,
			"whatsappNumber": def.WhatsappNumber,
			"taxRate":        def.TaxRate,
		}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&s)
	if err != nil {
		return nil, store.Wrap("get or create settings", err)
	}
	return &s, nil
}

func (r *settingsRepo) Update(ctx context.Context, patch models.SettingsPatch) (*models.Settings, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return r.ensureEmpty(ctx)
	}

	var s models.Settings
	err := r.coll.FindOneAndUpdate(ctx,
		r.filter(),
		bson.M{"$set": bson.M(fields)},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&s)
	if err != nil {
		return nil, store.Wrap("update settings", err)
	}
	return &s, nil
}

// ensureEmpty boş patch için: kayıt varsa aynen döner, yoksa boş kayıt açar.
func (r *settingsRepo) ensureEmpty(ctx context.Context) (*models.Settings, error) {
	s, err := r.Get(ctx)
	if err == nil || !errors.Is(err, store.ErrNotFound) {
		return s, err
	}

	_, err = r.coll.InsertOne(ctx, models.Settings{ID: models.SettingsKey})
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return nil, store.Wrap("create settings", err)
	}
	return r.Get(ctx)
}
