package sqlstore

import (
	"context"
	"errors"

	"siparis-backend/internal/models"
	"siparis-backend/internal/store"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingsRepo struct {
	db *gorm.DB
}

func (r settingsRow) model() models.Settings {
	return models.Settings{
		ID:             r.ID,
		RestaurantName: r.RestaurantName,
		WhatsappNumber: r.WhatsappNumber,
		TaxRate:        r.TaxRate,
	}
}

func (r *settingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	var row settingsRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", models.SettingsKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, store.Wrap("get settings", err)
	}
	s := row.model()
	return &s, nil
}

func (r *settingsRepo) GetOrCreateDefault(ctx context.Context) (*models.Settings, error) {
	def := models.DefaultSettings()
	row := settingsRow{
		ID:             def.ID,
		RestaurantName: def.RestaurantName,
		WhatsappNumber: def.WhatsappNumber,
		TaxRate:        def.TaxRate,
	}

	// Satır zaten varsa dokunma
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return nil, store.Wrap("get or create settings", err)
	}
	return r.Get(ctx)
}

func (r *settingsRepo) Update(ctx context.Context, patch models.SettingsPatch) (*models.Settings, error) {
	var out models.Settings

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row settingsRow
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&row, "id = ?", models.SettingsKey).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = settingsRow{ID: models.SettingsKey}
		}

		s := row.model()
		patch.Apply(&s)
		row.RestaurantName = s.RestaurantName
		row.WhatsappNumber = s.WhatsappNumber
		row.TaxRate = s.TaxRate

		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
			return err
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, store.Wrap("update settings", err)
	}
	return &out, nil
}
