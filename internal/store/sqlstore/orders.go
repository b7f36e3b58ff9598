package sqlstore

import (
	"context"
	"errors"
	"time"

	"siparis-backend/internal/models"
	"siparis-backend/internal/store"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func (r orderRow) model() models.Order {
	items := []models.OrderItem(r.Items)
	if items == nil {
		items = []models.OrderItem{}
	}
	return models.Order{
		ID:          r.ID,
		TableNumber: r.TableNumber,
		Items:       items,
		Subtotal:    r.Subtotal,
		Tax:         r.Tax,
		Total:       r.Total,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}

func (r *orderRow) assign(o models.Order) {
	r.TableNumber = o.TableNumber
	r.Items = datatypes.NewJSONSlice(o.Items)
	r.Subtotal = o.Subtotal
	r.Tax = o.Tax
	r.Total = o.Total
	r.Status = o.Status
	r.CreatedAt = o.CreatedAt
}

func (r *orderRepo) List(ctx context.Context) ([]models.Order, error) {
	var rows []orderRow
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, store.Wrap("list orders", err)
	}

	res := make([]models.Order, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.model())
	}
	return res, nil
}

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	// Postgres timestamp mikro saniye hassasiyetinde
	o.ApplyDefaults(time.Now().UTC().Truncate(time.Microsecond))

	var row orderRow
	row.assign(*o)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return store.Wrap("create order", err)
	}
	o.ID = row.ID
	return nil
}

func (r *orderRepo) Update(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error) {
	var row orderRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, store.Wrap("update order", err)
	}

	o := row.model()
	patch.Apply(&o)
	row.assign(o)

	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return nil, store.Wrap("update order", err)
	}
	return &o, nil
}

func (r *orderRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&orderRow{}, "id = ?", id)
	if res.Error != nil {
		return store.Wrap("delete order", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
