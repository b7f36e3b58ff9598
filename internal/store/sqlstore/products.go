package sqlstore

import (
	"context"
	"errors"

	"siparis-backend/internal/models"
	"siparis-backend/internal/store"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func (r productRow) model() models.Product {
	return models.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Image:       r.Image,
	}
}

func (r *productRepo) List(ctx context.Context) ([]models.Product, error) {
	var rows []productRow
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, store.Wrap("list products", err)
	}

	res := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.model())
	}
	return res, nil
}

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	row := productRow{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return store.Wrap("create product", err)
	}
	p.ID = row.ID
	return nil
}

func (r *productRepo) Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	var row productRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, store.Wrap("update product", err)
	}

	p := row.model()
	patch.Apply(&p)
	row.Name = p.Name
	row.Description = p.Description
	row.Price = p.Price
	row.Category = p.Category
	row.Image = p.Image

	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return nil, store.Wrap("update product", err)
	}
	return &p, nil
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&productRow{}, "id = ?", id)
	if res.Error != nil {
		return store.Wrap("delete product", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
