// Package memstore süreç içi bir backend'dir; yerel geliştirme ve testler için.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"siparis-backend/internal/models"
	"siparis-backend/internal/store"

	"github.com/google/uuid"
)

func New() *store.Store {
	return store.New(&productRepo{}, &orderRepo{now: time.Now}, &settingsRepo{}, nil)
}

type productRepo struct {
	mu    sync.RWMutex
	items []models.Product
}

func (r *productRepo) List(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]models.Product, len(r.items))
	copy(res, r.items)
	return res, nil
}

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.NewString()
	r.items = append(r.items, *p)
	return nil
}

func (r *productRepo) Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			patch.Apply(&r.items[i])
			p := r.items[i]
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type orderRepo struct {
	mu    sync.RWMutex
	items []models.Order
	now   func() time.Time
}

func (r *orderRepo) List(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Ekleme sırasının tersinden başla, aynı createdAt'te son eklenen önde kalsın
	res := make([]models.Order, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		res = append(res, cloneOrder(r.items[i]))
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ApplyDefaults(r.now())
	o.ID = uuid.NewString()
	r.items = append(r.items, cloneOrder(*o))
	return nil
}

func (r *orderRepo) Update(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			patch.Apply(&r.items[i])
			r.items[i] = cloneOrder(r.items[i])
			o := cloneOrder(r.items[i])
			return &o, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *orderRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func cloneOrder(o models.Order) models.Order {
	items := make([]models.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

type settingsRepo struct {
	mu       sync.Mutex
	settings *models.Settings
}

func (r *settingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.settings == nil {
		return nil, store.ErrNotFound
	}
	s := *r.settings
	return &s, nil
}

func (r *settingsRepo) GetOrCreateDefault(ctx context.Context) (*models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.settings == nil {
		def := models.DefaultSettings()
		r.settings = &def
	}
	s := *r.settings
	return &s, nil
}

func (r *settingsRepo) Update(ctx context.Context, patch models.SettingsPatch) (*models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.settings == nil {
		r.settings = &models.Settings{ID: models.SettingsKey}
	}
	patch.Apply(r.settings)
	s := *r.settings
	return &s, nil
}
