// Package store ürün, sipariş ve ayar kayıtlarının kalıcılık katmanını tanımlar.
// Backend'ler (mongostore, sqlstore, memstore) bu arayüzleri uygular.
package store

import (
	"context"
	"errors"

	"siparis-backend/internal/models"
)

type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

// OrderRepository.List en yeni sipariş başta olacak şekilde döner.
type OrderRepository interface {
	List(ctx context.Context) ([]models.Order, error)
	Create(ctx context.Context, o *models.Order) error
	Update(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error)
	Delete(ctx context.Context, id string) error
}

// SettingsRepository tek kayıtlık ayar deposudur.
type SettingsRepository interface {
	// Get kayıt yoksa ErrNotFound döner, oluşturmaz.
	Get(ctx context.Context) (*models.Settings, error)
	GetOrCreateDefault(ctx context.Context) (*models.Settings, error)
	// Update kayıt yoksa sadece patch'teki alanlarla oluşturur.
	Update(ctx context.Context, patch models.SettingsPatch) (*models.Settings, error)
}

// Store bir backend'in açık bağlantısını temsil eder. Close'dan sonra kullanılmamalı.
type Store struct {
	Products ProductRepository
	Orders   OrderRepository
	Settings SettingsRepository

	closers []func(context.Context) error
}

func New(products ProductRepository, orders OrderRepository, settings SettingsRepository, closer func(context.Context) error) *Store {
	s := &Store{Products: products, Orders: orders, Settings: settings}
	if closer != nil {
		s.closers = append(s.closers, closer)
	}
	return s
}

// OnClose ek bir kapanış adımı kaydeder (cache istemcisi vb.). Ters sırayla çalışır.
func (s *Store) OnClose(fn func(context.Context) error) {
	s.closers = append(s.closers, fn)
}

func (s *Store) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
