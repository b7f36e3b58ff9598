// Package storetest her backend'in geçmesi gereken ortak davranış testlerini içerir.
package storetest

import (
	"context"
	"strings"
	"testing"
	"time"

	"siparis-backend/internal/models"
	"siparis-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Opener her çağrıda boş bir store döndürmeli.
type Opener func(t *testing.T) *store.Store

func Run(t *testing.T, open Opener) {
	t.Run("ProductRoundTrip", func(t *testing.T) { testProductRoundTrip(t, open(t)) })
	t.Run("ProductPartialUpdate", func(t *testing.T) { testProductPartialUpdate(t, open(t)) })
	t.Run("ProductDelete", func(t *testing.T) { testProductDelete(t, open(t)) })
	t.Run("OrderDefaults", func(t *testing.T) { testOrderDefaults(t, open(t)) })
	t.Run("OrdersNewestFirst", func(t *testing.T) { testOrdersNewestFirst(t, open(t)) })
	t.Run("OrderStatusUpdateOnlyTouchesStatus", func(t *testing.T) { testOrderStatusUpdate(t, open(t)) })
	t.Run("OrderStatusLongText", func(t *testing.T) { testOrderStatusLongText(t, open(t)) })
	t.Run("OrderMissing", func(t *testing.T) { testOrderMissing(t, open(t)) })
	t.Run("SettingsDefaults", func(t *testing.T) { testSettingsDefaults(t, open(t)) })
	t.Run("SettingsUpdateMerges", func(t *testing.T) { testSettingsUpdateMerges(t, open(t)) })
	t.Run("SettingsUpdateCreatesFromPatch", func(t *testing.T) { testSettingsUpdateCreates(t, open(t)) })
}

func ptr[T any](v T) *T { return &v }

// ms hassasiyeti: Mongo tarihleri milisaniyeye yuvarlar
func baseTime() time.Time {
	return time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
}

func testProductRoundTrip(t *testing.T, s *store.Store) {
	ctx := context.Background()

	p := &models.Product{
		Name:        "Margherita",
		Description: "Domates, mozzarella",
		Price:       249.5,
		Category:    "Pizza",
		Image:       "https://cdn.example.com/margherita.jpg",
	}
	require.NoError(t, s.Products.Create(ctx, p))
	require.NotEmpty(t, p.ID)

	list, err := s.Products.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, *p, list[0])
}

func testProductPartialUpdate(t *testing.T, s *store.Store) {
	ctx := context.Background()

	p := &models.Product{Name: "Ayran", Price: 30, Category: "İçecek"}
	require.NoError(t, s.Products.Create(ctx, p))

	updated, err := s.Products.Update(ctx, p.ID, models.ProductPatch{Price: ptr(35.0)})
	require.NoError(t, err)
	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, "Ayran", updated.Name)
	assert.Equal(t, "İçecek", updated.Category)
	assert.Equal(t, 35.0, updated.Price)

	_, err = s.Products.Update(ctx, "does-not-exist", models.ProductPatch{Name: ptr("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testProductDelete(t *testing.T, s *store.Store) {
	ctx := context.Background()

	keep := &models.Product{Name: "Lahmacun"}
	drop := &models.Product{Name: "Pide"}
	require.NoError(t, s.Products.Create(ctx, keep))
	require.NoError(t, s.Products.Create(ctx, drop))

	require.NoError(t, s.Products.Delete(ctx, drop.ID))

	list, err := s.Products.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)

	assert.ErrorIs(t, s.Products.Delete(ctx, drop.ID), store.ErrNotFound)
	assert.ErrorIs(t, s.Products.Delete(ctx, "does-not-exist"), store.ErrNotFound)
}

func testOrderDefaults(t *testing.T, s *store.Store) {
	ctx := context.Background()

	o := &models.Order{
		TableNumber: 5,
		Items:       []models.OrderItem{{Name: "Pizza", Price: 200, Quantity: 2}},
		Subtotal:    400,
		Tax:         40,
		Total:       440,
	}
	require.NoError(t, s.Orders.Create(ctx, o))
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, models.OrderStatusPending, o.Status)
	assert.False(t, o.CreatedAt.IsZero())

	list, err := s.Orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	got := list[0]
	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, 5, got.TableNumber)
	assert.Equal(t, o.Items, got.Items)
	assert.Equal(t, 440.0, got.Total)
	assert.Equal(t, models.OrderStatusPending, got.Status)
}

func testOrdersNewestFirst(t *testing.T, s *store.Store) {
	ctx := context.Background()
	t0 := baseTime()

	// Ekleme sırası zaman sırasından farklı
	for _, offset := range []time.Duration{time.Minute, 0, 2 * time.Minute} {
		o := &models.Order{TableNumber: int(offset / time.Minute), CreatedAt: t0.Add(offset)}
		require.NoError(t, s.Orders.Create(ctx, o))
	}

	list, err := s.Orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{2, 1, 0}, []int{list[0].TableNumber, list[1].TableNumber, list[2].TableNumber})
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].CreatedAt.After(list[i-1].CreatedAt))
	}
}

func testOrderStatusUpdate(t *testing.T, s *store.Store) {
	ctx := context.Background()

	o := &models.Order{
		TableNumber: 3,
		Items: []models.OrderItem{
			{Name: "Çorba", Price: 60, Quantity: 1},
			{Name: "Kebap", Price: 180.5, Quantity: 2},
		},
		Subtotal:  421,
		Tax:       42.1,
		Total:     463.1,
		CreatedAt: baseTime(),
	}
	require.NoError(t, s.Orders.Create(ctx, o))

	updated, err := s.Orders.Update(ctx, o.ID, models.OrderPatch{Status: ptr("completed")})
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
	assert.Equal(t, o.ID, updated.ID)
	assert.Equal(t, o.TableNumber, updated.TableNumber)
	assert.Equal(t, o.Items, updated.Items)
	assert.Equal(t, o.Subtotal, updated.Subtotal)
	assert.Equal(t, o.Tax, updated.Tax)
	assert.Equal(t, o.Total, updated.Total)
	assert.True(t, o.CreatedAt.Equal(updated.CreatedAt))
}

func testOrderStatusLongText(t *testing.T, s *store.Store) {
	ctx := context.Background()

	o := &models.Order{TableNumber: 8, CreatedAt: baseTime()}
	require.NoError(t, s.Orders.Create(ctx, o))

	status := "hazırlanıyor: " + strings.Repeat("ekstra acı sos ", 20)
	updated, err := s.Orders.Update(ctx, o.ID, models.OrderPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, status, updated.Status)

	list, err := s.Orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, status, list[0].Status)
}

func testOrderMissing(t *testing.T, s *store.Store) {
	ctx := context.Background()

	_, err := s.Orders.Update(ctx, "does-not-exist", models.OrderPatch{Status: ptr("cancelled")})
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.Orders.Delete(ctx, "does-not-exist"), store.ErrNotFound)

	o := &models.Order{TableNumber: 1}
	require.NoError(t, s.Orders.Create(ctx, o))
	require.NoError(t, s.Orders.Delete(ctx, o.ID))

	list, err := s.Orders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func testSettingsDefaults(t *testing.T, s *store.Store) {
	ctx := context.Background()

	_, err := s.Settings.Get(ctx)
	require.ErrorIs(t, err, store.ErrNotFound)

	first, err := s.Settings.GetOrCreateDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), *first)

	second, err := s.Settings.GetOrCreateDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, *first, *second)

	got, err := s.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, *first, *got)
}

func testSettingsUpdateMerges(t *testing.T, s *store.Store) {
	ctx := context.Background()

	_, err := s.Settings.GetOrCreateDefault(ctx)
	require.NoError(t, err)

	updated, err := s.Settings.Update(ctx, models.SettingsPatch{TaxRate: ptr(18.0)})
	require.NoError(t, err)
	assert.Equal(t, "My Restaurant", updated.RestaurantName)
	assert.Equal(t, "911234567890", updated.WhatsappNumber)
	assert.Equal(t, 18.0, updated.TaxRate)

	got, err := s.Settings.GetOrCreateDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)
}

func testSettingsUpdateCreates(t *testing.T, s *store.Store) {
	ctx := context.Background()

	created, err := s.Settings.Update(ctx, models.SettingsPatch{RestaurantName: ptr("Köşe Lokanta")})
	require.NoError(t, err)
	assert.Equal(t, models.SettingsKey, created.ID)
	assert.Equal(t, "Köşe Lokanta", created.RestaurantName)
	assert.Empty(t, created.WhatsappNumber)
	assert.Zero(t, created.TaxRate)

	// Kayıt artık var, varsayılanlar uygulanmamalı
	got, err := s.Settings.GetOrCreateDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
}
