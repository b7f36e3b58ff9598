package cache

import (
	"context"
	"testing"
	"time"

	"siparis-backend/internal/models"
	"siparis-backend/internal/store"
	"siparis-backend/internal/store/memstore"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRepo List çağrılarını sayar
type countingRepo struct {
	store.ProductRepository
	lists int
}

func (r *countingRepo) List(ctx context.Context) ([]models.Product, error) {
	r.lists++
	return r.ProductRepository.List(ctx)
}

func newTestCache(t *testing.T) (*CachedProductRepository, *countingRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	backing := &countingRepo{ProductRepository: memstore.New().Products}
	return NewCachedProductRepository(backing, client, time.Minute), backing, mr
}

func TestListIsServedFromCache(t *testing.T) {
	ctx := context.Background()
	c, backing, mr := newTestCache(t)

	require.NoError(t, c.Create(ctx, &models.Product{Name: "Künefe", Price: 120}))

	first, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.True(t, mr.Exists(productListKey))

	second, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, backing.lists)
}

func TestMutationsInvalidateList(t *testing.T) {
	ctx := context.Background()
	c, backing, mr := newTestCache(t)

	p := &models.Product{Name: "Baklava", Price: 90}
	require.NoError(t, c.Create(ctx, p))
	_, err := c.List(ctx)
	require.NoError(t, err)

	name := "Fıstıklı Baklava"
	_, err = c.Update(ctx, p.ID, models.ProductPatch{Name: &name})
	require.NoError(t, err)
	assert.False(t, mr.Exists(productListKey))

	list, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, name, list[0].Name)

	require.NoError(t, c.Delete(ctx, p.ID))
	list, err = c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, 3, backing.lists)
}

func TestFailedMutationKeepsCache(t *testing.T) {
	ctx := context.Background()
	c, _, mr := newTestCache(t)

	_, err := c.List(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, c.Delete(ctx, "missing"), store.ErrNotFound)
	assert.True(t, mr.Exists(productListKey))
}

func TestRedisDownFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	c, _, mr := newTestCache(t)

	require.NoError(t, c.Create(ctx, &models.Product{Name: "Sütlaç"}))
	mr.Close()

	list, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// gatedRepo List sonucunu alır, sonra gate kapanana kadar bekler.
// Böylece okuma ile bir yazma arasındaki yarış elle kurulabilir.
type gatedRepo struct {
	store.ProductRepository
	listed chan struct{}
	gate   chan struct{}
}

func (r *gatedRepo) List(ctx context.Context) ([]models.Product, error) {
	products, err := r.ProductRepository.List(ctx)
	r.listed <- struct{}{}
	<-r.gate
	return products, err
}

func TestSlowListDoesNotOverwriteNewerWrite(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	products := memstore.New().Products
	gated := &gatedRepo{
		ProductRepository: products,
		listed:            make(chan struct{}),
		gate:              make(chan struct{}),
	}
	slow := NewCachedProductRepository(gated, client, time.Minute)
	writer := NewCachedProductRepository(products, client, time.Minute)

	done := make(chan error, 1)
	go func() {
		_, err := slow.List(ctx)
		done <- err
	}()

	<-gated.listed
	require.NoError(t, writer.Create(ctx, &models.Product{Name: "Lahmacun", Price: 80}))
	close(gated.gate)
	require.NoError(t, <-done)

	assert.False(t, mr.Exists(productListKey))

	list, err := writer.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Lahmacun", list[0].Name)
}

func TestListCachesAgainAfterWrite(t *testing.T) {
	ctx := context.Background()
	c, backing, mr := newTestCache(t)

	require.NoError(t, c.Create(ctx, &models.Product{Name: "Ayran", Price: 20}))
	_, err := c.List(ctx)
	require.NoError(t, err)
	_, err = c.List(ctx)
	require.NoError(t, err)

	assert.True(t, mr.Exists(productListKey))
	assert.Equal(t, 1, backing.lists)
}
