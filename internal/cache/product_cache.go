package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"siparis-backend/internal/models"
	"siparis-backend/internal/store"

	"github.com/redis/go-redis/v9"
)

const (
	productListKey = "products:all"
	// Her yazmada artar. Liste yalnızca okuma başladığından beri değişmediyse yazılır.
	productGenKey  = "products:gen"
)

// CachedProductRepository ürün listesini Redis'te tutar, her yazmada listeyi siler.
// Redis hataları loglanır ve asıl depoya düşülür.
type CachedProductRepository struct {
	realRepo store.ProductRepository
	redis    *redis.Client
	ttl      time.Duration
}

func NewCachedProductRepository(realRepo store.ProductRepository, client *redis.Client, ttl time.Duration) *CachedProductRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedProductRepository{
		realRepo: realRepo,
		redis:    client,
		ttl:      ttl,
	}
}

func (c *CachedProductRepository) List(ctx context.Context) ([]models.Product, error) {
	data, err := c.redis.Get(ctx, productListKey).Bytes()

	switch {
	case err == nil:
		var products []models.Product
		if err := json.Unmarshal(data, &products); err != nil {
			log.Printf("[WARN] cache'teki ürün listesi çözülemedi (DB'den devam): %v", err)
			break
		}
		return products, nil

	case errors.Is(err, redis.Nil):

	default:
		log.Printf("[WARN] Redis hatası (DB'den devam): %v", err)
	}

	gen, genErr := c.generation(ctx)

	products, err := c.realRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if genErr != nil {
		return products, nil
	}

	jsonData, err := json.Marshal(products)
	if err != nil {
		log.Printf("[WARN] ürün listesi serialize edilemedi: %v", err)
		return products, nil
	}
	if err := c.storeIfUnchanged(ctx, gen, jsonData); err != nil {
		log.Printf("[WARN] ürün listesi cache'lenemedi: %v", err)
	}

	return products, nil
}

func (c *CachedProductRepository) generation(ctx context.Context) (int64, error) {
	gen, err := c.redis.Get(ctx, productGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// storeIfUnchanged listeyi yalnızca bu arada bir yazma olmadıysa cache'ler.
// Eski bir liste, invalidate'ten sonra geri yazılamaz.
func (c *CachedProductRepository) storeIfUnchanged(ctx context.Context, gen int64, data []byte) error {
	err := c.redis.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, productGenKey).Int64()
		if errors.Is(err, redis.Nil) {
			current, err = 0, nil
		}
		if err != nil {
			return err
		}
		if current != gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, productListKey, data, c.ttl)
			return nil
		})
		return err
	}, productGenKey)

	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

func (c *CachedProductRepository) Create(ctx context.Context, p *models.Product) error {
	if err := c.realRepo.Create(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedProductRepository) Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	p, err := c.realRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return p, nil
}

func (c *CachedProductRepository) Delete(ctx context.Context, id string) error {
	if err := c.realRepo.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedProductRepository) invalidate(ctx context.Context) {
	_, err := c.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, productGenKey)
		pipe.Del(ctx, productListKey)
		return nil
	})
	if err != nil {
		log.Printf("[WARN] %s cache'i silinemedi: %v", productListKey, err)
	}
}
