package database

import (
	"context"
	"fmt"
	"log"

	"siparis-backend/internal/cache"
	"siparis-backend/internal/config"
	"siparis-backend/internal/store"
	"siparis-backend/internal/store/memstore"
	"siparis-backend/internal/store/mongostore"
	"siparis-backend/internal/store/sqlstore"
)

// Open STORE_DRIVER'a göre backend'i açar, REDIS_URL tanımlıysa ürün listesini cache'ler.
// Dönen Store'un Close'u bağlantıların hepsini kapatır.
func Open(ctx context.Context, cfg *config.Config) (*store.Store, error) {
	var (
		st  *store.Store
		err error
	)

	switch cfg.StoreDriver {
	case config.DriverMongo:
		st, err = mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	case config.DriverPostgres:
		if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=restaurant port=5432 sslmode=disable" {
			log.Println("[WARN] DATABASE_DSN varsayılan değer kullanılıyor, production için kendi Postgres bağlantı bilgisini tanımla.")
		}
		st, err = sqlstore.Open(cfg.DatabaseDSN)
	case config.DriverMemory:
		st = memstore.New()
	default:
		return nil, fmt.Errorf("bilinmeyen STORE_DRIVER: %s", cfg.StoreDriver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.RedisURL == "" {
		return st, nil
	}

	client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		_ = st.Close(ctx)
		return nil, err
	}
	st.Products = cache.NewCachedProductRepository(st.Products, client, cfg.ProductCacheTTL)
	st.OnClose(func(context.Context) error { return client.Close() })
	log.Printf("Ürün listesi Redis'te cache'leniyor (ttl=%s)", cfg.ProductCacheTTL)

	return st, nil
}
