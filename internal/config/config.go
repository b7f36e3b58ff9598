package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	HTTPPort    string
	StoreDriver string

	MongoURI      string
	MongoDatabase string
	DatabaseDSN   string // postgres driver için

	// RedisURL boşsa ürün cache'i kapalı
	RedisURL        string
	ProductCacheTTL time.Duration
	// RabbitMQURL boşsa order.placed yayınlanmaz
	RabbitMQURL string

	CORSOrigins     string
	WhatsAppBaseURL string
	CurrencySymbol  string

	// PublicDir frontend dosyalarının dizini, boşsa statik servis kapalı
	PublicDir string
}

func Load() *Config {
	// .env opsiyonel, yoksa sadece ortam değişkenleri kullanılır
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] .env okunamadı: %v", err)
	}

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "3000"),
		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGO_DATABASE", "restaurant"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=restaurant port=5432 sslmode=disable"),
		RedisURL:        getEnv("REDIS_URL", ""),
		ProductCacheTTL: getEnvDuration("PRODUCT_CACHE_TTL", 5*time.Minute),
		RabbitMQURL:     getEnv("RABBITMQ_URL", ""),
		CORSOrigins:     getEnv("CORS_ALLOWED_ORIGINS", "*"),
		WhatsAppBaseURL: getEnv("WHATSAPP_BASE_URL", "https://wa.me"),
		CurrencySymbol:  getEnv("CURRENCY_SYMBOL", "₹"),
		PublicDir:       getEnv("PUBLIC_DIR", "public"),
	}

	switch cfg.StoreDriver {
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		log.Fatalf("[FATAL] STORE_DRIVER geçersiz: %q (mongo, postgres veya memory olmalı)", cfg.StoreDriver)
	}

	if cfg.StoreDriver == DriverMemory {
		log.Println("[WARN] STORE_DRIVER=memory, veriler süreç kapanınca kaybolur.")
	}
	if cfg.CORSOrigins == "*" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer (*) kullanılıyor, production için kendi domain'ini tanımla.")
	}

	return cfg
}

// CORSOriginList virgülle ayrılmış origin listesini temizler
func (c *Config) CORSOriginList() []string {
	origins := strings.Split(c.CORSOrigins, ",")
	res := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			res = append(res, o)
		}
	}
	return res
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[WARN] %s geçersiz (%q), varsayılan %s kullanılıyor", key, v, def)
		return def
	}
	return d
}
