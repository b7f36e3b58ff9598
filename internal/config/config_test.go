package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_PORT", "STORE_DRIVER", "REDIS_URL", "RABBITMQ_URL", "PRODUCT_CACHE_TTL", "CURRENCY_SYMBOL", "WHATSAPP_BASE_URL", "PUBLIC_DIR"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.HTTPPort)
	assert.Equal(t, DriverMongo, cfg.StoreDriver)
	assert.Empty(t, cfg.RedisURL)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, 5*time.Minute, cfg.ProductCacheTTL)
	assert.Equal(t, "https://wa.me", cfg.WhatsAppBaseURL)
	assert.Equal(t, "₹", cfg.CurrencySymbol)
	assert.Equal(t, "public", cfg.PublicDir)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("PRODUCT_CACHE_TTL", "30s")
	t.Setenv("CURRENCY_SYMBOL", "₺")
	t.Setenv("PUBLIC_DIR", "/srv/frontend")

	cfg := Load()
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, 30*time.Second, cfg.ProductCacheTTL)
	assert.Equal(t, "₺", cfg.CurrencySymbol)
	assert.Equal(t, "/srv/frontend", cfg.PublicDir)
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("PRODUCT_CACHE_TTL", "yarım saat")
	assert.Equal(t, time.Minute, getEnvDuration("PRODUCT_CACHE_TTL", time.Minute))
}

func TestCORSOriginList(t *testing.T) {
	cfg := &Config{CORSOrigins: " https://a.example.com, ,https://b.example.com "}
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOriginList())
}
