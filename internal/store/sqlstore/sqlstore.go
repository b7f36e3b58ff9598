// Package sqlstore PostgreSQL üzerinde GORM ile çalışan backend'dir.
package sqlstore

import (
	"context"
	"fmt"
	"log"
	"time"

	"siparis-backend/internal/models"
	"siparis-backend/internal/store"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type productRow struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"size:200"`
	Description string `gorm:"size:2000"`
	Price       float64
	Category    string `gorm:"size:100"`
	Image       string `gorm:"size:2048"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (productRow) TableName() string { return "products" }

func (r *productRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type orderRow struct {
	ID          string `gorm:"primaryKey;size:36"`
	TableNumber int
	Items       datatypes.JSONSlice[models.OrderItem]
	Subtotal    float64
	Tax         float64
	Total       float64
	Status      string    `gorm:"type:text;not null;default:pending"`
	CreatedAt   time.Time `gorm:"index:idx_orders_created_at,sort:desc"`
	UpdatedAt   time.Time
}

func (orderRow) TableName() string { return "orders" }

func (r *orderRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// settingsRow tek satırlık tablo, ID her zaman models.SettingsKey
type settingsRow struct {
	ID             string `gorm:"primaryKey;size:32"`
	RestaurantName string `gorm:"size:200"`
	WhatsappNumber string `gorm:"size:32"`
	TaxRate        float64
	UpdatedAt      time.Time
}

func (settingsRow) TableName() string { return "settings" }

// Open DSN ile bağlanır ve tabloları migrate eder.
func Open(dsn string) (*store.Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("veritabanına bağlanılamadı: %w", err)
	}
	return New(db)
}

func New(db *gorm.DB) (*store.Store, error) {
	if err := db.AutoMigrate(&productRow{}, &orderRow{}, &settingsRow{}); err != nil {
		return nil, fmt.Errorf("AutoMigrate hatası: %w", err)
	}
	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")

	closer := func(context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return store.New(&productRepo{db: db}, &orderRepo{db: db}, &settingsRepo{db: db}, closer), nil
}
