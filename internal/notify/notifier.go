package notify

import (
	"context"
	"errors"
	"log"
	"time"
)

// OrderPlaced kaydedilen bir siparişin bildirim olayı.
type OrderPlaced struct {
	OrderID      string    `json:"orderId"`
	TableNumber  int       `json:"tableNumber"`
	Total        float64   `json:"total"`
	WhatsappLink string    `json:"whatsappLink"`
	PlacedAt     time.Time `json:"placedAt"`
}

type Notifier interface {
	OrderPlaced(ctx context.Context, evt OrderPlaced) error
}

// LogNotifier linki sadece loglar.
type LogNotifier struct{}

func (LogNotifier) OrderPlaced(ctx context.Context, evt OrderPlaced) error {
	log.Printf("Yeni sipariş (masa %d, id=%s) WhatsApp linki: %s", evt.TableNumber, evt.OrderID, evt.WhatsappLink)
	return nil
}

// Multi olayı sırayla tüm bildirimcilere iletir; biri hata verse de diğerleri çalışır.
type Multi []Notifier

func (m Multi) OrderPlaced(ctx context.Context, evt OrderPlaced) error {
	var errs []error
	for _, n := range m {
		if err := n.OrderPlaced(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
