package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	OrderExchange      = "order_notifications"
	OrderPlacedRouting = "order.placed"
)

// AMQPNotifier order.placed olaylarını fanout exchange'e kalıcı mesaj olarak yayınlar.
type AMQPNotifier struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	mu   sync.Mutex
}

func DialAMQP(url string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq bağlantısı açılamadı: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq kanalı açılamadı: %w", err)
	}
	if err := ch.ExchangeDeclare(OrderExchange, "fanout", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%s exchange tanımlanamadı: %w", OrderExchange, err)
	}
	return &AMQPNotifier{conn: conn, ch: ch}, nil
}

func (n *AMQPNotifier) OrderPlaced(ctx context.Context, evt OrderPlaced) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	err = n.ch.PublishWithContext(ctx, OrderExchange, OrderPlacedRouting, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		ContentType:  "application/json",
		Type:         OrderPlacedRouting,
		MessageId:    evt.OrderID,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("order.placed yayınlanamadı: %w", err)
	}
	return nil
}

func (n *AMQPNotifier) Close(ctx context.Context) error {
	if n == nil {
		return nil
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	var chErr error
	if n.ch != nil {
		chErr = n.ch.Close()
	}
	if n.conn != nil {
		if err := n.conn.Close(); err != nil {
			return err
		}
	}
	return chErr
}
