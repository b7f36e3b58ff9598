package order

import (
	"errors"
	"log"

	"siparis-backend/internal/models"
	"siparis-backend/internal/notify"
	"siparis-backend/internal/store"
	"siparis-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type CreateOrderResponse struct {
	models.Order
	WhatsappLink string `json:"whatsappLink,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// GET /api/orders (en yeni sipariş başta)
func ListOrdersHandler(orders store.OrderRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := orders.List(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(list)
	}
}

// POST /api/orders
// Kayıttan sonra ayarlarda WhatsApp numarası varsa link üretilir ve bildirimcilere gider.
// Bildirim hatası siparişi bozmaz, sadece loglanır.
func CreateOrderHandler(orders store.OrderRepository, settings store.SettingsRepository, links notify.LinkBuilder, notifier notify.Notifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.Order
		if err := validation.BindJSON(c, &body); err != nil {
			return err
		}
		body.ID = ""

		ctx := c.UserContext()
		if err := orders.Create(ctx, &body); err != nil {
			return err
		}

		s, err := settings.Get(ctx)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}

		res := CreateOrderResponse{Order: body}
		if link, ok := links.OrderLink(body, s); ok {
			res.WhatsappLink = link
			evt := notify.OrderPlaced{
				OrderID:      body.ID,
				TableNumber:  body.TableNumber,
				Total:        body.Total,
				WhatsappLink: link,
				PlacedAt:     body.CreatedAt,
			}
			if err := notifier.OrderPlaced(ctx, evt); err != nil {
				log.Printf("[WARN] sipariş %s bildirimi gönderilemedi: %v", body.ID, err)
			}
		}

		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// PUT /api/orders/:id/status
// Sadece status alanı değişir, değer serbest metindir.
func UpdateOrderStatusHandler(orders store.OrderRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body UpdateStatusRequest
		if err := validation.BindJSON(c, &body); err != nil {
			return err
		}

		o, err := orders.Update(c.UserContext(), id, models.OrderPatch{Status: &body.Status})
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}
		if err != nil {
			return err
		}
		return c.JSON(o)
	}
}
