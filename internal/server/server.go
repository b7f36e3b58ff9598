// Package server Fiber uygulamasını ve route tablosunu kurar.
package server

import (
	"strings"

	"siparis-backend/internal/config"
	"siparis-backend/internal/notify"
	"siparis-backend/internal/order"
	"siparis-backend/internal/product"
	"siparis-backend/internal/settings"
	"siparis-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Deps struct {
	Store    *store.Store
	Links    notify.LinkBuilder
	Notifier notify.Notifier
}

func New(cfg *config.Config, deps Deps) *fiber.App {
	if deps.Notifier == nil {
		deps.Notifier = notify.LogNotifier{}
	}

	app := fiber.New(fiber.Config{
		AppName:      "siparis-backend",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOriginList(), ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to the Restaurant Ordering System API"})
	})

	// Ürünler
	api.Get("/products", product.ListProductsHandler(deps.Store.Products))
	api.Post("/products", product.CreateProductHandler(deps.Store.Products))
	api.Put("/products/:id", product.UpdateProductHandler(deps.Store.Products))
	api.Delete("/products/:id", product.DeleteProductHandler(deps.Store.Products))

	// Siparişler
	api.Get("/orders", order.ListOrdersHandler(deps.Store.Orders))
	api.Post("/orders", order.CreateOrderHandler(deps.Store.Orders, deps.Store.Settings, deps.Links, deps.Notifier))
	api.Put("/orders/:id/status", order.UpdateOrderStatusHandler(deps.Store.Orders))

	// Ayarlar
	api.Get("/settings", settings.GetSettingsHandler(deps.Store.Settings))
	api.Put("/settings", settings.UpdateSettingsHandler(deps.Store.Settings))

	// Frontend dosyaları. Eşleşen dosya yoksa istek aşağıdaki fallback'e düşer.
	if cfg.PublicDir != "" {
		app.Static("/", cfg.PublicDir)
	}

	// SPA fallback: /api dışındaki GET istekleri
	app.Get("/*", func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return fiber.NewError(fiber.StatusNotFound, "Route not found")
		}
		return c.SendString("Frontend not deployed yet")
	})

	return app
}
