package product

import (
	"errors"

	"siparis-backend/internal/models"
	"siparis-backend/internal/store"
	"siparis-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GET /api/products
func ListProductsHandler(repo store.ProductRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := repo.List(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(products)
	}
}

// POST /api/products
func CreateProductHandler(repo store.ProductRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.Product
		if err := validation.BindJSON(c, &body); err != nil {
			return err
		}
		body.ID = "" // id'yi depo üretir

		if err := repo.Create(c.UserContext(), &body); err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(body)
	}
}

// PUT /api/products/:id
func UpdateProductHandler(repo store.ProductRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body models.ProductPatch
		if err := validation.BindJSON(c, &body); err != nil {
			return err
		}

		p, err := repo.Update(c.UserContext(), id, body)
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		if err != nil {
			return err
		}
		return c.JSON(p)
	}
}

// DELETE /api/products/:id
func DeleteProductHandler(repo store.ProductRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		err := repo.Delete(c.UserContext(), id)
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Product deleted"})
	}
}
