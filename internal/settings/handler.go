package settings

import (
	"siparis-backend/internal/models"
	"siparis-backend/internal/store"
	"siparis-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GET /api/settings - kayıt yoksa varsayılanlarla oluşturulur
func GetSettingsHandler(repo store.SettingsRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := repo.GetOrCreateDefault(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(s)
	}
}

// PUT /api/settings
func UpdateSettingsHandler(repo store.SettingsRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.SettingsPatch
		if err := validation.BindJSON(c, &body); err != nil {
			return err
		}

		s, err := repo.Update(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.JSON(s)
	}
}
