package server

import (
	"errors"
	"log"

	"siparis-backend/internal/store"
	"siparis-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ErrorCode istemcinin güvenebileceği sabit hata kodları
type ErrorCode string

const (
	CodeBadRequest       ErrorCode = "bad_request"
	CodeValidationFailed ErrorCode = "validation_failed"
	CodeNotFound         ErrorCode = "not_found"
	CodeMethodNotAllowed ErrorCode = "method_not_allowed"
	CodeStorage          ErrorCode = "storage_error"
	CodeInternal         ErrorCode = "internal_error"
)

type ErrorResponse struct {
	Message string                  `json:"message"`
	Code    ErrorCode               `json:"code"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

// errorHandler tüm handler hatalarını {message, code} gövdesine çevirir.
// Depolama hatalarının metni loglanır, istemciye dönülmez.
func errorHandler(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: verr.Message,
			Code:    CodeValidationFailed,
			Fields:  verr.Fields,
		})
	}

	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return c.Status(ferr.Code).JSON(ErrorResponse{
			Message: ferr.Message,
			Code:    codeForStatus(ferr.Code),
		})
	}

	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: "Resource not found",
			Code:    CodeNotFound,
		})
	}

	var serr *store.StorageError
	if errors.As(err, &serr) {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), serr)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Storage is temporarily unavailable",
			Code:    CodeStorage,
		})
	}

	log.Printf("[ERROR] %s %s beklenmeyen hata: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Message: "Internal server error",
		Code:    CodeInternal,
	})
}

func codeForStatus(status int) ErrorCode {
	switch {
	case status == fiber.StatusNotFound:
		return CodeNotFound
	case status == fiber.StatusMethodNotAllowed:
		return CodeMethodNotAllowed
	case status >= 500:
		return CodeInternal
	default:
		return CodeBadRequest
	}
}
