// Package validation istek gövdelerini çözer ve struct tag'lerine göre doğrular.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Error kalıcılık katmanına ulaşmadan reddedilen istekleri temsil eder (400).
type Error struct {
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string { return e.Message }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Hata mesajlarında Go alan adı yerine json adı görünsün
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct v'yi doğrular, hata varsa *Error döner.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &Error{Message: "invalid request body"}
	}

	fields := make([]FieldError, 0, len(verrs))
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		fields = append(fields, FieldError{Field: field, Rule: fe.Tag(), Param: fe.Param()})
		names = append(names, field)
	}
	return &Error{
		Message: "validation failed: " + strings.Join(names, ", "),
		Fields:  fields,
	}
}

// "Order.items[0].quantity" -> "items[0].quantity"
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// BindJSON gövdeyi dst'ye çözer ve doğrular. Boş gövde boş obje sayılır.
func BindJSON(c *fiber.Ctx, dst any) error {
	body := c.Body()
	if len(body) > 0 {
		if err := c.App().Config().JSONDecoder(body, dst); err != nil {
			return decodeError(err)
		}
	}
	return Struct(dst)
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &Error{
			Message: fmt.Sprintf("invalid type for field %q: expected %s", typeErr.Field, typeErr.Type),
			Fields:  []FieldError{{Field: typeErr.Field, Rule: "type", Param: typeErr.Type.String()}},
		}
	}
	return &Error{Message: "invalid JSON body"}
}
