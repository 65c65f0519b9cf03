// file: internals/helpers/validator.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Validate runs struct-tag validation on a request DTO.
func Validate(s any) error {
	return validate.Struct(s)
}

// ValidationErrorJSON maps validator.v10 errors into the standard 422 envelope.
func ValidationErrorJSON(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "invalid input")
	}

	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		fieldErrors[field] = append(fieldErrors[field], fe.Tag())
	}
	return JsonValidationError(c, fieldErrors)
}
