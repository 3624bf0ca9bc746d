package presenters

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	res := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		res["data"] = data
	}
	return c.Status(status).JSON(res)
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	res := fiber.Map{
		"success": false,
		"error":   message,
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fieldErrs := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fieldErrs = append(fieldErrs, FieldError{
				Field: strings.ToLower(fe.Field()),
				Rule:  fe.Tag(),
			})
		}
		res["message"] = "validation failed"
		res["errors"] = fieldErrs
		return c.Status(status).JSON(res)
	}

	if err != nil {
		res["message"] = err.Error()
	}
	return c.Status(status).JSON(res)
}
