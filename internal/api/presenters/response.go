package presenters

import (
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"recipehub/domain"
)

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(domain.Response{
		Status:  domain.StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse puts the error text in data for client errors only; server
// errors never expose it.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	var data any
	if err != nil && statusCode < fiber.StatusInternalServerError {
		data = err.Error()
	}
	return c.Status(statusCode).JSON(domain.Response{
		Status:  domain.StatusError,
		Message: message,
		Data:    data,
	})
}

// ValidationErrorResponse answers 422 with one {field: rule} entry per failed field.
func ValidationErrorResponse(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedValidation, err)
	}

	fields := make([]map[string]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		fields = append(fields, map[string]string{fe.Field(): msg})
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(domain.Response{
		Status:  domain.StatusError,
		Message: domain.MessageFailedValidation,
		Data:    fields,
	})
}
