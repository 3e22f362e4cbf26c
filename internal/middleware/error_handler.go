package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"recipehub/domain"
	"recipehub/internal/api/presenters"
)

// ErrorHandler answers every error that escapes a handler with the standard envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := presenters.StatusCode(err)
	if status >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		return presenters.ErrorResponse(c, status, domain.MessageInternalServerError, err)
	}
	return presenters.ErrorResponse(c, status, domain.MessageFailedProcessRequest, err)
}

func NotFound(c *fiber.Ctx) error {
	return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRouteNotFound, nil)
}
