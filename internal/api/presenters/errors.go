package presenters

import (
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"recipehub/domain"
	"strings"
)

var statusByError = []struct {
	err    error
	status int
}{
	{domain.ErrPasswordMismatch, fiber.StatusBadRequest},
	{domain.ErrParseUUID, fiber.StatusBadRequest},
	{domain.ErrImageRequired, fiber.StatusBadRequest},
	{domain.ErrInvalidImageFormat, fiber.StatusBadRequest},
	{domain.ErrImageTooLarge, fiber.StatusBadRequest},

	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
	{domain.ErrMissingCredentials, fiber.StatusUnauthorized},
	{domain.ErrTokenInvalid, fiber.StatusUnauthorized},
	{domain.ErrTokenExpired, fiber.StatusUnauthorized},
	{domain.ErrRefreshTokenInvalid, fiber.StatusUnauthorized},
	{domain.ErrRefreshTokenExpired, fiber.StatusUnauthorized},
	{domain.ErrUnauthorizedRecipeAccess, fiber.StatusUnauthorized},

	{domain.ErrUserNotFound, fiber.StatusNotFound},
	{domain.ErrRecipeNotFound, fiber.StatusNotFound},
	{domain.ErrTagNotFound, fiber.StatusNotFound},
	{gorm.ErrRecordNotFound, fiber.StatusNotFound},

	{domain.ErrEmailAlreadyExists, fiber.StatusConflict},
	{gorm.ErrDuplicatedKey, fiber.StatusConflict},

	{gorm.ErrInvalidData, fiber.StatusBadRequest},
	{gorm.ErrInvalidField, fiber.StatusBadRequest},
	{gorm.ErrCheckConstraintViolated, fiber.StatusBadRequest},
	{gorm.ErrForeignKeyViolated, fiber.StatusBadRequest},

	{domain.ErrGeminiAPIFailed, fiber.StatusBadGateway},
	{domain.ErrImageUpload, fiber.StatusBadGateway},
	{domain.ErrGeneratorDisabled, fiber.StatusServiceUnavailable},
}

// StatusCode maps an error returned by a service to its HTTP status.
func StatusCode(err error) int {
	if err == nil {
		return fiber.StatusOK
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			return m.status
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			return fiber.StatusConflict
		case strings.HasPrefix(pgErr.Code, "22"), pgErr.Code == "23502", pgErr.Code == "23514":
			return fiber.StatusBadRequest
		}
	}
	return fiber.StatusInternalServerError
}

// Message returns the envelope message for err, falling back to fallback
// for anything that would reveal internals.
func Message(err error, fallback string) string {
	if StatusCode(err) >= fiber.StatusInternalServerError {
		return domain.MessageInternalServerError
	}
	return fallback
}
