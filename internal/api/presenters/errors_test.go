package presenters

import (
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"recipehub/domain"
	"testing"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"password mismatch", domain.ErrPasswordMismatch, fiber.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("lookup: %w", domain.ErrRecipeNotFound), fiber.StatusNotFound},
		{"duplicate email", domain.ErrEmailAlreadyExists, fiber.StatusConflict},
		{"gorm duplicate", gorm.ErrDuplicatedKey, fiber.StatusConflict},
		{"refresh replay", domain.ErrRefreshTokenInvalid, fiber.StatusUnauthorized},
		{"not owner", domain.ErrUnauthorizedRecipeAccess, fiber.StatusUnauthorized},
		{"gemini", fmt.Errorf("%w: 500", domain.ErrGeminiAPIFailed), fiber.StatusBadGateway},
		{"invalid data", gorm.ErrInvalidData, fiber.StatusBadRequest},
		{"pg data exception", &pgconn.PgError{Code: "22001"}, fiber.StatusBadRequest},
		{"pg not null", &pgconn.PgError{Code: "23502"}, fiber.StatusBadRequest},
		{"pg unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), fiber.StatusConflict},
		{"fiber error", fiber.NewError(fiber.StatusRequestEntityTooLarge, "too big"), fiber.StatusRequestEntityTooLarge},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCode(tc.err))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "failed", Message(domain.ErrRecipeNotFound, "failed"))
	assert.Equal(t, domain.MessageInternalServerError, Message(errors.New("db"), "failed"))
}
