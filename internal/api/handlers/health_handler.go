package handlers

import (
	"context"
	"github.com/gofiber/fiber/v2"
	"recipehub/domain"
	"recipehub/internal/api/presenters"
	"time"
)

const healthTimeout = 2 * time.Second

type (
	// Pinger is satisfied by *sql.DB.
	Pinger interface {
		PingContext(ctx context.Context) error
	}

	HealthHandler interface {
		Ping(c *fiber.Ctx) error
		Health(c *fiber.Ctx) error
	}

	healthHandler struct {
		db Pinger
	}
)

func NewHealthHandler(db Pinger) HealthHandler {
	return &healthHandler{db: db}
}

func (h *healthHandler) Ping(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessPing)
}

func (h *healthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedHealth, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"database": "up"}, fiber.StatusOK, domain.MessageSuccessHealth)
}
