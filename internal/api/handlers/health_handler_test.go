package handlers

import (
	"errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"recipehub/domain"
	"testing"
)

func TestHealthHandler(t *testing.T) {
	db, sqlMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	h := NewHealthHandler(db)
	app.Get("/ping", h.Ping)
	app.Get("/health", h.Health)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	envelope, _ := readEnvelope(t, resp)
	assert.Equal(t, domain.MessageSuccessPing, envelope.Message)

	sqlMock.ExpectPing()
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	sqlMock.ExpectPing().WillReturnError(errors.New("connection refused"))
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	envelope, _ = readEnvelope(t, resp)
	assert.Equal(t, domain.MessageFailedHealth, envelope.Message)

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
