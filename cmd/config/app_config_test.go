package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"recipehub/internal/testutil"
	"recipehub/internal/utils"
	"testing"
)

func TestNewApp(t *testing.T) {
	logFilePath = filepath.Join(t.TempDir(), "logs", "app.log")

	db, _ := testutil.NewGormMock(t)
	cfg := &utils.Config{
		JWTSecret:     "secret",
		JWTIssuer:     "RECIPEHUB",
		MaxUploadSize: 1 << 20,
		RateLimitMax:  100,
		CORSOrigins:   "*",
	}

	services := NewServices(cfg, db, nil)
	require.NotNil(t, services.Authenticator)

	app, logFile, err := NewApp(cfg, db, services)
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/users/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/api/recipes/ai", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	assert.FileExists(t, logFilePath)
	require.NoError(t, logFile.Close())
	assert.ErrorIs(t, logFile.Close(), os.ErrClosed)
}

func TestOpenLogOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "access.log")

	out, closer, err := openLogOutput(path)
	require.NoError(t, err)

	_, err = out.Write([]byte("GET /api/ping 200\n"))
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "GET /api/ping 200\n", string(content))
}
