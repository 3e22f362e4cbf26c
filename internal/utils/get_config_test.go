package utils

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_YAMLValues(t *testing.T) {
	path := writeConfig(t, `
APP_PORT: "9090"
DB_NAME: recipes_test
JWT_SECRET: from-yaml
REFRESH_TOKEN_DURATION: 24h
MINIO_USE_SSL: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "recipes_test", cfg.DBName)
	assert.Equal(t, "from-yaml", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.RefreshTTL())
	assert.True(t, cfg.MinIOUseSSL)
	// untouched keys keep their defaults
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 7*24*time.Hour, cfg.AccessTTL())
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, "JWT_SECRET: from-yaml\nRATE_LIMIT_MAX: 5\n")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("RATE_LIMIT_MAX", "50")
	t.Setenv("MAX_UPLOAD_SIZE", "1024")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, 50, cfg.RateLimitMax)
	assert.Equal(t, int64(1024), cfg.MaxUploadSize)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "s3", cfg.StorageDriver)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingJWTSecret)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "APP_PORT: [unterminated\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_SweepInterval(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, time.Hour, cfg.SweepInterval())

	cfg.TokenSweepInterval = "0"
	assert.Zero(t, cfg.SweepInterval())

	cfg.TokenSweepInterval = "nonsense"
	assert.Zero(t, cfg.SweepInterval())
}

func TestConfig_DSN(t *testing.T) {
	cfg := defaultConfig()
	cfg.DBPassword = "secret"

	assert.Equal(t,
		"host=localhost user=postgres password=secret dbname=recipehub port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN(),
	)
}
