package utils

import (
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server configuration
	AppPort         string `yaml:"APP_PORT"`
	AppURL          string `yaml:"APP_URL"`
	CORSOrigins     string `yaml:"CORS_ORIGINS"`
	RateLimitMax    int    `yaml:"RATE_LIMIT_MAX"`
	RateLimitWindow string `yaml:"RATE_LIMIT_WINDOW"`
	MaxUploadSize   int64  `yaml:"MAX_UPLOAD_SIZE"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`

	// Token configuration
	JWTSecret            string `yaml:"JWT_SECRET"`
	JWTIssuer            string `yaml:"JWT_ISSUER"`
	AccessTokenDuration  string `yaml:"ACCESS_TOKEN_DURATION"`
	RefreshTokenDuration string `yaml:"REFRESH_TOKEN_DURATION"`
	TokenSweepInterval   string `yaml:"TOKEN_SWEEP_INTERVAL"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Image storage configuration
	StorageDriver string `yaml:"STORAGE_DRIVER"`

	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region   string `yaml:"AWS_S3_REGION"`
	AWSS3Endpoint string `yaml:"AWS_S3_ENDPOINT"`
	AWSAccessKey  string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey  string `yaml:"AWS_SECRET_KEY"`

	MinIOEndpoint  string `yaml:"MINIO_ENDPOINT"`
	MinIOAccessKey string `yaml:"MINIO_ACCESS_KEY"`
	MinIOSecretKey string `yaml:"MINIO_SECRET_KEY"`
	MinIOBucket    string `yaml:"MINIO_BUCKET"`
	MinIOUseSSL    bool   `yaml:"MINIO_USE_SSL"`

	// Gemini API configuration
	GeminiAPIKey  string `yaml:"GEMINI_API_KEY"`
	GeminiModel   string `yaml:"GEMINI_MODEL"`
	GeminiBaseURL string `yaml:"GEMINI_BASE_URL"`
}

const (
	DefaultConfigPath    = "config.yaml"
	defaultTokenDuration = 7 * 24 * time.Hour
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET is not configured")

func defaultConfig() Config {
	return Config{
		AppPort:              "8080",
		AppURL:               "http://localhost:8080",
		CORSOrigins:          "*",
		RateLimitMax:         20,
		RateLimitWindow:      "1s",
		MaxUploadSize:        5 * 1024 * 1024,
		DBHost:               "localhost",
		DBPort:               "5432",
		DBUser:               "postgres",
		DBName:               "recipehub",
		DBSSLMode:            "disable",
		JWTIssuer:            "RECIPEHUB",
		AccessTokenDuration:  "168h",
		RefreshTokenDuration: "168h",
		TokenSweepInterval:   "1h",
		StorageDriver:        "s3",
		MinIOBucket:          "recipes",
		GeminiModel:          "gemini-2.0-flash",
		GeminiBaseURL:        "https://generativelanguage.googleapis.com/v1beta",
	}
}

// LoadConfig reads the YAML file at path (a missing file is not an error), then
// applies .env and process environment overrides on top of it.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing YAML file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Warnf("config file %s not found, using defaults and environment", path)
	default:
		return nil, fmt.Errorf("error reading YAML file %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil {
		log.Debugf(".env not loaded: %v", err)
	}
	cfg.applyEnv()

	return &cfg, nil
}

func (c *Config) applyEnv() {
	overrideString(&c.AppPort, "APP_PORT")
	overrideString(&c.AppURL, "APP_URL")
	overrideString(&c.CORSOrigins, "CORS_ORIGINS")
	overrideInt(&c.RateLimitMax, "RATE_LIMIT_MAX")
	overrideString(&c.RateLimitWindow, "RATE_LIMIT_WINDOW")
	overrideInt64(&c.MaxUploadSize, "MAX_UPLOAD_SIZE")

	overrideString(&c.DBHost, "DB_HOST")
	overrideString(&c.DBPort, "DB_PORT")
	overrideString(&c.DBUser, "DB_USER")
	overrideString(&c.DBPassword, "DB_PASSWORD")
	overrideString(&c.DBName, "DB_NAME")
	overrideString(&c.DBSSLMode, "DB_SSLMODE")

	overrideString(&c.JWTSecret, "JWT_SECRET")
	overrideString(&c.JWTIssuer, "JWT_ISSUER")
	overrideString(&c.AccessTokenDuration, "ACCESS_TOKEN_DURATION")
	overrideString(&c.RefreshTokenDuration, "REFRESH_TOKEN_DURATION")
	overrideString(&c.TokenSweepInterval, "TOKEN_SWEEP_INTERVAL")

	overrideString(&c.SMTPHost, "SMTP_HOST")
	overrideString(&c.SMTPPort, "SMTP_PORT")
	overrideString(&c.SMTPSenderName, "SMTP_SENDER_NAME")
	overrideString(&c.SMTPAuthEmail, "SMTP_AUTH_EMAIL")
	overrideString(&c.SMTPAuthPassword, "SMTP_AUTH_PASSWORD")

	overrideString(&c.StorageDriver, "STORAGE_DRIVER")
	overrideString(&c.AWSS3Bucket, "AWS_S3_BUCKET")
	overrideString(&c.AWSS3Region, "AWS_S3_REGION")
	overrideString(&c.AWSS3Endpoint, "AWS_S3_ENDPOINT")
	overrideString(&c.AWSAccessKey, "AWS_ACCESS_KEY")
	overrideString(&c.AWSSecretKey, "AWS_SECRET_KEY")
	overrideString(&c.MinIOEndpoint, "MINIO_ENDPOINT")
	overrideString(&c.MinIOAccessKey, "MINIO_ACCESS_KEY")
	overrideString(&c.MinIOSecretKey, "MINIO_SECRET_KEY")
	overrideString(&c.MinIOBucket, "MINIO_BUCKET")
	overrideBool(&c.MinIOUseSSL, "MINIO_USE_SSL")

	overrideString(&c.GeminiAPIKey, "GEMINI_API_KEY")
	overrideString(&c.GeminiModel, "GEMINI_MODEL")
	overrideString(&c.GeminiBaseURL, "GEMINI_BASE_URL")
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

func (c *Config) AccessTTL() time.Duration {
	return parseDuration(c.AccessTokenDuration, defaultTokenDuration)
}

func (c *Config) RefreshTTL() time.Duration {
	return parseDuration(c.RefreshTokenDuration, defaultTokenDuration)
}

// SweepInterval returns zero when the periodic refresh-token sweep is disabled.
func (c *Config) SweepInterval() time.Duration {
	return parseDuration(c.TokenSweepInterval, 0)
}

func (c *Config) RateWindow() time.Duration {
	return parseDuration(c.RateLimitWindow, time.Second)
}

func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPAuthEmail != ""
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" || value == "0" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Warnf("invalid duration %q, falling back to %s", value, fallback)
		return fallback
	}
	return d
}

func overrideString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func overrideInt64(dst *int64, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func overrideBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
