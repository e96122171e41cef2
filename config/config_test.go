package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Set test environment variables
	os.Setenv("ENV", "test")
	os.Setenv("DB_HOST", "localhost")
	os.Setenv("DB_PORT", "5432")
	os.Setenv("DB_USER", "postgres")
	os.Setenv("DB_PASSWORD", "postgres")
	os.Setenv("DB_NAME", "duetly")
	os.Setenv("DB_SSL_MODE", "disable")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("REDIS_URL", "redis://localhost:6379")
	os.Setenv("PRIMARY_DOMAIN", "duetly.test")
	defer os.Unsetenv("PRIMARY_DOMAIN")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	// Test database configuration
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "postgres", cfg.DBPassword)
	assert.Equal(t, "duetly", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)

	// Test JWT configuration
	assert.Equal(t, "test-secret", cfg.JWTSecret)

	// Test Redis configuration
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)

	// Test tenant routing configuration
	assert.Equal(t, "duetly.test", cfg.PrimaryDomain)
	assert.Equal(t, ".duetly.test", cfg.CookieDomain)
	assert.Equal(t, "lvh.me", cfg.LocalDomain)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	os.Setenv("ENV", "test")
	os.Setenv("DB_HOST", "localhost")
	os.Setenv("DB_USER", "postgres")
	os.Setenv("DB_NAME", "duetly")
	os.Unsetenv("JWT_SECRET")

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidateConfigRejectsURLDomain(t *testing.T) {
	cfg := &Config{
		DBHost:        "localhost",
		DBPort:        "5432",
		DBUser:        "postgres",
		DBName:        "duetly",
		JWTSecret:     "secret",
		PrimaryDomain: "https://duetly.app",
	}

	err := ValidateConfig(cfg)
	assert.Error(t, err)
}
