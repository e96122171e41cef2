package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Tenant routing configuration
	PrimaryDomain string
	LocalDomain   string
	CookieDomain  string

	// Gateway upstreams
	APIBaseURL    string
	MainSiteURL   string
	AppSiteURL    string
	TenantSiteURL string
	GatewayPort   string
}

// LoadConfig creates a new Config instance with values from environment
// variables or secrets, depending on the environment.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI:
		if err := loadCIConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load CI configuration: %w", err)
		}
	case Development, Test:
		if err := loadDevConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load development configuration: %w", err)
		}
	case Production:
		loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	loadDomainConfig(cfg)

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig loads configuration for CI environments from plain env vars.
func loadCIConfig(cfg *Config) error {
	loadEnvConfig(cfg)

	if cfg.DBPassword == "" {
		cfg.DBPassword = os.Getenv("TEST_DB_PASSWORD")
	}
	if cfg.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD or TEST_DB_PASSWORD is required in CI environment")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("TEST_JWT_SECRET")
	}
	return nil
}

// loadDevConfig loads configuration for development and test environments.
// A .env file in the working directory is applied first when present.
func loadDevConfig(cfg *Config) error {
	// Missing .env is fine; env vars win regardless.
	_ = godotenv.Load()

	loadEnvConfig(cfg)

	// Development defaults
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.ServerHost == "" {
		cfg.ServerHost = "0.0.0.0"
	}
	if cfg.DBHost == "" {
		cfg.DBHost = "localhost"
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}
	if cfg.RedisHost == "" {
		cfg.RedisHost = "localhost"
	}
	if cfg.RedisPort == "" {
		cfg.RedisPort = "6379"
	}
	return nil
}

// loadProdConfig loads configuration for production using Docker secrets,
// falling back to env vars for values not provided as secrets.
func loadProdConfig(cfg *Config) {
	loadEnvConfig(cfg)

	if v := readSecret("db_user"); v != "" {
		cfg.DBUser = v
	}
	if v := readSecret("db_password"); v != "" {
		cfg.DBPassword = v
	}
	if v := readSecret("jwt_secret"); v != "" {
		cfg.JWTSecret = v
	}
	if v := readSecret("redis_password"); v != "" {
		cfg.RedisPassword = v
	}
	if v := readSecret("redis_url"); v != "" {
		cfg.RedisURL = v
	}
}

// loadEnvConfig fills the config from plain environment variables.
func loadEnvConfig(cfg *Config) {
	cfg.ServerPort = os.Getenv("SERVER_PORT")
	cfg.ServerHost = os.Getenv("SERVER_HOST")
	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBPort = os.Getenv("DB_PORT")
	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = os.Getenv("DB_NAME")
	cfg.DBSSLMode = os.Getenv("DB_SSL_MODE")
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = os.Getenv("REDIS_PORT")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.RedisDB = 0
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
}

// loadDomainConfig fills the tenant-routing and gateway settings. These are
// plain env vars in every environment.
func loadDomainConfig(cfg *Config) {
	cfg.PrimaryDomain = os.Getenv("PRIMARY_DOMAIN")
	if cfg.PrimaryDomain == "" {
		cfg.PrimaryDomain = "duetly.app"
	}
	cfg.LocalDomain = os.Getenv("LOCAL_DOMAIN")
	if cfg.LocalDomain == "" && !IsProduction() {
		cfg.LocalDomain = "lvh.me"
	}
	cfg.CookieDomain = os.Getenv("COOKIE_DOMAIN")
	if cfg.CookieDomain == "" {
		cfg.CookieDomain = "." + cfg.PrimaryDomain
	}

	cfg.APIBaseURL = os.Getenv("API_BASE_URL")
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:8080"
	}
	cfg.MainSiteURL = os.Getenv("MAIN_SITE_URL")
	cfg.AppSiteURL = os.Getenv("APP_SITE_URL")
	cfg.TenantSiteURL = os.Getenv("TENANT_SITE_URL")
	cfg.GatewayPort = os.Getenv("GATEWAY_PORT")
	if cfg.GatewayPort == "" {
		cfg.GatewayPort = "8081"
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
