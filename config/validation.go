package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// requiredFields maps config fields that must be non-empty in every
// environment to their accessor.
var requiredFields = []struct {
	name string
	get  func(*Config) string
}{
	{"DB_HOST", func(c *Config) string { return c.DBHost }},
	{"DB_PORT", func(c *Config) string { return c.DBPort }},
	{"DB_USER", func(c *Config) string { return c.DBUser }},
	{"DB_NAME", func(c *Config) string { return c.DBName }},
	{"JWT_SECRET", func(c *Config) string { return c.JWTSecret }},
	{"PRIMARY_DOMAIN", func(c *Config) string { return c.PrimaryDomain }},
}

// ValidateConfig checks that the loaded configuration is usable.
func ValidateConfig(cfg *Config) error {
	var missing []string
	for _, f := range requiredFields {
		if f.get(cfg) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return ValidationError{
			Field:   strings.Join(missing, ", "),
			Message: "required configuration is missing",
		}
	}

	if IsProduction() && cfg.DBSSLMode == "" {
		return ValidationError{Field: "DB_SSL_MODE", Message: "must be set in production"}
	}
	if strings.Contains(cfg.PrimaryDomain, "/") {
		return ValidationError{Field: "PRIMARY_DOMAIN", Message: "must be a bare domain, not a URL"}
	}

	return nil
}
