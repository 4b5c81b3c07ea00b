// Package config loads freebusy configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string

	// DefaultTimeZone is the IANA zone used by the CLI when a query does not
	// name one explicitly.
	DefaultTimeZone string

	// SchedulePath is the default schedule document consumed by the CLI.
	SchedulePath string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:          getEnv("FREEBUSY_ENV", "development"),
		LogLevel:        getEnv("FREEBUSY_LOG_LEVEL", "info"),
		LogFormat:       getEnv("FREEBUSY_LOG_FORMAT", "text"),
		DefaultTimeZone: getEnv("FREEBUSY_TIMEZONE", "UTC"),
		SchedulePath:    getEnv("FREEBUSY_SCHEDULE", "schedule.json"),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
