package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars clears all freebusy-related environment variables.
func clearEnvVars() {
	envVars := []string{
		"FREEBUSY_ENV", "FREEBUSY_LOG_LEVEL", "FREEBUSY_LOG_FORMAT",
		"FREEBUSY_TIMEZONE", "FREEBUSY_SCHEDULE",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnvVars()
	defer clearEnvVars()

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "UTC", cfg.DefaultTimeZone)
	assert.Equal(t, "schedule.json", cfg.SchedulePath)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnvVars()
	defer clearEnvVars()

	os.Setenv("FREEBUSY_ENV", "production")
	os.Setenv("FREEBUSY_LOG_LEVEL", "warn")
	os.Setenv("FREEBUSY_LOG_FORMAT", "json")
	os.Setenv("FREEBUSY_TIMEZONE", "Europe/Brussels")
	os.Setenv("FREEBUSY_SCHEDULE", "/etc/freebusy/schedule.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "Europe/Brussels", cfg.DefaultTimeZone)
	assert.Equal(t, "/etc/freebusy/schedule.json", cfg.SchedulePath)
}

func TestConfig_EnvironmentChecks(t *testing.T) {
	dev := &Config{AppEnv: "development"}
	assert.True(t, dev.IsDevelopment())
	assert.False(t, dev.IsProduction())

	prod := &Config{AppEnv: "production"}
	assert.False(t, prod.IsDevelopment())
	assert.True(t, prod.IsProduction())
}
