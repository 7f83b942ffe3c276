package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CARRIER_API_URL", "https://carrier.test")
	t.Setenv("CARRIER_API_KEY", "key_test")
	t.Setenv("CARRIER_API_SECRET", "secret_test")
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")

	setRequiredEnv(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, "shipment-sync.db", cfg.Database.Path)
	assert.Equal(t, 1, cfg.Sync.DaysBack)
	assert.Equal(t, 60, cfg.Sync.IntervalMinutes)
	assert.Equal(t, 30, cfg.Tracking.ChunkSize)
	assert.Equal(t, "delivered", cfg.Tracking.TerminalStatus)
	assert.Equal(t, 2000, cfg.Tracking.ActiveRowCap)
	assert.Equal(t, 300, cfg.Cache.TrackingURLTTLSeconds)
	assert.Empty(t, cfg.Cache.RedisURL)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SYNC_DAYS_BACK", "7")
	t.Setenv("TERMINAL_STATUS", "Delivered")
	t.Setenv("ACTIVE_ROW_CAP", "300")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "https://carrier.test", cfg.Carrier.URL)
	assert.Equal(t, "key_test", cfg.Carrier.APIKey)
	assert.Equal(t, 7, cfg.Sync.DaysBack)
	assert.Equal(t, "Delivered", cfg.Tracking.TerminalStatus)
	assert.Equal(t, 300, cfg.Tracking.ActiveRowCap)
	assert.Equal(t, "redis://localhost:6379", cfg.Cache.RedisURL)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
CARRIER_API_URL=https://staging.carrier.test
CARRIER_API_KEY=key_staging
CARRIER_API_SECRET=secret_staging
TRACKING_CHUNK_SIZE=10
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, 10, cfg.Tracking.ChunkSize)
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	os.Unsetenv("CARRIER_API_URL")
	os.Unsetenv("CARRIER_API_KEY")
	os.Unsetenv("CARRIER_API_SECRET")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration")
}
