package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedGroups(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "sign-key")
	t.Setenv("APP_TOKEN_ISSUER", "cryptbox")
	t.Setenv("APP_TOKEN_DURATION", "45m")
	t.Setenv("APP_HASH_KEY", "integrity-key")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/cryptbox")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")
	t.Setenv("ADAPTER_ADDRESS", "http://localhost:8080")
	t.Setenv("WORKERS_PURGE_INTERVAL", "10m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "cryptbox", cfg.App.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "integrity-key", cfg.App.HashKey)
	assert.Equal(t, "postgres://localhost:5432/cryptbox", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Minute, cfg.Workers.PurgeInterval)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Server.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
