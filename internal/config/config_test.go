package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"APP_NAME", "APP_ENV", "HTTP_PORT", "PORT", "SEED_DATA", "GRAPHQL_PATH", "GRAPHQL_PLAYGROUND",
	"CACHE_ENABLED", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_TTL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "freelance-directory", cfg.App.AppName)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "4000", cfg.App.HTTPPort)
	assert.True(t, cfg.App.SeedData)
	assert.Equal(t, "/graphql", cfg.GraphQL.Path)
	assert.True(t, cfg.GraphQL.Playground)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "localhost", cfg.Cache.Host)
	assert.Equal(t, "6379", cfg.Cache.Port)
	assert.Equal(t, 600*time.Second, cfg.Cache.TTL)
}

func TestLoad_PortFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.App.HTTPPort)

	t.Setenv("HTTP_PORT", "9090")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.App.HTTPPort)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEED_DATA", "false")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("REDIS_TTL", "30")
	t.Setenv("GRAPHQL_PATH", "/api/graphql")
	t.Setenv("GRAPHQL_PLAYGROUND", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.App.SeedData)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "/api/graphql", cfg.GraphQL.Path)
	assert.False(t, cfg.GraphQL.Playground)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEED_DATA", "maybe")
	t.Setenv("REDIS_TTL", "-5")
	t.Setenv("GRAPHQL_PATH", "graphql")

	_, err := Load()
	require.ErrorIs(t, err, errInvalidEnv)
	assert.Contains(t, err.Error(), "SEED_DATA")
	assert.Contains(t, err.Error(), "REDIS_TTL")
	assert.Contains(t, err.Error(), "GRAPHQL_PATH")
}
