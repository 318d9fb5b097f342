package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/salon")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 10, cfg.DBMaxConns)
	assert.Equal(t, 2, cfg.DBMinConns)
	assert.Equal(t, 12*time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.RefreshTokenTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/salon")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("ACCESS_TOKEN_TTL", "90")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.DBMaxConns)
	// Bare integers read as seconds.
	assert.Equal(t, 90*time.Second, cfg.AccessTokenTTL)
}

func TestLoadRejectsBadInts(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/salon")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_MAX_CONNS", "-4")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.DBMaxConns)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load()
	require.Error(t, err)
}
