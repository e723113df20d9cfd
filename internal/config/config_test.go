package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_SSLMODE",
		"SERVER_HOST", "SERVER_PORT", "APP_NAME", "JWT_COOKIE", "REQUEST_TIMEOUT_SECONDS",
		"JOURNAL_RETENTION_HOURS", "JOURNAL_PRUNE_INTERVAL", "RUN_MIGRATIONS", "SERVER_ENABLE_METRICS"} {
		t.Setenv(key, "")
	}
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "pw")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "newsroom", cfg.AppName)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, "postgres://newsroom:pw@localhost:5432/newsroom?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, "access_token", cfg.JWT.CookieName)
	assert.Equal(t, 5*time.Second, cfg.Context.RequestTimeout)
	assert.Equal(t, 720*time.Hour, cfg.JournalRetention())
	assert.Equal(t, time.Hour, cfg.Journal.PruneInterval)
	assert.False(t, cfg.Migrations.Enabled)
	assert.False(t, cfg.HTTP.EnableMetrics)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_ISSUER", "identity")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SERVER_ENABLE_METRICS", "true")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/news")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "30")
	t.Setenv("JOURNAL_RETENTION_HOURS", "48")
	t.Setenv("JOURNAL_PRUNE_INTERVAL", "15m")
	t.Setenv("RUN_MIGRATIONS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "identity", cfg.JWT.Issuer)
	assert.Equal(t, "0.0.0.0:9000", cfg.Address())
	assert.True(t, cfg.HTTP.EnableMetrics)
	assert.Equal(t, "postgres://u:p@db:5432/news", cfg.Database.URL)
	assert.Equal(t, 30*time.Second, cfg.Context.RequestTimeout)
	assert.Equal(t, 48*time.Hour, cfg.JournalRetention())
	assert.Equal(t, 15*time.Minute, cfg.Journal.PruneInterval)
	assert.True(t, cfg.Migrations.Enabled)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	t.Setenv("SERVER_ENABLE_METRICS", "perhaps")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.False(t, cfg.HTTP.EnableMetrics)
}
