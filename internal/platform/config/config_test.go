package config_test

import (
	"testing"

	"github.com/SscSPs/caixa_ledger/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PGSQL_URL", "")
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.local, http://b.local")
	t.Setenv("DB_MAX_CONNS", "4")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, int32(4), cfg.DBMaxConns)
	assert.NotEmpty(t, cfg.JWTSecret)
}
