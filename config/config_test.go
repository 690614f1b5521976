package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("RATE_LIMIT_WINDOW", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.Server.AppEnv)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 5, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Contains(t, cfg.Postgres.DSN(), "TimeZone=UTC")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/dukkan")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres://u:p@db:5432/dukkan", cfg.Postgres.DSN())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 2*time.Hour, cfg.JWT.TTL)
	assert.False(t, cfg.Server.AutoMigrate)
}
