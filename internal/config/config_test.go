package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "API_BASE_URL", "API_TIMEOUT", "REDIS_ADDR", "MYSQL_DSN", "SESSION_TTL", "LOGIN_BURST"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8081", cfg.ServerPort)
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.MySQLDSN)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5, cfg.LoginBurst)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://clinic.example/api")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("LOGIN_RATE_PER_SEC", "0.5")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()

	assert.Equal(t, "https://clinic.example/api", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.True(t, cfg.SessionCookieSecure)
	assert.Equal(t, 0.5, cfg.LoginRatePerSec)
	assert.Equal(t, 0, cfg.RedisDB)
}
