package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	PublicURL  string

	APIBaseURL string
	APITimeout time.Duration

	RedisAddr string
	RedisDB   int
	RedisPass string

	SessionSecret       string
	SessionCookieSecure bool
	SessionTTL          time.Duration

	MySQLDSN string

	LoginRatePerSec float64
	LoginBurst      int

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults. A .env file in the
// working directory is read first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:          getEnv("SERVER_PORT", "8081"),
		PublicURL:           getEnv("PUBLIC_URL", "http://localhost:8081"),
		APIBaseURL:          getEnv("API_BASE_URL", "http://localhost:8080"),
		APITimeout:          getEnvDuration("API_TIMEOUT", 10*time.Second),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		SessionSecret:       getEnv("SESSION_SECRET", "change-me"),
		SessionCookieSecure: getEnvBool("SESSION_COOKIE_SECURE", false),
		SessionTTL:          getEnvDuration("SESSION_TTL", 7*24*time.Hour),
		MySQLDSN:            os.Getenv("MYSQL_DSN"),
		LoginRatePerSec:     getEnvFloat("LOGIN_RATE_PER_SEC", 1),
		LoginBurst:          getEnvInt("LOGIN_BURST", 5),
		SwaggerHost:         os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
