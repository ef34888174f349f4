package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the deployment-provided settings for the storefront server.
type Config struct {
	Port string

	LogLevel string

	// SessionStore selects where the signed-in user is persisted across
	// restarts: "memory", "file", or "redis".
	SessionStore string
	SessionDir   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration

	// CatalogSource selects the travel-catalog backend: "static" or "postgres".
	CatalogSource string
	DatabaseURL   string

	JWTSecret string
	TokenTTL  time.Duration

	// Simulated provider latencies.
	AuthDelay    time.Duration
	PaymentDelay time.Duration
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		SessionStore:  getenv("SESSION_STORE", "memory"),
		SessionDir:    getenv("SESSION_DIR", "./data"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CatalogSource: getenv("CATALOG_SOURCE", "static"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SessionTTL:    0,
		TokenTTL:      24 * time.Hour,
		AuthDelay:     1500 * time.Millisecond,
		PaymentDelay:  2 * time.Second,
	}

	switch cfg.SessionStore {
	case "memory", "file", "redis":
	default:
		return Config{}, fmt.Errorf("SESSION_STORE must be one of memory, file, redis; got %q", cfg.SessionStore)
	}

	switch cfg.CatalogSource {
	case "static":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required when CATALOG_SOURCE=postgres")
		}
	default:
		return Config{}, fmt.Errorf("CATALOG_SOURCE must be one of static, postgres; got %q", cfg.CatalogSource)
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("missing required env var: JWT_SECRET")
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("REDIS_DB must be an integer: %w", err)
		}
		cfg.RedisDB = n
	}

	var err error
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", cfg.SessionTTL); err != nil {
		return Config{}, err
	}
	if cfg.TokenTTL, err = durationEnv("TOKEN_TTL", cfg.TokenTTL); err != nil {
		return Config{}, err
	}
	if cfg.AuthDelay, err = durationEnv("AUTH_DELAY", cfg.AuthDelay); err != nil {
		return Config{}, err
	}
	if cfg.PaymentDelay, err = durationEnv("PAYMENT_DELAY", cfg.PaymentDelay); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration (e.g. 30s): %w", key, err)
	}
	return d, nil
}
