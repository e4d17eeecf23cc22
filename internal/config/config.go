package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	Port           string
	Env            string
	RandomSource   string
	JWTSecret      string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the configuration from the environment. JWT_SECRET is
// optional; leaving it empty disables bearer auth on the generate route.
func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		RandomSource:   getEnv("RANDOM_SOURCE", "crypto"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}

	if cfg.IsProduction() && cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET not set, generate endpoint is unauthenticated")
	}

	return cfg
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("invalid number env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}
