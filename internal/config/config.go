// README: Config loader with env defaults for HTTP, optional stores, and AI settings.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	// DB and Redis are optional backends: empty values run the service with
	// no persistence, matching the original deployment.
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	AI struct {
		GeminiKey string
	}
	Maps struct {
		APIKey string
	}
	CostCheck struct {
		Enabled   bool
		Tolerance float64
	}
	RateLimit struct {
		RPS   float64
		Burst int
	}
}

func Load() (Config, error) {
	// .env is a developer convenience; absence is fine.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("DREAMTRIP_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("DREAMTRIP_DB_DSN")
	cfg.Redis.Addr = os.Getenv("DREAMTRIP_REDIS_ADDR")
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.Maps.APIKey = os.Getenv("MAPS_API_KEY")
	cfg.CostCheck.Enabled = envOrDefaultBool("DREAMTRIP_VALIDATE_COST", false)
	cfg.CostCheck.Tolerance = envOrDefaultFloat("DREAMTRIP_COST_TOLERANCE", 0.25)
	cfg.RateLimit.RPS = envOrDefaultFloat("DREAMTRIP_RATE_RPS", 1)
	cfg.RateLimit.Burst = envOrDefaultInt("DREAMTRIP_RATE_BURST", 5)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
