package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr           string
	DatabaseURL    string
	JWTSecret      string
	AppEnv         string
	PaymentDelay   time.Duration
	PaymentTimeout time.Duration
}

// Load reads configuration from the environment, falling back to a .env file
// when present.
func Load() Config {
	_ = godotenv.Load()

	addr := os.Getenv("BOUTIQUE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		Addr:           addr,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AppEnv:         os.Getenv("APP_ENV"),
		PaymentDelay:   durationEnv("PAYMENT_DELAY", 2*time.Second),
		PaymentTimeout: durationEnv("PAYMENT_TIMEOUT", 30*time.Second),
	}
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
