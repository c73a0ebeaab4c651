package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds everything the server needs at startup. It is loaded once
// in main and passed down; nothing mutates it afterwards.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	AvatarDir   string
}

// Load reads configuration from the environment, falling back to
// development defaults where a value is missing.
func Load() Config {
	cfg := Config{
		Port:      getenv("PORT", "8080"),
		JWTSecret: getenv("JWT_SECRET", "devsecret"),
		TokenTTL:  24 * time.Hour,
		AvatarDir: getenv("AVATAR_DIR", "uploads/avatars"),
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s",
			getenv("DB_USER", "postgres"),
			getenv("DB_PASSWORD", "postgres"),
			getenv("DB_HOST", "localhost"),
			getenv("DB_PORT", "5432"),
			getenv("DB_NAME", "accounthub"),
		)
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
