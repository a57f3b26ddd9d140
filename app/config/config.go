package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the application needs at startup. It is built
// once in main and passed down; nothing reads the environment after Load.
type Config struct {
	Addr          string
	DBPath        string
	SessionSecret string
}

const (
	defaultAddr   = ":8080"
	defaultDBPath = "data/posts.db"
	// Development fallback only. Set INKWELL_SESSION_SECRET in production.
	defaultSessionSecret = "inkwell-dev-secret"
)

// Load reads configuration from the environment, optionally seeded from a
// .env file in the working directory.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:          getenv("INKWELL_ADDR", defaultAddr),
		DBPath:        getenv("INKWELL_DB_PATH", defaultDBPath),
		SessionSecret: getenv("INKWELL_SESSION_SECRET", defaultSessionSecret),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
