// --- lessons/internal/config/config.go ---

package config

import (
	"os"
	"strings"
)

// Config is shared by every demo binary. It is read from the environment;
// a .env file is picked up by importing _ "github.com/joho/godotenv/autoload"
// in main.
type Config struct {
	Env      string
	LogLevel string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Env:      strings.ToLower(getEnv("APP_ENV", "development")),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}
}

// Development reports whether the demos run in development mode.
func (c *Config) Development() bool {
	return c.Env != "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
