// Package config loads panel settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ugordi/gladialore-admin/internal/glapi"
)

// Config holds the admin panel's runtime settings
type Config struct {
	// Server
	Host         string
	Port         int
	CookieSecure bool // Set Secure flag on session cookies (default: false)

	// Backend API
	APIBaseURL string
	APITimeout time.Duration

	// Sessions
	StorageType string // "memory" or "redis"
	RedisURL    string
	SessionTTL  time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Host:         os.Getenv("HOST"),
		Port:         getEnvInt("PORT", 8080),
		CookieSecure: getEnvBool("COOKIE_SECURE", false),

		APIBaseURL: getEnv("API_BASE_URL", glapi.DefaultBaseURL),
		APITimeout: getEnvDuration("API_TIMEOUT", glapi.DefaultTimeout),

		StorageType: getEnv("STORAGE_TYPE", "memory"),
		RedisURL:    os.Getenv("REDIS_URL"),
		SessionTTL:  getEnvDuration("SESSION_TTL", 7*24*time.Hour),
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.StorageType == "redis" && cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required when STORAGE_TYPE=redis")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
