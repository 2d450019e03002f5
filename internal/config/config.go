package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the service settings. The worker pool knobs are explicit
// rather than hardcoded so deployments can size transfer processing.
type Config struct {
	ServerPort        string
	MinWorkers        int
	MaxWorkers        int
	WorkerIdleTimeout time.Duration
}

// Load reads configuration from the environment, with an optional .env file
// for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8888"),
		MinWorkers:        getEnvInt("MIN_WORKERS", 4),
		MaxWorkers:        getEnvInt("MAX_WORKERS", 20),
		WorkerIdleTimeout: getEnvDuration("WORKER_IDLE_TIMEOUT", 60*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("Invalid integer in environment, using default", "key", key, "value", value)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("Invalid duration in environment, using default", "key", key, "value", value)
		return fallback
	}
	return d
}
