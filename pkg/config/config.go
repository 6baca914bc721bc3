package config

import (
	"os"
	"strconv"
	"time"
)

const defaultUserAgent = `Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36`

// Config holds the application configuration.
type Config struct {
	LogLevel string

	HTTPTimeout     time.Duration
	PageLoadTimeout time.Duration
	UserAgent       string

	ViewportWidth  int
	ViewportHeight int

	MetricsAddr string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT_SECONDS", 30) * time.Second,
		PageLoadTimeout: getEnvAsDuration("PAGE_LOAD_TIMEOUT_SECONDS", 60) * time.Second,
		UserAgent:       getEnv("USER_AGENT", defaultUserAgent),
		ViewportWidth:   getEnvAsInt("VIEWPORT_WIDTH", 1366),
		ViewportHeight:  getEnvAsInt("VIEWPORT_HEIGHT", 768),
		MetricsAddr:     getEnv("METRICS_ADDR", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback int) time.Duration {
	return time.Duration(getEnvAsInt(key, fallback))
}
