package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Service ServiceConfig
	Session SessionConfig
}

// ServiceConfig configures the record-service client.
type ServiceConfig struct {
	BaseURL             string
	RequestTimeout      time.Duration
	RateLimitPerSecond  int
	RateLimitBurst      int
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
	Environment         string
}

// SessionConfig configures the state engine.
type SessionConfig struct {
	PageSize int
}

func Load() *Config {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		Service: ServiceConfig{
			BaseURL:             getEnv("RECORD_SERVICE_URL", "http://127.0.0.1:8000/api"),
			RequestTimeout:      getDurationEnv("RECORD_SERVICE_TIMEOUT", 15*time.Second),
			RateLimitPerSecond:  getIntEnv("RECORD_SERVICE_RATE_LIMIT", 10),
			RateLimitBurst:      getIntEnv("RECORD_SERVICE_RATE_BURST", 20),
			BreakerMaxFailures:  getIntEnv("RECORD_SERVICE_BREAKER_FAILURES", 5),
			BreakerResetTimeout: getDurationEnv("RECORD_SERVICE_BREAKER_RESET", 30*time.Second),
			Environment:         getEnv("APP_ENV", "development"),
		},
		Session: SessionConfig{
			PageSize: getIntEnv("SESSION_PAGE_SIZE", 10),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Service.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Service.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Service.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
