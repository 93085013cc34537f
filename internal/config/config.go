package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port  string
	Debug bool

	// Monitoring configuration
	PollInterval       time.Duration
	IdleEvictionCycles int // 0 disables idle-topic eviction

	// Provider credentials
	NewsAPIKey string

	// Curated list served by the trending-topics endpoint
	TrendingTopics []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:  getEnv("PORT", "3000"),
		Debug: getBoolEnv("DEBUG", false),

		PollInterval:       getDurationEnv("POLL_INTERVAL", time.Minute),
		IdleEvictionCycles: getIntEnv("IDLE_EVICTION_CYCLES", 0),

		NewsAPIKey: getEnv("NEWS_API_KEY", ""),

		TrendingTopics: getSliceEnv("TRENDING_TOPICS", []string{
			"chess",
			"technology",
			"AI",
			"sports",
			"politics",
			"entertainment",
		}),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.PollInterval < time.Second {
		return fmt.Errorf("POLL_INTERVAL must be at least 1s")
	}

	if c.IdleEvictionCycles < 0 {
		return fmt.Errorf("IDLE_EVICTION_CYCLES must not be negative")
	}

	if len(c.TrendingTopics) == 0 {
		return fmt.Errorf("TRENDING_TOPICS must not be empty")
	}

	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}
		return parts
	}
	return defaultValue
}
