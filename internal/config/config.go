package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	SessionSecret string
	LogLevel      string
	Port          string
	StoreLatency  time.Duration
	ClockMode     string
	CORSOrigins   []string
	SeedDemoData  bool
}

const (
	ClockModeSystem    = "system"
	ClockModeSimulated = "simulated"
)

func Load() (Config, error) {
	latencyMillis, err := strconv.Atoi(envOrDefault("STORE_LATENCY_MS", "50"))
	if err != nil {
		return Config{}, fmt.Errorf("parsing STORE_LATENCY_MS: %w", err)
	}

	config := Config{
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		Port:          envOrDefault("PORT", "8080"),
		StoreLatency:  time.Duration(latencyMillis) * time.Millisecond,
		ClockMode:     envOrDefault("CLOCK_MODE", ClockModeSystem),
		CORSOrigins:   strings.Split(envOrDefault("CORS_ORIGINS", "*"), ","),
		SeedDemoData:  envOrDefault("SEED_DEMO_DATA", "true") == "true",
	}

	if config.SessionSecret == "" {
		return Config{}, fmt.Errorf("SESSION_SECRET is required")
	}
	if config.ClockMode != ClockModeSystem && config.ClockMode != ClockModeSimulated {
		return Config{}, fmt.Errorf("CLOCK_MODE must be %q or %q", ClockModeSystem, ClockModeSimulated)
	}

	return config, nil
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
