package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	LogLevel    string

	REPL      REPLConfig
	Telemetry TelemetryConfig
}

// REPLConfig holds the interactive loop configuration
type REPLConfig struct {
	Prompt string
}

// TelemetryConfig holds the optional metrics endpoint configuration.
// A zero port disables the telemetry server entirely.
type TelemetryConfig struct {
	Port int
}

// Load loads configuration from environment variables.
// It automatically loads a .env file if one exists in the current directory.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		REPL: REPLConfig{
			Prompt: getEnv("CALC_PROMPT", "Calculator> "),
		},
		Telemetry: TelemetryConfig{
			Port: getEnvAsInt("CALC_TELEMETRY_PORT", 0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.REPL.Prompt == "" {
		return fmt.Errorf("CALC_PROMPT must not be empty")
	}
	if c.Telemetry.Port < 0 || c.Telemetry.Port > 65535 {
		return fmt.Errorf("CALC_TELEMETRY_PORT must be a valid port or 0")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}
