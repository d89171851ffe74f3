package config

import (
	"os"
	"strconv"
	"time"
)

// GetEnvAsInt reads an integer variable, falling back to defaultValue when
// the variable is unset or not a valid integer.
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration reads a variable in time.ParseDuration syntax ("1h30m"),
// falling back to defaultValue when unset or unparseable.
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetEnvAsString reads a string variable, falling back to defaultValue when
// it is unset or empty.
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
