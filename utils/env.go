package utils

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

func lookupEnv(key string) (string, bool) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return "", false
	}
	return strings.TrimSpace(value), true
}

func warnInvalidEnv(key, value string, err error) {
	slog.Warn("ignoring invalid environment value", "key", key, "value", value, "error", err)
}

func GetEnvAsInt64(key string, defaultVal int64) int64 {
	if value, exists := lookupEnv(key); exists {
		result, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return result
		}
		warnInvalidEnv(key, value, err)
	}
	return defaultVal
}

// GetEnvAsUint64 retrieves an environment variable and converts it to uint64
func GetEnvAsUint64(key string, defaultVal uint64) uint64 {
	if value, exists := lookupEnv(key); exists {
		result, err := strconv.ParseUint(value, 10, 64)
		if err == nil {
			return result
		}
		warnInvalidEnv(key, value, err)
	}
	return defaultVal
}

// GetEnvAsDuration accepts Go duration strings ("90s") or a bare number of
// seconds.
func GetEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value, exists := lookupEnv(key); exists {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
		result, err := time.ParseDuration(value)
		if err == nil {
			return result
		}
		warnInvalidEnv(key, value, err)
	}
	return defaultVal
}

func GetEnvAsBool(key string, defaultVal bool) bool {
	if value, exists := lookupEnv(key); exists {
		result, err := strconv.ParseBool(value)
		if err == nil {
			return result
		}
		warnInvalidEnv(key, value, err)
	}
	return defaultVal
}

// GetEnvAsString returns the variable when it is set and non-empty.
func GetEnvAsString(key string, defaultVal string) string {
	if value, exists := lookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

// GetEnvAsList splits a comma-separated variable, dropping blank entries.
func GetEnvAsList(key string, defaultVal []string) []string {
	value, exists := lookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultVal
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
