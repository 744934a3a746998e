// Package config provides environment-variable helpers shared by the
// configuration loaders of every component.
//
// Each helper returns the supplied default when the variable is unset or empty.
// Unparseable values also fall back to the default and are reported with a
// warning on the default slog logger, so a typo never aborts startup.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// GetEnvString returns the value of key, or defaultValue if it is unset or empty.
//
// Example:
//
//	path := GetEnvString("NEWSAPI_FILE", "inputs/newsapi.txt")
func GetEnvString(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt returns the value of key parsed as a base-10 int.
func GetEnvInt(key string, defaultValue int) int {
	raw, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		warnFallback(key, raw, strconv.Itoa(defaultValue), err)
		return defaultValue
	}
	return value
}

// GetEnvInt64 returns the value of key parsed as a base-10 int64.
//
// Example:
//
//	limit := GetEnvInt64("FETCH_MAX_BODY_SIZE", 10<<20)
func GetEnvInt64(key string, defaultValue int64) int64 {
	raw, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		warnFallback(key, raw, strconv.FormatInt(defaultValue, 10), err)
		return defaultValue
	}
	return value
}

// GetEnvBool returns the value of key parsed with strconv.ParseBool
// ("1", "t", "true", "0", "f", "false" and their upper-case forms).
func GetEnvBool(key string, defaultValue bool) bool {
	raw, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		warnFallback(key, raw, strconv.FormatBool(defaultValue), err)
		return defaultValue
	}
	return value
}

// GetEnvDuration returns the value of key parsed with time.ParseDuration (e.g. "30s", "1m").
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		warnFallback(key, raw, defaultValue.String(), err)
		return defaultValue
	}
	return value
}

func lookup(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

func warnFallback(key, value, defaultValue string, err error) {
	slog.Warn("invalid value for environment variable, using default",
		slog.String("key", key),
		slog.String("value", value),
		slog.String("default", defaultValue),
		slog.String("error", err.Error()))
}
