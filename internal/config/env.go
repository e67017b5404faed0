// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/soraprompt/gallery/internal/log"
)

// ParseString reads a string from an environment variable or returns the
// default value. Empty values fall back to the default.
func ParseString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// ParseInt reads an integer from an environment variable or returns the
// default value. It falls back to the default on parse errors.
func ParseInt(key string, defaultValue int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		logger := log.WithComponent("config")
		logger.Warn().
			Str("key", key).
			Str("value", v).
			Int("default", defaultValue).
			Msg("invalid integer in environment, using default")
		return defaultValue
	}
	return parsed
}

// ParseDuration reads a duration from an environment variable or returns the
// default value. It falls back to the default on parse errors.
func ParseDuration(key string, defaultValue time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		logger := log.WithComponent("config")
		logger.Warn().
			Str("key", key).
			Str("value", v).
			Dur("default", defaultValue).
			Msg("invalid duration in environment, using default")
		return defaultValue
	}
	return parsed
}
