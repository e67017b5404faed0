// SPDX-License-Identifier: MIT

// Package config loads and validates service configuration from a YAML file
// and environment variables. Environment variables win over file values.
package config

import (
	"fmt"
	"time"
)

// Defaults for the gallery service.
const (
	DefaultListenAddr = ":8080"
	DefaultDataFile   = "data/videos.json"
	DefaultMaxVideos  = 1000
	DefaultPageLimit  = 20
	MaxPageLimit      = 100
)

// Config is the resolved service configuration.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `yaml:"listen_addr"`
	// DataFile is the path of the JSON-backed video collection.
	DataFile string `yaml:"data_file"`
	// MaxVideos bounds the collection size; creation fails at the bound.
	MaxVideos int `yaml:"max_videos"`
	// DefaultLimit is the page size applied when the client omits one.
	DefaultLimit int `yaml:"default_limit"`
	// LogLevel sets the global zerolog level.
	LogLevel string `yaml:"log_level"`
	// RateLimit is the per-IP request budget for mutating endpoints.
	RateLimit int `yaml:"rate_limit"`
	// RateLimitWindow is the sliding window for RateLimit.
	RateLimitWindow time.Duration `yaml:"rate_limit_window"`
	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Load resolves the configuration: defaults, then the optional YAML file at
// path (empty path or GALLERY_CONFIG env), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{
		ListenAddr:      DefaultListenAddr,
		DataFile:        DefaultDataFile,
		MaxVideos:       DefaultMaxVideos,
		DefaultLimit:    DefaultPageLimit,
		LogLevel:        "info",
		RateLimit:       60,
		RateLimitWindow: time.Minute,
		ShutdownTimeout: 10 * time.Second,
	}

	if path == "" {
		path = ParseString("GALLERY_CONFIG", "")
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	cfg.mergeEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeEnv() {
	c.ListenAddr = ParseString("GALLERY_LISTEN", c.ListenAddr)
	c.DataFile = ParseString("GALLERY_DATA_FILE", c.DataFile)
	c.MaxVideos = ParseInt("GALLERY_MAX_VIDEOS", c.MaxVideos)
	c.DefaultLimit = ParseInt("GALLERY_DEFAULT_LIMIT", c.DefaultLimit)
	c.LogLevel = ParseString("LOG_LEVEL", c.LogLevel)
	c.RateLimit = ParseInt("GALLERY_RATE_LIMIT", c.RateLimit)
	c.RateLimitWindow = ParseDuration("GALLERY_RATE_LIMIT_WINDOW", c.RateLimitWindow)
	c.ShutdownTimeout = ParseDuration("GALLERY_SHUTDOWN_TIMEOUT", c.ShutdownTimeout)
}

// Validate rejects configurations the service cannot run with.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	if c.DataFile == "" {
		return fmt.Errorf("data_file must not be empty")
	}
	if c.MaxVideos <= 0 {
		return fmt.Errorf("max_videos must be positive, got %d", c.MaxVideos)
	}
	if c.DefaultLimit < 1 || c.DefaultLimit > MaxPageLimit {
		return fmt.Errorf("default_limit must be in [1,%d], got %d", MaxPageLimit, c.DefaultLimit)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate_limit must be positive, got %d", c.RateLimit)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("rate_limit_window must be positive, got %s", c.RateLimitWindow)
	}
	return nil
}
