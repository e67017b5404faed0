// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
	assert.Equal(t, DefaultDataFile, cfg.DataFile)
	assert.Equal(t, DefaultMaxVideos, cfg.MaxVideos)
	assert.Equal(t, DefaultPageLimit, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GALLERY_LISTEN", "127.0.0.1:9999")
	t.Setenv("GALLERY_MAX_VIDEOS", "5")
	t.Setenv("GALLERY_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", cfg.ListenAddr)
	assert.Equal(t, 5, cfg.MaxVideos)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_FileThenEnvPriority(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: \":7070\"\nmax_videos: 10\n"), 0o600))

	t.Setenv("GALLERY_MAX_VIDEOS", "20")

	cfg, err := Load(path)
	require.NoError(t, err)

	// File sets the listen address, env wins over file for max_videos.
	assert.Equal(t, ":7070", cfg.ListenAddr)
	assert.Equal(t, 20, cfg.MaxVideos)
}

func TestLoad_StrictFileParsing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("no_such_key: true\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict config parse error")
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gallery.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty listen addr", func(c *Config) { c.ListenAddr = "" }, "listen_addr"},
		{"empty data file", func(c *Config) { c.DataFile = "" }, "data_file"},
		{"zero max videos", func(c *Config) { c.MaxVideos = 0 }, "max_videos"},
		{"limit too large", func(c *Config) { c.DefaultLimit = 101 }, "default_limit"},
		{"zero rate limit", func(c *Config) { c.RateLimit = 0 }, "rate_limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseInt_Invalid(t *testing.T) {
	t.Setenv("GALLERY_TEST_INT", "not-a-number")
	assert.Equal(t, 42, ParseInt("GALLERY_TEST_INT", 42))
}

func TestParseDuration_Invalid(t *testing.T) {
	t.Setenv("GALLERY_TEST_DUR", "soon")
	assert.Equal(t, time.Second, ParseDuration("GALLERY_TEST_DUR", time.Second))
}
