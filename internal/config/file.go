// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// mergeFile overlays values from a YAML file onto c with STRICT parsing.
// Unknown fields are rejected to prevent silent misconfiguration.
func (c *Config) mergeFile(path string) error {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("strict config parse error: %w", err)
	}

	// Strict: ensure no multiple documents or trailing content.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("config file contains multiple documents or trailing content")
	}

	return nil
}
