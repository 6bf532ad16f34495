// Package config loads parprimes defaults from a YAML or JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by the format key.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "md"
)

// ErrInvalidFormat is returned for an unknown format value.
var ErrInvalidFormat = errors.New("invalid output format")

// FileConfig is the layout of a configuration file:
//
//	threads: 4
//	format: json
//	output: primes.json.gz
//	stats: true
//
// Zero values mean "not set" and leave the built-in defaults in place.
type FileConfig struct {
	Threads int    `yaml:"threads" json:"threads"`
	Format  string `yaml:"format" json:"format"`
	Output  string `yaml:"output" json:"output"`
	Stats   bool   `yaml:"stats" json:"stats"`
}

// LoadFile reads and validates a configuration file. The extension selects the
// decoder: .yaml and .yml for YAML, .json for JSON.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the values that can be checked without running a scan.
func (c *FileConfig) Validate() error {
	if c.Threads < 0 {
		return fmt.Errorf("threads must be positive, got %d", c.Threads)
	}
	if c.Format != "" {
		if _, err := ParseFormat(c.Format); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormat normalizes a format name. The empty string means text.
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown, "markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q (expected text, json or md)", ErrInvalidFormat, s)
	}
}
