// Package config loads and saves persistent CLI defaults from a JSON file at
// ~/.pokecollect/config.json. File values seed the flag defaults; flags set
// on the command line always win.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pokecollect/pokecollect/internal/logger"
)

// Config holds persistent tool defaults
type Config struct {
	OutputDir      string `json:"output_dir"`
	DataDir        string `json:"data_dir"`
	Format         string `json:"format"`
	LogLevel       string `json:"log_level"`
	UserAgent      string `json:"user_agent,omitempty"`
	AnnounceDryRun bool   `json:"announce_dry_run"`
}

// Default returns the built-in defaults used when no config file exists
func Default() *Config {
	return &Config{
		OutputDir:      ".",
		DataDir:        "~/.local/share/pokecollect",
		Format:         "text",
		LogLevel:       "info",
		AnnounceDryRun: true,
	}
}

// DefaultPath returns the default config file location
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".pokecollect", "config.json"), nil
}

// Load reads the config file at path. A missing file is not an error: the
// built-in defaults are returned. An empty path means the default location.
func Load(path string) (*Config, error) {
	path, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return FromJSON(data)
}

// Save writes the config to path, creating parent directories as needed.
// An empty path means the default location.
func (c *Config) Save(path string) error {
	path, err := resolvePath(path)
	if err != nil {
		return err
	}

	data, err := c.ToJSON()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ToJSON marshals the config to indented JSON
func (c *Config) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// FromJSON unmarshals a config over the built-in defaults, so fields omitted
// from the file keep their default values
func FromJSON(data []byte) (*Config, error) {
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the fields that have a closed set of accepted values
func (c *Config) Validate() error {
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("invalid format: %q (must be 'text' or 'json')", c.Format)
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}

// resolvePath expands an empty path to the default location and a leading
// ~/ to the user's home directory
func resolvePath(path string) (string, error) {
	if path == "" {
		return DefaultPath()
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}

	return path, nil
}
