// Package config loads the optional user configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable settings. Zero values fall back to defaults.
type Config struct {
	// StorePath is the workspaces JSON file.
	StorePath string `yaml:"store_path"`

	// PollInterval is how often `indicator --watch` samples the current space.
	PollInterval time.Duration `yaml:"poll_interval"`

	// MinWindowWidth and MinWindowHeight exclude small utility windows when
	// capturing the apps on the current space.
	MinWindowWidth  int `yaml:"min_window_width"`
	MinWindowHeight int `yaml:"min_window_height"`

	// ExcludeBundles lists bundle identifier substrings never captured.
	ExcludeBundles []string `yaml:"exclude_bundles"`
}

const appSupportDirName = "NiceUtil"

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		PollInterval:    time.Second,
		MinWindowWidth:  50,
		MinWindowHeight: 50,
		ExcludeBundles:  []string{"com.apple.finder", "spaces-cli"},
	}
}

// DefaultConfigPath returns ~/.config/spaces-cli/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "spaces-cli", "config.yaml"), nil
}

// DefaultStorePath returns ~/Library/Application Support/NiceUtil/workspaces.json.
func DefaultStorePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, "Library", "Application Support", appSupportDirName, "workspaces.json"), nil
}

// Load reads the config from the default location.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and validates the config at path. A missing file yields
// the defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return finish(Defaults())
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML config over the defaults.
func Parse(r io.Reader) (*Config, error) {
	cfg := Defaults()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	if cfg.StorePath == "" {
		path, err := DefaultStorePath()
		if err != nil {
			return nil, err
		}
		cfg.StorePath = path
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.PollInterval < 100*time.Millisecond {
		return fmt.Errorf("poll_interval must be at least 100ms, got %s", c.PollInterval)
	}
	if c.MinWindowWidth < 0 || c.MinWindowHeight < 0 {
		return fmt.Errorf("min window size must not be negative")
	}
	return nil
}
