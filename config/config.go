// Package config manages the user preferences file at
// ~/.config/clockboard.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Use24Hour selects the 24-hour clock for display and input.
	Use24Hour bool `yaml:"use_24_hour"`

	// StartupZones are IANA timezone keys added as clocks at launch.
	StartupZones []string `yaml:"startup_zones"`
}

// Default returns the configuration written on first run: 12-hour clocks and
// an empty board.
func Default() *Config {
	return &Config{
		Use24Hour:    false,
		StartupZones: nil,
	}
}

// Load reads the configuration from the default path, creating a default
// file if none exists.
func Load() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the configuration from path. If the file doesn't exist, it
// creates a default one.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfig(path); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that all startup zone identifiers are valid.
func (c *Config) Validate() error {
	for _, key := range c.StartupZones {
		if key == "" {
			return fmt.Errorf("empty timezone key in startup_zones")
		}
		if _, err := time.LoadLocation(key); err != nil {
			return fmt.Errorf("invalid timezone %q in startup_zones: %w", key, err)
		}
	}
	return nil
}

// DefaultPath returns the path to the config file.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "clockboard.yaml"), nil
}

// createDefaultConfig writes a default configuration file at path.
func createDefaultConfig(path string) error {
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Save writes the configuration to the default path atomically.
func (c *Config) Save() error {
	configPath, err := DefaultPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the configuration to path atomically: it writes to a temp
// file in the same directory, then renames it over the target.
func (c *Config) SaveTo(path string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(configDir, "clockboard-*.yaml.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
