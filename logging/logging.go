// Package logging configures structured logging with zerolog. The terminal
// belongs to the TUI, so log output goes to a file (or nowhere); settings are
// read from the environment.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/rs/zerolog"
)

// Config holds the logger settings.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `env:"CLOCKBOARD_LOG_LEVEL" envDefault:"info"`

	// File is the log file path. Empty disables logging entirely.
	File string `env:"CLOCKBOARD_LOG_FILE"`
}

// FromEnv reads the logger settings from the environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read log settings: %w", err)
	}
	return cfg, nil
}

// Open builds a logger per cfg. With no file configured it returns a disabled
// logger. The caller closes the returned closer on shutdown.
func Open(cfg Config) (zerolog.Logger, io.Closer, error) {
	if cfg.File == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(f).
		Level(level).
		With().
		Timestamp().
		Str("service", "clockboard").
		Logger()
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
