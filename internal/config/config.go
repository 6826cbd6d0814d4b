// Package config handles tool configuration loading and management.
package config

import (
	"time"

	"github.com/Faultbox/midgard-strip/pkg/tstrip"
)

// Config holds all tool settings.
type Config struct {
	Strip     StripConfig     `yaml:"strip"`
	Transform TransformConfig `yaml:"transform"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// StripConfig holds strip building settings.
type StripConfig struct {
	Representation string `yaml:"representation"` // "term" or "length"
}

// Rep returns the configured strip encoding.
func (c StripConfig) Rep() (tstrip.Rep, error) {
	return tstrip.ParseRep(c.Representation)
}

// TransformConfig holds vertex transform settings.
type TransformConfig struct {
	Workers int           `yaml:"workers"` // <= 1 runs sequentially
	Timeout time.Duration `yaml:"timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Strip: StripConfig{
			Representation: "term",
		},
		Transform: TransformConfig{
			Workers: 4,
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
		},
	}
}
