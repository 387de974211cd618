// Package config loads simulator settings from defaults, an optional YAML
// file and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Garsondee/campus-flu/internal/flu"
	"github.com/Garsondee/campus-flu/internal/logging"
	"gopkg.in/yaml.v3"
)

// Config holds every setting shared by the front-ends and the report command.
type Config struct {
	// Variant is "window" (default) or "lifetime".
	Variant string `yaml:"variant"`

	// Seed seeds the infection sampler. 0 seeds from the clock.
	Seed int64 `yaml:"seed"`

	// CellSize is the desktop tile size in pixels.
	CellSize int `yaml:"cell_size"`

	// Audio enables the terminal alarm tone.
	Audio bool `yaml:"audio"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures operational logging.
type LoggingConfig struct {
	// Level is "debug", "info" (default), "warn" or "error".
	Level string `yaml:"level"`

	// File is where the terminal UI writes its log. Empty discards.
	File string `yaml:"file,omitempty"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Variant:  flu.VariantWindow.String(),
		CellSize: 56,
		Audio:    true,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load applies an optional YAML file and then environment overrides on top
// of the defaults. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads a YAML config; unset keys keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := flu.ParseVariant(c.Variant); err != nil {
		return err
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive, got %d", c.CellSize)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}
	return nil
}

// SessionVariant returns the parsed variant. Call Validate first.
func (c *Config) SessionVariant() flu.Variant {
	v, err := flu.ParseVariant(c.Variant)
	if err != nil {
		return flu.VariantWindow
	}
	return v
}

// SessionOptions turns the config into flu.Session options.
func (c *Config) SessionOptions() []flu.SessionOption {
	if c.Seed == 0 {
		return nil
	}
	return []flu.SessionOption{flu.WithSeed(c.Seed)}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FLU_VARIANT"); v != "" {
		cfg.Variant = v
	}
	if v := os.Getenv("FLU_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v := os.Getenv("FLU_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
