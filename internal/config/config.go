package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Sepia implementations selectable from the configuration
const (
	SepiaScalar  = "scalar"
	SepiaBatched = "batched"
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Decode DecodeConfig `yaml:"decode"`
	Sepia  SepiaConfig  `yaml:"sepia"`
	Batch  BatchConfig  `yaml:"batch"`
}

type LogConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn or error
	Development bool   `yaml:"development"` // human-readable console output
}

type DecodeConfig struct {
	Strict bool `yaml:"strict"` // validate headers before reading pixels
}

type SepiaConfig struct {
	Mode string `yaml:"mode"` // scalar (truncating) or batched (rounding)
}

type BatchConfig struct {
	Workers int `yaml:"workers"` // files processed concurrently
}

// Returns the configuration used when no file is given
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "warn"},
		Decode: DecodeConfig{Strict: false},
		Sepia:  SepiaConfig{Mode: SepiaScalar},
		Batch:  BatchConfig{Workers: 4},
	}
}

// Load reads a YAML configuration file over the defaults.
// A missing file is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read configuration file '%s': %w", path, err)
	}

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse configuration file '%s': %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration file '%s': %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be caught by the YAML decoder.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}

	switch c.Sepia.Mode {
	case SepiaScalar, SepiaBatched:
	default:
		return fmt.Errorf("sepia.mode: must be %q or %q, got %q", SepiaScalar, SepiaBatched, c.Sepia.Mode)
	}

	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers: must be at least 1, got %d", c.Batch.Workers)
	}
	return nil
}
