package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config covers process level configuration for the nextbus commands,
// read from a YAML file. The zero value of every field falls back to
// a default, so an absent file runs the compiled in route 700
// timetable against the terminal.
type Config struct {
	Route     string          `yaml:"route" validate:"required"`
	Timetable string          `yaml:"timetable"`
	Storage   StorageConfig   `yaml:"storage"`
	LogLevel  string          `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

type StorageConfig struct {
	Backend   string `yaml:"backend" validate:"omitempty,oneof=memory sqlite postgres"`
	DSN       string `yaml:"dsn" validate:"required_if=Backend postgres"`
	Directory string `yaml:"directory"`
}

type TelemetryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Bind    string `yaml:"bind" validate:"omitempty,hostname_port"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Route: "700",
		Storage: StorageConfig{
			Backend:   "memory",
			Directory: ".",
		},
		LogLevel: "info",
		Telemetry: TelemetryConfig{
			Bind: "127.0.0.1:9323",
		},
	}
}

// Load reads and validates a config file. Settings left out of the
// file keep their defaults. A missing file is reported with the
// error from the underlying open, unwrapped, so callers can test for
// os.IsNotExist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}

	return cfg, nil
}
