// Package config loads the YAML configuration that wires the simulation
// core: shot defaults, the engine's qubit ceiling, the feature-map
// encoding default, and the collaborator paths (run log, render output).
//
// The core packages never read the process environment or any file
// themselves; configuration values reach them as constructor parameters.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full configuration tree.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	RunLog   RunLogConfig   `yaml:"runlog"`
	Render   RenderConfig   `yaml:"render"`
}

// DefaultsConfig holds the simulation defaults.
type DefaultsConfig struct {
	// Shots is the sampling default for demo operations.
	Shots int `yaml:"shots"`

	// MaxQubits caps the engine's state allocation.
	MaxQubits int `yaml:"max_qubits"`

	// Encoding is the feature-map default: "amplitude" or "angle".
	Encoding string `yaml:"encoding"`
}

// RunLogConfig locates the run history database.
type RunLogConfig struct {
	// Path of the SQLite database file. Empty disables the run log.
	Path string `yaml:"path"`
}

// RenderConfig locates rendered circuit diagrams.
type RenderConfig struct {
	// Dir receives diagram files. Empty means diagrams go to stdout only.
	Dir string `yaml:"dir"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Defaults: DefaultsConfig{
			Shots:     1024,
			MaxQubits: 20,
			Encoding:  "amplitude",
		},
	}
}

// Load reads and parses a config file. Unknown fields are rejected
// (catches typos like "max_qubit:"), and missing fields fall back to
// Default() values before validation.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration ranges.
func (c Config) Validate() error {
	if c.Defaults.Shots < 1 {
		return fmt.Errorf("defaults.shots must be at least 1, got %d", c.Defaults.Shots)
	}
	if c.Defaults.MaxQubits < 1 || c.Defaults.MaxQubits > 30 {
		return fmt.Errorf("defaults.max_qubits must be in [1, 30], got %d", c.Defaults.MaxQubits)
	}
	switch c.Defaults.Encoding {
	case "amplitude", "angle":
	default:
		return fmt.Errorf("defaults.encoding must be \"amplitude\" or \"angle\", got %q", c.Defaults.Encoding)
	}
	return nil
}
