// Package config loads the optional user configuration file. Everything has
// a default; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable defaults for the CLI.
type Config struct {
	// Format is the default output format: yaml or json.
	Format string `yaml:"format"`
	// Depth is the default max tree depth for read (0 = unlimited).
	Depth int `yaml:"depth"`
	// ObserveInterval is the default polling interval for observe.
	ObserveInterval time.Duration `yaml:"observe_interval"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:          "yaml",
		Depth:           0,
		ObserveInterval: time.Second,
	}
}

// Path returns the config file location: $AXQ_CONFIG if set, else
// ~/.config/axq/config.yaml.
func Path() string {
	if p := os.Getenv("AXQ_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "axq", "config.yaml")
}

// Load reads the config file, layering it over the defaults. A missing file
// yields the defaults; a malformed file is an error.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load with an explicit path, for tests.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	// Durations are written as strings ("500ms", "2s") in the file.
	var raw struct {
		Format          string `yaml:"format"`
		Depth           int    `yaml:"depth"`
		ObserveInterval string `yaml:"observe_interval"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if raw.Format != "" {
		cfg.Format = raw.Format
	}
	if raw.Depth > 0 {
		cfg.Depth = raw.Depth
	}
	if raw.ObserveInterval != "" {
		d, err := time.ParseDuration(raw.ObserveInterval)
		if err != nil {
			return cfg, fmt.Errorf("parse config %s: observe_interval: %w", path, err)
		}
		if d > 0 {
			cfg.ObserveInterval = d
		}
	}
	return cfg, nil
}
