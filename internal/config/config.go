// Package config loads cellsim settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all cellsim configuration.
type Config struct {
	// Workers is the default per-generation parallelism; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	Logging LoggingConfig `yaml:"logging"`
	View    ViewConfig    `yaml:"view"`

	// Sims holds per-simulation option maps, keyed by registry name. Values
	// use the same keys as the command line --set flag.
	Sims map[string]map[string]string `yaml:"sims"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// ViewConfig configures pacing and the optional viewer.
type ViewConfig struct {
	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		View:    ViewConfig{Scale: 8, TPS: 10},
		Sims:    map[string]map[string]string{},
	}
}

// Load reads path on top of the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings no command can work with.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.View.Scale <= 0 {
		return fmt.Errorf("view.scale must be positive, got %d", c.View.Scale)
	}
	if c.View.TPS < 0 {
		return fmt.Errorf("view.tps must not be negative, got %d", c.View.TPS)
	}
	return nil
}

// SimOptions returns a copy of the options for sim merged with overrides. The
// global worker count fills in when neither side sets one.
func (c *Config) SimOptions(sim string, overrides map[string]string) map[string]string {
	out := map[string]string{}
	if c.Workers > 0 {
		out["workers"] = strconv.Itoa(c.Workers)
	}
	for k, v := range c.Sims[sim] {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("CELLSIM_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CELLSIM_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := os.Getenv("CELLSIM_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CELLSIM_LOG_JSON"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CELLSIM_LOG_JSON: %w", err)
		}
		c.Logging.JSON = b
	}
	return nil
}
