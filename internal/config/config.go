// Package config loads auction-diff settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvDialect     = "AUCTIONDIFF_DIALECT"
	EnvBoundary    = "AUCTIONDIFF_BOUNDARY"
	EnvStarMode    = "AUCTIONDIFF_STAR_MODE"
	EnvSampleLimit = "AUCTIONDIFF_SAMPLE_LIMIT"
	EnvWorkers     = "AUCTIONDIFF_WORKERS"
	EnvFormat      = "AUCTIONDIFF_FORMAT"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all settings of a comparison run.
type Config struct {
	Dialect     string `yaml:"dialect"`
	Boundary    string `yaml:"boundary,omitempty"`
	StarMode    string `yaml:"star_mode,omitempty"`
	SampleLimit int    `yaml:"sample_limit"`
	Workers     int    `yaml:"workers"`
	Format      string `yaml:"format"`
	Boards      string `yaml:"boards"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Dialect:     "event",
		SampleLimit: 10,
		Workers:     1,
		Format:      FormatText,
		Boards:      "all",
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. A missing file is not an error; an empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
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

func (c *Config) applyEnvOverrides() error {
	if v := strings.TrimSpace(os.Getenv(EnvDialect)); v != "" {
		c.Dialect = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvBoundary)); v != "" {
		c.Boundary = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvStarMode)); v != "" {
		c.StarMode = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFormat)); v != "" {
		c.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSampleLimit)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSampleLimit, v, err)
		}
		c.SampleLimit = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvWorkers)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvWorkers, v, err)
		}
		c.Workers = n
	}
	return nil
}

// Validate rejects unknown enum values and negative worker counts. It
// lower-cases Format in place.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Dialect) {
	case "event", "board":
	default:
		return fmt.Errorf("unknown dialect %q", c.Dialect)
	}
	switch strings.ToLower(c.Boundary) {
	case "", "event", "board", "deal":
	default:
		return fmt.Errorf("unknown boundary %q", c.Boundary)
	}
	switch strings.ToLower(c.StarMode) {
	case "", "terminate", "terminator", "separate", "separator":
	default:
		return fmt.Errorf("unknown star mode %q", c.StarMode)
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
