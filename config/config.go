// Package config provides loading of typecast.yaml configuration files.
// A configuration selects the location used for local time, extra textual
// layouts per temporal kind, and the log level used by the command line tool.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable read by ApplyEnv.
const EnvPrefix = "TYPECAST_"

// Config represents a typecast.yaml configuration file.
type Config struct {
	// Location names the time zone used for zone-less input and for defaulted
	// segments. Empty or "Local" means the host zone.
	Location string `yaml:"location,omitempty" env:"LOCATION"`

	// LogLevel is one of debug, info, warn or error. Default: info
	LogLevel string `yaml:"log_level,omitempty" env:"LOG_LEVEL"`

	// Layouts are tried before the built-in layouts.
	Layouts LayoutsConfig `yaml:"layouts,omitempty" envPrefix:"LAYOUTS_"`
}

// LayoutsConfig holds extra Go reference-time layouts per kind.
// Layouts may contain commas, so environment lists are separated by ';'.
type LayoutsConfig struct {
	Instant  []string `yaml:"instant,omitempty" env:"INSTANT" envSeparator:";"`
	Date     []string `yaml:"date,omitempty" env:"DATE" envSeparator:";"`
	DateTime []string `yaml:"datetime,omitempty" env:"DATETIME" envSeparator:";"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{LogLevel: "info"}
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses YAML configuration data and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from TYPECAST_* environment variables.
// Variables that are unset leave the current value alone.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return c.Validate()
}

// Validate checks that the location resolves and the log level is known.
func (c *Config) Validate() error {
	if _, err := c.ResolveLocation(); err != nil {
		return err
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	for _, layout := range c.allLayouts() {
		if strings.TrimSpace(layout) == "" {
			return fmt.Errorf("empty layout")
		}
	}
	return nil
}

// ResolveLocation returns the configured location.
func (c *Config) ResolveLocation() (*time.Location, error) {
	switch c.Location {
	case "", "Local", "local":
		return time.Local, nil
	case "UTC", "utc":
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("unknown location %q: %w", c.Location, err)
	}
	return loc, nil
}

// SlogLevel maps LogLevel to a slog level. Empty means info.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

func (c *Config) allLayouts() []string {
	all := make([]string, 0, len(c.Layouts.Instant)+len(c.Layouts.Date)+len(c.Layouts.DateTime))
	all = append(all, c.Layouts.Instant...)
	all = append(all, c.Layouts.Date...)
	all = append(all, c.Layouts.DateTime...)
	return all
}
