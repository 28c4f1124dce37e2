// Package config provides configuration loading from YAML files.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Catalog    CatalogConfig    `yaml:"catalog"`
	Playback   PlaybackConfig   `yaml:"playback"`
	Moderation ModerationConfig `yaml:"moderation"`
	Shell      ShellConfig      `yaml:"shell"`
	Log        LogConfig        `yaml:"log"`
}

// CatalogConfig lists the sources the video library is loaded from.
type CatalogConfig struct {
	Sources []SourceConfig `yaml:"sources" validate:"required,min=1,dive"`
}

// SourceConfig represents a single catalog source configuration.
type SourceConfig struct {
	Type        string         `yaml:"type" validate:"required,oneof=file http inline"`
	DisplayName string         `yaml:"display_name" validate:"required"`
	Settings    map[string]any `yaml:"settings" validate:"required"`
}

// PlaybackConfig represents playback configuration.
type PlaybackConfig struct {
	RandomSeed uint64 `yaml:"random_seed"` // 0 seeds from the clock
}

// ModerationConfig represents moderation configuration.
type ModerationConfig struct {
	DefaultFlagReason string `yaml:"default_flag_reason" default:"Not supplied"`
}

// ShellConfig represents interactive shell configuration.
type ShellConfig struct {
	Prompt         string `yaml:"prompt" default:"vidbox> "`
	MaxSuggestions int    `yaml:"max_suggestions" default:"1" validate:"gte=1,lte=10"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn warning error"`
	Output string `yaml:"output" default:"stderr"`
}

// Option modifies the configuration after file and environment values are applied.
type Option func(*Config)

// WithCatalogFile replaces the configured sources with a single file source.
func WithCatalogFile(path string) Option {
	return func(c *Config) {
		if path == "" {
			return
		}
		c.Catalog.Sources = []SourceConfig{fileSource(path)}
	}
}

// WithRandomSeed overrides the playback random seed.
func WithRandomSeed(seed uint64) Option {
	return func(c *Config) {
		if seed != 0 {
			c.Playback.RandomSeed = seed
		}
	}
}

// WithLogLevel overrides the log level.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		if level != "" {
			c.Log.Level = level
		}
	}
}

// Load loads configuration from a YAML file.
// An empty path starts from an empty configuration.
// Environment variables take precedence over file values; options take
// precedence over both.
func Load(path string, opts ...Option) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(err, "failed to parse config file")
		}
	}

	// Override with environment variables
	cfg.overrideFromEnv()

	for _, opt := range opts {
		opt(&cfg)
	}

	// Set defaults using creasty/defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("VIDBOX_CATALOG"); v != "" {
		c.Catalog.Sources = []SourceConfig{fileSource(v)}
	}
	if v := os.Getenv("VIDBOX_REMOTE_API_KEY"); v != "" {
		for i := range c.Catalog.Sources {
			if c.Catalog.Sources[i].Type == "http" {
				if c.Catalog.Sources[i].Settings == nil {
					c.Catalog.Sources[i].Settings = make(map[string]any)
				}
				c.Catalog.Sources[i].Settings["api_key"] = v
				break
			}
		}
	}
	if v := os.Getenv("VIDBOX_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}

// SourceTypes returns the configured source types in order.
func (c *Config) SourceTypes() []string {
	types := make([]string, len(c.Catalog.Sources))
	for i, s := range c.Catalog.Sources {
		types[i] = s.Type
	}
	return types
}

func fileSource(path string) SourceConfig {
	return SourceConfig{
		Type:        "file",
		DisplayName: path,
		Settings:    map[string]any{"path": path},
	}
}
