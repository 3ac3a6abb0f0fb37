// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Console  ConsoleConfig  `yaml:"console"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Playback PlaybackConfig `yaml:"playback"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn warning error"`
	Output string `yaml:"output" default:"stderr" validate:"oneof=stderr stdout discard file"`
	File   string `yaml:"file" validate:"required_if=Output file"`
}

// ConsoleConfig represents interactive console configuration.
type ConsoleConfig struct {
	Prompt     string `yaml:"prompt" default:"YT> "`
	PromptMode string `yaml:"prompt_mode" default:"auto" validate:"oneof=auto always never"`
}

// CatalogConfig lists the sources the video catalog is loaded from.
type CatalogConfig struct {
	Sources []SourceConfig `yaml:"sources" validate:"required,min=1,dive"`
}

// SourceConfig represents a single catalog source.
type SourceConfig struct {
	Type     string         `yaml:"type" validate:"required,oneof=builtin text yaml toml"`
	Settings map[string]any `yaml:"settings"`
}

// PlaybackConfig represents playback configuration.
type PlaybackConfig struct {
	Seed uint64 `yaml:"seed"` // 0 seeds from the clock
}

// Default returns the configuration used when no file is given.
func Default() (*Config, error) {
	var cfg Config
	return finish(&cfg)
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	return finish(&cfg)
}

func finish(cfg *Config) (*Config, error) {
	// Override with environment variables
	if err := cfg.overrideFromEnv(); err != nil {
		return nil, err
	}

	// Set defaults using creasty/defaults
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	if len(cfg.Catalog.Sources) == 0 {
		cfg.Catalog.Sources = []SourceConfig{{Type: "builtin"}}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() error {
	if v := os.Getenv("VIDEOPLAYER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("VIDEOPLAYER_LOG_FILE"); v != "" {
		c.Log.Output = "file"
		c.Log.File = v
	}
	if v := os.Getenv("VIDEOPLAYER_PROMPT"); v != "" {
		c.Console.Prompt = v
	}
	if v := os.Getenv("VIDEOPLAYER_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, "invalid VIDEOPLAYER_SEED")
		}
		c.Playback.Seed = seed
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}
