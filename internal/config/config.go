// Package config loads user configuration for the contacts CLI.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/jacksmith/contacts/internal/logger"
	"github.com/jacksmith/contacts/internal/storage"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigFile is read from the working directory when no --config is given.
	DefaultConfigFile = ".contacts.yaml"

	// Default configuration values
	DefaultFile      = storage.DefaultFile
	DefaultLogLevel  = logger.DefaultLevel
	DefaultLogFormat = "console"
	DefaultColor     = true
)

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"file":       "file",
	"log-level":  "log_level",
	"log-format": "log_format",
}

// Config represents user configuration.
// Values come from defaults, then the config file, then explicitly set flags.
type Config struct {
	// File is the backing file that holds all contacts.
	File string `mapstructure:"file"`

	// LogLevel is the minimum level for diagnostics on stderr.
	LogLevel string `mapstructure:"log_level"`

	// LogFormat is console or json.
	LogFormat string `mapstructure:"log_format"`

	// Color enables ANSI colors when stdout is a terminal.
	Color bool `mapstructure:"color"`

	// Source is the config file that was read, or empty if none was.
	Source string `mapstructure:"-"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		File:      DefaultFile,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Color:     DefaultColor,
	}
}

// Load reads configuration from path, or from DefaultConfigFile if path is
// empty and that file exists. A missing default file is not an error; a
// missing explicit file is. Flags in flags that were set on the command line
// override file values.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("file", def.File)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("color", def.Color)

	source := path
	if source == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			source = DefaultConfigFile
		}
	}

	if source != "" {
		v.SetConfigFile(source)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", source, err)
		}
	}

	if flags != nil {
		for flagName, key := range flagKeys {
			f := flags.Lookup(flagName)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", flagName, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("config: file must not be empty")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "console", "json":
	default:
		return fmt.Errorf("config: unknown log_format %q (must be console or json)", c.LogFormat)
	}
	return nil
}

// LoggerOptions returns the logger settings from c.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{Level: c.LogLevel, Format: c.LogFormat}
}
