package config

import (
	"fmt"
	"pairingcheck/internal/domain/errors/domain"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Supported report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the complete application configuration.
type Config struct {
	Check CheckConfig `mapstructure:"check"`
	Git   GitConfig   `mapstructure:"git"`
	Log   LogConfig   `mapstructure:"log"`
}

// CheckConfig holds settings for the pairing check itself.
type CheckConfig struct {
	PairsFile     string `mapstructure:"pairs_file"`     // YAML pair table; empty uses the built-in table
	Format        string `mapstructure:"format"`         // text or json
	Concurrency   int    `mapstructure:"concurrency"`    // files scanned in parallel
	OmitCounts    bool   `mapstructure:"omit_counts"`    // drop per-alias occurrence counts
	WarnConflicts bool   `mapstructure:"warn_conflicts"` // log aliases registered in more than one pair
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("check.pairs_file", "")
	v.SetDefault("check.format", FormatText)
	v.SetDefault("check.concurrency", DefaultConcurrency)
	v.SetDefault("check.omit_counts", false)
	v.SetDefault("check.warn_conflicts", false)

	setGitDefaults(v)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

// DefaultConcurrency is the number of files scanned in parallel when unset.
const DefaultConcurrency = 8

// New creates a new Config instance from Viper.
func New(v *viper.Viper) (*Config, error) {
	var config Config

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration produced by the defaults alone.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	config, err := New(v)
	if err != nil {
		panic(fmt.Errorf("default configuration is invalid: %w", err))
	}
	return config
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains([]string{FormatText, FormatJSON}, c.Check.Format) {
		return fmt.Errorf("%w: check.format must be %q or %q, got %q",
			domain.ErrInvalidInput, FormatText, FormatJSON, c.Check.Format)
	}

	if c.Check.Concurrency < 1 {
		return fmt.Errorf("%w: check.concurrency must be at least 1", domain.ErrInvalidInput)
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: log.level %q is not supported", domain.ErrInvalidInput, c.Log.Level)
	}

	if !slices.Contains([]string{"json", "text"}, c.Log.Format) {
		return fmt.Errorf("%w: log.format %q is not supported", domain.ErrInvalidInput, c.Log.Format)
	}

	return c.Git.Validate()
}
