// Package config defines core configuration types for syntree.
// These types are pure data structures; file discovery and environment
// overrides live in the configloader.
package config

import (
	"fmt"
	"slices"
)

// ColorMode controls when output is colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is one of the known values.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// NavigationConfig tunes tree traversal behavior.
type NavigationConfig struct {
	// SiblingSearchThreshold is the child count at which sibling lookup
	// switches from a linear scan to a binary search. 0 keeps the
	// built-in default.
	SiblingSearchThreshold int `mapstructure:"sibling_search_threshold" yaml:"sibling_search_threshold"`
}

// Config is the root configuration structure for syntree.
type Config struct {
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// Color controls when output is colorized.
	Color ColorMode `mapstructure:"color" yaml:"color"`

	// Navigation tunes tree traversal.
	Navigation NavigationConfig `mapstructure:"navigation" yaml:"navigation"`

	// Ignore contains glob patterns for files to skip during checking.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers. 0 means auto.
	Jobs int `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		LogLevel: "info",
		Color:    ColorAuto,
		Format:   FormatText,
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	dup := *c
	dup.Ignore = slices.Clone(c.Ignore)
	return &dup
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.Color != "" && !c.Color.IsValid() {
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
	if c.Navigation.SiblingSearchThreshold < 0 {
		return fmt.Errorf("navigation.sibling_search_threshold must not be negative, got %d",
			c.Navigation.SiblingSearchThreshold)
	}
	if c.Format != "" && !c.Format.IsValid() {
		return fmt.Errorf("invalid format %q", c.Format)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	return nil
}
