// Package config holds the inspection harness settings and resolves them from
// a project file, the environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/inferus/internal/logging"
)

// ColorMode controls styled output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether m is a known color mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// OutputFormat selects how the tree command prints a tree.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// IsValid reports whether f is a known output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// Config is the resolved harness configuration.
type Config struct {
	Color    ColorMode    `yaml:"color"`
	LogLevel string       `yaml:"log_level"`
	Format   OutputFormat `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Color:    ColorAuto,
		LogLevel: "info",
		Format:   FormatText,
	}
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// FieldError describes a single invalid field.
type FieldError struct {
	Source string
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	parts := make([]string, 0, 3)
	if e.Source != "" {
		parts = append(parts, e.Source)
	}
	parts = append(parts, e.Field, fmt.Sprintf("%q %s", e.Value, e.Reason))
	return strings.Join(parts, ": ")
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks enum fields. source names where the values came from and
// is only used in messages.
func (c *Config) Validate(source string) error {
	var errs []error
	if !c.Color.IsValid() {
		errs = append(errs, &FieldError{source, "color", string(c.Color), "must be auto, always or never"})
	}
	if !c.Format.IsValid() {
		errs = append(errs, &FieldError{source, "format", string(c.Format), "must be text, json or yaml"})
	}
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, &FieldError{source, "log_level", c.LogLevel, "must be debug, info, warn or error"})
	}
	return errors.Join(errs...)
}

// merge copies the non-empty fields of other onto c.
func (c *Config) merge(other *Config) {
	if other == nil {
		return
	}
	if other.Color != "" {
		c.Color = other.Color
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.Format != "" {
		c.Format = other.Format
	}
}
