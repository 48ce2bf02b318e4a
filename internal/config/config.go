// Package config holds the smartkey feature configuration.
//
// A Config is loaded from a TOML, JSON or Lua file (see the loader
// package), overlaid with SMARTKEY_* environment variables and validated.
// A missing file yields Default. Configs are values; reloading produces a
// new Config rather than mutating the old one.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/smartkey/internal/logging"
	"github.com/dshills/smartkey/internal/surround"
	"github.com/dshills/smartkey/internal/trigger"
)

// AutoPair selects which pairs are inserted automatically.
type AutoPair struct {
	Paren       bool
	Bracket     bool
	SingleQuote bool
	DoubleQuote bool
}

// Config is the complete feature configuration.
type Config struct {
	// SmartSemicolon enables the end-of-line semicolon toggle.
	SmartSemicolon bool
	// SemicolonChar is the toggle's trigger character.
	SemicolonChar string

	AutoPair AutoPair

	// SmartKeys are the abbreviation triggers in declaration order.
	SmartKeys []trigger.Trigger
	// Surround are the surround templates in declaration order.
	Surround []surround.Spec

	// IndentSize is the fallback indent width for documents.
	IndentSize int
	// LogLevel is a logging level name.
	LogLevel string
}

// Default returns the configuration used when no file exists. Every
// feature is off.
func Default() *Config {
	return &Config{
		SemicolonChar: ";",
		IndentSize:    4,
		LogLevel:      "info",
	}
}

// Validate checks the configuration for values no feature can use.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.SemicolonChar) != 1 {
		return fmt.Errorf("%w: semicolon_char must be one character, got %q", ErrInvalidConfig, c.SemicolonChar)
	}
	if c.IndentSize <= 0 {
		return fmt.Errorf("%w: indent_size must be positive, got %d", ErrInvalidConfig, c.IndentSize)
	}
	for i, t := range c.SmartKeys {
		if t.Key == "" {
			return fmt.Errorf("%w: smartkey[%d]: empty key", ErrInvalidConfig, i)
		}
	}
	for i, s := range c.Surround {
		if s.Key == "" || s.Template == "" {
			return fmt.Errorf("%w: surround[%d]: key and template are required", ErrInvalidConfig, i)
		}
	}
	return nil
}

// TriggerSet builds the immutable trigger set for the configured smart keys.
func (c *Config) TriggerSet() *trigger.Set {
	return trigger.NewSet(c.SmartKeys)
}

// Level returns the configured logging level.
func (c *Config) Level() logging.Level {
	return logging.ParseLevel(c.LogLevel)
}

// HasSurround reports whether any surround template is enabled.
func (c *Config) HasSurround() bool {
	for _, s := range c.Surround {
		if !s.Disable {
			return true
		}
	}
	return false
}
