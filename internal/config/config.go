// Package config loads runtime settings shared by the CLI and the MCP server.
package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/erraggy/oasmodel/internal/options"
	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/parser"
)

// EnvPrefix is prepended to every variable name, e.g. OASMODEL_LOG_LEVEL.
const EnvPrefix = "oasmodel"

// Config holds settings read from OASMODEL_* environment variables.
// Command-line flags override individual fields after Load.
type Config struct {
	LogLevel     string `envconfig:"LOG_LEVEL" default:"warn"`
	Strict       bool   `envconfig:"STRICT" default:"false"`
	MaxDepth     int    `envconfig:"MAX_DEPTH" default:"512"`
	OutputFormat string `envconfig:"OUTPUT_FORMAT" default:"yaml"`
	// Indent is the number of spaces per JSON nesting level. 0 is compact.
	Indent int `envconfig:"INDENT" default:"2"`
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, &oaserrors.ConfigError{Option: "environment", Message: "cannot load", Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values that envconfig cannot express with tags.
func (c *Config) Validate() error {
	if _, err := parser.ParseLogLevel(c.LogLevel); err != nil {
		return &oaserrors.ConfigError{Option: "LOG_LEVEL", Value: c.LogLevel, Message: "must be debug, info, warn or error", Cause: err}
	}
	if _, err := parser.ParseSourceFormat(c.OutputFormat); err != nil {
		return err
	}
	if err := options.ValidateNonNegative("MAX_DEPTH", c.MaxDepth); err != nil {
		return err
	}
	return options.ValidateNonNegative("INDENT", c.Indent)
}

// Format returns OutputFormat as a SourceFormat. Call Validate first;
// an invalid value yields SourceFormatUnknown.
func (c *Config) Format() parser.SourceFormat {
	f, _ := parser.ParseSourceFormat(c.OutputFormat)
	return f
}

// IndentString is the JSON indent unit for MarshalJSON.
func (c *Config) IndentString() string {
	return strings.Repeat(" ", c.Indent)
}

// NewLogger builds a text slog handler on w at the configured level.
func (c *Config) NewLogger(w io.Writer) parser.Logger {
	level, err := parser.ParseLogLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return parser.NewSlogAdapter(slog.New(h))
}

// ParserOptions translates the parse-related settings into parser options.
// Input source options are left to the caller.
func (c *Config) ParserOptions(logger parser.Logger) []parser.Option {
	opts := []parser.Option{
		parser.WithStrict(c.Strict),
		parser.WithMaxDepth(c.MaxDepth),
	}
	if logger != nil {
		opts = append(opts, parser.WithLogger(logger))
	}
	return opts
}
