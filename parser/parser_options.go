package parser

import (
	"fmt"
	"io"

	"github.com/erraggy/oasmodel/internal/options"
	"github.com/erraggy/oasmodel/oaserrors"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	format   SourceFormat
	strict   bool
	logger   Logger
	maxDepth int

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// ParseWithOptions parses an OpenAPI document using functional options.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("openapi.yaml"),
//	    parser.WithStrict(true),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{
		Format:   cfg.format,
		Strict:   cfg.strict,
		Logger:   cfg.logger,
		MaxDepth: cfg.maxDepth,
	}
	if cfg.sourceName != nil {
		p.SourceName = *cfg.sourceName
	}

	switch {
	case cfg.filePath != nil:
		return p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		return p.ParseReader(cfg.reader)
	default:
		return p.ParseBytes(cfg.bytes)
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{format: SourceFormatUnknown}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		[]string{"WithFilePath", "WithReader", "WithBytes"},
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "WithReader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "WithBytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithFormat forces the input to be read as JSON or YAML instead of
// detecting it from the file extension and content.
func WithFormat(format SourceFormat) Option {
	return func(cfg *parseConfig) error {
		switch format {
		case SourceFormatJSON, SourceFormatYAML, SourceFormatUnknown:
			cfg.format = format
			return nil
		}
		return &oaserrors.ConfigError{Option: "WithFormat", Value: format, Message: "must be json or yaml"}
	}
}

// WithStrict turns unknown fields into errors instead of warnings.
// Default: false
func WithStrict(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.strict = enabled
		return nil
	}
}

// WithLogger sets a structured logger for parse diagnostics.
// By default, no logging is performed.
//
// Example:
//
//	logger := parser.NewSlogAdapter(slog.Default())
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("api.yaml"),
//	    parser.WithLogger(logger),
//	)
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxDepth limits schema nesting. A value of 0 means use the default
// (DefaultMaxDepth). Returns an error if depth is negative.
func WithMaxDepth(depth int) Option {
	return func(cfg *parseConfig) error {
		if err := options.ValidateNonNegative("WithMaxDepth", depth); err != nil {
			return err
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithSourceName names the source in SourcePath and error messages. This
// is mostly useful with WithBytes and WithReader, where the default names
// ("ParseBytes.yaml", "ParseReader.json") say little.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		if name == "" {
			return &oaserrors.ConfigError{Option: "WithSourceName", Message: "source name cannot be empty"}
		}
		cfg.sourceName = &name
		return nil
	}
}
