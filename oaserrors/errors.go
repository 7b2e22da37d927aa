// Package oaserrors provides structured error types for oasmodel.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between malformed input,
// documents whose shape matches none of the accepted variants, and
// in-memory models that cannot be encoded.
//
// # Error Categories
//
//   - DecodeError: malformed YAML/JSON text or values that are not a plain value tree
//   - SchemaMismatchError: a field or union slot matched none of its candidate shapes
//   - UnsupportedVersionError: the document declares a version outside the accepted range
//   - UnrecognizedTagError: a tagged union carries an unknown discriminant value
//   - SerializationError: an in-memory document violates its own invariants at encode time
//   - ResourceLimitError: resource exhaustion (nesting depth)
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.As
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("api.yaml"))
//	if err != nil {
//	    var verErr *oaserrors.UnsupportedVersionError
//	    if errors.As(err, &verErr) {
//	        fmt.Printf("found %s, need %s\n", verErr.Found, verErr.Required)
//	    }
//	}
package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrDecode indicates the input text could not be decoded.
	ErrDecode = errors.New("decode error")

	// ErrSchemaMismatch indicates a value matched none of its candidate shapes.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrUnsupportedVersion indicates an unsupported document version.
	ErrUnsupportedVersion = errors.New("unsupported version")

	// ErrUnrecognizedTag indicates an unknown discriminant value.
	ErrUnrecognizedTag = errors.New("unrecognized tag")

	// ErrSerialization indicates a document could not be encoded.
	ErrSerialization = errors.New("serialization error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// DecodeError represents malformed input text.
type DecodeError struct {
	// Path is the location inside the document (e.g., "paths./pets.get"), or
	// the source identifier when the text itself could not be decoded
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DecodeError) Error() string {
	msg := "decode error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// SchemaMismatchError reports a value that fits none of the shapes allowed
// for its slot: a required field is absent, a field has the wrong type, or an
// unknown field was rejected in strict mode.
type SchemaMismatchError struct {
	// Path is the location of the offending object
	Path string
	// Field is the field (or union slot) that failed to match
	Field string
	// Candidates lists the shapes that were considered
	Candidates []string
	// Missing lists required fields that were absent
	Missing []string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *SchemaMismatchError) Error() string {
	msg := "schema mismatch"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Field != "" {
		msg += " (field " + e.Field + ")"
	}
	if len(e.Missing) > 0 {
		msg += ": missing required " + strings.Join(e.Missing, ", ")
	}
	if len(e.Candidates) > 0 {
		msg += ": expected one of [" + strings.Join(e.Candidates, ", ") + "]"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as SchemaMismatchError has no underlying cause.
func (e *SchemaMismatchError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// UnsupportedVersionError reports a version discriminant outside the
// accepted range.
type UnsupportedVersionError struct {
	// Found is the version string declared by the document
	Found string
	// Required is the accepted version or constraint (e.g., ">= 3.0")
	Required string
	// Cause is the underlying error, if any (e.g., a semver parse failure)
	Cause error
}

// Error returns a human-readable error message.
func (e *UnsupportedVersionError) Error() string {
	msg := fmt.Sprintf("unsupported version %q", e.Found)
	if e.Required != "" {
		msg += " (required: " + e.Required + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *UnsupportedVersionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// UnrecognizedTagError reports a tagged union whose discriminant carries an
// unknown value.
type UnrecognizedTagError struct {
	// Path is the location of the tagged object
	Path string
	// Tag is the offending discriminant value
	Tag string
	// Allowed lists the accepted discriminant values
	Allowed []string
}

// Error returns a human-readable error message.
func (e *UnrecognizedTagError) Error() string {
	msg := fmt.Sprintf("unrecognized tag %q", e.Tag)
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if len(e.Allowed) > 0 {
		msg += " (allowed: " + strings.Join(e.Allowed, ", ") + ")"
	}
	return msg
}

// Unwrap returns nil as UnrecognizedTagError has no underlying cause.
func (e *UnrecognizedTagError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnrecognizedTagError) Is(target error) bool {
	return target == ErrUnrecognizedTag
}

// SerializationError represents an in-memory document that cannot be
// encoded, typically because a required field is empty or an extension key
// is malformed. Documents produced by the parser never trigger it.
type SerializationError struct {
	// Path is the location of the offending object
	Path string
	// Message describes the violated invariant
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SerializationError) Error() string {
	msg := "serialization error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SerializationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SerializationError) Is(target error) bool {
	return target == ErrSerialization
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded (e.g., "schema_depth")
	ResourceType string
	// Path is the location where the limit was hit
	Path string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
