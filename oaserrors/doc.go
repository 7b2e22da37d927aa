// Package oaserrors provides structured error types for the oasmodel library.
//
// Import path: github.com/erraggy/oasmodel/oaserrors
//
// Every failure returned by the parser or encoder is one of the types below
// (or wraps one), so callers can branch with [errors.Is] and [errors.As]
// instead of matching on message text.
//
// # Error Types
//
//   - [DecodeError]: malformed YAML/JSON text
//   - [SchemaMismatchError]: a value fits none of its candidate shapes
//   - [UnsupportedVersionError]: the "swagger"/"openapi" value is out of range
//   - [UnrecognizedTagError]: a security scheme "type" is unknown
//   - [SerializationError]: an in-memory document cannot be encoded
//   - [ResourceLimitError]: schema nesting exceeded the configured depth
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrDecode]: Matches any [DecodeError]
//   - [ErrSchemaMismatch]: Matches any [SchemaMismatchError]
//   - [ErrUnsupportedVersion]: Matches any [UnsupportedVersionError]
//   - [ErrUnrecognizedTag]: Matches any [UnrecognizedTagError]
//   - [ErrSerialization]: Matches any [SerializationError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	result, err := parser.ParseWithOptions(parser.WithBytes(data))
//	if errors.Is(err, oaserrors.ErrUnsupportedVersion) {
//	    // Reject the upload with a helpful message
//	}
//
// Extract error details with errors.As():
//
//	var mismatch *oaserrors.SchemaMismatchError
//	if errors.As(err, &mismatch) {
//	    fmt.Printf("%s is missing %v\n", mismatch.Path, mismatch.Missing)
//	}
//
// # I/O Errors
//
// Errors from reading files or streams are not converted; they are returned
// wrapped with %w so errors.Is(err, fs.ErrNotExist) keeps working.
package oaserrors
