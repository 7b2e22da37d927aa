// Package httputil provides HTTP status code and method constants used by
// the OpenAPI model.
package httputil

import (
	"strconv"
)

// HTTP Status Code Constants
const (
	StatusCodeLength     = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	MinStatusCode        = 100 // Minimum valid HTTP status code
	MaxStatusCode        = 599 // Maximum valid HTTP status code
	WildcardChar         = 'X' // Wildcard character used in status code patterns (e.g., "2XX")
	MinWildcardFirstChar = '1' // Minimum first digit for wildcard patterns
	MaxWildcardFirstChar = '5' // Maximum first digit for wildcard patterns
)

// HTTP Method Constants, spelled as OpenAPI path item keys
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace" // OAS 3.0+ only
)

// ValidateStatusCode reports whether code is a Responses object key other
// than "default":
//   - Wildcard patterns: 1XX, 2XX, 3XX, 4XX, 5XX
//   - Numeric codes: 100-599
func ValidateStatusCode(code string) bool {
	if len(code) != StatusCodeLength {
		return false
	}

	if code[1] == WildcardChar && code[2] == WildcardChar {
		return code[0] >= MinWildcardFirstChar && code[0] <= MaxWildcardFirstChar
	}

	for i := range StatusCodeLength {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	statusCode, err := strconv.Atoi(code)
	return err == nil && statusCode >= MinStatusCode && statusCode <= MaxStatusCode
}
