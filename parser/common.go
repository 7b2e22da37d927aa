package parser

// Info provides metadata about the API.
// Common to OAS 2.0 and 3.0.
type Info struct {
	Title          string
	Description    string
	TermsOfService string
	Contact        *Contact
	License        *License
	Version        string
	// Extensions captures specification extensions (fields starting with "x-")
	Extensions Extensions
}

// Contact information for the exposed API
type Contact struct {
	Name       string
	URL        string
	Email      string
	Extensions Extensions
}

// License information for the exposed API
type License struct {
	Name       string
	URL        string
	Extensions Extensions
}

// ExternalDocs allows referencing external documentation
type ExternalDocs struct {
	Description string
	URL         string // required
	Extensions  Extensions
}

// Tag adds metadata to a single tag used by operations
type Tag struct {
	Name         string // required
	Description  string
	ExternalDocs *ExternalDocs
	Extensions   Extensions
}

// Server represents a Server object (OAS 3.0)
type Server struct {
	URL         string // required
	Description string
	Variables   map[string]*ServerVariable
	Extensions  Extensions
}

// ServerVariable represents a Server Variable object (OAS 3.0)
type ServerVariable struct {
	Enum        []string
	Default     string // required
	Description string
	Extensions  Extensions
}

// Reference is a JSON Reference. The target is never resolved.
type Reference struct {
	Ref        string
	Extensions Extensions
}

// MediaType describes a media type entry of a request or response body (OAS 3.0)
type MediaType struct {
	Schema      *Schema
	Example     any
	NullExample bool // example is an explicit null
	Examples    map[string]any
	Extensions  Extensions
}

// RequestBody describes a single request body (OAS 3.0).
// When Ref is set the other fields are empty.
type RequestBody struct {
	Ref         string
	Description string
	Content     map[string]*MediaType // required
	Required    bool
	Extensions  Extensions
}
