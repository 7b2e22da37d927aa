package parser

// OAS3Document represents an OpenAPI Specification 3.x document in the
// OAS 3.0 shape.
// Reference: https://spec.openapis.org/oas/v3.0.3.html
type OAS3Document struct {
	OpenAPI         string // Required: ">= 3.0"
	Info            *Info  // Required
	Servers         []*Server
	Paths           Paths      // Required for 3.0, may be empty
	PathsExtensions Extensions // x- keys of the paths object itself
	Components      *Components
	Security        []SecurityRequirement
	Tags            []*Tag
	ExternalDocs    *ExternalDocs
	// Extensions captures specification extensions (fields starting with "x-")
	Extensions Extensions
}

// Components holds reusable objects for different aspects of the OAS (OAS 3.0)
type Components struct {
	Schemas         map[string]*Schema
	Responses       map[string]*Response
	Parameters      map[string]ParameterOrRef
	Examples        map[string]any
	RequestBodies   map[string]*RequestBody
	Headers         map[string]*Header
	SecuritySchemes map[string]SecurityScheme
	Extensions      Extensions
}
