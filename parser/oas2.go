package parser

// OAS2Document represents an OpenAPI Specification 2.0 (Swagger) document
// Reference: https://spec.openapis.org/oas/v2.0.html
type OAS2Document struct {
	Swagger             string // Required: "2.0"
	Info                *Info  // Required
	Host                string
	BasePath            string
	Schemes             []string // e.g., ["http", "https"]
	Consumes            []string
	Produces            []string
	Paths               Paths      // Required, may be empty
	PathsExtensions     Extensions // x- keys of the paths object itself
	Definitions         map[string]*Schema
	Parameters          map[string]*Parameter
	Responses           map[string]*Response
	SecurityDefinitions map[string]SecurityScheme
	// Security is omitted when nil; a non-nil empty slice is written as []
	Security     []SecurityRequirement
	Tags         []*Tag
	ExternalDocs *ExternalDocs
	// Extensions captures specification extensions (fields starting with "x-")
	Extensions Extensions
}
