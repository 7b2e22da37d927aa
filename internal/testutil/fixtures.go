// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/oasmodel/parser"
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// NewSimpleOAS2Document creates a minimal OAS 2.0 document for testing.
// Contains only required fields plus host, basePath and schemes.
func NewSimpleOAS2Document() *parser.OAS2Document {
	return &parser.OAS2Document{
		Swagger: "2.0",
		Info: &parser.Info{
			Title:   "Test API",
			Version: "1.0.0",
		},
		Host:     "api.example.com",
		BasePath: "/v1",
		Schemes:  []string{"https"},
		Paths:    parser.Paths{},
	}
}

// NewDetailedOAS2Document creates an OAS 2.0 document with a path, a
// definition, a parameter reference and a security definition.
func NewDetailedOAS2Document() *parser.OAS2Document {
	doc := NewSimpleOAS2Document()
	doc.Definitions = map[string]*parser.Schema{
		"Pet": {
			Type:     "object",
			Required: []string{"name"},
			Properties: map[string]*parser.Schema{
				"id":   {Type: "integer", Format: "int64"},
				"name": {Type: "string"},
			},
		},
	}
	doc.Parameters = map[string]*parser.Parameter{
		"limit": {
			Name: "limit",
			In:   parser.ParamInQuery,
			Primitive: parser.Primitive{
				Type:    "integer",
				Default: Ptr(parser.IntegerDefault(20)),
			},
		},
	}
	doc.SecurityDefinitions = map[string]parser.SecurityScheme{
		"api_key": &parser.APIKeyScheme{Name: "X-API-Key", In: parser.ParamInHeader},
	}
	doc.Paths = parser.Paths{
		"/pets": {
			Get: &parser.Operation{
				Summary:     "List pets",
				OperationID: "listPets",
				Parameters:  []parser.ParameterOrRef{parser.NewParameterRef("#/parameters/limit")},
				Responses: &parser.Responses{
					Codes: map[string]*parser.Response{
						"200": {
							Description: "A list of pets",
							Schema: &parser.Schema{
								Type:  "array",
								Items: &parser.Schema{Ref: "#/definitions/Pet"},
							},
						},
					},
				},
			},
		},
	}
	return doc
}

// NewSimpleOAS3Document creates a minimal OAS 3.0 document for testing.
// Contains only required fields plus one server.
func NewSimpleOAS3Document() *parser.OAS3Document {
	return &parser.OAS3Document{
		OpenAPI: "3.0.3",
		Info: &parser.Info{
			Title:   "Test API",
			Version: "1.0.0",
		},
		Servers: []*parser.Server{
			{
				URL:         "https://api.example.com/v1",
				Description: "Production server",
			},
		},
		Paths: parser.Paths{},
	}
}

// NewDetailedOAS3Document creates an OAS 3.0 document with a path,
// component schemas and an HTTP bearer security scheme.
func NewDetailedOAS3Document() *parser.OAS3Document {
	doc := NewSimpleOAS3Document()
	doc.Paths = parser.Paths{
		"/pets": {
			Get: &parser.Operation{
				Summary:     "List pets",
				OperationID: "listPets",
				Parameters: []parser.ParameterOrRef{
					parser.NewInlineParameter(&parser.Parameter{
						Name:   "limit",
						In:     parser.ParamInQuery,
						Schema: &parser.Schema{Type: "integer", Maximum: Ptr(100.0)},
					}),
				},
				Responses: &parser.Responses{
					Codes: map[string]*parser.Response{
						"200": {
							Description: "A list of pets",
							Content: map[string]*parser.MediaType{
								"application/json": {
									Schema: &parser.Schema{
										Type:  "array",
										Items: &parser.Schema{Ref: "#/components/schemas/Pet"},
									},
								},
							},
						},
					},
				},
			},
		},
	}
	doc.Components = &parser.Components{
		Schemas: map[string]*parser.Schema{
			"Pet": {
				Type:     "object",
				Required: []string{"name"},
				Properties: map[string]*parser.Schema{
					"id":   {Type: "integer", Format: "int64"},
					"name": {Type: "string"},
				},
			},
		},
		SecuritySchemes: map[string]parser.SecurityScheme{
			"bearer": &parser.HTTPScheme{Scheme: "bearer", BearerFormat: "JWT"},
		},
	}
	return doc
}

// WriteTempYAML serializes a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc *parser.Document) string {
	t.Helper()

	data, err := parser.MarshalYAML(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return writeTemp(t, "test.yaml", data)
}

// WriteTempJSON serializes a document to indented JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc *parser.Document) string {
	t.Helper()

	data, err := parser.MarshalJSON(doc, "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	return writeTemp(t, "test.json", data)
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return tmpFile
}
