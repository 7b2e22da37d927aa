package parser

import (
	"math"
	"strings"
	"testing"

	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

// documentCmpOpts compares parsed documents structurally. A nil and an
// empty collection differ, as they do in the serialized form.
var documentCmpOpts = cmp.Options{
	cmp.AllowUnexported(Document{}, PropertyDefault{}),
}

func parseTestBytes(t *testing.T, data []byte) *Document {
	t.Helper()
	result, err := ParseWithOptions(WithBytes(data), WithStrict(true))
	require.NoError(t, err, string(data))
	return result.Document
}

func TestSerializeRoundTrip(t *testing.T) {
	for _, path := range []string{petstore2Path, petstore3Path} {
		for _, format := range []SourceFormat{SourceFormatYAML, SourceFormatJSON} {
			t.Run(path+"/"+string(format), func(t *testing.T) {
				original, err := ParseWithOptions(WithFilePath(path), WithStrict(true))
				require.NoError(t, err)

				out, err := Serialize(original.Document, format)
				require.NoError(t, err)

				reparsed, err := ParseWithOptions(WithBytes(out), WithStrict(true))
				require.NoError(t, err)
				assert.Equal(t, format, reparsed.SourceFormat)
				assert.Empty(t, reparsed.Warnings)
				assert.Equal(t, original.Stats, reparsed.Stats)

				if diff := cmp.Diff(original.Document, reparsed.Document, documentCmpOpts); diff != "" {
					t.Errorf("round trip mismatch (-original +reparsed):\n%s", diff)
				}

				// a second pass produces identical text
				again, err := Serialize(reparsed.Document, format)
				require.NoError(t, err)
				assert.Equal(t, string(out), string(again))
			})
		}
	}
}

func TestSerializeJSONAndYAMLAgree(t *testing.T) {
	for _, path := range []string{petstore2Path, petstore3Path} {
		t.Run(path, func(t *testing.T) {
			result, err := New().Parse(path)
			require.NoError(t, err)

			jsonOut, err := Serialize(result.Document, SourceFormatJSON)
			require.NoError(t, err)
			yamlOut, err := Serialize(result.Document, SourceFormatYAML)
			require.NoError(t, err)

			fromJSON := parseTestBytes(t, jsonOut)
			fromYAML := parseTestBytes(t, yamlOut)
			if diff := cmp.Diff(fromJSON, fromYAML, documentCmpOpts); diff != "" {
				t.Errorf("JSON and YAML output disagree (-json +yaml):\n%s", diff)
			}
		})
	}
}

func minimalOAS2() *Document {
	return NewOAS2Document(&OAS2Document{
		Swagger: "2.0",
		Info:    &Info{Title: "T", Version: "1"},
	})
}

func TestSerializeMinimalOAS2(t *testing.T) {
	out, err := MarshalYAML(minimalOAS2())
	require.NoError(t, err)
	assert.Equal(t, "swagger: \"2.0\"\ninfo:\n  title: T\n  version: \"1\"\npaths: {}\n", string(out))

	out, err = MarshalJSON(minimalOAS2(), "")
	require.NoError(t, err)
	assert.Equal(t, `{"swagger":"2.0","info":{"title":"T","version":"1"},"paths":{}}`, string(out))

	out, err = MarshalJSON(minimalOAS2(), "\t")
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"swagger\": \"2.0\",\n\t\"info\": {\n\t\t\"title\": \"T\",\n\t\t\"version\": \"1\"\n\t},\n\t\"paths\": {}\n}\n", string(out))
}

func TestDocumentMarshalers(t *testing.T) {
	doc := minimalOAS2()

	out, err := doc.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"swagger":"2.0","info":{"title":"T","version":"1"},"paths":{}}`, string(out))

	// yaml encoders honor the canonical order through MarshalYAML
	viaYAML, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(viaYAML), "swagger: \"2.0\"\ninfo:\n"), string(viaYAML))

	wrapped, err := yaml.Marshal(map[string]any{"spec": doc})
	require.NoError(t, err)
	assert.Contains(t, string(wrapped), "spec:\n")
	assert.Contains(t, string(wrapped), "swagger: \"2.0\"")
}

func TestSerializeSecurityLists(t *testing.T) {
	doc := NewOAS3Document(&OAS3Document{
		OpenAPI: "3.0.3",
		Info:    &Info{Title: "T", Version: "1"},
		Paths: Paths{
			"/open": &PathItem{Get: &Operation{
				Security:  []SecurityRequirement{},
				Responses: &Responses{Codes: map[string]*Response{"204": {Description: "none"}}},
			}},
		},
		Security: []SecurityRequirement{{"api_key": nil}, {"oauth": {"read", "write"}}},
	})

	out, err := MarshalJSON(doc, "")
	require.NoError(t, err)
	assert.Contains(t, string(out), `"get":{"responses":{"204":{"description":"none"}},"security":[]}`)
	assert.Contains(t, string(out), `"security":[{"api_key":[]},{"oauth":["read","write"]}]`)

	reparsed := parseTestBytes(t, out)
	op := reparsed.Paths()["/open"].Get
	require.NotNil(t, op.Security)
	assert.Empty(t, op.Security)
}

func TestSerializeExtensionPlacement(t *testing.T) {
	doc := NewOAS3Document(&OAS3Document{
		OpenAPI: "3.0.3",
		Info:    &Info{Title: "T", Version: "1"},
		Paths: Paths{
			"/a": &PathItem{
				Get: &Operation{
					OperationID: "a",
					Responses: &Responses{
						Codes:      map[string]*Response{"default": {Description: "d"}, "200": {Description: "ok"}},
						Extensions: Extensions{"x-codes": true},
					},
					Extensions: Extensions{"x-op": int64(1)},
				},
			},
		},
		PathsExtensions: Extensions{"x-paths": "p"},
	})

	out, err := MarshalJSON(doc, "")
	require.NoError(t, err)
	assert.Equal(t,
		`{"openapi":"3.0.3","info":{"title":"T","version":"1"},"paths":{"/a":{"get":{"operationId":"a",`+
			`"responses":{"default":{"description":"d"},"200":{"description":"ok"},"x-codes":true},"x-op":1}},"x-paths":"p"}}`,
		string(out))
}

func TestSerializePathsExtensionsRoundTrip(t *testing.T) {
	for _, format := range []SourceFormat{SourceFormatYAML, SourceFormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			original, err := New().Parse(petstore2Path)
			require.NoError(t, err)

			out, err := Serialize(original.Document, format)
			require.NoError(t, err)

			doc, ok := parseTestBytes(t, out).OAS2()
			require.True(t, ok)
			assert.Equal(t, Extensions{"x-paths-note": "grouped by resource"}, doc.PathsExtensions)
		})
	}
}

func TestSerializeExplicitNulls(t *testing.T) {
	src := `{"openapi":"3.0.3","info":{"title":"T","version":"1"},"paths":{"/a":{"get":{` +
		`"parameters":[{"name":"q","in":"query","schema":{"type":"string"},"example":null}],` +
		`"responses":{"200":{"description":"ok","content":{"application/json":{"example":null}}}}}}},` +
		`"components":{"schemas":{"N":{"nullable":true,"default":null,"example":null},"S":{"type":"string"}}}}`

	doc := parseTestBytes(t, []byte(src))
	oas3, ok := doc.OAS3()
	require.True(t, ok)

	n := oas3.Components.Schemas["N"]
	assert.Nil(t, n.Default)
	assert.True(t, n.NullDefault)
	assert.True(t, n.NullExample)
	s := oas3.Components.Schemas["S"]
	assert.False(t, s.NullDefault)
	assert.False(t, s.NullExample)

	op := oas3.Paths["/a"].Get
	assert.True(t, op.Parameters[0].Parameter.NullExample)
	assert.True(t, op.Responses.Codes["200"].Content["application/json"].NullExample)

	out, err := MarshalJSON(doc, "")
	require.NoError(t, err)
	assert.Contains(t, string(out), `"N":{"default":null,"nullable":true,"example":null}`)
	assert.Contains(t, string(out), `"S":{"type":"string"}`)
	assert.Contains(t, string(out), `"example":null}],"responses"`)
	assert.Contains(t, string(out), `"application/json":{"example":null}`)

	yamlOut, err := MarshalYAML(doc)
	require.NoError(t, err)
	reparsed := parseTestBytes(t, yamlOut)
	assert.Empty(t, cmp.Diff(doc, reparsed, documentCmpOpts))

	copied := doc.Clone()
	assert.Empty(t, cmp.Diff(doc, copied, documentCmpOpts))
}

func TestSerializeEmptyCollections(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"oas2",
			`{"swagger":"2.0","info":{"title":"T","version":"1"},"schemes":[],"paths":{"/a":{"parameters":[]}},` +
				`"definitions":{"E":{"properties":{},"required":[],"allOf":[]}},"parameters":{},"responses":{},` +
				`"securityDefinitions":{},"tags":[]}`,
			[]string{`"schemes":[]`, `"/a":{"parameters":[]}`, `"E":{"properties":{},"required":[],"allOf":[]}`,
				`"parameters":{}`, `"responses":{}`, `"securityDefinitions":{}`, `"tags":[]`},
		},
		{
			"oas3",
			`{"openapi":"3.0.3","info":{"title":"T","version":"1"},"servers":[],"paths":{},` +
				`"components":{"schemas":{},"parameters":{},"examples":{},"securitySchemes":{}},"tags":[]}`,
			[]string{`"servers":[]`, `"components":{"schemas":{},"parameters":{},"examples":{},"securitySchemes":{}}`, `"tags":[]`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseTestBytes(t, []byte(tt.input))
			out, err := MarshalJSON(doc, "")
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, string(out), w)
			}
			assert.Empty(t, cmp.Diff(doc, parseTestBytes(t, out), documentCmpOpts))
		})
	}

	// Collections left nil by a caller are omitted.
	out, err := MarshalJSON(minimalOAS2(), "")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "tags")
	assert.NotContains(t, string(out), "definitions")
}

func TestSerializeNumbers(t *testing.T) {
	doc := NewOAS3Document(&OAS3Document{
		OpenAPI: "3.0.0",
		Info:    &Info{Title: "T", Version: "1"},
		Components: &Components{Schemas: map[string]*Schema{
			"N": {
				Type:       "number",
				Maximum:    ptrTo(100.0),
				Minimum:    ptrTo(-0.5),
				MultipleOf: ptrTo(0.25),
				Default:    2.0,
				Example:    int64(3),
			},
		}},
	})

	out, err := MarshalJSON(doc, "")
	require.NoError(t, err)
	assert.Contains(t, string(out), `"N":{"default":2.0,"type":"number","multipleOf":0.25,"maximum":100,"minimum":-0.5,"example":3}`)
}

func TestSerializePathsByVersion(t *testing.T) {
	tests := []struct {
		version   string
		wantPaths bool
	}{
		{"3.0.3", true},
		{"3.1.0", false},
		{"3.2.0", false},
		{"4.0.0", false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			doc := NewOAS3Document(&OAS3Document{OpenAPI: tt.version, Info: &Info{Title: "T", Version: "1"}})
			out, err := MarshalJSON(doc, "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantPaths, strings.Contains(string(out), `"paths"`), string(out))
		})
	}
}

func TestSerializeErrors(t *testing.T) {
	info := &Info{Title: "T", Version: "1"}
	okResponses := &Responses{Codes: map[string]*Response{"200": {Description: "ok"}}}

	tests := []struct {
		name     string
		doc      *Document
		wantPath string
		wantMsg  string
	}{
		{"nil document", nil, "", "document is nil"},
		{"empty document", &Document{}, "", "document holds no specification"},
		{
			"both variants",
			&Document{oas2: &OAS2Document{Swagger: "2.0", Info: info}, oas3: &OAS3Document{OpenAPI: "3.0.0", Info: info}},
			"", "holds both",
		},
		{"wrong swagger version", NewOAS2Document(&OAS2Document{Swagger: "3.0", Info: info}), "swagger", `version must be "2.0"`},
		{"missing info", NewOAS3Document(&OAS3Document{OpenAPI: "3.0.0"}), "info", "info is required"},
		{"openapi 2.0", NewOAS3Document(&OAS3Document{OpenAPI: "2.0", Info: info}), "openapi", "does not satisfy"},
		{"openapi garbage", NewOAS3Document(&OAS3Document{OpenAPI: "latest", Info: info}), "openapi", "does not satisfy"},
		{
			"parameter with both variants",
			NewOAS3Document(&OAS3Document{OpenAPI: "3.0.0", Info: info, Paths: Paths{"/a": &PathItem{
				Parameters: []ParameterOrRef{{Parameter: &Parameter{Name: "a", In: "query"}, Ref: &Reference{Ref: "#/x"}}},
			}}}),
			"paths./a.parameters[0]", "both a reference and a parameter",
		},
		{
			"parameter with neither variant",
			NewOAS3Document(&OAS3Document{OpenAPI: "3.0.0", Info: info, Paths: Paths{"/a": &PathItem{
				Parameters: []ParameterOrRef{{}},
			}}}),
			"paths./a.parameters[0]", "neither a reference nor a parameter",
		},
		{
			"missing responses",
			NewOAS3Document(&OAS3Document{OpenAPI: "3.0.0", Info: info, Paths: Paths{"/a": &PathItem{Get: &Operation{}}}}),
			"paths./a.get.responses", "responses are required",
		},
		{
			"oas3 response with schema",
			NewOAS3Document(&OAS3Document{OpenAPI: "3.0.0", Info: info, Paths: Paths{"/a": &PathItem{Get: &Operation{
				Responses: &Responses{Codes: map[string]*Response{"200": {Description: "ok", Schema: &Schema{Type: "string"}}}},
			}}}}),
			"paths./a.get.responses.200", "OAS 2.0 response fields",
		},
		{
			"oas2 request body",
			NewOAS2Document(&OAS2Document{Swagger: "2.0", Info: info, Paths: Paths{"/a": &PathItem{Post: &Operation{
				RequestBody: &RequestBody{Content: map[string]*MediaType{}},
				Responses:   okResponses,
			}}}}),
			"paths./a.post", "requestBody requires OAS 3",
		},
		{
			"oas2 trace",
			NewOAS2Document(&OAS2Document{Swagger: "2.0", Info: info, Paths: Paths{"/a": &PathItem{
				Trace: &Operation{Responses: okResponses},
			}}}),
			"paths./a", "require OAS 3",
		},
		{
			"extension-like path",
			NewOAS3Document(&OAS3Document{OpenAPI: "3.0.0", Info: info, Paths: Paths{"x-a": &PathItem{}}}),
			"paths", "extension prefix",
		},
		{
			"empty parameter default",
			NewOAS2Document(&OAS2Document{Swagger: "2.0", Info: info, Parameters: map[string]*Parameter{
				"p": {Name: "p", In: "query", Primitive: Primitive{Type: "string", Default: &PropertyDefault{}}},
			}}),
			"parameters.p.default", "default holds no value",
		},
		{
			"parameter without name",
			NewOAS3Document(&OAS3Document{OpenAPI: "3.0.0", Info: info, Paths: Paths{"/a": &PathItem{
				Parameters: []ParameterOrRef{{Parameter: &Parameter{In: "query"}}},
			}}}),
			"paths./a.parameters[0].name", "name must not be empty",
		},
		{
			"parameter without location",
			NewOAS2Document(&OAS2Document{Swagger: "2.0", Info: info, Parameters: map[string]*Parameter{
				"p": {Name: "p", Primitive: Primitive{Type: "string"}},
			}}),
			"parameters.p.in", "in must not be empty",
		},
		{
			"api key without name",
			NewOAS2Document(&OAS2Document{Swagger: "2.0", Info: info, SecurityDefinitions: map[string]SecurityScheme{
				"k": &APIKeyScheme{In: "header"},
			}}),
			"securityDefinitions.k.name", "name must not be empty",
		},
		{
			"api key without location",
			NewOAS3Document(&OAS3Document{OpenAPI: "3.0.0", Info: info, Components: &Components{SecuritySchemes: map[string]SecurityScheme{
				"k": &APIKeyScheme{Name: "X-Key"},
			}}}),
			"components.securitySchemes.k.in", "in must not be empty",
		},
		{
			"nil security scheme",
			NewOAS2Document(&OAS2Document{Swagger: "2.0", Info: info, SecurityDefinitions: map[string]SecurityScheme{"s": nil}}),
			"securityDefinitions.s", "security scheme is nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, format := range []SourceFormat{SourceFormatJSON, SourceFormatYAML} {
				_, err := Serialize(tt.doc, format)
				require.Error(t, err)
				assert.ErrorIs(t, err, oaserrors.ErrSerialization)

				var serr *oaserrors.SerializationError
				require.ErrorAs(t, err, &serr)
				assert.Equal(t, tt.wantPath, serr.Path)
				assert.Contains(t, serr.Message, tt.wantMsg)
			}
		})
	}
}

func TestSerializeNaN(t *testing.T) {
	doc := NewOAS3Document(&OAS3Document{
		OpenAPI:    "3.0.0",
		Info:       &Info{Title: "T", Version: "1"},
		Components: &Components{Schemas: map[string]*Schema{"N": {Maximum: ptrTo(math.NaN())}}},
	})

	_, err := MarshalJSON(doc, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrSerialization)
	assert.Contains(t, err.Error(), "unsupported float value")

	// YAML can represent NaN
	out, err := MarshalYAML(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "maximum: .nan")
}

func TestSerializeUnsupportedFormat(t *testing.T) {
	_, err := Serialize(minimalOAS2(), SourceFormatUnknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrSerialization)
	assert.Contains(t, err.Error(), `unsupported output format "unknown"`)
}

func ptrTo[T any](v T) *T { return &v }
