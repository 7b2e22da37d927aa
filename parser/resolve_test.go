package parser

import (
	"testing"

	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectVersion(t *testing.T) {
	tests := []struct {
		name        string
		root        map[string]any
		wantVersion string
		wantFamily  OASVersion
		wantErr     error
	}{
		{"swagger 2.0", map[string]any{"swagger": "2.0"}, "2.0", OASVersion20, nil},
		{"openapi 3.0.0", map[string]any{"openapi": "3.0.0"}, "3.0.0", OASVersion30, nil},
		{"openapi 3.0.3", map[string]any{"openapi": "3.0.3"}, "3.0.3", OASVersion30, nil},
		{"openapi 3.0 short form", map[string]any{"openapi": "3.0"}, "3.0", OASVersion30, nil},
		{"openapi 3.1.0", map[string]any{"openapi": "3.1.0"}, "3.1.0", OASVersion31, nil},
		{"openapi 3.2.0", map[string]any{"openapi": "3.2.0"}, "3.2.0", OASVersion32, nil},
		{"openapi 4.0.0 is newer", map[string]any{"openapi": "4.0.0"}, "4.0.0", Unknown, nil},
		{"swagger 2.1", map[string]any{"swagger": "2.1"}, "2.1", Unknown, oaserrors.ErrUnsupportedVersion},
		{"swagger 3.0", map[string]any{"swagger": "3.0"}, "3.0", Unknown, oaserrors.ErrUnsupportedVersion},
		{"openapi 2.0", map[string]any{"openapi": "2.0"}, "2.0", Unknown, oaserrors.ErrUnsupportedVersion},
		{"openapi not semver", map[string]any{"openapi": "latest"}, "latest", Unknown, oaserrors.ErrUnsupportedVersion},
		{"swagger number", map[string]any{"swagger": 2.0}, "", Unknown, oaserrors.ErrSchemaMismatch},
		{"openapi number", map[string]any{"openapi": 3.0}, "", Unknown, oaserrors.ErrSchemaMismatch},
		{"both keys", map[string]any{"swagger": "2.0", "openapi": "3.0.3"}, "", Unknown, oaserrors.ErrSchemaMismatch},
		{"neither key", map[string]any{"info": map[string]any{}}, "", Unknown, oaserrors.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, family, err := detectVersion(tt.root)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantVersion, version)
			assert.Equal(t, tt.wantFamily, family)
		})
	}
}

func TestDetectVersionErrorDetails(t *testing.T) {
	_, _, err := detectVersion(map[string]any{"openapi": "2.9.9"})
	var uv *oaserrors.UnsupportedVersionError
	require.ErrorAs(t, err, &uv)
	assert.Equal(t, "2.9.9", uv.Found)
	assert.Equal(t, OAS3Requirement, uv.Required)

	_, _, err = detectVersion(map[string]any{"openapi": "not-a-version"})
	require.ErrorAs(t, err, &uv)
	assert.Error(t, uv.Cause, "semver parse failure should be kept as the cause")

	_, _, err = detectVersion(map[string]any{"swagger": "2.0", "openapi": "3.0.0"})
	var sm *oaserrors.SchemaMismatchError
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, []string{"swagger", "openapi"}, sm.Candidates)

	_, _, err = detectVersion(map[string]any{})
	assert.Contains(t, err.Error(), "unable to detect OpenAPI version")
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input string
		want  OASVersion
		ok    bool
	}{
		{"2.0", OASVersion20, true},
		{"3.0.0", OASVersion30, true},
		{"3.0.4", OASVersion30, true},
		{"3.1.1", OASVersion31, true},
		{"3.2.0", OASVersion32, true},
		{"3.9.0", Unknown, true},
		{"5.0.0", Unknown, true},
		{"1.2", Unknown, false},
		{"2.0.0", Unknown, false},
		{"", Unknown, false},
		{"three", Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseVersion(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestOASVersionString(t *testing.T) {
	assert.Equal(t, "2.0", OASVersion20.String())
	assert.Equal(t, "3.0.x", OASVersion30.String())
	assert.Equal(t, "3.1.x", OASVersion31.String())
	assert.Equal(t, "3.2.x", OASVersion32.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "unknown", OASVersion(99).String())

	assert.True(t, OASVersion30.IsValid())
	assert.False(t, Unknown.IsValid())
	assert.True(t, OASVersion31.IsOAS3())
	assert.False(t, OASVersion20.IsOAS3())
}

func newTestDecoder(version OASVersion, strict bool) *decoder {
	return &decoder{version: version, strict: strict, maxDepth: DefaultMaxDepth, logger: NopLogger{}}
}

func TestDecodeParameterOrRef(t *testing.T) {
	t.Run("reference", func(t *testing.T) {
		d := newTestDecoder(OASVersion30, false)
		got, err := d.decodeParameterOrRef(map[string]any{"$ref": "#/components/parameters/limit"}, "p")
		require.NoError(t, err)
		require.True(t, got.IsRef())
		assert.Nil(t, got.Parameter)
		assert.Equal(t, "#/components/parameters/limit", got.Ref.Ref)
	})

	t.Run("reference wins over parameter fields", func(t *testing.T) {
		d := newTestDecoder(OASVersion30, false)
		got, err := d.decodeParameterOrRef(map[string]any{
			"$ref":  "#/components/parameters/limit",
			"name":  "limit",
			"in":    "query",
			"x-tag": "kept",
		}, "p")
		require.NoError(t, err)
		require.True(t, got.IsRef())
		assert.Equal(t, Extensions{"x-tag": "kept"}, got.Ref.Extensions)
		assert.Equal(t, []string{
			`p: unknown field "in" ignored`,
			`p: unknown field "name" ignored`,
		}, d.warnings)
	})

	t.Run("reference with sibling fields in strict mode", func(t *testing.T) {
		d := newTestDecoder(OASVersion30, true)
		_, err := d.decodeParameterOrRef(map[string]any{"$ref": "#/x", "name": "limit"}, "p")
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrSchemaMismatch)
	})

	t.Run("inline parameter", func(t *testing.T) {
		d := newTestDecoder(OASVersion30, true)
		got, err := d.decodeParameterOrRef(map[string]any{
			"name":     "id",
			"in":       "path",
			"required": true,
			"schema":   map[string]any{"type": "string"},
		}, "p")
		require.NoError(t, err)
		require.False(t, got.IsRef())
		require.NotNil(t, got.Parameter)
		assert.Equal(t, "id", got.Parameter.Name)
		assert.Equal(t, ParamInPath, got.Parameter.In)
		assert.True(t, got.Parameter.Required)
		require.NotNil(t, got.Parameter.Schema)
		assert.Equal(t, "string", got.Parameter.Schema.Type)
	})

	t.Run("neither shape", func(t *testing.T) {
		d := newTestDecoder(OASVersion30, false)
		_, err := d.decodeParameterOrRef(map[string]any{"description": "lost"}, "paths./a.get.parameters[0]")
		require.Error(t, err)

		var sm *oaserrors.SchemaMismatchError
		require.ErrorAs(t, err, &sm)
		assert.Equal(t, "paths./a.get.parameters[0]", sm.Path)
		assert.Equal(t, []string{"Reference", "Parameter"}, sm.Candidates)
		assert.Equal(t, []string{"name", "in"}, sm.Missing)
	})

	t.Run("not an object", func(t *testing.T) {
		d := newTestDecoder(OASVersion30, false)
		_, err := d.decodeParameterOrRef("limit", "p")
		assert.ErrorIs(t, err, oaserrors.ErrSchemaMismatch)
	})

	t.Run("non-string ref", func(t *testing.T) {
		d := newTestDecoder(OASVersion30, false)
		_, err := d.decodeParameterOrRef(map[string]any{"$ref": int64(1)}, "p")
		assert.ErrorIs(t, err, oaserrors.ErrSchemaMismatch)
	})
}

func TestDecodeParameterVersionFields(t *testing.T) {
	obj := map[string]any{
		"name":      "tags",
		"in":        "query",
		"type":      "array",
		"items":     map[string]any{"type": "string"},
		"style":     "form",
		"explode":   false,
		"maxLength": int64(5),
	}

	t.Run("OAS 2.0 reads primitive fields", func(t *testing.T) {
		d := newTestDecoder(OASVersion20, false)
		got, err := d.decodeParameterOrRef(obj, "p")
		require.NoError(t, err)
		p := got.Parameter
		assert.Equal(t, "array", p.Type)
		require.NotNil(t, p.Items)
		assert.Equal(t, "string", p.Items.Type)
		require.NotNil(t, p.MaxLength)
		assert.Equal(t, int64(5), *p.MaxLength)
		assert.Empty(t, p.Style)
		assert.Equal(t, []string{
			`p: unknown field "explode" ignored`,
			`p: unknown field "style" ignored`,
		}, d.warnings)
	})

	t.Run("OAS 3.0 reads style fields", func(t *testing.T) {
		d := newTestDecoder(OASVersion30, false)
		got, err := d.decodeParameterOrRef(obj, "p")
		require.NoError(t, err)
		p := got.Parameter
		assert.Equal(t, "form", p.Style)
		require.NotNil(t, p.Explode)
		assert.False(t, *p.Explode)
		assert.Empty(t, p.Type)
		assert.Len(t, d.warnings, 3)
	})
}

func TestDecodeSecurityScheme(t *testing.T) {
	tests := []struct {
		name    string
		version OASVersion
		input   map[string]any
		check   func(t *testing.T, s SecurityScheme)
	}{
		{
			name:    "OAS 2.0 apiKey",
			version: OASVersion20,
			input:   map[string]any{"type": "apiKey", "name": "key", "in": "header", "description": "API key"},
			check: func(t *testing.T, s SecurityScheme) {
				v, ok := s.(*APIKeyScheme)
				require.True(t, ok, "got %T", s)
				assert.Equal(t, "key", v.Name)
				assert.Equal(t, "header", v.In)
				assert.Equal(t, "API key", v.Common().Description)
			},
		},
		{
			name:    "OAS 2.0 basic",
			version: OASVersion20,
			input:   map[string]any{"type": "basic", "x-realm": "api"},
			check: func(t *testing.T, s SecurityScheme) {
				v, ok := s.(*BasicScheme)
				require.True(t, ok, "got %T", s)
				assert.Equal(t, Extensions{"x-realm": "api"}, v.Extensions)
			},
		},
		{
			name:    "OAS 2.0 oauth2",
			version: OASVersion20,
			input: map[string]any{
				"type":     "oauth2",
				"flow":     "password",
				"tokenUrl": "https://example.com/token",
				"scopes":   map[string]any{"read": "read access"},
			},
			check: func(t *testing.T, s SecurityScheme) {
				v, ok := s.(*OAuth2Scheme)
				require.True(t, ok, "got %T", s)
				assert.Equal(t, OAuth2FlowPassword, v.Flow)
				assert.Equal(t, map[string]string{"read": "read access"}, v.Scopes)
			},
		},
		{
			name:    "OAS 3.0 http",
			version: OASVersion30,
			input:   map[string]any{"type": "http", "scheme": "bearer", "bearerFormat": "JWT"},
			check: func(t *testing.T, s SecurityScheme) {
				v, ok := s.(*HTTPScheme)
				require.True(t, ok, "got %T", s)
				assert.Equal(t, "bearer", v.Scheme)
				assert.Equal(t, "JWT", v.BearerFormat)
				assert.Equal(t, SecurityTypeHTTP, v.Type())
			},
		},
		{
			name:    "OAS 3.0 oauth2 flows",
			version: OASVersion30,
			input: map[string]any{
				"type": "oauth2",
				"flows": map[string]any{
					"clientCredentials": map[string]any{
						"tokenUrl": "https://example.com/token",
						"scopes":   map[string]any{},
					},
				},
			},
			check: func(t *testing.T, s SecurityScheme) {
				v, ok := s.(*OAuth2FlowsScheme)
				require.True(t, ok, "got %T", s)
				require.NotNil(t, v.Flows)
				require.NotNil(t, v.Flows.ClientCredentials)
				assert.Nil(t, v.Flows.Implicit)
				assert.Equal(t, "https://example.com/token", v.Flows.ClientCredentials.TokenURL)
				assert.NotNil(t, v.Flows.ClientCredentials.Scopes)
				assert.Empty(t, v.Flows.ClientCredentials.Scopes)
			},
		},
		{
			name:    "OAS 3.0 openIdConnect",
			version: OASVersion30,
			input:   map[string]any{"type": "openIdConnect", "openIdConnectUrl": "https://example.com/.well-known"},
			check: func(t *testing.T, s SecurityScheme) {
				v, ok := s.(*OpenIDConnectScheme)
				require.True(t, ok, "got %T", s)
				assert.Equal(t, "https://example.com/.well-known", v.OpenIDConnectURL)
			},
		},
		{
			name:    "OAS 3.0 apiKey in cookie",
			version: OASVersion30,
			input:   map[string]any{"type": "apiKey", "name": "session", "in": "cookie"},
			check: func(t *testing.T, s SecurityScheme) {
				v, ok := s.(*APIKeyScheme)
				require.True(t, ok, "got %T", s)
				assert.Equal(t, ParamInCookie, v.In)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDecoder(tt.version, true)
			got, err := d.decodeSecurityScheme(tt.input, "s")
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestDecodeSecuritySchemeErrors(t *testing.T) {
	tests := []struct {
		name        string
		version     OASVersion
		input       any
		wantErr     error
		wantMissing []string
		wantAllowed []string
	}{
		{
			name:        "http in OAS 2.0",
			version:     OASVersion20,
			input:       map[string]any{"type": "http", "scheme": "basic"},
			wantErr:     oaserrors.ErrUnrecognizedTag,
			wantAllowed: []string{"apiKey", "oauth2", "basic"},
		},
		{
			name:        "basic in OAS 3.0",
			version:     OASVersion30,
			input:       map[string]any{"type": "basic"},
			wantErr:     oaserrors.ErrUnrecognizedTag,
			wantAllowed: []string{"apiKey", "http", "oauth2", "openIdConnect"},
		},
		{
			name:        "unknown type",
			version:     OASVersion30,
			input:       map[string]any{"type": "mutualTLS"},
			wantErr:     oaserrors.ErrUnrecognizedTag,
			wantAllowed: []string{"apiKey", "http", "oauth2", "openIdConnect"},
		},
		{
			name:        "missing type",
			version:     OASVersion30,
			input:       map[string]any{"scheme": "bearer"},
			wantErr:     oaserrors.ErrSchemaMismatch,
			wantMissing: []string{"type"},
		},
		{
			name:        "apiKey without name and in",
			version:     OASVersion20,
			input:       map[string]any{"type": "apiKey"},
			wantErr:     oaserrors.ErrSchemaMismatch,
			wantMissing: []string{"name", "in"},
		},
		{
			name:        "implicit oauth2 without authorizationUrl",
			version:     OASVersion20,
			input:       map[string]any{"type": "oauth2", "flow": "implicit", "scopes": map[string]any{}},
			wantErr:     oaserrors.ErrSchemaMismatch,
			wantMissing: []string{"authorizationUrl"},
		},
		{
			name:        "oauth2 without flows",
			version:     OASVersion30,
			input:       map[string]any{"type": "oauth2"},
			wantErr:     oaserrors.ErrSchemaMismatch,
			wantMissing: []string{"flows"},
		},
		{
			name:        "oauth flow without scopes",
			version:     OASVersion30,
			input:       map[string]any{"type": "oauth2", "flows": map[string]any{"password": map[string]any{"tokenUrl": "t"}}},
			wantErr:     oaserrors.ErrSchemaMismatch,
			wantMissing: []string{"scopes"},
		},
		{
			name:    "not an object",
			version: OASVersion30,
			input:   "bearer",
			wantErr: oaserrors.ErrSchemaMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDecoder(tt.version, false)
			_, err := d.decodeSecurityScheme(tt.input, "securityDefinitions.auth")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			if tt.wantMissing != nil {
				var sm *oaserrors.SchemaMismatchError
				require.ErrorAs(t, err, &sm)
				assert.Equal(t, tt.wantMissing, sm.Missing)
			}
			if tt.wantAllowed != nil {
				var ut *oaserrors.UnrecognizedTagError
				require.ErrorAs(t, err, &ut)
				assert.Equal(t, tt.wantAllowed, ut.Allowed)
				assert.Equal(t, "securityDefinitions.auth.type", ut.Path)
			}
		})
	}
}
