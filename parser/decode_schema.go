package parser

import (
	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/parser/internal/ordered"
)

// DefaultMaxDepth is the default limit on schema nesting.
const DefaultMaxDepth = 512

// checkDepth enforces the configured nesting limit.
func (d *decoder) checkDepth(path string, depth int) error {
	if d.maxDepth > 0 && depth > d.maxDepth {
		return &oaserrors.ResourceLimitError{
			ResourceType: "schema_depth",
			Path:         path,
			Limit:        int64(d.maxDepth),
			Actual:       int64(depth),
			Message:      "schema nested too deeply",
		}
	}
	return nil
}

// decodeRootSchema decodes a top-level schema such as a definitions entry.
func (d *decoder) decodeRootSchema(v any, path string) (*Schema, error) {
	return d.decodeSchema(v, path, 1)
}

// decodeSchemaField decodes the schema at m[key], if present.
func (d *decoder) decodeSchemaField(m map[string]any, key, path string) (*Schema, error) {
	return d.decodeChildSchema(m, key, path, 0)
}

func (d *decoder) decodeChildSchema(m map[string]any, key, path string, depth int) (*Schema, error) {
	v, ok := lookup(m, key)
	if !ok {
		return nil, nil
	}
	return d.decodeSchema(v, joinPath(path, key), depth+1)
}

func (d *decoder) decodeSchema(v any, path string, depth int) (*Schema, error) {
	if err := d.checkDepth(path, depth); err != nil {
		return nil, err
	}
	obj, err := asObject(v, path, "schema")
	if err != nil {
		return nil, err
	}

	s := &Schema{}
	strFields := []struct {
		key string
		dst *string
	}{
		{"$ref", &s.Ref},
		{"title", &s.Title},
		{"description", &s.Description},
		{"type", &s.Type},
		{"format", &s.Format},
		{"pattern", &s.Pattern},
	}
	for _, f := range strFields {
		if *f.dst, err = mapGetString(obj, f.key, path); err != nil {
			return nil, err
		}
	}

	boolFields := []struct {
		key string
		dst *bool
	}{
		{"deprecated", &s.Deprecated},
		{"exclusiveMaximum", &s.ExclusiveMaximum},
		{"exclusiveMinimum", &s.ExclusiveMinimum},
		{"uniqueItems", &s.UniqueItems},
		{"nullable", &s.Nullable},
		{"readOnly", &s.ReadOnly},
		{"writeOnly", &s.WriteOnly},
	}
	for _, f := range boolFields {
		if *f.dst, err = mapGetBool(obj, f.key, path); err != nil {
			return nil, err
		}
	}

	floatFields := []struct {
		key string
		dst **float64
	}{
		{"multipleOf", &s.MultipleOf},
		{"maximum", &s.Maximum},
		{"minimum", &s.Minimum},
	}
	for _, f := range floatFields {
		if *f.dst, err = mapGetFloat64Ptr(obj, f.key, path); err != nil {
			return nil, err
		}
	}

	intFields := []struct {
		key string
		dst **int64
	}{
		{"maxLength", &s.MaxLength},
		{"minLength", &s.MinLength},
		{"maxItems", &s.MaxItems},
		{"minItems", &s.MinItems},
		{"maxProperties", &s.MaxProperties},
		{"minProperties", &s.MinProperties},
	}
	for _, f := range intFields {
		if *f.dst, err = mapGetInt64Ptr(obj, f.key, path); err != nil {
			return nil, err
		}
	}

	s.Default, s.NullDefault = lookupValue(obj, "default")
	s.Example, s.NullExample = lookupValue(obj, "example")
	if s.Enum, err = mapGetArray(obj, "enum", path); err != nil {
		return nil, err
	}
	if s.Required, err = mapGetStringSlice(obj, "required", path); err != nil {
		return nil, err
	}

	if s.Items, err = d.decodeChildSchema(obj, "items", path, depth); err != nil {
		return nil, err
	}
	if s.Not, err = d.decodeChildSchema(obj, "not", path, depth); err != nil {
		return nil, err
	}
	if s.Properties, err = d.decodeSchemaMap(obj, "properties", path, depth); err != nil {
		return nil, err
	}
	if s.AllOf, err = d.decodeSchemaList(obj, "allOf", path, depth); err != nil {
		return nil, err
	}
	if s.AnyOf, err = d.decodeSchemaList(obj, "anyOf", path, depth); err != nil {
		return nil, err
	}
	if s.OneOf, err = d.decodeSchemaList(obj, "oneOf", path, depth); err != nil {
		return nil, err
	}
	if s.AdditionalProperties, err = d.decodeAdditionalProperties(obj, path, depth); err != nil {
		return nil, err
	}
	if s.Discriminator, err = d.decodeDiscriminator(obj, path); err != nil {
		return nil, err
	}
	if s.ExternalDocs, err = d.decodeExternalDocsField(obj, path); err != nil {
		return nil, err
	}
	if s.XML, err = d.decodeXML(obj, path); err != nil {
		return nil, err
	}
	if s.Extensions, err = d.captureExtensions(obj, schemaFields, path); err != nil {
		return nil, err
	}
	return s, nil
}

func (d *decoder) decodeSchemaMap(m map[string]any, key, path string, depth int) (map[string]*Schema, error) {
	obj, ok, err := mapGetObject(m, key, path)
	if err != nil || !ok {
		return nil, err
	}
	base := joinPath(path, key)
	out := make(map[string]*Schema, len(obj))
	for _, name := range ordered.SortedKeys(obj) {
		child, err := d.decodeSchema(obj[name], joinPath(base, name), depth+1)
		if err != nil {
			return nil, err
		}
		out[name] = child
	}
	return out, nil
}

func (d *decoder) decodeSchemaList(m map[string]any, key, path string, depth int) ([]*Schema, error) {
	return decodeList(m, key, path, func(v any, p string) (*Schema, error) {
		return d.decodeSchema(v, p, depth+1)
	})
}

// decodeAdditionalProperties resolves the boolean-or-schema union.
func (d *decoder) decodeAdditionalProperties(m map[string]any, path string, depth int) (*AdditionalProperties, error) {
	v, ok := lookup(m, "additionalProperties")
	if !ok {
		return nil, nil
	}
	switch val := v.(type) {
	case bool:
		return &AdditionalProperties{Allowed: val}, nil
	case map[string]any:
		child, err := d.decodeSchema(val, joinPath(path, "additionalProperties"), depth+1)
		if err != nil {
			return nil, err
		}
		return &AdditionalProperties{Allowed: true, Schema: child}, nil
	}
	return nil, &oaserrors.SchemaMismatchError{
		Path:       path,
		Field:      "additionalProperties",
		Candidates: []string{"boolean", "Schema"},
		Message:    "got " + valueKind(v),
	}
}

// decodeDiscriminator reads the OAS 2.0 string form or the OAS 3.0 object
// form.
func (d *decoder) decodeDiscriminator(m map[string]any, path string) (*Discriminator, error) {
	v, ok := lookup(m, "discriminator")
	if !ok {
		return nil, nil
	}
	if d.version == OASVersion20 {
		s, ok := v.(string)
		if !ok {
			return nil, typeMismatch(path, "discriminator", "string", v)
		}
		return &Discriminator{PropertyName: s}, nil
	}

	path = joinPath(path, "discriminator")
	obj, err := asObject(v, path, "discriminator")
	if err != nil {
		return nil, err
	}
	disc := &Discriminator{}
	if disc.PropertyName, err = mapRequireString(obj, "propertyName", path); err != nil {
		return nil, err
	}
	if disc.Mapping, err = mapGetStringMap(obj, "mapping", path); err != nil {
		return nil, err
	}
	if disc.Extensions, err = d.captureExtensions(obj, discriminatorFields, path); err != nil {
		return nil, err
	}
	return disc, nil
}

func (d *decoder) decodeXML(m map[string]any, path string) (*XML, error) {
	obj, ok, err := mapGetObject(m, "xml", path)
	if err != nil || !ok {
		return nil, err
	}
	path = joinPath(path, "xml")
	x := &XML{}
	if x.Name, err = mapGetString(obj, "name", path); err != nil {
		return nil, err
	}
	if x.Namespace, err = mapGetString(obj, "namespace", path); err != nil {
		return nil, err
	}
	if x.Prefix, err = mapGetString(obj, "prefix", path); err != nil {
		return nil, err
	}
	if x.Attribute, err = mapGetBool(obj, "attribute", path); err != nil {
		return nil, err
	}
	if x.Wrapped, err = mapGetBool(obj, "wrapped", path); err != nil {
		return nil, err
	}
	if x.Extensions, err = d.captureExtensions(obj, xmlFields, path); err != nil {
		return nil, err
	}
	return x, nil
}
