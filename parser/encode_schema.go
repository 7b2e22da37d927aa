package parser

import (
	"github.com/erraggy/oasmodel/parser/internal/ordered"
)

// setSchema writes s under key if it is not nil.
func (e *encoder) setSchema(o *ordered.Object, key string, s *Schema, path string) error {
	if s == nil {
		return nil
	}
	so, err := e.encodeSchema(s, joinPath(path, key))
	if err != nil {
		return err
	}
	o.Set(key, so)
	return nil
}

func (e *encoder) encodeSchema(s *Schema, path string) (*ordered.Object, error) {
	if s == nil {
		return nil, serializationErr(path, "schema is nil")
	}
	o := ordered.New(8)
	ordered.SetIfNotEmpty(o, "$ref", s.Ref)
	ordered.SetIfNotEmpty(o, "title", s.Title)
	ordered.SetIfNotEmpty(o, "description", s.Description)
	if err := setNullableValue(o, "default", s.Default, s.NullDefault, path); err != nil {
		return nil, err
	}
	ordered.SetIfNotEmpty(o, "type", s.Type)
	ordered.SetIfNotEmpty(o, "format", s.Format)
	if s.Enum != nil {
		if err := setValue(o, "enum", s.Enum, path); err != nil {
			return nil, err
		}
	}

	setNumber(o, "multipleOf", s.MultipleOf)
	setNumber(o, "maximum", s.Maximum)
	ordered.SetIfTrue(o, "exclusiveMaximum", s.ExclusiveMaximum)
	setNumber(o, "minimum", s.Minimum)
	ordered.SetIfTrue(o, "exclusiveMinimum", s.ExclusiveMinimum)
	setInt(o, "maxLength", s.MaxLength)
	setInt(o, "minLength", s.MinLength)
	ordered.SetIfNotEmpty(o, "pattern", s.Pattern)

	if err := e.setSchema(o, "items", s.Items, path); err != nil {
		return nil, err
	}
	setInt(o, "maxItems", s.MaxItems)
	setInt(o, "minItems", s.MinItems)
	ordered.SetIfTrue(o, "uniqueItems", s.UniqueItems)

	if err := setMap(o, "properties", s.Properties, prefixed(path, e.encodeSchema)); err != nil {
		return nil, err
	}
	if ap := s.AdditionalProperties; ap != nil {
		if ap.Schema != nil {
			if err := e.setSchema(o, "additionalProperties", ap.Schema, path); err != nil {
				return nil, err
			}
		} else {
			o.Set("additionalProperties", ap.Allowed)
		}
	}
	ordered.SetIfSliceNotNil(o, "required", s.Required)
	setInt(o, "maxProperties", s.MaxProperties)
	setInt(o, "minProperties", s.MinProperties)

	for _, group := range []struct {
		key     string
		schemas []*Schema
	}{
		{"allOf", s.AllOf},
		{"anyOf", s.AnyOf},
		{"oneOf", s.OneOf},
	} {
		if group.schemas == nil {
			continue
		}
		list := make([]*ordered.Object, 0, len(group.schemas))
		for i, child := range group.schemas {
			co, err := e.encodeSchema(child, indexPath(joinPath(path, group.key), i))
			if err != nil {
				return nil, err
			}
			list = append(list, co)
		}
		o.Set(group.key, list)
	}
	if err := e.setSchema(o, "not", s.Not, path); err != nil {
		return nil, err
	}

	ordered.SetIfTrue(o, "nullable", s.Nullable)
	if s.Discriminator != nil {
		disc, err := e.encodeDiscriminator(s.Discriminator, joinPath(path, "discriminator"))
		if err != nil {
			return nil, err
		}
		o.Set("discriminator", disc)
	}
	ordered.SetIfTrue(o, "readOnly", s.ReadOnly)
	ordered.SetIfTrue(o, "writeOnly", s.WriteOnly)
	if s.XML != nil {
		x := ordered.New(5)
		ordered.SetIfNotEmpty(x, "name", s.XML.Name)
		ordered.SetIfNotEmpty(x, "namespace", s.XML.Namespace)
		ordered.SetIfNotEmpty(x, "prefix", s.XML.Prefix)
		ordered.SetIfTrue(x, "attribute", s.XML.Attribute)
		ordered.SetIfTrue(x, "wrapped", s.XML.Wrapped)
		if err := appendExtensions(x, s.XML.Extensions, joinPath(path, "xml")); err != nil {
			return nil, err
		}
		o.Set("xml", x)
	}
	if err := e.setExternalDocs(o, s.ExternalDocs, joinPath(path, "externalDocs")); err != nil {
		return nil, err
	}
	if err := setNullableValue(o, "example", s.Example, s.NullExample, path); err != nil {
		return nil, err
	}
	ordered.SetIfTrue(o, "deprecated", s.Deprecated)
	if err := appendExtensions(o, s.Extensions, path); err != nil {
		return nil, err
	}
	return o, nil
}

// encodeDiscriminator writes the string form for OAS 2.0 and the object
// form otherwise.
func (e *encoder) encodeDiscriminator(d *Discriminator, path string) (any, error) {
	if e.version == OASVersion20 {
		if len(d.Mapping) > 0 || d.Extensions.Len() > 0 {
			return nil, serializationErr(path, "OAS 2.0 discriminators carry only a property name")
		}
		return d.PropertyName, nil
	}
	o := ordered.New(2)
	o.Set("propertyName", d.PropertyName)
	ordered.SetIfMapNotNil(o, "mapping", d.Mapping)
	if err := appendExtensions(o, d.Extensions, path); err != nil {
		return nil, err
	}
	return o, nil
}
