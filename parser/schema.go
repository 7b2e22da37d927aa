package parser

// Schema represents a JSON Schema node as used by OAS 2.0 and 3.0.
//
// Schemas form a tree: each child (Items, Properties, AllOf, ...) is owned
// exclusively by its parent. Ref is an opaque JSON Reference string and is
// never followed, so the tree has no cycles.
type Schema struct {
	Ref string

	// Metadata
	Title       string
	Description string
	Default     any // value tree; unlike parameter defaults, any JSON value is allowed
	Example     any
	Deprecated  bool // OAS 3.0

	// NullDefault and NullExample mark an explicit null, which a nil
	// Default or Example alone cannot tell apart from an absent key.
	NullDefault bool
	NullExample bool

	// Type validation
	Type   string
	Format string
	Enum   []any

	// Numeric validation
	MultipleOf       *float64
	Maximum          *float64
	ExclusiveMaximum bool
	Minimum          *float64
	ExclusiveMinimum bool

	// String validation
	MaxLength *int64
	MinLength *int64
	Pattern   string

	// Array validation
	Items       *Schema
	MaxItems    *int64
	MinItems    *int64
	UniqueItems bool

	// Object validation
	Properties           map[string]*Schema
	AdditionalProperties *AdditionalProperties
	Required             []string
	MaxProperties        *int64
	MinProperties        *int64

	// Schema composition
	AllOf []*Schema
	AnyOf []*Schema // OAS 3.0
	OneOf []*Schema // OAS 3.0
	Not   *Schema   // OAS 3.0

	// OAS specific
	Nullable      bool // OAS 3.0
	Discriminator *Discriminator
	ReadOnly      bool
	WriteOnly     bool // OAS 3.0
	ExternalDocs  *ExternalDocs
	XML           *XML

	Extensions Extensions
}

// AdditionalProperties is the value of "additionalProperties": a boolean or
// a schema. When Schema is set, Allowed is true.
type AdditionalProperties struct {
	Allowed bool
	Schema  *Schema
}

// Discriminator selects a schema variant by property value. OAS 2.0 only
// names the property; OAS 3.0 adds an optional mapping.
type Discriminator struct {
	PropertyName string // required
	Mapping      map[string]string
	Extensions   Extensions
}

// XML adjusts the XML representation of a property.
type XML struct {
	Name       string
	Namespace  string
	Prefix     string
	Attribute  bool
	Wrapped    bool
	Extensions Extensions
}
