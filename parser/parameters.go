package parser

// Parameter location constants (used in Parameter.In field)
const (
	// ParamInQuery indicates the parameter is passed in the query string
	ParamInQuery = "query"
	// ParamInHeader indicates the parameter is passed in a request header
	ParamInHeader = "header"
	// ParamInPath indicates the parameter is part of the URL path
	ParamInPath = "path"
	// ParamInCookie indicates the parameter is passed as a cookie (OAS 3.0)
	ParamInCookie = "cookie"
	// ParamInFormData indicates the parameter is passed as form data (OAS 2.0 only)
	ParamInFormData = "formData"
	// ParamInBody indicates the parameter is in the request body (OAS 2.0 only)
	ParamInBody = "body"
)

// ParameterOrRef is an entry of a parameter list: either a full Parameter or
// a Reference to one. Exactly one of the two fields is set.
type ParameterOrRef struct {
	Parameter *Parameter
	Ref       *Reference
}

// NewParameterRef returns a ParameterOrRef holding a reference.
func NewParameterRef(ref string) ParameterOrRef {
	return ParameterOrRef{Ref: &Reference{Ref: ref}}
}

// NewInlineParameter returns a ParameterOrRef holding p.
func NewInlineParameter(p *Parameter) ParameterOrRef {
	return ParameterOrRef{Parameter: p}
}

// IsRef reports whether the entry is a reference.
func (p ParameterOrRef) IsRef() bool {
	return p.Ref != nil
}

// Parameter describes a single operation parameter
type Parameter struct {
	Name            string // required
	In              string // required: "query", "header", "path", "cookie" (OAS 3.0), "formData", "body" (OAS 2.0)
	Description     string
	Required        bool
	Deprecated      bool // OAS 3.0
	AllowEmptyValue bool

	// Schema is the body schema (OAS 2.0 "in: body") or the parameter schema (OAS 3.0)
	Schema *Schema

	// OAS 3.0 fields
	Style   string
	Explode *bool
	Example any
	Content map[string]*MediaType

	NullExample bool // example is an explicit null

	// OAS 2.0 fields for non-body parameters
	Primitive

	Extensions Extensions
}

// Primitive holds the OAS 2.0 primitive type fields shared by Parameter,
// Items and Header.
type Primitive struct {
	Type             string
	Format           string
	Items            *Items
	CollectionFormat string
	Default          *PropertyDefault
	Maximum          *float64
	ExclusiveMaximum bool
	Minimum          *float64
	ExclusiveMinimum bool
	MaxLength        *int64
	MinLength        *int64
	Pattern          string
	MaxItems         *int64
	MinItems         *int64
	UniqueItems      bool
	Enum             []any
	MultipleOf       *float64
}

// Items represents items object for array parameters (OAS 2.0)
type Items struct {
	Primitive  // Type is required
	Extensions Extensions
}

// Header describes a response header. OAS 2.0 headers use the Primitive
// fields; OAS 3.0 headers use Schema and may be references.
type Header struct {
	Ref         string // OAS 3.0
	Description string
	Required    bool    // OAS 3.0
	Deprecated  bool    // OAS 3.0
	Schema      *Schema // OAS 3.0
	Primitive           // OAS 2.0
	Extensions  Extensions
}
