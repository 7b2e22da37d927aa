package parser

// Document is a parsed OpenAPI document: either an OAS 2.0 or an OAS 3.x
// specification. Exactly one variant is present.
//
// A Document is never modified by this package after construction and is
// safe for concurrent reads. Use Clone to derive a modified copy.
type Document struct {
	oas2 *OAS2Document
	oas3 *OAS3Document
}

// NewOAS2Document wraps an OAS 2.0 specification.
func NewOAS2Document(doc *OAS2Document) *Document {
	return &Document{oas2: doc}
}

// NewOAS3Document wraps an OAS 3.x specification.
func NewOAS3Document(doc *OAS3Document) *Document {
	return &Document{oas3: doc}
}

// OAS2 returns the OAS 2.0 variant.
func (d *Document) OAS2() (*OAS2Document, bool) {
	if d == nil || d.oas2 == nil {
		return nil, false
	}
	return d.oas2, true
}

// OAS3 returns the OAS 3.x variant.
func (d *Document) OAS3() (*OAS3Document, bool) {
	if d == nil || d.oas3 == nil {
		return nil, false
	}
	return d.oas3, true
}

// IsOAS2 reports whether the document is OAS 2.0.
func (d *Document) IsOAS2() bool {
	return d != nil && d.oas2 != nil
}

// IsOAS3 reports whether the document is OAS 3.x.
func (d *Document) IsOAS3() bool {
	return d != nil && d.oas3 != nil
}

// Version returns the raw "swagger" or "openapi" value.
func (d *Document) Version() string {
	switch {
	case d.IsOAS2():
		return d.oas2.Swagger
	case d.IsOAS3():
		return d.oas3.OpenAPI
	}
	return ""
}

// OASVersion returns the classified version.
func (d *Document) OASVersion() OASVersion {
	v, _ := ParseVersion(d.Version())
	return v
}

// Info returns the document's Info object.
func (d *Document) Info() *Info {
	switch {
	case d.IsOAS2():
		return d.oas2.Info
	case d.IsOAS3():
		return d.oas3.Info
	}
	return nil
}

// Paths returns the document's Paths.
func (d *Document) Paths() Paths {
	switch {
	case d.IsOAS2():
		return d.oas2.Paths
	case d.IsOAS3():
		return d.oas3.Paths
	}
	return nil
}

// Extensions returns the document-level specification extensions.
func (d *Document) Extensions() Extensions {
	switch {
	case d.IsOAS2():
		return d.oas2.Extensions
	case d.IsOAS3():
		return d.oas3.Extensions
	}
	return nil
}

// Schemas returns the named reusable schemas: definitions for OAS 2.0 and
// components.schemas for OAS 3.x.
func (d *Document) Schemas() map[string]*Schema {
	switch {
	case d.IsOAS2():
		return d.oas2.Definitions
	case d.IsOAS3() && d.oas3.Components != nil:
		return d.oas3.Components.Schemas
	}
	return nil
}

// SecuritySchemes returns the named security schemes: securityDefinitions
// for OAS 2.0 and components.securitySchemes for OAS 3.x.
func (d *Document) SecuritySchemes() map[string]SecurityScheme {
	switch {
	case d.IsOAS2():
		return d.oas2.SecurityDefinitions
	case d.IsOAS3() && d.oas3.Components != nil:
		return d.oas3.Components.SecuritySchemes
	}
	return nil
}

// MarshalJSON encodes the document as compact JSON.
func (d *Document) MarshalJSON() ([]byte, error) {
	return MarshalJSON(d, "")
}

// MarshalYAML lets yaml encoders emit the document with its canonical key
// order.
func (d *Document) MarshalYAML() (any, error) {
	obj, err := encodeDocument(d)
	if err != nil {
		return nil, err
	}
	return toYAMLNode(obj)
}
