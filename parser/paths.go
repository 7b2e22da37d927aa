package parser

import "github.com/erraggy/oasmodel/internal/httputil"

// Paths maps URL path templates (e.g. "/pets/{id}") to PathItems.
type Paths map[string]*PathItem

// PathItem describes the operations available on a single path
type PathItem struct {
	Ref         string
	Summary     string // OAS 3.0
	Description string // OAS 3.0
	Get         *Operation
	Put         *Operation
	Post        *Operation
	Delete      *Operation
	Options     *Operation
	Head        *Operation
	Patch       *Operation
	Trace       *Operation // OAS 3.0
	Servers     []*Server  // OAS 3.0
	Parameters  []ParameterOrRef
	Extensions  Extensions
}

// Operations returns the operations of the item keyed by lowercase HTTP
// method. Methods without an operation are omitted.
func (p *PathItem) Operations() map[string]*Operation {
	ops := make(map[string]*Operation, 8)
	for _, m := range pathItemMethods {
		if op := *m.field(p); op != nil {
			ops[m.name] = op
		}
	}
	return ops
}

// OperationMethods returns the lowercase HTTP methods a PathItem can hold,
// in the order they are written.
func OperationMethods() []string {
	methods := make([]string, len(pathItemMethods))
	for i, m := range pathItemMethods {
		methods[i] = m.name
	}
	return methods
}

// pathItemMethods lists the operation slots of a PathItem in canonical order.
var pathItemMethods = []struct {
	name  string
	field func(*PathItem) **Operation
}{
	{name: httputil.MethodGet, field: func(p *PathItem) **Operation { return &p.Get }},
	{name: httputil.MethodPut, field: func(p *PathItem) **Operation { return &p.Put }},
	{name: httputil.MethodPost, field: func(p *PathItem) **Operation { return &p.Post }},
	{name: httputil.MethodDelete, field: func(p *PathItem) **Operation { return &p.Delete }},
	{name: httputil.MethodOptions, field: func(p *PathItem) **Operation { return &p.Options }},
	{name: httputil.MethodHead, field: func(p *PathItem) **Operation { return &p.Head }},
	{name: httputil.MethodPatch, field: func(p *PathItem) **Operation { return &p.Patch }},
	{name: httputil.MethodTrace, field: func(p *PathItem) **Operation { return &p.Trace }},
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags         []string
	Summary      string
	Description  string
	ExternalDocs *ExternalDocs
	OperationID  string
	Consumes     []string // OAS 2.0
	Produces     []string // OAS 2.0
	Parameters   []ParameterOrRef
	RequestBody  *RequestBody // OAS 3.0
	Responses    *Responses   // required
	Schemes      []string     // OAS 2.0
	Deprecated   bool
	// Security is omitted when nil. A non-nil empty slice is written as []
	// and removes the document-level requirement.
	Security   []SecurityRequirement
	Servers    []*Server // OAS 3.0
	Extensions Extensions
}

// Responses maps HTTP status codes (e.g. "200", "4XX") or "default" to
// Responses.
type Responses struct {
	Codes      map[string]*Response
	Extensions Extensions
}

// Get returns the response for code, if any.
func (r *Responses) Get(code string) (*Response, bool) {
	if r == nil {
		return nil, false
	}
	resp, ok := r.Codes[code]
	return resp, ok
}

// Response describes a single response from an API operation.
// When Ref is set the other fields are empty.
type Response struct {
	Ref         string
	Description string                // required unless Ref is set
	Schema      *Schema               // OAS 2.0
	Headers     map[string]*Header
	Examples    map[string]any        // OAS 2.0
	Content     map[string]*MediaType // OAS 3.0
	Extensions  Extensions
}
