package parser

import (
	"fmt"
	"math"

	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/parser/internal/ordered"
	"go.yaml.in/yaml/v4"
)

// encoder turns the typed model into ordered objects. Typed fields are
// written in the order the OpenAPI specification lists them, followed by
// extensions sorted by key. Absent optional fields are omitted; required
// fields are always written.
type encoder struct {
	version OASVersion
}

func serializationErr(path, format string, args ...any) error {
	return &oaserrors.SerializationError{Path: path, Message: fmt.Sprintf(format, args...)}
}

// requireString rejects an empty value for a field that must be present.
func requireString(path, key, value string) error {
	if value == "" {
		return serializationErr(joinPath(path, key), "%s must not be empty", key)
	}
	return nil
}

// encodeDocument builds the ordered root object of doc.
func encodeDocument(doc *Document) (*ordered.Object, error) {
	switch {
	case doc == nil:
		return nil, serializationErr("", "document is nil")
	case doc.oas2 != nil && doc.oas3 != nil:
		return nil, serializationErr("", "document holds both an OAS 2.0 and an OAS 3.x specification")
	case doc.oas2 != nil:
		e := &encoder{version: OASVersion20}
		return e.encodeOAS2(doc.oas2)
	case doc.oas3 != nil:
		v, ok := ParseVersion(doc.oas3.OpenAPI)
		if !ok || v == OASVersion20 {
			return nil, serializationErr("openapi", "version %q does not satisfy %s", doc.oas3.OpenAPI, OAS3Requirement)
		}
		e := &encoder{version: v}
		if v == Unknown {
			e.version = OASVersion32
		}
		return e.encodeOAS3(doc.oas3)
	}
	return nil, serializationErr("", "document holds no specification")
}

// toYAMLNode converts an ordered root object to a yaml.Node.
func toYAMLNode(obj *ordered.Object) (*yaml.Node, error) {
	node, err := ordered.ToNode(obj)
	if err != nil {
		return nil, &oaserrors.SerializationError{Message: "failed to build YAML node", Cause: err}
	}
	return node, nil
}

func (e *encoder) encodeOAS2(doc *OAS2Document) (*ordered.Object, error) {
	if doc.Swagger != swaggerVersion {
		return nil, serializationErr("swagger", "version must be %q, got %q", swaggerVersion, doc.Swagger)
	}
	o := ordered.New(16)
	o.Set("swagger", doc.Swagger)
	info, err := e.encodeInfo(doc.Info, "info")
	if err != nil {
		return nil, err
	}
	o.Set("info", info)
	ordered.SetIfNotEmpty(o, "host", doc.Host)
	ordered.SetIfNotEmpty(o, "basePath", doc.BasePath)
	ordered.SetIfSliceNotNil(o, "schemes", doc.Schemes)
	ordered.SetIfSliceNotNil(o, "consumes", doc.Consumes)
	ordered.SetIfSliceNotNil(o, "produces", doc.Produces)
	paths, err := e.encodePaths(doc.Paths, doc.PathsExtensions, true)
	if err != nil {
		return nil, err
	}
	o.Set("paths", paths)
	if err := setMap(o, "definitions", doc.Definitions, e.encodeSchema); err != nil {
		return nil, err
	}
	if err := setMap(o, "parameters", doc.Parameters, e.encodeParameter); err != nil {
		return nil, err
	}
	if err := setMap(o, "responses", doc.Responses, e.encodeResponse); err != nil {
		return nil, err
	}
	if err := setMap(o, "securityDefinitions", doc.SecurityDefinitions, e.encodeSecurityScheme); err != nil {
		return nil, err
	}
	setSecurity(o, doc.Security)
	if err := e.setTags(o, doc.Tags); err != nil {
		return nil, err
	}
	if err := e.setExternalDocs(o, doc.ExternalDocs, "externalDocs"); err != nil {
		return nil, err
	}
	if err := appendExtensions(o, doc.Extensions, ""); err != nil {
		return nil, err
	}
	return o, nil
}

func (e *encoder) encodeOAS3(doc *OAS3Document) (*ordered.Object, error) {
	o := ordered.New(12)
	o.Set("openapi", doc.OpenAPI)
	info, err := e.encodeInfo(doc.Info, "info")
	if err != nil {
		return nil, err
	}
	o.Set("info", info)
	if err := e.setServers(o, doc.Servers, "servers"); err != nil {
		return nil, err
	}
	if doc.Paths != nil || e.version == OASVersion30 {
		paths, err := e.encodePaths(doc.Paths, doc.PathsExtensions, true)
		if err != nil {
			return nil, err
		}
		o.Set("paths", paths)
	}
	if doc.Components != nil {
		comp, err := e.encodeComponents(doc.Components, "components")
		if err != nil {
			return nil, err
		}
		o.Set("components", comp)
	}
	setSecurity(o, doc.Security)
	if err := e.setTags(o, doc.Tags); err != nil {
		return nil, err
	}
	if err := e.setExternalDocs(o, doc.ExternalDocs, "externalDocs"); err != nil {
		return nil, err
	}
	if err := appendExtensions(o, doc.Extensions, ""); err != nil {
		return nil, err
	}
	return o, nil
}

func (e *encoder) encodeComponents(c *Components, path string) (*ordered.Object, error) {
	o := ordered.New(8)
	if err := setMap(o, "schemas", c.Schemas, prefixed(path, e.encodeSchema)); err != nil {
		return nil, err
	}
	if err := setMap(o, "responses", c.Responses, prefixed(path, e.encodeResponse)); err != nil {
		return nil, err
	}
	if c.Parameters != nil {
		params := ordered.New(len(c.Parameters))
		for _, name := range ordered.SortedKeys(c.Parameters) {
			p, err := e.encodeParameterOrRef(c.Parameters[name], joinPath(path, "parameters."+name))
			if err != nil {
				return nil, err
			}
			params.Set(name, p)
		}
		o.Set("parameters", params)
	}
	if err := setValueMap(o, "examples", c.Examples, joinPath(path, "examples")); err != nil {
		return nil, err
	}
	if err := setMap(o, "requestBodies", c.RequestBodies, prefixed(path, e.encodeRequestBody)); err != nil {
		return nil, err
	}
	if err := setMap(o, "headers", c.Headers, prefixed(path, e.encodeHeader)); err != nil {
		return nil, err
	}
	if err := setMap(o, "securitySchemes", c.SecuritySchemes, prefixed(path, e.encodeSecurityScheme)); err != nil {
		return nil, err
	}
	if err := appendExtensions(o, c.Extensions, path); err != nil {
		return nil, err
	}
	return o, nil
}

// setMap writes a map of model objects as an ordered object with sorted
// keys. A nil map is omitted; a non-nil empty map is kept.
func setMap[T any](o *ordered.Object, key string, m map[string]T, fn func(T, string) (*ordered.Object, error)) error {
	if m == nil {
		return nil
	}
	out := ordered.New(len(m))
	for _, name := range ordered.SortedKeys(m) {
		v, err := fn(m[name], key+"."+name)
		if err != nil {
			return err
		}
		out.Set(name, v)
	}
	o.Set(key, out)
	return nil
}

// setValueMap writes a map of value trees.
func setValueMap(o *ordered.Object, key string, m map[string]any, path string) error {
	if m == nil {
		return nil
	}
	v, err := normalizeValue(m)
	if err != nil {
		return &oaserrors.SerializationError{Path: path, Message: "value is not a plain value tree", Cause: err}
	}
	o.Set(key, v)
	return nil
}

// setValue writes a single value tree if it is not nil.
func setValue(o *ordered.Object, key string, v any, path string) error {
	if v == nil {
		return nil
	}
	n, err := normalizeValue(v)
	if err != nil {
		return &oaserrors.SerializationError{Path: joinPath(path, key), Message: "value is not a plain value tree", Cause: err}
	}
	o.Set(key, n)
	return nil
}

// setNullableValue writes v, or an explicit null when v is nil and null
// is set.
func setNullableValue(o *ordered.Object, key string, v any, null bool, path string) error {
	if v == nil {
		if null {
			o.Set(key, nil)
		}
		return nil
	}
	return setValue(o, key, v, path)
}

// setSecurity writes security requirements. A non-nil empty list is kept.
func setSecurity(o *ordered.Object, reqs []SecurityRequirement) {
	if reqs == nil {
		return
	}
	list := make([]*ordered.Object, 0, len(reqs))
	for _, req := range reqs {
		r := ordered.New(len(req))
		for _, name := range ordered.SortedKeys(req) {
			scopes := req[name]
			if scopes == nil {
				scopes = []string{}
			}
			r.Set(name, scopes)
		}
		list = append(list, r)
	}
	o.Set("security", list)
}

// numberValue writes integral floats as integers.
func numberValue(f float64) any {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return f
}

func setNumber(o *ordered.Object, key string, f *float64) {
	if f != nil {
		o.Set(key, numberValue(*f))
	}
}

func setInt(o *ordered.Object, key string, i *int64) {
	if i != nil {
		o.Set(key, *i)
	}
}

func (e *encoder) encodeInfo(info *Info, path string) (*ordered.Object, error) {
	if info == nil {
		return nil, serializationErr(path, "info is required")
	}
	o := ordered.New(6)
	ordered.SetIfNotEmpty(o, "title", info.Title)
	ordered.SetIfNotEmpty(o, "description", info.Description)
	ordered.SetIfNotEmpty(o, "termsOfService", info.TermsOfService)
	if c := info.Contact; c != nil {
		co := ordered.New(3)
		ordered.SetIfNotEmpty(co, "name", c.Name)
		ordered.SetIfNotEmpty(co, "url", c.URL)
		ordered.SetIfNotEmpty(co, "email", c.Email)
		if err := appendExtensions(co, c.Extensions, joinPath(path, "contact")); err != nil {
			return nil, err
		}
		o.Set("contact", co)
	}
	if l := info.License; l != nil {
		lo := ordered.New(2)
		lo.Set("name", l.Name)
		ordered.SetIfNotEmpty(lo, "url", l.URL)
		if err := appendExtensions(lo, l.Extensions, joinPath(path, "license")); err != nil {
			return nil, err
		}
		o.Set("license", lo)
	}
	ordered.SetIfNotEmpty(o, "version", info.Version)
	if err := appendExtensions(o, info.Extensions, path); err != nil {
		return nil, err
	}
	return o, nil
}

func (e *encoder) setExternalDocs(o *ordered.Object, docs *ExternalDocs, path string) error {
	if docs == nil {
		return nil
	}
	d := ordered.New(2)
	ordered.SetIfNotEmpty(d, "description", docs.Description)
	d.Set("url", docs.URL)
	if err := appendExtensions(d, docs.Extensions, path); err != nil {
		return err
	}
	o.Set("externalDocs", d)
	return nil
}

func (e *encoder) setTags(o *ordered.Object, tags []*Tag) error {
	if tags == nil {
		return nil
	}
	list := make([]*ordered.Object, 0, len(tags))
	for i, tag := range tags {
		path := indexPath("tags", i)
		if tag == nil {
			return serializationErr(path, "tag is nil")
		}
		t := ordered.New(3)
		t.Set("name", tag.Name)
		ordered.SetIfNotEmpty(t, "description", tag.Description)
		if err := e.setExternalDocs(t, tag.ExternalDocs, joinPath(path, "externalDocs")); err != nil {
			return err
		}
		if err := appendExtensions(t, tag.Extensions, path); err != nil {
			return err
		}
		list = append(list, t)
	}
	o.Set("tags", list)
	return nil
}

func (e *encoder) setServers(o *ordered.Object, servers []*Server, path string) error {
	if servers == nil {
		return nil
	}
	list := make([]*ordered.Object, 0, len(servers))
	for i, srv := range servers {
		p := indexPath(path, i)
		if srv == nil {
			return serializationErr(p, "server is nil")
		}
		s := ordered.New(3)
		s.Set("url", srv.URL)
		ordered.SetIfNotEmpty(s, "description", srv.Description)
		err := setMap(s, "variables", srv.Variables, func(v *ServerVariable, vp string) (*ordered.Object, error) {
			if v == nil {
				return nil, serializationErr(joinPath(p, vp), "server variable is nil")
			}
			vo := ordered.New(3)
			ordered.SetIfSliceNotNil(vo, "enum", v.Enum)
			vo.Set("default", v.Default)
			ordered.SetIfNotEmpty(vo, "description", v.Description)
			if err := appendExtensions(vo, v.Extensions, joinPath(p, vp)); err != nil {
				return nil, err
			}
			return vo, nil
		})
		if err != nil {
			return err
		}
		if err := appendExtensions(s, srv.Extensions, p); err != nil {
			return err
		}
		list = append(list, s)
	}
	o.Set("servers", list)
	return nil
}

// encodePaths writes the paths object. When required is true an empty or
// nil Paths is written as {}.
func (e *encoder) encodePaths(paths Paths, ext Extensions, required bool) (*ordered.Object, error) {
	o := ordered.New(len(paths))
	for _, tmpl := range ordered.SortedKeys(paths) {
		if IsExtensionKey(tmpl) {
			return nil, serializationErr("paths", "path template %q uses the extension prefix", tmpl)
		}
		item, err := e.encodePathItem(paths[tmpl], joinPath("paths", tmpl))
		if err != nil {
			return nil, err
		}
		o.Set(tmpl, item)
	}
	if err := appendExtensions(o, ext, "paths"); err != nil {
		return nil, err
	}
	if o.Len() == 0 && !required {
		return nil, nil
	}
	return o, nil
}

func (e *encoder) encodePathItem(item *PathItem, path string) (*ordered.Object, error) {
	if item == nil {
		return nil, serializationErr(path, "path item is nil")
	}
	o := ordered.New(10)
	ordered.SetIfNotEmpty(o, "$ref", item.Ref)
	if e.version != OASVersion20 {
		ordered.SetIfNotEmpty(o, "summary", item.Summary)
		ordered.SetIfNotEmpty(o, "description", item.Description)
	} else if item.Summary != "" || item.Description != "" || item.Trace != nil || len(item.Servers) > 0 {
		return nil, serializationErr(path, "summary, description, trace and servers require OAS 3")
	}
	for _, m := range pathItemMethods {
		op := *m.field(item)
		if op == nil {
			continue
		}
		opObj, err := e.encodeOperation(op, joinPath(path, m.name))
		if err != nil {
			return nil, err
		}
		o.Set(m.name, opObj)
	}
	if err := e.setServers(o, item.Servers, joinPath(path, "servers")); err != nil {
		return nil, err
	}
	if err := e.setParameterList(o, item.Parameters, joinPath(path, "parameters")); err != nil {
		return nil, err
	}
	if err := appendExtensions(o, item.Extensions, path); err != nil {
		return nil, err
	}
	return o, nil
}

func (e *encoder) encodeOperation(op *Operation, path string) (*ordered.Object, error) {
	o := ordered.New(14)
	ordered.SetIfSliceNotNil(o, "tags", op.Tags)
	ordered.SetIfNotEmpty(o, "summary", op.Summary)
	ordered.SetIfNotEmpty(o, "description", op.Description)
	if err := e.setExternalDocs(o, op.ExternalDocs, joinPath(path, "externalDocs")); err != nil {
		return nil, err
	}
	ordered.SetIfNotEmpty(o, "operationId", op.OperationID)
	if e.version == OASVersion20 {
		ordered.SetIfSliceNotNil(o, "consumes", op.Consumes)
		ordered.SetIfSliceNotNil(o, "produces", op.Produces)
	}
	if err := e.setParameterList(o, op.Parameters, joinPath(path, "parameters")); err != nil {
		return nil, err
	}
	if op.RequestBody != nil {
		if e.version == OASVersion20 {
			return nil, serializationErr(path, "requestBody requires OAS 3")
		}
		rb, err := e.encodeRequestBody(op.RequestBody, joinPath(path, "requestBody"))
		if err != nil {
			return nil, err
		}
		o.Set("requestBody", rb)
	}
	responses, err := e.encodeResponses(op.Responses, joinPath(path, "responses"))
	if err != nil {
		return nil, err
	}
	o.Set("responses", responses)
	if e.version == OASVersion20 {
		ordered.SetIfSliceNotNil(o, "schemes", op.Schemes)
	}
	ordered.SetIfTrue(o, "deprecated", op.Deprecated)
	setSecurity(o, op.Security)
	if e.version != OASVersion20 {
		if err := e.setServers(o, op.Servers, joinPath(path, "servers")); err != nil {
			return nil, err
		}
	}
	if err := appendExtensions(o, op.Extensions, path); err != nil {
		return nil, err
	}
	return o, nil
}

func (e *encoder) encodeResponses(r *Responses, path string) (*ordered.Object, error) {
	if r == nil {
		return nil, serializationErr(path, "responses are required")
	}
	o := ordered.New(len(r.Codes))
	// "default" first, then status codes in order
	if resp, ok := r.Codes["default"]; ok {
		ro, err := e.encodeResponse(resp, joinPath(path, "default"))
		if err != nil {
			return nil, err
		}
		o.Set("default", ro)
	}
	for _, code := range ordered.SortedKeys(r.Codes) {
		if code == "default" {
			continue
		}
		if IsExtensionKey(code) {
			return nil, serializationErr(path, "response code %q uses the extension prefix", code)
		}
		ro, err := e.encodeResponse(r.Codes[code], joinPath(path, code))
		if err != nil {
			return nil, err
		}
		o.Set(code, ro)
	}
	if err := appendExtensions(o, r.Extensions, path); err != nil {
		return nil, err
	}
	return o, nil
}

func (e *encoder) encodeResponse(resp *Response, path string) (*ordered.Object, error) {
	if resp == nil {
		return nil, serializationErr(path, "response is nil")
	}
	if resp.Ref != "" {
		return encodeReference(resp.Ref, resp.Extensions, path)
	}
	o := ordered.New(5)
	o.Set("description", resp.Description)
	if e.version == OASVersion20 {
		if err := e.setSchema(o, "schema", resp.Schema, path); err != nil {
			return nil, err
		}
	} else if resp.Schema != nil || len(resp.Examples) > 0 {
		return nil, serializationErr(path, "schema and examples are OAS 2.0 response fields")
	}
	if err := setMap(o, "headers", resp.Headers, prefixed(path, e.encodeHeader)); err != nil {
		return nil, err
	}
	if e.version == OASVersion20 {
		if err := setValueMap(o, "examples", resp.Examples, joinPath(path, "examples")); err != nil {
			return nil, err
		}
	} else if err := setMap(o, "content", resp.Content, prefixed(path, e.encodeMediaType)); err != nil {
		return nil, err
	}
	if err := appendExtensions(o, resp.Extensions, path); err != nil {
		return nil, err
	}
	return o, nil
}

// prefixed adapts an encode function so error paths include the parent.
func prefixed[T any](parent string, fn func(T, string) (*ordered.Object, error)) func(T, string) (*ordered.Object, error) {
	return func(v T, p string) (*ordered.Object, error) {
		return fn(v, joinPath(parent, p))
	}
}

func encodeReference(ref string, ext Extensions, path string) (*ordered.Object, error) {
	o := ordered.New(1)
	o.Set("$ref", ref)
	if err := appendExtensions(o, ext, path); err != nil {
		return nil, err
	}
	return o, nil
}

func (e *encoder) encodeMediaType(mt *MediaType, path string) (*ordered.Object, error) {
	if mt == nil {
		return nil, serializationErr(path, "media type is nil")
	}
	o := ordered.New(3)
	if err := e.setSchema(o, "schema", mt.Schema, path); err != nil {
		return nil, err
	}
	if err := setNullableValue(o, "example", mt.Example, mt.NullExample, path); err != nil {
		return nil, err
	}
	if err := setValueMap(o, "examples", mt.Examples, joinPath(path, "examples")); err != nil {
		return nil, err
	}
	if err := appendExtensions(o, mt.Extensions, path); err != nil {
		return nil, err
	}
	return o, nil
}

func (e *encoder) encodeRequestBody(rb *RequestBody, path string) (*ordered.Object, error) {
	if rb == nil {
		return nil, serializationErr(path, "request body is nil")
	}
	if rb.Ref != "" {
		return encodeReference(rb.Ref, rb.Extensions, path)
	}
	o := ordered.New(3)
	ordered.SetIfNotEmpty(o, "description", rb.Description)
	content := ordered.New(len(rb.Content))
	for _, mediaType := range ordered.SortedKeys(rb.Content) {
		mt, err := e.encodeMediaType(rb.Content[mediaType], joinPath(path, "content."+mediaType))
		if err != nil {
			return nil, err
		}
		content.Set(mediaType, mt)
	}
	o.Set("content", content)
	ordered.SetIfTrue(o, "required", rb.Required)
	if err := appendExtensions(o, rb.Extensions, path); err != nil {
		return nil, err
	}
	return o, nil
}

func (e *encoder) encodeHeader(h *Header, path string) (*ordered.Object, error) {
	if h == nil {
		return nil, serializationErr(path, "header is nil")
	}
	o := ordered.New(8)
	if e.version == OASVersion20 {
		ordered.SetIfNotEmpty(o, "description", h.Description)
		if err := e.setPrimitive(o, &h.Primitive, path, false); err != nil {
			return nil, err
		}
	} else {
		if h.Ref != "" {
			return encodeReference(h.Ref, h.Extensions, path)
		}
		ordered.SetIfNotEmpty(o, "description", h.Description)
		ordered.SetIfTrue(o, "required", h.Required)
		ordered.SetIfTrue(o, "deprecated", h.Deprecated)
		if err := e.setSchema(o, "schema", h.Schema, path); err != nil {
			return nil, err
		}
	}
	if err := appendExtensions(o, h.Extensions, path); err != nil {
		return nil, err
	}
	return o, nil
}

func (e *encoder) setParameterList(o *ordered.Object, params []ParameterOrRef, path string) error {
	if params == nil {
		return nil
	}
	list := make([]*ordered.Object, 0, len(params))
	for i, p := range params {
		po, err := e.encodeParameterOrRef(p, indexPath(path, i))
		if err != nil {
			return err
		}
		list = append(list, po)
	}
	o.Set("parameters", list)
	return nil
}

// encodeParameterOrRef enforces the exactly-one-variant invariant.
func (e *encoder) encodeParameterOrRef(p ParameterOrRef, path string) (*ordered.Object, error) {
	switch {
	case p.Ref != nil && p.Parameter != nil:
		return nil, serializationErr(path, "parameter entry holds both a reference and a parameter")
	case p.Ref != nil:
		return encodeReference(p.Ref.Ref, p.Ref.Extensions, path)
	case p.Parameter != nil:
		return e.encodeParameter(p.Parameter, path)
	}
	return nil, serializationErr(path, "parameter entry holds neither a reference nor a parameter")
}

func (e *encoder) encodeParameter(p *Parameter, path string) (*ordered.Object, error) {
	if p == nil {
		return nil, serializationErr(path, "parameter is nil")
	}
	if err := requireString(path, "name", p.Name); err != nil {
		return nil, err
	}
	if err := requireString(path, "in", p.In); err != nil {
		return nil, err
	}
	o := ordered.New(12)
	o.Set("name", p.Name)
	o.Set("in", p.In)
	ordered.SetIfNotEmpty(o, "description", p.Description)
	ordered.SetIfTrue(o, "required", p.Required)
	if e.version != OASVersion20 {
		ordered.SetIfTrue(o, "deprecated", p.Deprecated)
	}
	ordered.SetIfTrue(o, "allowEmptyValue", p.AllowEmptyValue)
	if e.version != OASVersion20 {
		ordered.SetIfNotEmpty(o, "style", p.Style)
		ordered.SetIfNotNil(o, "explode", p.Explode)
	}
	if err := e.setSchema(o, "schema", p.Schema, path); err != nil {
		return nil, err
	}
	if e.version == OASVersion20 {
		if err := e.setPrimitive(o, &p.Primitive, path, false); err != nil {
			return nil, err
		}
	} else {
		if err := setNullableValue(o, "example", p.Example, p.NullExample, path); err != nil {
			return nil, err
		}
		if err := setMap(o, "content", p.Content, prefixed(path, e.encodeMediaType)); err != nil {
			return nil, err
		}
	}
	if err := appendExtensions(o, p.Extensions, path); err != nil {
		return nil, err
	}
	return o, nil
}

// setPrimitive writes the OAS 2.0 primitive fields. Items objects always
// carry "type".
func (e *encoder) setPrimitive(o *ordered.Object, p *Primitive, path string, requireType bool) error {
	if requireType {
		o.Set("type", p.Type)
	} else {
		ordered.SetIfNotEmpty(o, "type", p.Type)
	}
	ordered.SetIfNotEmpty(o, "format", p.Format)
	if p.Items != nil {
		items, err := e.encodeItems(p.Items, joinPath(path, "items"))
		if err != nil {
			return err
		}
		o.Set("items", items)
	}
	ordered.SetIfNotEmpty(o, "collectionFormat", p.CollectionFormat)
	if p.Default != nil {
		if p.Default.Kind() == DefaultNone {
			return serializationErr(joinPath(path, "default"), "default holds no value")
		}
		o.Set("default", p.Default.Value())
	}
	setNumber(o, "maximum", p.Maximum)
	ordered.SetIfTrue(o, "exclusiveMaximum", p.ExclusiveMaximum)
	setNumber(o, "minimum", p.Minimum)
	ordered.SetIfTrue(o, "exclusiveMinimum", p.ExclusiveMinimum)
	setInt(o, "maxLength", p.MaxLength)
	setInt(o, "minLength", p.MinLength)
	ordered.SetIfNotEmpty(o, "pattern", p.Pattern)
	setInt(o, "maxItems", p.MaxItems)
	setInt(o, "minItems", p.MinItems)
	ordered.SetIfTrue(o, "uniqueItems", p.UniqueItems)
	if p.Enum != nil {
		if err := setValue(o, "enum", p.Enum, path); err != nil {
			return err
		}
	}
	setNumber(o, "multipleOf", p.MultipleOf)
	return nil
}

func (e *encoder) encodeItems(it *Items, path string) (*ordered.Object, error) {
	o := ordered.New(6)
	if err := e.setPrimitive(o, &it.Primitive, path, true); err != nil {
		return nil, err
	}
	if err := appendExtensions(o, it.Extensions, path); err != nil {
		return nil, err
	}
	return o, nil
}

func (e *encoder) encodeSecurityScheme(s SecurityScheme, path string) (*ordered.Object, error) {
	if s == nil {
		return nil, serializationErr(path, "security scheme is nil")
	}
	o := ordered.New(6)
	o.Set("type", s.Type())
	ordered.SetIfNotEmpty(o, "description", s.Common().Description)

	switch v := s.(type) {
	case *APIKeyScheme:
		if err := requireString(path, "name", v.Name); err != nil {
			return nil, err
		}
		if err := requireString(path, "in", v.In); err != nil {
			return nil, err
		}
		o.Set("name", v.Name)
		o.Set("in", v.In)
	case *OAuth2Scheme:
		if e.version != OASVersion20 {
			return nil, serializationErr(path, "single-flow oauth2 schemes are OAS 2.0 only")
		}
		o.Set("flow", v.Flow)
		ordered.SetIfNotEmpty(o, "authorizationUrl", v.AuthorizationURL)
		ordered.SetIfNotEmpty(o, "tokenUrl", v.TokenURL)
		o.Set("scopes", scopesOrEmpty(v.Scopes))
	case *BasicScheme:
		if e.version != OASVersion20 {
			return nil, serializationErr(path, "basic schemes are OAS 2.0 only")
		}
	case *HTTPScheme:
		if e.version == OASVersion20 {
			return nil, serializationErr(path, "http schemes require OAS 3")
		}
		o.Set("scheme", v.Scheme)
		ordered.SetIfNotEmpty(o, "bearerFormat", v.BearerFormat)
	case *OAuth2FlowsScheme:
		if e.version == OASVersion20 {
			return nil, serializationErr(path, "oauth2 flows require OAS 3")
		}
		flows, err := encodeOAuthFlows(v.Flows, joinPath(path, "flows"))
		if err != nil {
			return nil, err
		}
		o.Set("flows", flows)
	case *OpenIDConnectScheme:
		if e.version == OASVersion20 {
			return nil, serializationErr(path, "openIdConnect schemes require OAS 3")
		}
		o.Set("openIdConnectUrl", v.OpenIDConnectURL)
	default:
		return nil, serializationErr(path, "unsupported security scheme %T", s)
	}

	if err := appendExtensions(o, s.Common().Extensions, path); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeOAuthFlows(flows *OAuthFlows, path string) (*ordered.Object, error) {
	if flows == nil {
		return nil, serializationErr(path, "flows are required")
	}
	o := ordered.New(4)
	slots := []struct {
		key  string
		flow *OAuthFlow
	}{
		{"implicit", flows.Implicit},
		{"password", flows.Password},
		{"clientCredentials", flows.ClientCredentials},
		{"authorizationCode", flows.AuthorizationCode},
	}
	for _, slot := range slots {
		if slot.flow == nil {
			continue
		}
		fp := joinPath(path, slot.key)
		f := ordered.New(4)
		ordered.SetIfNotEmpty(f, "authorizationUrl", slot.flow.AuthorizationURL)
		ordered.SetIfNotEmpty(f, "tokenUrl", slot.flow.TokenURL)
		ordered.SetIfNotEmpty(f, "refreshUrl", slot.flow.RefreshURL)
		f.Set("scopes", scopesOrEmpty(slot.flow.Scopes))
		if err := appendExtensions(f, slot.flow.Extensions, fp); err != nil {
			return nil, err
		}
		o.Set(slot.key, f)
	}
	if err := appendExtensions(o, flows.Extensions, path); err != nil {
		return nil, err
	}
	return o, nil
}

func scopesOrEmpty(scopes map[string]string) map[string]string {
	if scopes == nil {
		return map[string]string{}
	}
	return scopes
}

func orderedJSON(obj *ordered.Object, indent string) ([]byte, error) {
	out, err := ordered.MarshalJSON(obj, indent)
	if err != nil {
		return nil, &oaserrors.SerializationError{Message: "failed to write JSON", Cause: err}
	}
	return out, nil
}

func orderedYAML(obj *ordered.Object) ([]byte, error) {
	out, err := ordered.MarshalYAML(obj)
	if err != nil {
		return nil, &oaserrors.SerializationError{Message: "failed to write YAML", Cause: err}
	}
	return out, nil
}
