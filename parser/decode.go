package parser

import (
	"errors"
	"fmt"

	"github.com/erraggy/oasmodel/internal/httputil"
	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/parser/internal/ordered"
)

// Known field sets per object kind. Keys outside these sets that are not
// extensions are reported as unknown fields.
var (
	oas2RootFields = newFieldSet("swagger", "info", "host", "basePath", "schemes", "consumes", "produces",
		"paths", "definitions", "parameters", "responses", "securityDefinitions", "security", "tags", "externalDocs")
	oas3RootFields = newFieldSet("openapi", "info", "servers", "paths", "components", "security", "tags",
		"externalDocs")
	componentsFields = newFieldSet("schemas", "responses", "parameters", "examples", "requestBodies",
		"headers", "securitySchemes")

	infoFields           = newFieldSet("title", "description", "termsOfService", "contact", "license", "version")
	contactFields        = newFieldSet("name", "url", "email")
	licenseFields        = newFieldSet("name", "url")
	externalDocsFields   = newFieldSet("description", "url")
	tagFields            = newFieldSet("name", "description", "externalDocs")
	serverFields         = newFieldSet("url", "description", "variables")
	serverVariableFields = newFieldSet("enum", "default", "description")

	pathItem2Fields = newFieldSet("$ref", "get", "put", "post", "delete", "options", "head", "patch", "parameters")
	pathItem3Fields = newFieldSet("$ref", "summary", "description", "get", "put", "post", "delete", "options",
		"head", "patch", "trace", "servers", "parameters")

	operation2Fields = newFieldSet("tags", "summary", "description", "externalDocs", "operationId", "consumes",
		"produces", "parameters", "responses", "schemes", "deprecated", "security")
	operation3Fields = newFieldSet("tags", "summary", "description", "externalDocs", "operationId",
		"parameters", "requestBody", "responses", "deprecated", "security", "servers")

	response2Fields    = newFieldSet("description", "schema", "headers", "examples")
	response3Fields    = newFieldSet("description", "headers", "content")
	mediaTypeFields    = newFieldSet("schema", "example", "examples")
	requestBodyFields  = newFieldSet("description", "content", "required")
	primitiveFieldList = []string{"type", "format", "items", "collectionFormat", "default", "maximum",
		"exclusiveMaximum", "minimum", "exclusiveMinimum", "maxLength", "minLength", "pattern", "maxItems",
		"minItems", "uniqueItems", "enum", "multipleOf"}
	itemsFields      = newFieldSet(primitiveFieldList...)
	header2Fields    = newFieldSet(append([]string{"description"}, primitiveFieldList...)...)
	header3Fields    = newFieldSet("description", "required", "deprecated", "schema")
	parameter2Fields = newFieldSet(append([]string{"name", "in", "description", "required", "schema",
		"allowEmptyValue"}, primitiveFieldList...)...)
	parameter3Fields = newFieldSet("name", "in", "description", "required", "deprecated", "allowEmptyValue",
		"style", "explode", "schema", "example", "content")

	schemaFields = newFieldSet("$ref", "title", "description", "default", "example", "deprecated", "type",
		"format", "enum", "multipleOf", "maximum", "exclusiveMaximum", "minimum", "exclusiveMinimum",
		"maxLength", "minLength", "pattern", "items", "maxItems", "minItems", "uniqueItems", "properties",
		"additionalProperties", "required", "maxProperties", "minProperties", "allOf", "anyOf", "oneOf", "not",
		"nullable", "discriminator", "readOnly", "writeOnly", "externalDocs", "xml")
	discriminatorFields = newFieldSet("propertyName", "mapping")
	xmlFields           = newFieldSet("name", "namespace", "prefix", "attribute", "wrapped")
)

// decoder turns a value tree into the typed model. It carries the
// per-parse settings and collects warnings.
type decoder struct {
	version  OASVersion
	strict   bool
	maxDepth int
	logger   Logger
	warnings []string
}

// unknownField reports a key that is neither a typed field nor an
// extension. Strict decoders fail; others record a warning and drop it.
func (d *decoder) unknownField(path, key string) error {
	if d.strict {
		return &oaserrors.SchemaMismatchError{Path: path, Field: key, Message: "unknown field"}
	}
	where := path
	if where == "" {
		where = "document root"
	}
	d.warnings = append(d.warnings, fmt.Sprintf("%s: unknown field %q ignored", where, key))
	d.logger.Warn("unknown field ignored", "path", where, "field", key)
	return nil
}

// nullIgnored records a null for a field that has no null form.
func (d *decoder) nullIgnored(path, key string) {
	where := path
	if where == "" {
		where = "document root"
	}
	d.warnings = append(d.warnings, fmt.Sprintf("%s: null %q ignored", where, key))
	d.logger.Warn("null value ignored", "path", where, "field", key)
}

func (d *decoder) decodeOAS2(root map[string]any) (*OAS2Document, error) {
	if err := requireAll(root, "", "document", "info", "paths"); err != nil {
		return nil, err
	}
	doc := &OAS2Document{}
	var err error
	if doc.Swagger, err = mapGetString(root, "swagger", ""); err != nil {
		return nil, err
	}
	if doc.Info, err = d.decodeInfoField(root, ""); err != nil {
		return nil, err
	}
	if doc.Host, err = mapGetString(root, "host", ""); err != nil {
		return nil, err
	}
	if doc.BasePath, err = mapGetString(root, "basePath", ""); err != nil {
		return nil, err
	}
	if doc.Schemes, err = mapGetStringSlice(root, "schemes", ""); err != nil {
		return nil, err
	}
	if doc.Consumes, err = mapGetStringSlice(root, "consumes", ""); err != nil {
		return nil, err
	}
	if doc.Produces, err = mapGetStringSlice(root, "produces", ""); err != nil {
		return nil, err
	}
	if doc.Paths, doc.PathsExtensions, err = d.decodePaths(root, ""); err != nil {
		return nil, err
	}
	if doc.Definitions, err = decodeMap(root, "definitions", "", d.decodeRootSchema); err != nil {
		return nil, err
	}
	if doc.Parameters, err = decodeMap(root, "parameters", "", d.decodeParameter); err != nil {
		return nil, err
	}
	if doc.Responses, err = decodeMap(root, "responses", "", d.decodeResponse); err != nil {
		return nil, err
	}
	if doc.SecurityDefinitions, err = decodeMap(root, "securityDefinitions", "", d.decodeSecurityScheme); err != nil {
		return nil, err
	}
	if doc.Security, err = decodeList(root, "security", "", decodeSecurityRequirement); err != nil {
		return nil, err
	}
	if doc.Tags, err = decodeList(root, "tags", "", d.decodeTag); err != nil {
		return nil, err
	}
	if doc.ExternalDocs, err = d.decodeExternalDocsField(root, ""); err != nil {
		return nil, err
	}
	if doc.Extensions, err = d.captureExtensions(root, oas2RootFields, ""); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *decoder) decodeOAS3(root map[string]any) (*OAS3Document, error) {
	required := []string{"info"}
	// paths became optional in 3.1
	if d.version == OASVersion30 {
		required = append(required, "paths")
	}
	if err := requireAll(root, "", "document", required...); err != nil {
		return nil, err
	}
	doc := &OAS3Document{}
	var err error
	if doc.OpenAPI, err = mapGetString(root, "openapi", ""); err != nil {
		return nil, err
	}
	if doc.Info, err = d.decodeInfoField(root, ""); err != nil {
		return nil, err
	}
	if doc.Servers, err = decodeList(root, "servers", "", d.decodeServer); err != nil {
		return nil, err
	}
	if doc.Paths, doc.PathsExtensions, err = d.decodePaths(root, ""); err != nil {
		return nil, err
	}
	if compObj, ok, err := mapGetObject(root, "components", ""); err != nil {
		return nil, err
	} else if ok {
		if doc.Components, err = d.decodeComponents(compObj, "components"); err != nil {
			return nil, err
		}
	}
	if doc.Security, err = decodeList(root, "security", "", decodeSecurityRequirement); err != nil {
		return nil, err
	}
	if doc.Tags, err = decodeList(root, "tags", "", d.decodeTag); err != nil {
		return nil, err
	}
	if doc.ExternalDocs, err = d.decodeExternalDocsField(root, ""); err != nil {
		return nil, err
	}
	if doc.Extensions, err = d.captureExtensions(root, oas3RootFields, ""); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *decoder) decodeComponents(obj map[string]any, path string) (*Components, error) {
	c := &Components{}
	var err error
	if c.Schemas, err = decodeMap(obj, "schemas", path, d.decodeRootSchema); err != nil {
		return nil, err
	}
	if c.Responses, err = decodeMap(obj, "responses", path, d.decodeResponse); err != nil {
		return nil, err
	}
	if c.Parameters, err = decodeMap(obj, "parameters", path, d.decodeParameterOrRef); err != nil {
		return nil, err
	}
	if c.Examples, err = mapGetValueMap(obj, "examples", path); err != nil {
		return nil, err
	}
	if c.RequestBodies, err = decodeMap(obj, "requestBodies", path, d.decodeRequestBody); err != nil {
		return nil, err
	}
	if c.Headers, err = decodeMap(obj, "headers", path, d.decodeHeader); err != nil {
		return nil, err
	}
	if c.SecuritySchemes, err = decodeMap(obj, "securitySchemes", path, d.decodeSecurityScheme); err != nil {
		return nil, err
	}
	if c.Extensions, err = d.captureExtensions(obj, componentsFields, path); err != nil {
		return nil, err
	}
	return c, nil
}

func (d *decoder) decodeInfoField(m map[string]any, path string) (*Info, error) {
	obj, ok, err := mapGetObject(m, "info", path)
	if err != nil || !ok {
		return nil, err
	}
	path = joinPath(path, "info")
	info := &Info{}
	if info.Title, err = mapGetString(obj, "title", path); err != nil {
		return nil, err
	}
	if info.Description, err = mapGetString(obj, "description", path); err != nil {
		return nil, err
	}
	if info.TermsOfService, err = mapGetString(obj, "termsOfService", path); err != nil {
		return nil, err
	}
	if info.Version, err = mapGetString(obj, "version", path); err != nil {
		return nil, err
	}
	if contactObj, ok, err := mapGetObject(obj, "contact", path); err != nil {
		return nil, err
	} else if ok {
		if info.Contact, err = d.decodeContact(contactObj, joinPath(path, "contact")); err != nil {
			return nil, err
		}
	}
	if licenseObj, ok, err := mapGetObject(obj, "license", path); err != nil {
		return nil, err
	} else if ok {
		if info.License, err = d.decodeLicense(licenseObj, joinPath(path, "license")); err != nil {
			return nil, err
		}
	}
	if info.Extensions, err = d.captureExtensions(obj, infoFields, path); err != nil {
		return nil, err
	}
	return info, nil
}

func (d *decoder) decodeContact(obj map[string]any, path string) (*Contact, error) {
	c := &Contact{}
	var err error
	if c.Name, err = mapGetString(obj, "name", path); err != nil {
		return nil, err
	}
	if c.URL, err = mapGetString(obj, "url", path); err != nil {
		return nil, err
	}
	if c.Email, err = mapGetString(obj, "email", path); err != nil {
		return nil, err
	}
	if c.Extensions, err = d.captureExtensions(obj, contactFields, path); err != nil {
		return nil, err
	}
	return c, nil
}

func (d *decoder) decodeLicense(obj map[string]any, path string) (*License, error) {
	l := &License{}
	var err error
	if l.Name, err = mapRequireString(obj, "name", path); err != nil {
		return nil, err
	}
	if l.URL, err = mapGetString(obj, "url", path); err != nil {
		return nil, err
	}
	if l.Extensions, err = d.captureExtensions(obj, licenseFields, path); err != nil {
		return nil, err
	}
	return l, nil
}

func (d *decoder) decodeExternalDocsField(m map[string]any, path string) (*ExternalDocs, error) {
	obj, ok, err := mapGetObject(m, "externalDocs", path)
	if err != nil || !ok {
		return nil, err
	}
	path = joinPath(path, "externalDocs")
	e := &ExternalDocs{}
	if e.URL, err = mapRequireString(obj, "url", path); err != nil {
		return nil, err
	}
	if e.Description, err = mapGetString(obj, "description", path); err != nil {
		return nil, err
	}
	if e.Extensions, err = d.captureExtensions(obj, externalDocsFields, path); err != nil {
		return nil, err
	}
	return e, nil
}

func (d *decoder) decodeTag(v any, path string) (*Tag, error) {
	obj, err := asObject(v, path, "tag")
	if err != nil {
		return nil, err
	}
	t := &Tag{}
	if t.Name, err = mapRequireString(obj, "name", path); err != nil {
		return nil, err
	}
	if t.Description, err = mapGetString(obj, "description", path); err != nil {
		return nil, err
	}
	if t.ExternalDocs, err = d.decodeExternalDocsField(obj, path); err != nil {
		return nil, err
	}
	if t.Extensions, err = d.captureExtensions(obj, tagFields, path); err != nil {
		return nil, err
	}
	return t, nil
}

func (d *decoder) decodeServer(v any, path string) (*Server, error) {
	obj, err := asObject(v, path, "server")
	if err != nil {
		return nil, err
	}
	s := &Server{}
	if s.URL, err = mapRequireString(obj, "url", path); err != nil {
		return nil, err
	}
	if s.Description, err = mapGetString(obj, "description", path); err != nil {
		return nil, err
	}
	if s.Variables, err = decodeMap(obj, "variables", path, d.decodeServerVariable); err != nil {
		return nil, err
	}
	if s.Extensions, err = d.captureExtensions(obj, serverFields, path); err != nil {
		return nil, err
	}
	return s, nil
}

func (d *decoder) decodeServerVariable(v any, path string) (*ServerVariable, error) {
	obj, err := asObject(v, path, "serverVariable")
	if err != nil {
		return nil, err
	}
	sv := &ServerVariable{}
	if sv.Default, err = mapRequireString(obj, "default", path); err != nil {
		return nil, err
	}
	if sv.Enum, err = mapGetStringSlice(obj, "enum", path); err != nil {
		return nil, err
	}
	if sv.Description, err = mapGetString(obj, "description", path); err != nil {
		return nil, err
	}
	if sv.Extensions, err = d.captureExtensions(obj, serverVariableFields, path); err != nil {
		return nil, err
	}
	return sv, nil
}

// decodePaths decodes the "paths" object into path items and the
// extensions that sit beside the path templates.
func (d *decoder) decodePaths(m map[string]any, path string) (Paths, Extensions, error) {
	obj, ok, err := mapGetObject(m, "paths", path)
	if err != nil || !ok {
		return nil, nil, err
	}
	paths := make(Paths, len(obj))
	var ext Extensions
	for _, tmpl := range ordered.SortedKeys(obj) {
		if IsExtensionKey(tmpl) {
			n, err := normalizeValue(obj[tmpl])
			if err != nil {
				return nil, nil, &oaserrors.DecodeError{Path: joinPath("paths", tmpl), Message: "extension value is not a plain value tree", Cause: err}
			}
			if ext == nil {
				ext = make(Extensions)
			}
			ext[tmpl] = n
			continue
		}
		item, err := d.decodePathItem(obj[tmpl], joinPath("paths", tmpl))
		if err != nil {
			return nil, nil, err
		}
		paths[tmpl] = item
	}
	return paths, ext, nil
}

func (d *decoder) decodePathItem(v any, path string) (*PathItem, error) {
	obj, err := asObject(v, path, "pathItem")
	if err != nil {
		return nil, err
	}
	known := pathItem3Fields
	if d.version == OASVersion20 {
		known = pathItem2Fields
	}
	item := &PathItem{}
	if item.Ref, err = mapGetString(obj, "$ref", path); err != nil {
		return nil, err
	}
	if known["summary"] {
		if item.Summary, err = mapGetString(obj, "summary", path); err != nil {
			return nil, err
		}
		if item.Description, err = mapGetString(obj, "description", path); err != nil {
			return nil, err
		}
		if item.Servers, err = decodeList(obj, "servers", path, d.decodeServer); err != nil {
			return nil, err
		}
	}
	for _, m := range pathItemMethods {
		if !known[m.name] {
			continue
		}
		opObj, ok, err := mapGetObject(obj, m.name, path)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if *m.field(item), err = d.decodeOperation(opObj, joinPath(path, m.name)); err != nil {
			return nil, err
		}
	}
	if item.Parameters, err = decodeList(obj, "parameters", path, d.decodeParameterOrRef); err != nil {
		return nil, err
	}
	if item.Extensions, err = d.captureExtensions(obj, known, path); err != nil {
		return nil, err
	}
	return item, nil
}

func (d *decoder) decodeOperation(obj map[string]any, path string) (*Operation, error) {
	if err := requireAll(obj, path, "operation", "responses"); err != nil {
		return nil, err
	}
	known := operation3Fields
	if d.version == OASVersion20 {
		known = operation2Fields
	}
	op := &Operation{}
	var err error
	if op.Tags, err = mapGetStringSlice(obj, "tags", path); err != nil {
		return nil, err
	}
	if op.Summary, err = mapGetString(obj, "summary", path); err != nil {
		return nil, err
	}
	if op.Description, err = mapGetString(obj, "description", path); err != nil {
		return nil, err
	}
	if op.ExternalDocs, err = d.decodeExternalDocsField(obj, path); err != nil {
		return nil, err
	}
	if op.OperationID, err = mapGetString(obj, "operationId", path); err != nil {
		return nil, err
	}
	if op.Parameters, err = decodeList(obj, "parameters", path, d.decodeParameterOrRef); err != nil {
		return nil, err
	}
	if op.Deprecated, err = mapGetBool(obj, "deprecated", path); err != nil {
		return nil, err
	}
	if op.Security, err = decodeList(obj, "security", path, decodeSecurityRequirement); err != nil {
		return nil, err
	}
	if d.version == OASVersion20 {
		if op.Consumes, err = mapGetStringSlice(obj, "consumes", path); err != nil {
			return nil, err
		}
		if op.Produces, err = mapGetStringSlice(obj, "produces", path); err != nil {
			return nil, err
		}
		if op.Schemes, err = mapGetStringSlice(obj, "schemes", path); err != nil {
			return nil, err
		}
	} else {
		if rbObj, ok := lookup(obj, "requestBody"); ok {
			if op.RequestBody, err = d.decodeRequestBody(rbObj, joinPath(path, "requestBody")); err != nil {
				return nil, err
			}
		}
		if op.Servers, err = decodeList(obj, "servers", path, d.decodeServer); err != nil {
			return nil, err
		}
	}
	respObj, _, err := mapGetObject(obj, "responses", path)
	if err != nil {
		return nil, err
	}
	if op.Responses, err = d.decodeResponses(respObj, joinPath(path, "responses")); err != nil {
		return nil, err
	}
	if op.Extensions, err = d.captureExtensions(obj, known, path); err != nil {
		return nil, err
	}
	return op, nil
}

// decodeResponses splits a responses object into status codes and
// extensions. Keys that are neither are unknown fields.
func (d *decoder) decodeResponses(obj map[string]any, path string) (*Responses, error) {
	r := &Responses{Codes: make(map[string]*Response, len(obj))}
	for _, code := range ordered.SortedKeys(obj) {
		switch {
		case IsExtensionKey(code):
			n, err := normalizeValue(obj[code])
			if err != nil {
				return nil, &oaserrors.DecodeError{Path: joinPath(path, code), Message: "extension value is not a plain value tree", Cause: err}
			}
			if r.Extensions == nil {
				r.Extensions = make(Extensions)
			}
			r.Extensions[code] = n
		case code == "default" || httputil.ValidateStatusCode(code):
			resp, err := d.decodeResponse(obj[code], joinPath(path, code))
			if err != nil {
				return nil, err
			}
			r.Codes[code] = resp
		default:
			if err := d.unknownField(path, code); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func (d *decoder) decodeResponse(v any, path string) (*Response, error) {
	obj, err := asObject(v, path, "response")
	if err != nil {
		return nil, err
	}
	if _, ok := obj["$ref"]; ok {
		ref, err := d.decodeReference(obj, path)
		if err != nil {
			return nil, err
		}
		return &Response{Ref: ref.Ref, Extensions: ref.Extensions}, nil
	}

	resp := &Response{}
	if resp.Description, err = mapRequireString(obj, "description", path); err != nil {
		return nil, err
	}
	if resp.Headers, err = decodeMap(obj, "headers", path, d.decodeHeader); err != nil {
		return nil, err
	}
	known := response3Fields
	if d.version == OASVersion20 {
		known = response2Fields
		if resp.Schema, err = d.decodeSchemaField(obj, "schema", path); err != nil {
			return nil, err
		}
		if resp.Examples, err = mapGetValueMap(obj, "examples", path); err != nil {
			return nil, err
		}
	} else {
		if resp.Content, err = decodeMap(obj, "content", path, d.decodeMediaType); err != nil {
			return nil, err
		}
	}
	if resp.Extensions, err = d.captureExtensions(obj, known, path); err != nil {
		return nil, err
	}
	return resp, nil
}

func (d *decoder) decodeMediaType(v any, path string) (*MediaType, error) {
	obj, err := asObject(v, path, "mediaType")
	if err != nil {
		return nil, err
	}
	mt := &MediaType{}
	if mt.Schema, err = d.decodeSchemaField(obj, "schema", path); err != nil {
		return nil, err
	}
	mt.Example, mt.NullExample = lookupValue(obj, "example")
	if mt.Examples, err = mapGetValueMap(obj, "examples", path); err != nil {
		return nil, err
	}
	if mt.Extensions, err = d.captureExtensions(obj, mediaTypeFields, path); err != nil {
		return nil, err
	}
	return mt, nil
}

func (d *decoder) decodeRequestBody(v any, path string) (*RequestBody, error) {
	obj, err := asObject(v, path, "requestBody")
	if err != nil {
		return nil, err
	}
	if _, ok := obj["$ref"]; ok {
		ref, err := d.decodeReference(obj, path)
		if err != nil {
			return nil, err
		}
		return &RequestBody{Ref: ref.Ref, Extensions: ref.Extensions}, nil
	}
	if err := requireAll(obj, path, "requestBody", "content"); err != nil {
		return nil, err
	}
	rb := &RequestBody{}
	if rb.Description, err = mapGetString(obj, "description", path); err != nil {
		return nil, err
	}
	if rb.Content, err = decodeMap(obj, "content", path, d.decodeMediaType); err != nil {
		return nil, err
	}
	if rb.Required, err = mapGetBool(obj, "required", path); err != nil {
		return nil, err
	}
	if rb.Extensions, err = d.captureExtensions(obj, requestBodyFields, path); err != nil {
		return nil, err
	}
	return rb, nil
}

func (d *decoder) decodeHeader(v any, path string) (*Header, error) {
	obj, err := asObject(v, path, "header")
	if err != nil {
		return nil, err
	}
	h := &Header{}
	if d.version == OASVersion20 {
		if h.Description, err = mapGetString(obj, "description", path); err != nil {
			return nil, err
		}
		if h.Primitive, err = d.decodePrimitive(obj, path, 1); err != nil {
			return nil, err
		}
		if h.Extensions, err = d.captureExtensions(obj, header2Fields, path); err != nil {
			return nil, err
		}
		return h, nil
	}

	if _, ok := obj["$ref"]; ok {
		ref, err := d.decodeReference(obj, path)
		if err != nil {
			return nil, err
		}
		return &Header{Ref: ref.Ref, Extensions: ref.Extensions}, nil
	}
	if h.Description, err = mapGetString(obj, "description", path); err != nil {
		return nil, err
	}
	if h.Required, err = mapGetBool(obj, "required", path); err != nil {
		return nil, err
	}
	if h.Deprecated, err = mapGetBool(obj, "deprecated", path); err != nil {
		return nil, err
	}
	if h.Schema, err = d.decodeSchemaField(obj, "schema", path); err != nil {
		return nil, err
	}
	if h.Extensions, err = d.captureExtensions(obj, header3Fields, path); err != nil {
		return nil, err
	}
	return h, nil
}

// decodeParameterObject decodes the fields of a Parameter whose name and
// location are known to be present.
func (d *decoder) decodeParameterObject(obj map[string]any, path string) (*Parameter, error) {
	if err := requireNonEmpty(obj, path, "name", "in"); err != nil {
		return nil, err
	}
	p := &Parameter{}
	var err error
	if p.Name, err = mapGetString(obj, "name", path); err != nil {
		return nil, err
	}
	if p.In, err = mapGetString(obj, "in", path); err != nil {
		return nil, err
	}
	if p.Description, err = mapGetString(obj, "description", path); err != nil {
		return nil, err
	}
	if p.Required, err = mapGetBool(obj, "required", path); err != nil {
		return nil, err
	}
	if p.AllowEmptyValue, err = mapGetBool(obj, "allowEmptyValue", path); err != nil {
		return nil, err
	}
	if p.Schema, err = d.decodeSchemaField(obj, "schema", path); err != nil {
		return nil, err
	}

	known := parameter3Fields
	if d.version == OASVersion20 {
		known = parameter2Fields
		if p.Primitive, err = d.decodePrimitive(obj, path, 1); err != nil {
			return nil, err
		}
	} else {
		if p.Deprecated, err = mapGetBool(obj, "deprecated", path); err != nil {
			return nil, err
		}
		if p.Style, err = mapGetString(obj, "style", path); err != nil {
			return nil, err
		}
		if p.Explode, err = mapGetBoolPtr(obj, "explode", path); err != nil {
			return nil, err
		}
		p.Example, p.NullExample = lookupValue(obj, "example")
		if p.Content, err = decodeMap(obj, "content", path, d.decodeMediaType); err != nil {
			return nil, err
		}
	}
	if p.Extensions, err = d.captureExtensions(obj, known, path); err != nil {
		return nil, err
	}
	return p, nil
}

// decodePrimitive reads the OAS 2.0 primitive type fields. depth counts
// nested items objects.
func (d *decoder) decodePrimitive(obj map[string]any, path string, depth int) (Primitive, error) {
	var p Primitive
	var err error
	if p.Type, err = mapGetString(obj, "type", path); err != nil {
		return p, err
	}
	if p.Format, err = mapGetString(obj, "format", path); err != nil {
		return p, err
	}
	if p.CollectionFormat, err = mapGetString(obj, "collectionFormat", path); err != nil {
		return p, err
	}
	if p.Pattern, err = mapGetString(obj, "pattern", path); err != nil {
		return p, err
	}
	if raw, present := obj["default"]; present {
		def, err := ResolveDefault(raw)
		switch {
		case err == nil:
			p.Default = &def
		case raw == nil && !d.strict:
			d.nullIgnored(path, "default")
		default:
			return p, withPath(err, path)
		}
	}
	if p.Maximum, err = mapGetFloat64Ptr(obj, "maximum", path); err != nil {
		return p, err
	}
	if p.ExclusiveMaximum, err = mapGetBool(obj, "exclusiveMaximum", path); err != nil {
		return p, err
	}
	if p.Minimum, err = mapGetFloat64Ptr(obj, "minimum", path); err != nil {
		return p, err
	}
	if p.ExclusiveMinimum, err = mapGetBool(obj, "exclusiveMinimum", path); err != nil {
		return p, err
	}
	if p.MaxLength, err = mapGetInt64Ptr(obj, "maxLength", path); err != nil {
		return p, err
	}
	if p.MinLength, err = mapGetInt64Ptr(obj, "minLength", path); err != nil {
		return p, err
	}
	if p.MaxItems, err = mapGetInt64Ptr(obj, "maxItems", path); err != nil {
		return p, err
	}
	if p.MinItems, err = mapGetInt64Ptr(obj, "minItems", path); err != nil {
		return p, err
	}
	if p.UniqueItems, err = mapGetBool(obj, "uniqueItems", path); err != nil {
		return p, err
	}
	if p.Enum, err = mapGetArray(obj, "enum", path); err != nil {
		return p, err
	}
	if p.MultipleOf, err = mapGetFloat64Ptr(obj, "multipleOf", path); err != nil {
		return p, err
	}
	if itemsObj, ok, err := mapGetObject(obj, "items", path); err != nil {
		return p, err
	} else if ok {
		if p.Items, err = d.decodeItems(itemsObj, joinPath(path, "items"), depth+1); err != nil {
			return p, err
		}
	}
	return p, nil
}

func (d *decoder) decodeItems(obj map[string]any, path string, depth int) (*Items, error) {
	if err := d.checkDepth(path, depth); err != nil {
		return nil, err
	}
	if err := requireAll(obj, path, "items", "type"); err != nil {
		return nil, err
	}
	it := &Items{}
	var err error
	if it.Primitive, err = d.decodePrimitive(obj, path, depth); err != nil {
		return nil, err
	}
	if it.Extensions, err = d.captureExtensions(obj, itemsFields, path); err != nil {
		return nil, err
	}
	return it, nil
}

func decodeSecurityRequirement(v any, path string) (SecurityRequirement, error) {
	obj, err := asObject(v, path, "securityRequirement")
	if err != nil {
		return nil, err
	}
	req := make(SecurityRequirement, len(obj))
	for name, scopes := range obj {
		arr, ok := scopes.([]any)
		if !ok {
			return nil, typeMismatch(path, name, "array", scopes)
		}
		list := make([]string, 0, len(arr))
		for i, s := range arr {
			str, ok := s.(string)
			if !ok {
				return nil, typeMismatch(path, indexPath(name, i), "string", s)
			}
			list = append(list, str)
		}
		req[name] = list
	}
	return req, nil
}

// withPath fills in the location of a SchemaMismatchError raised by a
// helper that does not know it.
func withPath(err error, path string) error {
	var sm *oaserrors.SchemaMismatchError
	if errors.As(err, &sm) && sm.Path == "" {
		sm.Path = path
	}
	return err
}
