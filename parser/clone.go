package parser

import (
	"maps"
	"slices"
)

// Clone returns an independent deep copy of the document. Mutating the
// copy never affects d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	return &Document{oas2: d.oas2.DeepCopy(), oas3: d.oas3.DeepCopy()}
}

// cloneMap deep-copies a map of model objects with fn.
func cloneMap[T any](m map[string]T, fn func(T) T) map[string]T {
	if m == nil {
		return nil
	}
	out := make(map[string]T, len(m))
	for k, v := range m {
		out[k] = fn(v)
	}
	return out
}

func cloneList[T any](s []T, fn func(T) T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneValueMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return cloneValue(m).(map[string]any)
}

func cloneValueList(s []any) []any {
	if s == nil {
		return nil
	}
	return cloneValue(s).([]any)
}

func cloneSecurity(reqs []SecurityRequirement) []SecurityRequirement {
	return cloneList(reqs, func(r SecurityRequirement) SecurityRequirement {
		return cloneMap(r, func(scopes []string) []string { return slices.Clone(scopes) })
	})
}

// DeepCopy creates a deep copy of the OAS 2.0 document.
func (in *OAS2Document) DeepCopy() *OAS2Document {
	if in == nil {
		return nil
	}
	out := *in
	out.Info = in.Info.DeepCopy()
	out.Schemes = slices.Clone(in.Schemes)
	out.Consumes = slices.Clone(in.Consumes)
	out.Produces = slices.Clone(in.Produces)
	out.Paths = in.Paths.DeepCopy()
	out.PathsExtensions = in.PathsExtensions.clone()
	out.Definitions = cloneMap(in.Definitions, (*Schema).DeepCopy)
	out.Parameters = cloneMap(in.Parameters, (*Parameter).DeepCopy)
	out.Responses = cloneMap(in.Responses, (*Response).DeepCopy)
	out.SecurityDefinitions = cloneMap(in.SecurityDefinitions, cloneSecurityScheme)
	out.Security = cloneSecurity(in.Security)
	out.Tags = cloneList(in.Tags, (*Tag).DeepCopy)
	out.ExternalDocs = in.ExternalDocs.DeepCopy()
	out.Extensions = in.Extensions.clone()
	return &out
}

// DeepCopy creates a deep copy of the OAS 3.x document.
func (in *OAS3Document) DeepCopy() *OAS3Document {
	if in == nil {
		return nil
	}
	out := *in
	out.Info = in.Info.DeepCopy()
	out.Servers = cloneList(in.Servers, (*Server).DeepCopy)
	out.Paths = in.Paths.DeepCopy()
	out.PathsExtensions = in.PathsExtensions.clone()
	out.Components = in.Components.DeepCopy()
	out.Security = cloneSecurity(in.Security)
	out.Tags = cloneList(in.Tags, (*Tag).DeepCopy)
	out.ExternalDocs = in.ExternalDocs.DeepCopy()
	out.Extensions = in.Extensions.clone()
	return &out
}

// DeepCopy creates a deep copy of the components.
func (in *Components) DeepCopy() *Components {
	if in == nil {
		return nil
	}
	return &Components{
		Schemas:         cloneMap(in.Schemas, (*Schema).DeepCopy),
		Responses:       cloneMap(in.Responses, (*Response).DeepCopy),
		Parameters:      cloneMap(in.Parameters, ParameterOrRef.DeepCopy),
		Examples:        cloneValueMap(in.Examples),
		RequestBodies:   cloneMap(in.RequestBodies, (*RequestBody).DeepCopy),
		Headers:         cloneMap(in.Headers, (*Header).DeepCopy),
		SecuritySchemes: cloneMap(in.SecuritySchemes, cloneSecurityScheme),
		Extensions:      in.Extensions.clone(),
	}
}

// DeepCopy creates a deep copy of the info object.
func (in *Info) DeepCopy() *Info {
	if in == nil {
		return nil
	}
	out := *in
	if in.Contact != nil {
		c := *in.Contact
		c.Extensions = in.Contact.Extensions.clone()
		out.Contact = &c
	}
	if in.License != nil {
		l := *in.License
		l.Extensions = in.License.Extensions.clone()
		out.License = &l
	}
	out.Extensions = in.Extensions.clone()
	return &out
}

// DeepCopy creates a deep copy of the external documentation object.
func (in *ExternalDocs) DeepCopy() *ExternalDocs {
	if in == nil {
		return nil
	}
	out := *in
	out.Extensions = in.Extensions.clone()
	return &out
}

// DeepCopy creates a deep copy of the tag.
func (in *Tag) DeepCopy() *Tag {
	if in == nil {
		return nil
	}
	out := *in
	out.ExternalDocs = in.ExternalDocs.DeepCopy()
	out.Extensions = in.Extensions.clone()
	return &out
}

// DeepCopy creates a deep copy of the server.
func (in *Server) DeepCopy() *Server {
	if in == nil {
		return nil
	}
	out := *in
	out.Variables = cloneMap(in.Variables, func(v *ServerVariable) *ServerVariable {
		if v == nil {
			return nil
		}
		cp := *v
		cp.Enum = slices.Clone(v.Enum)
		cp.Extensions = v.Extensions.clone()
		return &cp
	})
	out.Extensions = in.Extensions.clone()
	return &out
}

// DeepCopy creates a deep copy of the paths map.
func (in Paths) DeepCopy() Paths {
	return cloneMap(in, (*PathItem).DeepCopy)
}

// DeepCopy creates a deep copy of the path item.
func (in *PathItem) DeepCopy() *PathItem {
	if in == nil {
		return nil
	}
	out := *in
	for _, m := range pathItemMethods {
		*m.field(&out) = (*m.field(in)).DeepCopy()
	}
	out.Servers = cloneList(in.Servers, (*Server).DeepCopy)
	out.Parameters = cloneList(in.Parameters, ParameterOrRef.DeepCopy)
	out.Extensions = in.Extensions.clone()
	return &out
}

// DeepCopy creates a deep copy of the operation. A nil Security stays nil
// and an empty one stays empty.
func (in *Operation) DeepCopy() *Operation {
	if in == nil {
		return nil
	}
	out := *in
	out.Tags = slices.Clone(in.Tags)
	out.ExternalDocs = in.ExternalDocs.DeepCopy()
	out.Consumes = slices.Clone(in.Consumes)
	out.Produces = slices.Clone(in.Produces)
	out.Parameters = cloneList(in.Parameters, ParameterOrRef.DeepCopy)
	out.RequestBody = in.RequestBody.DeepCopy()
	if in.Responses != nil {
		out.Responses = &Responses{
			Codes:      cloneMap(in.Responses.Codes, (*Response).DeepCopy),
			Extensions: in.Responses.Extensions.clone(),
		}
	}
	out.Schemes = slices.Clone(in.Schemes)
	out.Security = cloneSecurity(in.Security)
	out.Servers = cloneList(in.Servers, (*Server).DeepCopy)
	out.Extensions = in.Extensions.clone()
	return &out
}

// DeepCopy creates a deep copy of the response.
func (in *Response) DeepCopy() *Response {
	if in == nil {
		return nil
	}
	out := *in
	out.Schema = in.Schema.DeepCopy()
	out.Headers = cloneMap(in.Headers, (*Header).DeepCopy)
	out.Examples = cloneValueMap(in.Examples)
	out.Content = cloneMap(in.Content, (*MediaType).DeepCopy)
	out.Extensions = in.Extensions.clone()
	return &out
}

// DeepCopy creates a deep copy of the media type.
func (in *MediaType) DeepCopy() *MediaType {
	if in == nil {
		return nil
	}
	return &MediaType{
		Schema:      in.Schema.DeepCopy(),
		Example:     cloneValue(in.Example),
		NullExample: in.NullExample,
		Examples:    cloneValueMap(in.Examples),
		Extensions:  in.Extensions.clone(),
	}
}

// DeepCopy creates a deep copy of the request body.
func (in *RequestBody) DeepCopy() *RequestBody {
	if in == nil {
		return nil
	}
	out := *in
	out.Content = cloneMap(in.Content, (*MediaType).DeepCopy)
	out.Extensions = in.Extensions.clone()
	return &out
}

// DeepCopy creates a deep copy of the parameter list entry.
func (in ParameterOrRef) DeepCopy() ParameterOrRef {
	out := ParameterOrRef{Parameter: in.Parameter.DeepCopy()}
	if in.Ref != nil {
		out.Ref = &Reference{Ref: in.Ref.Ref, Extensions: in.Ref.Extensions.clone()}
	}
	return out
}

// DeepCopy creates a deep copy of the parameter.
func (in *Parameter) DeepCopy() *Parameter {
	if in == nil {
		return nil
	}
	out := *in
	out.Schema = in.Schema.DeepCopy()
	out.Explode = clonePtr(in.Explode)
	out.Example = cloneValue(in.Example)
	out.Content = cloneMap(in.Content, (*MediaType).DeepCopy)
	out.Primitive = in.Primitive.deepCopy()
	out.Extensions = in.Extensions.clone()
	return &out
}

// DeepCopy creates a deep copy of the header.
func (in *Header) DeepCopy() *Header {
	if in == nil {
		return nil
	}
	out := *in
	out.Schema = in.Schema.DeepCopy()
	out.Primitive = in.Primitive.deepCopy()
	out.Extensions = in.Extensions.clone()
	return &out
}

func (in Primitive) deepCopy() Primitive {
	out := in
	if in.Items != nil {
		out.Items = &Items{
			Primitive:  in.Items.Primitive.deepCopy(),
			Extensions: in.Items.Extensions.clone(),
		}
	}
	out.Default = clonePtr(in.Default)
	out.Maximum = clonePtr(in.Maximum)
	out.Minimum = clonePtr(in.Minimum)
	out.MaxLength = clonePtr(in.MaxLength)
	out.MinLength = clonePtr(in.MinLength)
	out.MaxItems = clonePtr(in.MaxItems)
	out.MinItems = clonePtr(in.MinItems)
	out.Enum = cloneValueList(in.Enum)
	out.MultipleOf = clonePtr(in.MultipleOf)
	return out
}

// DeepCopy creates a deep copy of the schema tree.
func (in *Schema) DeepCopy() *Schema {
	if in == nil {
		return nil
	}
	out := *in
	out.Default = cloneValue(in.Default)
	out.Example = cloneValue(in.Example)
	out.Enum = cloneValueList(in.Enum)
	out.MultipleOf = clonePtr(in.MultipleOf)
	out.Maximum = clonePtr(in.Maximum)
	out.Minimum = clonePtr(in.Minimum)
	out.MaxLength = clonePtr(in.MaxLength)
	out.MinLength = clonePtr(in.MinLength)
	out.Items = in.Items.DeepCopy()
	out.MaxItems = clonePtr(in.MaxItems)
	out.MinItems = clonePtr(in.MinItems)
	out.Properties = cloneMap(in.Properties, (*Schema).DeepCopy)
	if in.AdditionalProperties != nil {
		out.AdditionalProperties = &AdditionalProperties{
			Allowed: in.AdditionalProperties.Allowed,
			Schema:  in.AdditionalProperties.Schema.DeepCopy(),
		}
	}
	out.Required = slices.Clone(in.Required)
	out.MaxProperties = clonePtr(in.MaxProperties)
	out.MinProperties = clonePtr(in.MinProperties)
	out.AllOf = cloneList(in.AllOf, (*Schema).DeepCopy)
	out.AnyOf = cloneList(in.AnyOf, (*Schema).DeepCopy)
	out.OneOf = cloneList(in.OneOf, (*Schema).DeepCopy)
	out.Not = in.Not.DeepCopy()
	if in.Discriminator != nil {
		out.Discriminator = &Discriminator{
			PropertyName: in.Discriminator.PropertyName,
			Mapping:      maps.Clone(in.Discriminator.Mapping),
			Extensions:   in.Discriminator.Extensions.clone(),
		}
	}
	out.ExternalDocs = in.ExternalDocs.DeepCopy()
	if in.XML != nil {
		x := *in.XML
		x.Extensions = in.XML.Extensions.clone()
		out.XML = &x
	}
	out.Extensions = in.Extensions.clone()
	return &out
}

// cloneSecurityScheme copies a scheme of any variant.
func cloneSecurityScheme(s SecurityScheme) SecurityScheme {
	switch v := s.(type) {
	case *APIKeyScheme:
		cp := *v
		cp.Extensions = v.Extensions.clone()
		return &cp
	case *OAuth2Scheme:
		cp := *v
		cp.Extensions = v.Extensions.clone()
		cp.Scopes = maps.Clone(v.Scopes)
		return &cp
	case *BasicScheme:
		cp := *v
		cp.Extensions = v.Extensions.clone()
		return &cp
	case *HTTPScheme:
		cp := *v
		cp.Extensions = v.Extensions.clone()
		return &cp
	case *OAuth2FlowsScheme:
		cp := *v
		cp.Extensions = v.Extensions.clone()
		if v.Flows != nil {
			flows := &OAuthFlows{Extensions: v.Flows.Extensions.clone()}
			flows.Implicit = cloneOAuthFlow(v.Flows.Implicit)
			flows.Password = cloneOAuthFlow(v.Flows.Password)
			flows.ClientCredentials = cloneOAuthFlow(v.Flows.ClientCredentials)
			flows.AuthorizationCode = cloneOAuthFlow(v.Flows.AuthorizationCode)
			cp.Flows = flows
		}
		return &cp
	case *OpenIDConnectScheme:
		cp := *v
		cp.Extensions = v.Extensions.clone()
		return &cp
	}
	return s
}

func cloneOAuthFlow(f *OAuthFlow) *OAuthFlow {
	if f == nil {
		return nil
	}
	cp := *f
	cp.Scopes = maps.Clone(f.Scopes)
	cp.Extensions = f.Extensions.clone()
	return &cp
}
