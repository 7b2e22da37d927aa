package parser

import (
	"github.com/erraggy/oasmodel/oaserrors"
)

var (
	oas2SecurityTypes = []string{SecurityTypeAPIKey, SecurityTypeOAuth2, SecurityTypeBasic}
	oas3SecurityTypes = []string{SecurityTypeAPIKey, SecurityTypeHTTP, SecurityTypeOAuth2, SecurityTypeOpenIDConnect}

	apiKeyFields        = newFieldSet("type", "description", "name", "in")
	oauth2Fields        = newFieldSet("type", "description", "flow", "authorizationUrl", "tokenUrl", "scopes")
	basicFields         = newFieldSet("type", "description")
	httpFields          = newFieldSet("type", "description", "scheme", "bearerFormat")
	oauth2FlowsFields   = newFieldSet("type", "description", "flows")
	openIDConnectFields = newFieldSet("type", "description", "openIdConnectUrl")
	oauthFlowsFields    = newFieldSet("implicit", "password", "clientCredentials", "authorizationCode")
	oauthFlowFields     = newFieldSet("authorizationUrl", "tokenUrl", "refreshUrl", "scopes")
)

// decodeSecurityScheme dispatches on the mandatory "type" tag. The accepted
// tags depend on the document version.
func (d *decoder) decodeSecurityScheme(v any, path string) (SecurityScheme, error) {
	obj, err := asObject(v, path, "securityScheme")
	if err != nil {
		return nil, err
	}
	tag, err := mapRequireString(obj, "type", path)
	if err != nil {
		return nil, err
	}

	allowed := oas3SecurityTypes
	if d.version == OASVersion20 {
		allowed = oas2SecurityTypes
	}

	switch {
	case tag == SecurityTypeAPIKey:
		return d.decodeAPIKeyScheme(obj, path)
	case tag == SecurityTypeOAuth2 && d.version == OASVersion20:
		return d.decodeOAuth2Scheme(obj, path)
	case tag == SecurityTypeOAuth2:
		return d.decodeOAuth2FlowsScheme(obj, path)
	case tag == SecurityTypeBasic && d.version == OASVersion20:
		common, err := d.decodeSchemeCommon(obj, basicFields, path)
		if err != nil {
			return nil, err
		}
		return &BasicScheme{SchemeCommon: common}, nil
	case tag == SecurityTypeHTTP && d.version != OASVersion20:
		return d.decodeHTTPScheme(obj, path)
	case tag == SecurityTypeOpenIDConnect && d.version != OASVersion20:
		return d.decodeOpenIDConnectScheme(obj, path)
	}
	return nil, &oaserrors.UnrecognizedTagError{Path: joinPath(path, "type"), Tag: tag, Allowed: allowed}
}

func (d *decoder) decodeSchemeCommon(obj map[string]any, known fieldSet, path string) (SchemeCommon, error) {
	desc, err := mapGetString(obj, "description", path)
	if err != nil {
		return SchemeCommon{}, err
	}
	ext, err := d.captureExtensions(obj, known, path)
	if err != nil {
		return SchemeCommon{}, err
	}
	return SchemeCommon{Description: desc, Extensions: ext}, nil
}

func (d *decoder) decodeAPIKeyScheme(obj map[string]any, path string) (*APIKeyScheme, error) {
	if err := requireAll(obj, path, SecurityTypeAPIKey, "name", "in"); err != nil {
		return nil, err
	}
	if err := requireNonEmpty(obj, path, "name", "in"); err != nil {
		return nil, err
	}
	common, err := d.decodeSchemeCommon(obj, apiKeyFields, path)
	if err != nil {
		return nil, err
	}
	s := &APIKeyScheme{SchemeCommon: common}
	if s.Name, err = mapGetString(obj, "name", path); err != nil {
		return nil, err
	}
	if s.In, err = mapGetString(obj, "in", path); err != nil {
		return nil, err
	}
	return s, nil
}

func (d *decoder) decodeOAuth2Scheme(obj map[string]any, path string) (*OAuth2Scheme, error) {
	if err := requireAll(obj, path, SecurityTypeOAuth2, "flow", "scopes"); err != nil {
		return nil, err
	}
	common, err := d.decodeSchemeCommon(obj, oauth2Fields, path)
	if err != nil {
		return nil, err
	}
	s := &OAuth2Scheme{SchemeCommon: common}
	if s.Flow, err = mapGetString(obj, "flow", path); err != nil {
		return nil, err
	}
	if s.AuthorizationURL, err = mapGetString(obj, "authorizationUrl", path); err != nil {
		return nil, err
	}
	if s.TokenURL, err = mapGetString(obj, "tokenUrl", path); err != nil {
		return nil, err
	}
	if s.Scopes, err = mapGetStringMap(obj, "scopes", path); err != nil {
		return nil, err
	}
	if s.AuthorizationURL == "" && (s.Flow == OAuth2FlowImplicit || s.Flow == OAuth2FlowAccessCode) {
		return nil, missingFields(path, SecurityTypeOAuth2, "authorizationUrl")
	}
	return s, nil
}

func (d *decoder) decodeHTTPScheme(obj map[string]any, path string) (*HTTPScheme, error) {
	if err := requireAll(obj, path, SecurityTypeHTTP, "scheme"); err != nil {
		return nil, err
	}
	common, err := d.decodeSchemeCommon(obj, httpFields, path)
	if err != nil {
		return nil, err
	}
	s := &HTTPScheme{SchemeCommon: common}
	if s.Scheme, err = mapGetString(obj, "scheme", path); err != nil {
		return nil, err
	}
	if s.BearerFormat, err = mapGetString(obj, "bearerFormat", path); err != nil {
		return nil, err
	}
	return s, nil
}

func (d *decoder) decodeOAuth2FlowsScheme(obj map[string]any, path string) (*OAuth2FlowsScheme, error) {
	if err := requireAll(obj, path, SecurityTypeOAuth2, "flows"); err != nil {
		return nil, err
	}
	common, err := d.decodeSchemeCommon(obj, oauth2FlowsFields, path)
	if err != nil {
		return nil, err
	}
	flowsObj, _, err := mapGetObject(obj, "flows", path)
	if err != nil {
		return nil, err
	}
	flows, err := d.decodeOAuthFlows(flowsObj, joinPath(path, "flows"))
	if err != nil {
		return nil, err
	}
	return &OAuth2FlowsScheme{SchemeCommon: common, Flows: flows}, nil
}

func (d *decoder) decodeOAuthFlows(obj map[string]any, path string) (*OAuthFlows, error) {
	flows := &OAuthFlows{}
	slots := []struct {
		key string
		dst **OAuthFlow
	}{
		{"implicit", &flows.Implicit},
		{"password", &flows.Password},
		{"clientCredentials", &flows.ClientCredentials},
		{"authorizationCode", &flows.AuthorizationCode},
	}
	for _, slot := range slots {
		flowObj, ok, err := mapGetObject(obj, slot.key, path)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if *slot.dst, err = d.decodeOAuthFlow(flowObj, joinPath(path, slot.key)); err != nil {
			return nil, err
		}
	}
	var err error
	if flows.Extensions, err = d.captureExtensions(obj, oauthFlowsFields, path); err != nil {
		return nil, err
	}
	return flows, nil
}

func (d *decoder) decodeOAuthFlow(obj map[string]any, path string) (*OAuthFlow, error) {
	if err := requireAll(obj, path, "oauthFlow", "scopes"); err != nil {
		return nil, err
	}
	f := &OAuthFlow{}
	var err error
	if f.AuthorizationURL, err = mapGetString(obj, "authorizationUrl", path); err != nil {
		return nil, err
	}
	if f.TokenURL, err = mapGetString(obj, "tokenUrl", path); err != nil {
		return nil, err
	}
	if f.RefreshURL, err = mapGetString(obj, "refreshUrl", path); err != nil {
		return nil, err
	}
	if f.Scopes, err = mapGetStringMap(obj, "scopes", path); err != nil {
		return nil, err
	}
	if f.Extensions, err = d.captureExtensions(obj, oauthFlowFields, path); err != nil {
		return nil, err
	}
	return f, nil
}

func (d *decoder) decodeOpenIDConnectScheme(obj map[string]any, path string) (*OpenIDConnectScheme, error) {
	if err := requireAll(obj, path, SecurityTypeOpenIDConnect, "openIdConnectUrl"); err != nil {
		return nil, err
	}
	common, err := d.decodeSchemeCommon(obj, openIDConnectFields, path)
	if err != nil {
		return nil, err
	}
	s := &OpenIDConnectScheme{SchemeCommon: common}
	if s.OpenIDConnectURL, err = mapGetString(obj, "openIdConnectUrl", path); err != nil {
		return nil, err
	}
	return s, nil
}

// requireAll reports every absent key in one SchemaMismatchError.
func requireAll(obj map[string]any, path, field string, keys ...string) error {
	var missing []string
	for _, k := range keys {
		if _, ok := lookup(obj, k); !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return missingFields(path, field, missing...)
	}
	return nil
}
