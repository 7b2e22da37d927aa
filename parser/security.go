package parser

// Security scheme "type" discriminant values.
const (
	// SecurityTypeAPIKey selects APIKeyScheme (OAS 2.0 and 3.0)
	SecurityTypeAPIKey = "apiKey"
	// SecurityTypeOAuth2 selects OAuth2Scheme (OAS 2.0) or OAuth2FlowsScheme (OAS 3.0)
	SecurityTypeOAuth2 = "oauth2"
	// SecurityTypeBasic selects BasicScheme (OAS 2.0)
	SecurityTypeBasic = "basic"
	// SecurityTypeHTTP selects HTTPScheme (OAS 3.0)
	SecurityTypeHTTP = "http"
	// SecurityTypeOpenIDConnect selects OpenIDConnectScheme (OAS 3.0)
	SecurityTypeOpenIDConnect = "openIdConnect"
)

// OAuth2 flow names (OAS 2.0).
const (
	OAuth2FlowImplicit    = "implicit"
	OAuth2FlowPassword    = "password"
	OAuth2FlowApplication = "application"
	OAuth2FlowAccessCode  = "accessCode"
)

// SecurityRequirement lists the required security schemes to execute an operation.
// Maps security scheme names to scopes (if applicable).
type SecurityRequirement map[string][]string

// SecurityScheme is one of *APIKeyScheme, *OAuth2Scheme, *BasicScheme,
// *HTTPScheme, *OAuth2FlowsScheme or *OpenIDConnectScheme. The set is
// closed; the variant is chosen by the "type" field of the source object.
type SecurityScheme interface {
	// Type returns the "type" discriminant of the variant.
	Type() string
	// Common returns the fields shared by every variant.
	Common() *SchemeCommon
	securityScheme()
}

// SchemeCommon holds the fields every security scheme variant carries.
type SchemeCommon struct {
	Description string
	Extensions  Extensions
}

// Common returns c.
func (c *SchemeCommon) Common() *SchemeCommon { return c }

// APIKeyScheme is an API key passed in a header, query parameter or cookie.
type APIKeyScheme struct {
	SchemeCommon
	Name string // required
	In   string // required: "query", "header" or "cookie" (OAS 3.0)
}

// OAuth2Scheme is an OAS 2.0 OAuth2 scheme with a single flow.
type OAuth2Scheme struct {
	SchemeCommon
	Flow             string // required
	AuthorizationURL string // required for implicit and accessCode
	TokenURL         string
	Scopes           map[string]string // required, may be empty
}

// BasicScheme is OAS 2.0 HTTP basic authentication. It has no fields of its own.
type BasicScheme struct {
	SchemeCommon
}

// HTTPScheme is an OAS 3.0 HTTP authentication scheme.
type HTTPScheme struct {
	SchemeCommon
	Scheme       string // required, e.g. "basic" or "bearer"
	BearerFormat string
}

// OAuth2FlowsScheme is an OAS 3.0 OAuth2 scheme.
type OAuth2FlowsScheme struct {
	SchemeCommon
	Flows *OAuthFlows // required
}

// OpenIDConnectScheme is an OAS 3.0 OpenID Connect discovery scheme.
type OpenIDConnectScheme struct {
	SchemeCommon
	OpenIDConnectURL string // required
}

// OAuthFlows allows configuration of the supported OAuth Flows (OAS 3.0)
type OAuthFlows struct {
	Implicit          *OAuthFlow
	Password          *OAuthFlow
	ClientCredentials *OAuthFlow
	AuthorizationCode *OAuthFlow
	Extensions        Extensions
}

// OAuthFlow represents configuration for a single OAuth flow (OAS 3.0)
type OAuthFlow struct {
	AuthorizationURL string
	TokenURL         string
	RefreshURL       string
	Scopes           map[string]string
	Extensions       Extensions
}

func (*APIKeyScheme) Type() string        { return SecurityTypeAPIKey }
func (*OAuth2Scheme) Type() string        { return SecurityTypeOAuth2 }
func (*BasicScheme) Type() string         { return SecurityTypeBasic }
func (*HTTPScheme) Type() string          { return SecurityTypeHTTP }
func (*OAuth2FlowsScheme) Type() string   { return SecurityTypeOAuth2 }
func (*OpenIDConnectScheme) Type() string { return SecurityTypeOpenIDConnect }

func (*APIKeyScheme) securityScheme()        {}
func (*OAuth2Scheme) securityScheme()        {}
func (*BasicScheme) securityScheme()         {}
func (*HTTPScheme) securityScheme()          {}
func (*OAuth2FlowsScheme) securityScheme()   {}
func (*OpenIDConnectScheme) securityScheme() {}
