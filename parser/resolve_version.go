package parser

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/erraggy/oasmodel/oaserrors"
)

const (
	swaggerVersion = "2.0"
	// OAS3Requirement is the constraint an "openapi" value must satisfy.
	OAS3Requirement = ">= 3.0"
)

var oas3Constraint = func() *semver.Constraints {
	c, err := semver.NewConstraint(OAS3Requirement)
	if err != nil {
		panic(err)
	}
	return c
}()

// detectVersion inspects the discriminant keys of a document root. It never
// looks at the rest of the document.
func detectVersion(root map[string]any) (string, OASVersion, error) {
	swagger, hasSwagger := root["swagger"]
	openapi, hasOpenAPI := root["openapi"]

	switch {
	case hasSwagger && hasOpenAPI:
		return "", Unknown, &oaserrors.SchemaMismatchError{
			Field:      "swagger|openapi",
			Candidates: []string{"swagger", "openapi"},
			Message:    "document declares both version keys",
		}

	case hasSwagger:
		s, ok := swagger.(string)
		if !ok {
			return "", Unknown, &oaserrors.SchemaMismatchError{
				Field:   "swagger",
				Message: fmt.Sprintf("expected string, got %s", valueKind(swagger)),
			}
		}
		if s != swaggerVersion {
			return s, Unknown, &oaserrors.UnsupportedVersionError{Found: s, Required: swaggerVersion}
		}
		return s, OASVersion20, nil

	case hasOpenAPI:
		s, ok := openapi.(string)
		if !ok {
			return "", Unknown, &oaserrors.SchemaMismatchError{
				Field:   "openapi",
				Message: fmt.Sprintf("expected string, got %s", valueKind(openapi)),
			}
		}
		v, err := semver.NewVersion(s)
		if err != nil {
			return s, Unknown, &oaserrors.UnsupportedVersionError{Found: s, Required: OAS3Requirement, Cause: err}
		}
		if !oas3Constraint.Check(v) {
			return s, Unknown, &oaserrors.UnsupportedVersionError{Found: s, Required: OAS3Requirement}
		}
		oasVersion, _ := ParseVersion(s)
		return s, oasVersion, nil
	}

	return "", Unknown, &oaserrors.DecodeError{
		Message: "unable to detect OpenAPI version: document must contain a 'swagger' or 'openapi' field",
	}
}
