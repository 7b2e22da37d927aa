package parser

import (
	"github.com/Masterminds/semver/v3"
)

// OASVersion identifies the family of an OpenAPI document.
type OASVersion int

const (
	// Unknown represents an unknown or invalid OAS version
	Unknown OASVersion = iota
	// OASVersion20 OpenAPI Specification Version 2.0 (Swagger)
	OASVersion20
	// OASVersion30 OpenAPI Specification Version 3.0.x
	OASVersion30
	// OASVersion31 OpenAPI Specification Version 3.1.x
	OASVersion31
	// OASVersion32 OpenAPI Specification Version 3.2.x
	OASVersion32
)

var versionToString = map[OASVersion]string{
	OASVersion20: "2.0",
	OASVersion30: "3.0.x",
	OASVersion31: "3.1.x",
	OASVersion32: "3.2.x",
}

func (v OASVersion) String() string {
	if s, ok := versionToString[v]; ok {
		return s
	}
	return "unknown"
}

// IsValid returns true if this is a valid version
func (v OASVersion) IsValid() bool {
	_, ok := versionToString[v]
	return ok
}

// IsOAS3 returns true for any 3.x family.
func (v OASVersion) IsOAS3() bool {
	return v >= OASVersion30 && v <= OASVersion32
}

// ParseVersion classifies a "swagger" or "openapi" value. Versions newer
// than the known 3.x families return Unknown with ok set to true when they
// still satisfy the OAS 3 constraint.
func ParseVersion(s string) (OASVersion, bool) {
	if s == swaggerVersion {
		return OASVersion20, true
	}
	v, err := semver.NewVersion(s)
	if err != nil || !oas3Constraint.Check(v) {
		return Unknown, false
	}
	if v.Major() == 3 {
		switch v.Minor() {
		case 0:
			return OASVersion30, true
		case 1:
			return OASVersion31, true
		case 2:
			return OASVersion32, true
		}
	}
	return Unknown, true
}
