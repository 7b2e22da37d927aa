package parser

import (
	"github.com/erraggy/oasmodel/oaserrors"
)

var referenceFields = newFieldSet("$ref")

// parameterCandidates names the shapes a parameter list entry may take.
var parameterCandidates = []string{"Reference", "Parameter"}

// decodeParameterOrRef resolves a parameter list entry. The presence of
// "$ref" selects the Reference variant even when parameter fields are also
// present; those fields are then reported as unknown. Otherwise the object
// must decode as a Parameter.
func (d *decoder) decodeParameterOrRef(v any, path string) (ParameterOrRef, error) {
	obj, err := asObject(v, path, "parameter")
	if err != nil {
		return ParameterOrRef{}, err
	}

	if _, ok := obj["$ref"]; ok {
		ref, err := d.decodeReference(obj, path)
		if err != nil {
			return ParameterOrRef{}, err
		}
		return ParameterOrRef{Ref: ref}, nil
	}

	var missing []string
	if _, ok := lookup(obj, "name"); !ok {
		missing = append(missing, "name")
	}
	if _, ok := lookup(obj, "in"); !ok {
		missing = append(missing, "in")
	}
	if len(missing) > 0 {
		return ParameterOrRef{}, &oaserrors.SchemaMismatchError{
			Path:       path,
			Field:      "parameter",
			Candidates: parameterCandidates,
			Missing:    missing,
		}
	}

	p, err := d.decodeParameterObject(obj, path)
	if err != nil {
		return ParameterOrRef{}, err
	}
	return ParameterOrRef{Parameter: p}, nil
}

// decodeReference decodes a {"$ref": ...} object.
func (d *decoder) decodeReference(obj map[string]any, path string) (*Reference, error) {
	ref, err := mapRequireString(obj, "$ref", path)
	if err != nil {
		return nil, err
	}
	ext, err := d.captureExtensions(obj, referenceFields, path)
	if err != nil {
		return nil, err
	}
	return &Reference{Ref: ref, Extensions: ext}, nil
}

// decodeParameter decodes a Parameter that may not be a reference, such as
// an entry of the OAS 2.0 "parameters" definitions.
func (d *decoder) decodeParameter(v any, path string) (*Parameter, error) {
	obj, err := asObject(v, path, "parameter")
	if err != nil {
		return nil, err
	}
	var missing []string
	if _, ok := lookup(obj, "name"); !ok {
		missing = append(missing, "name")
	}
	if _, ok := lookup(obj, "in"); !ok {
		missing = append(missing, "in")
	}
	if len(missing) > 0 {
		return nil, missingFields(path, "parameter", missing...)
	}
	return d.decodeParameterObject(obj, path)
}
