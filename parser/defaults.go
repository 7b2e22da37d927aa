package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/parser/internal/ordered"
)

// ErrDefaultKindMismatch is returned by PropertyDefault accessors when the
// requested type differs from the stored variant.
var ErrDefaultKindMismatch = errors.New("parser: default value kind mismatch")

// DefaultKind identifies the variant held by a PropertyDefault.
type DefaultKind int

const (
	// DefaultNone is the zero PropertyDefault
	DefaultNone DefaultKind = iota
	// DefaultInteger holds an int64
	DefaultInteger
	// DefaultBoolean holds a bool
	DefaultBoolean
	// DefaultString holds a string
	DefaultString
)

func (k DefaultKind) String() string {
	switch k {
	case DefaultInteger:
		return "integer"
	case DefaultBoolean:
		return "boolean"
	case DefaultString:
		return "string"
	}
	return "none"
}

// PropertyDefault is the value of a "default" field that may hold any
// scalar: an integer, a boolean, or a string.
type PropertyDefault struct {
	kind DefaultKind
	i    int64
	b    bool
	s    string
}

// IntegerDefault returns an Integer PropertyDefault.
func IntegerDefault(v int64) PropertyDefault {
	return PropertyDefault{kind: DefaultInteger, i: v}
}

// BooleanDefault returns a Boolean PropertyDefault.
func BooleanDefault(v bool) PropertyDefault {
	return PropertyDefault{kind: DefaultBoolean, b: v}
}

// StringDefault returns a String PropertyDefault.
func StringDefault(v string) PropertyDefault {
	return PropertyDefault{kind: DefaultString, s: v}
}

// ResolveDefault classifies a scalar value tree node. Integers are tried
// first, then booleans; every other scalar is kept as its string form.
// A JSON boolean never becomes an Integer and a number never becomes a
// Boolean. Floats are strings because converting them to int64 would lose
// information.
func ResolveDefault(v any) (PropertyDefault, error) {
	switch val := v.(type) {
	case int64:
		return IntegerDefault(val), nil
	case int:
		return IntegerDefault(int64(val)), nil
	case uint64:
		if val <= math.MaxInt64 {
			return IntegerDefault(int64(val)), nil
		}
		return StringDefault(strconv.FormatUint(val, 10)), nil
	case bool:
		return BooleanDefault(val), nil
	case string:
		return StringDefault(val), nil
	case float64:
		return StringDefault(ordered.FormatFloat(val)), nil
	case nil:
		return PropertyDefault{}, &oaserrors.SchemaMismatchError{
			Field:   "default",
			Message: "null is not a default value",
		}
	}
	return PropertyDefault{}, &oaserrors.SchemaMismatchError{
		Field:      "default",
		Candidates: []string{"integer", "boolean", "string"},
		Message:    "got " + valueKind(v),
	}
}

// Kind returns the stored variant.
func (d PropertyDefault) Kind() DefaultKind {
	return d.kind
}

// Int returns the Integer variant.
func (d PropertyDefault) Int() (int64, error) {
	if d.kind != DefaultInteger {
		return 0, fmt.Errorf("%w: want integer, have %s", ErrDefaultKindMismatch, d.kind)
	}
	return d.i, nil
}

// Bool returns the Boolean variant.
func (d PropertyDefault) Bool() (bool, error) {
	if d.kind != DefaultBoolean {
		return false, fmt.Errorf("%w: want boolean, have %s", ErrDefaultKindMismatch, d.kind)
	}
	return d.b, nil
}

// Str returns the String variant. Use String for a rendering of any variant.
func (d PropertyDefault) Str() (string, error) {
	if d.kind != DefaultString {
		return "", fmt.Errorf("%w: want string, have %s", ErrDefaultKindMismatch, d.kind)
	}
	return d.s, nil
}

// Value returns the stored value as int64, bool or string, or nil for the
// zero PropertyDefault.
func (d PropertyDefault) Value() any {
	switch d.kind {
	case DefaultInteger:
		return d.i
	case DefaultBoolean:
		return d.b
	case DefaultString:
		return d.s
	}
	return nil
}

// String renders the value whatever its variant.
func (d PropertyDefault) String() string {
	switch d.kind {
	case DefaultInteger:
		return strconv.FormatInt(d.i, 10)
	case DefaultBoolean:
		return strconv.FormatBool(d.b)
	case DefaultString:
		return d.s
	}
	return ""
}
