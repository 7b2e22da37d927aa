package parser

import (
	"fmt"
	"math"

	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/parser/internal/ordered"
)

// Helpers in this file read typed fields out of a value tree object. A
// missing key yields the zero value; a present key of the wrong kind is a
// SchemaMismatchError. Nulls count as missing, except for fields that take
// any value, which read them with lookupValue.

// joinPath appends key to a dotted document path.
func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// indexPath appends an array index to a document path.
func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func typeMismatch(path, field, want string, got any) error {
	return &oaserrors.SchemaMismatchError{
		Path:    path,
		Field:   field,
		Message: fmt.Sprintf("expected %s, got %s", want, valueKind(got)),
	}
}

func missingFields(path, field string, names ...string) error {
	return &oaserrors.SchemaMismatchError{Path: path, Field: field, Missing: names}
}

// asObject asserts that v is an object.
func asObject(v any, path, field string) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, typeMismatch(path, field, "object", v)
	}
	return m, nil
}

// lookup returns m[key], treating an explicit null like an absent key.
func lookup(m map[string]any, key string) (any, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// lookupValue returns m[key] for a field that takes any value, and
// whether the key is present with an explicit null.
func lookupValue(m map[string]any, key string) (v any, null bool) {
	v, ok := m[key]
	return v, ok && v == nil
}

func mapGetString(m map[string]any, key, path string) (string, error) {
	v, ok := lookup(m, key)
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", typeMismatch(path, key, "string", v)
	}
	return s, nil
}

// mapRequireString reads a string that must be present.
func mapRequireString(m map[string]any, key, path string) (string, error) {
	if _, ok := lookup(m, key); !ok {
		return "", missingFields(path, key, key)
	}
	return mapGetString(m, key, path)
}

// requireNonEmpty rejects keys whose string value is empty. Values of
// another kind are left to the typed readers.
func requireNonEmpty(m map[string]any, path string, keys ...string) error {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && s == "" {
			return &oaserrors.SchemaMismatchError{Path: path, Field: key, Message: "must not be empty"}
		}
	}
	return nil
}

func mapGetBool(m map[string]any, key, path string) (bool, error) {
	v, ok := lookup(m, key)
	if !ok {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, typeMismatch(path, key, "boolean", v)
	}
	return b, nil
}

func mapGetBoolPtr(m map[string]any, key, path string) (*bool, error) {
	if _, ok := lookup(m, key); !ok {
		return nil, nil
	}
	b, err := mapGetBool(m, key, path)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// mapGetFloat64Ptr reads any JSON number.
func mapGetFloat64Ptr(m map[string]any, key, path string) (*float64, error) {
	v, ok := lookup(m, key)
	if !ok {
		return nil, nil
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return nil, typeMismatch(path, key, "number", v)
	}
	return &f, nil
}

// mapGetInt64Ptr reads an integer. Integral floats such as 10.0 are
// accepted.
func mapGetInt64Ptr(m map[string]any, key, path string) (*int64, error) {
	v, ok := lookup(m, key)
	if !ok {
		return nil, nil
	}
	var i int64
	switch n := v.(type) {
	case int64:
		i = n
	case float64:
		if n != math.Trunc(n) || n > math.MaxInt64 || n < math.MinInt64 {
			return nil, typeMismatch(path, key, "integer", v)
		}
		i = int64(n)
	default:
		return nil, typeMismatch(path, key, "integer", v)
	}
	return &i, nil
}

// mapGetStringSlice reads an array of strings. A present empty array
// yields a non-nil empty slice.
func mapGetStringSlice(m map[string]any, key, path string) ([]string, error) {
	v, ok := lookup(m, key)
	if !ok {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, typeMismatch(path, key, "array", v)
	}
	out := make([]string, 0, len(arr))
	for i, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, typeMismatch(path, indexPath(key, i), "string", item)
		}
		out = append(out, s)
	}
	return out, nil
}

// mapGetStringMap reads an object whose values are strings.
func mapGetStringMap(m map[string]any, key, path string) (map[string]string, error) {
	v, ok := lookup(m, key)
	if !ok {
		return nil, nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, typeMismatch(path, key, "object", v)
	}
	out := make(map[string]string, len(obj))
	for k, val := range obj {
		s, ok := val.(string)
		if !ok {
			return nil, typeMismatch(joinPath(path, key), k, "string", val)
		}
		out[k] = s
	}
	return out, nil
}

// mapGetArray reads an array of arbitrary values.
func mapGetArray(m map[string]any, key, path string) ([]any, error) {
	v, ok := lookup(m, key)
	if !ok {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, typeMismatch(path, key, "array", v)
	}
	return arr, nil
}

// mapGetObject reads a nested object.
func mapGetObject(m map[string]any, key, path string) (map[string]any, bool, error) {
	v, ok := lookup(m, key)
	if !ok {
		return nil, false, nil
	}
	obj, err := asObject(v, path, key)
	if err != nil {
		return nil, false, err
	}
	return obj, true, nil
}

// mapGetValueMap reads an object of arbitrary values.
func mapGetValueMap(m map[string]any, key, path string) (map[string]any, error) {
	obj, ok, err := mapGetObject(m, key, path)
	if err != nil || !ok {
		return nil, err
	}
	return obj, nil
}

// decodeMap decodes every entry of the object at m[key] with fn, in sorted
// key order so the first reported error is stable.
func decodeMap[T any](m map[string]any, key, path string, fn func(v any, path string) (T, error)) (map[string]T, error) {
	obj, ok, err := mapGetObject(m, key, path)
	if err != nil || !ok {
		return nil, err
	}
	base := joinPath(path, key)
	out := make(map[string]T, len(obj))
	for _, k := range ordered.SortedKeys(obj) {
		item, err := fn(obj[k], joinPath(base, k))
		if err != nil {
			return nil, err
		}
		out[k] = item
	}
	return out, nil
}

// decodeList decodes every element of the array at m[key] with fn.
func decodeList[T any](m map[string]any, key, path string, fn func(v any, path string) (T, error)) ([]T, error) {
	arr, err := mapGetArray(m, key, path)
	if err != nil || arr == nil {
		return nil, err
	}
	base := joinPath(path, key)
	out := make([]T, 0, len(arr))
	for i, item := range arr {
		v, err := fn(item, indexPath(base, i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
