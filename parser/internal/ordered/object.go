// Package ordered provides an insertion-ordered object type and emitters that
// write it as JSON or YAML with keys in a fixed order.
//
// The encoder builds one Object per OpenAPI object: typed fields first in
// their canonical order, then specification extensions (x-* properties)
// sorted by key. Emitting through Object instead of a Go map keeps the
// output stable and human-friendly.
package ordered

import "slices"

// Object is a string-keyed mapping that remembers insertion order.
// Setting an existing key replaces its value without moving it.
type Object struct {
	keys   []string
	values map[string]any
}

// New returns an empty Object with room for capacity keys.
func New(capacity int) *Object {
	return &Object{
		keys:   make([]string, 0, capacity),
		values: make(map[string]any, capacity),
	}
}

// Set stores value under key.
func (o *Object) Set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// SetIfNotEmpty sets a field only if the value is not empty.
func SetIfNotEmpty(o *Object, key string, value string) {
	if value != "" {
		o.Set(key, value)
	}
}

// SetIfNotNil sets a field only if the value is not nil.
// Typed nil pointers are treated as nil.
func SetIfNotNil(o *Object, key string, value any) {
	switch v := value.(type) {
	case nil:
		return
	case *Object:
		if v == nil {
			return
		}
	case *float64:
		if v == nil {
			return
		}
		o.Set(key, *v)
		return
	case *bool:
		if v == nil {
			return
		}
		o.Set(key, *v)
		return
	}
	o.Set(key, value)
}

// SetIfTrue sets a boolean field only if the value is true.
func SetIfTrue(o *Object, key string, value bool) {
	if value {
		o.Set(key, value)
	}
}

// SetIfSliceNotNil sets a slice field unless the slice is nil. A non-nil
// empty slice is written as an empty array.
func SetIfSliceNotNil[T any](o *Object, key string, value []T) {
	if value != nil {
		o.Set(key, value)
	}
}

// SetIfMapNotNil sets a map field unless the map is nil.
func SetIfMapNotNil[V any](o *Object, key string, value map[string]V) {
	if value != nil {
		o.Set(key, value)
	}
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
