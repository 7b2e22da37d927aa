package parser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/parser/internal/ordered"
)

// ExtensionPrefix is the reserved prefix of specification extension keys.
const ExtensionPrefix = "x-"

// IsExtensionKey reports whether key is a specification extension key.
func IsExtensionKey(key string) bool {
	return strings.HasPrefix(key, ExtensionPrefix)
}

// Extensions holds the specification extensions (x-* properties) captured
// from one object. Values are plain value trees: nil, bool, int64, uint64,
// float64, string, []any and map[string]any.
type Extensions map[string]any

// NewExtensions builds an Extensions set from m, normalizing values into
// value trees. Every key must carry the "x-" prefix.
func NewExtensions(m map[string]any) (Extensions, error) {
	if len(m) == 0 {
		return nil, nil
	}
	out := make(Extensions, len(m))
	for k, v := range m {
		if !IsExtensionKey(k) {
			return nil, &oaserrors.ConfigError{Option: "extensions", Value: k, Message: "extension keys must start with " + ExtensionPrefix}
		}
		n, err := normalizeValue(v)
		if err != nil {
			return nil, &oaserrors.ConfigError{Option: "extensions", Value: k, Cause: err}
		}
		out[k] = n
	}
	return out, nil
}

// Get returns the value stored under key.
func (e Extensions) Get(key string) (any, bool) {
	v, ok := e[key]
	return v, ok
}

// All returns a deep copy of the captured extensions.
func (e Extensions) All() map[string]any {
	if e == nil {
		return nil
	}
	out := make(map[string]any, len(e))
	for k, v := range e {
		out[k] = cloneValue(v)
	}
	return out
}

// Keys returns the extension keys in sorted order.
func (e Extensions) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of extensions.
func (e Extensions) Len() int {
	return len(e)
}

func (e Extensions) clone() Extensions {
	if e == nil {
		return nil
	}
	return Extensions(e.All())
}

// captureExtensions partitions obj: known keys are left for typed decoding,
// x-* keys are returned as Extensions, and anything else is reported as an
// unknown field.
func (d *decoder) captureExtensions(obj map[string]any, known fieldSet, path string) (Extensions, error) {
	var ext Extensions
	for _, k := range ordered.SortedKeys(obj) {
		v := obj[k]
		if known[k] {
			continue
		}
		if IsExtensionKey(k) {
			n, err := normalizeValue(v)
			if err != nil {
				return nil, &oaserrors.DecodeError{Path: joinPath(path, k), Message: "extension value is not a plain value tree", Cause: err}
			}
			if ext == nil {
				ext = make(Extensions)
			}
			ext[k] = n
			continue
		}
		if err := d.unknownField(path, k); err != nil {
			return nil, err
		}
	}
	return ext, nil
}

// appendExtensions writes ext as sibling keys of o, sorted by key.
func appendExtensions(o *ordered.Object, ext Extensions, path string) error {
	for _, k := range ext.Keys() {
		if !IsExtensionKey(k) {
			return &oaserrors.SerializationError{
				Path:    path,
				Message: fmt.Sprintf("extension key %q must start with %s", k, ExtensionPrefix),
			}
		}
		if o.Has(k) {
			return &oaserrors.SerializationError{
				Path:    path,
				Message: fmt.Sprintf("extension key %q collides with a typed field", k),
			}
		}
		v, err := normalizeValue(ext[k])
		if err != nil {
			return &oaserrors.SerializationError{Path: joinPath(path, k), Message: "extension value is not a plain value tree", Cause: err}
		}
		o.Set(k, v)
	}
	return nil
}

// fieldSet is the set of typed field names an object kind accepts.
type fieldSet map[string]bool

func newFieldSet(names ...string) fieldSet {
	s := make(fieldSet, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}
