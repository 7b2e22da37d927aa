package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/erraggy/oasmodel/oaserrors"
	"go.yaml.in/yaml/v4"
)

// A value tree is the generic form every document passes through before
// typed decoding: nil, bool, int64, uint64 (only above math.MaxInt64),
// float64, string, []any and map[string]any. Extension values are stored in
// this form.

// maxAliasExpansion bounds the number of nodes produced by YAML alias
// expansion so a small "billion laughs" document cannot exhaust memory.
const maxAliasExpansion = 1_000_000

// maxJSONNesting matches the nesting limit encoding/json applies to Decode.
const maxJSONNesting = 10000

// decodeJSONValue decodes JSON text into a value tree. Objects with a
// repeated key are rejected, as they are for YAML.
func decodeJSONValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	r := &jsonReader{dec: dec, data: data}
	raw, err := r.read(0)
	if err != nil {
		var derr *oaserrors.DecodeError
		if errors.As(err, &derr) {
			return nil, derr
		}
		return nil, &oaserrors.DecodeError{Message: "invalid JSON", Cause: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &oaserrors.DecodeError{Message: "invalid JSON: unexpected data after top-level value"}
	}

	v, err := normalizeValue(raw)
	if err != nil {
		return nil, &oaserrors.DecodeError{Message: "invalid JSON", Cause: err}
	}
	return v, nil
}

// jsonReader builds a value tree from the decoder's token stream so that
// duplicate object keys can be detected.
type jsonReader struct {
	dec  *json.Decoder
	data []byte
}

func (r *jsonReader) read(depth int) (any, error) {
	if depth > maxJSONNesting {
		return nil, &oaserrors.DecodeError{Line: r.line(), Message: "invalid JSON: exceeded max nesting depth"}
	}
	tok, err := r.dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := make(map[string]any)
		for r.dec.More() {
			keyTok, err := r.dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}
			if _, dup := obj[key]; dup {
				return nil, &oaserrors.DecodeError{Line: r.line(), Message: fmt.Sprintf("duplicate key %q", key)}
			}
			v, err := r.read(depth + 1)
			if err != nil {
				return nil, err
			}
			obj[key] = v
		}
		if _, err := r.dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := make([]any, 0)
		for r.dec.More() {
			v, err := r.read(depth + 1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := r.dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %q", delim)
}

// line returns the 1-based line of the decoder's current offset.
func (r *jsonReader) line() int {
	off := int(r.dec.InputOffset())
	if off > len(r.data) {
		off = len(r.data)
	}
	return bytes.Count(r.data[:off], []byte{'\n'}) + 1
}

// decodeYAMLValue decodes YAML text into a value tree. Mapping keys are
// stringified so unquoted response codes such as 200 become "200".
func decodeYAMLValue(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.DecodeError{Message: "invalid YAML", Cause: err}
	}
	if root.Kind == 0 {
		return nil, &oaserrors.DecodeError{Message: "empty document"}
	}

	c := &nodeConverter{}
	return c.convert(&root)
}

// nodeConverter walks a yaml.Node tree, counting nodes visited through
// aliases.
type nodeConverter struct {
	expanded int
}

func (c *nodeConverter) convert(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return c.convert(n.Content[0])

	case yaml.AliasNode:
		c.expanded++
		if c.expanded > maxAliasExpansion {
			return nil, &oaserrors.DecodeError{Line: n.Line, Message: "too many YAML alias expansions"}
		}
		if n.Alias == nil {
			return nil, &oaserrors.DecodeError{Line: n.Line, Message: "unresolved YAML alias"}
		}
		return c.convert(n.Alias)

	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, child := range n.Content {
			v, err := c.convert(child)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		var merges []*yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == "!!merge" {
				merges = append(merges, valNode)
				continue
			}
			if keyNode.Kind != yaml.ScalarNode {
				return nil, &oaserrors.DecodeError{Line: keyNode.Line, Message: "mapping keys must be scalars"}
			}
			if _, dup := out[keyNode.Value]; dup {
				return nil, &oaserrors.DecodeError{Line: keyNode.Line, Message: fmt.Sprintf("duplicate key %q", keyNode.Value)}
			}
			v, err := c.convert(valNode)
			if err != nil {
				return nil, err
			}
			out[keyNode.Value] = v
		}
		// Explicit keys take precedence over merged ones
		for _, m := range merges {
			if err := c.merge(out, m); err != nil {
				return nil, err
			}
		}
		return out, nil

	case yaml.ScalarNode:
		return scalarValue(n)
	}
	return nil, &oaserrors.DecodeError{Line: n.Line, Message: fmt.Sprintf("unsupported YAML node kind %d", n.Kind)}
}

func (c *nodeConverter) merge(dst map[string]any, n *yaml.Node) error {
	v, err := c.convert(n)
	if err != nil {
		return err
	}
	switch src := v.(type) {
	case map[string]any:
		for k, val := range src {
			if _, ok := dst[k]; !ok {
				dst[k] = val
			}
		}
	case []any:
		for _, item := range src {
			m, ok := item.(map[string]any)
			if !ok {
				return &oaserrors.DecodeError{Line: n.Line, Message: "merge value must be a mapping or a list of mappings"}
			}
			for k, val := range m {
				if _, ok := dst[k]; !ok {
					dst[k] = val
				}
			}
		}
	default:
		return &oaserrors.DecodeError{Line: n.Line, Message: "merge value must be a mapping or a list of mappings"}
	}
	return nil
}

// scalarValue resolves a YAML scalar using its (possibly implicit) tag.
// Timestamps and custom tags keep their textual form.
func scalarValue(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, &oaserrors.DecodeError{Line: n.Line, Message: "invalid boolean", Cause: err}
		}
		return b, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return i, nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return u, nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, &oaserrors.DecodeError{Line: n.Line, Message: "invalid integer", Cause: err}
		}
		return f, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, &oaserrors.DecodeError{Line: n.Line, Message: "invalid float", Cause: err}
		}
		return f, nil
	default:
		return n.Value, nil
	}
}

// normalizeValue converts decoded Go values into a value tree. It accepts the
// shapes produced by encoding/json (with UseNumber), by YAML decoders that
// build map[any]any, and values assembled by hand.
func normalizeValue(v any) (any, error) {
	switch val := v.(type) {
	case nil, bool, string, int64, float64:
		return val, nil
	case int:
		return int64(val), nil
	case int8:
		return int64(val), nil
	case int16:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case uint:
		return normalizeUint(uint64(val)), nil
	case uint8:
		return int64(val), nil
	case uint16:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case uint64:
		return normalizeUint(val), nil
	case float32:
		return float64(val), nil
	case json.Number:
		return normalizeNumber(val)
	case time.Time:
		return val.Format(time.RFC3339Nano), nil
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			n, err := normalizeValue(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = n
		}
		return out, nil
	case []string:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = item
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			n, err := normalizeValue(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out[k] = n
		}
		return out, nil
	case map[string]string:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = item
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			key := fmt.Sprint(k)
			n, err := normalizeValue(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out[key] = n
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported value type %T", v)
}

func normalizeUint(u uint64) any {
	if u <= math.MaxInt64 {
		return int64(u)
	}
	return u
}

// normalizeNumber keeps integers exact and falls back to float64.
func normalizeNumber(n json.Number) (any, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return u, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", n.String(), err)
	}
	return f, nil
}

// cloneValue deep-copies a value tree.
func cloneValue(v any) any {
	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	default:
		return val
	}
}

// valueKind names the value tree kind of v for error messages.
func valueKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case int64, uint64:
		return "integer"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
