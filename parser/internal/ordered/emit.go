package ordered

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"
)

// MarshalJSON encodes v as JSON. Objects keep their insertion order; plain
// maps are written with sorted keys. A non-empty indent produces indented
// output terminated by a newline.
func MarshalJSON(v any, indent string) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)
	if err := writeJSON(buf, v); err != nil {
		return nil, err
	}
	if indent == "" {
		return detach(buf), nil
	}

	out := getBuffer()
	defer putBuffer(out)
	if err := json.Indent(out, buf.Bytes(), "", indent); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return detach(out), nil
}

// MarshalYAML encodes v as a YAML document.
func MarshalYAML(v any) ([]byte, error) {
	node, err := ToNode(v)
	if err != nil {
		return nil, err
	}

	buf := getBuffer()
	defer putBuffer(buf)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return detach(buf), nil
}

// writeJSON writes v to buf as compact JSON.
func writeJSON(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		buf.WriteString(strconv.FormatBool(val))
	case int:
		buf.WriteString(strconv.Itoa(val))
	case int64:
		buf.WriteString(strconv.FormatInt(val, 10))
	case uint64:
		buf.WriteString(strconv.FormatUint(val, 10))
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("unsupported float value %v in JSON output", val)
		}
		buf.WriteString(FormatFloat(val))
	case string:
		return writeJSONString(buf, val)
	case *Object:
		buf.WriteByte('{')
		for i, k := range val.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, val.values[k]); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
		buf.WriteByte('}')
	case []*Object:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case []any:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case []string:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case map[string]any:
		buf.WriteByte('{')
		for i, k := range SortedKeys(val) {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, val[k]); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
		buf.WriteByte('}')
	case map[string]string:
		buf.WriteByte('{')
		for i, k := range SortedKeys(val) {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSONString(buf, val[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode %T", v)
	}
	return nil
}

// writeJSONString writes s as a JSON string literal without HTML escaping.
func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a newline
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	return nil
}

// FormatFloat renders f so that it reads back as a float rather than an
// integer: integral values keep a trailing ".0".
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// scalarNode creates a yaml.Node for a scalar value.
func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// ToNode converts v to a yaml.Node tree.
func ToNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case nil:
		return scalarNode("!!null", "null"), nil
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(val)), nil
	case int:
		return scalarNode("!!int", strconv.Itoa(val)), nil
	case int64:
		return scalarNode("!!int", strconv.FormatInt(val, 10)), nil
	case uint64:
		return scalarNode("!!int", strconv.FormatUint(val, 10)), nil
	case float64:
		switch {
		case math.IsNaN(val):
			return scalarNode("!!float", ".nan"), nil
		case math.IsInf(val, 1):
			return scalarNode("!!float", ".inf"), nil
		case math.IsInf(val, -1):
			return scalarNode("!!float", "-.inf"), nil
		}
		return scalarNode("!!float", FormatFloat(val)), nil
	case string:
		return scalarNode("!!str", val), nil
	case *Object:
		node := &yaml.Node{Kind: yaml.MappingNode, Content: make([]*yaml.Node, 0, len(val.keys)*2)}
		for _, k := range val.keys {
			child, err := ToNode(val.values[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			node.Content = append(node.Content, scalarNode("!!str", k), child)
		}
		return node, nil
	case []*Object:
		node := &yaml.Node{Kind: yaml.SequenceNode, Content: make([]*yaml.Node, 0, len(val))}
		for _, item := range val {
			child, err := ToNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Content: make([]*yaml.Node, 0, len(val))}
		for _, item := range val {
			child, err := ToNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case []string:
		node := &yaml.Node{Kind: yaml.SequenceNode, Content: make([]*yaml.Node, 0, len(val))}
		for _, item := range val {
			node.Content = append(node.Content, scalarNode("!!str", item))
		}
		return node, nil
	case map[string]any:
		node := &yaml.Node{Kind: yaml.MappingNode, Content: make([]*yaml.Node, 0, len(val)*2)}
		for _, k := range SortedKeys(val) {
			child, err := ToNode(val[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			node.Content = append(node.Content, scalarNode("!!str", k), child)
		}
		return node, nil
	case map[string]string:
		node := &yaml.Node{Kind: yaml.MappingNode, Content: make([]*yaml.Node, 0, len(val)*2)}
		for _, k := range SortedKeys(val) {
			node.Content = append(node.Content, scalarNode("!!str", k), scalarNode("!!str", val[k]))
		}
		return node, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to yaml.Node", v)
	}
}
