package parser

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{"object", `{"a": "b"}`, map[string]any{"a": "b"}},
		{"integer", `42`, int64(42)},
		{"negative integer", `-7`, int64(-7)},
		{"float", `1.5`, 1.5},
		{"integral float stays float", `10.0`, 10.0},
		{"uint64 above int64", `18446744073709551615`, uint64(math.MaxUint64)},
		{"null", `null`, nil},
		{"nested", `{"a": [true, null, "x"]}`, map[string]any{"a": []any{true, nil, "x"}}},
		{"empty containers", `{"a": [], "b": {}}`, map[string]any{"a": []any{}, "b": map[string]any{}}},
		{"same key in sibling objects", `[{"a": 1}, {"a": 2}]`, []any{map[string]any{"a": int64(1)}, map[string]any{"a": int64(2)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeJSONValue([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSONValueErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"syntax error", `{"a": }`, "invalid JSON"},
		{"trailing data", `{"a": 1} {"b": 2}`, "unexpected data after top-level value"},
		{"trailing garbage", `{} x`, "unexpected data"},
		{"number out of range", `1e400`, "invalid JSON"},
		{"duplicate key", `{"a": 1, "a": 2}`, `duplicate key "a"`},
		{"nested duplicate key", "{\n  \"info\": {\"title\": \"first\",\n \"title\": \"second\"}\n}", `(line 3): duplicate key "title"`},
		{"duplicate key in array element", `[{"x": 1}, {"y": 1, "y": 1}]`, `duplicate key "y"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeJSONValue([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrDecode)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestDecodeYAMLValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{
			name:  "integer keys are stringified",
			input: "200: ok\n404: missing\n",
			want:  map[string]any{"200": "ok", "404": "missing"},
		},
		{
			name:  "scalars",
			input: "i: 3\nf: 2.5\nb: true\nn: ~\ns: text\n",
			want:  map[string]any{"i": int64(3), "f": 2.5, "b": true, "n": nil, "s": "text"},
		},
		{
			name:  "quoted version stays a string",
			input: "swagger: \"2.0\"\n",
			want:  map[string]any{"swagger": "2.0"},
		},
		{
			name:  "timestamp keeps its text",
			input: "released: 2024-01-02\n",
			want:  map[string]any{"released": "2024-01-02"},
		},
		{
			name:  "uint64 above int64",
			input: "big: 9223372036854775808\n",
			want:  map[string]any{"big": uint64(9223372036854775808)},
		},
		{
			name:  "sequence",
			input: "- a\n- 1\n",
			want:  []any{"a", int64(1)},
		},
		{
			name: "alias",
			input: `base: &base
  type: string
copy: *base
`,
			want: map[string]any{
				"base": map[string]any{"type": "string"},
				"copy": map[string]any{"type": "string"},
			},
		},
		{
			name: "merge key keeps explicit values",
			input: `base: &base
  type: string
  format: uuid
derived:
  <<: *base
  format: email
`,
			want: map[string]any{
				"base":    map[string]any{"type": "string", "format": "uuid"},
				"derived": map[string]any{"type": "string", "format": "email"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeYAMLValue([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeYAMLValueErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"syntax error", "a: [1, 2\n"},
		{"duplicate key", "a: 1\na: 2\n"},
		{"non-scalar key", "? [a, b]\n: c\n"},
		{"bad merge value", "a:\n  <<: text\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeYAMLValue([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrDecode)
		})
	}
}

func TestDecodeYAMLValueAliasExpansionLimit(t *testing.T) {
	// Each level holds ten aliases of the previous one.
	var b strings.Builder
	b.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= 7; i++ {
		fmt.Fprintf(&b, "l%d: &l%d [", i, i)
		for j := range 10 {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "*l%d", i-1)
		}
		b.WriteString("]\n")
	}

	_, err := decodeYAMLValue([]byte(b.String()))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrDecode)
	assert.Contains(t, err.Error(), "too many YAML alias expansions")
}

func TestNormalizeValue(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	tests := []struct {
		name  string
		input any
		want  any
	}{
		{"int", 5, int64(5)},
		{"int32", int32(-3), int64(-3)},
		{"uint8", uint8(7), int64(7)},
		{"small uint64", uint64(9), int64(9)},
		{"large uint64", uint64(math.MaxUint64), uint64(math.MaxUint64)},
		{"float32", float32(0.5), 0.5},
		{"json number", json.Number("12"), int64(12)},
		{"json float", json.Number("1.25"), 1.25},
		{"time", ts, "2024-05-06T07:08:09Z"},
		{"string slice", []string{"a", "b"}, []any{"a", "b"}},
		{"string map", map[string]string{"k": "v"}, map[string]any{"k": "v"}},
		{"any-keyed map", map[any]any{1: "one", "two": 2}, map[string]any{"1": "one", "two": int64(2)}},
		{"nested", map[string]any{"list": []any{1, "x"}}, map[string]any{"list": []any{int64(1), "x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeValue(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeValueRejectsUnsupportedTypes(t *testing.T) {
	_, err := normalizeValue(map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ch: unsupported value type chan int")

	_, err = normalizeValue([]any{struct{}{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[0]")
}

func TestCloneValue(t *testing.T) {
	orig := map[string]any{
		"list": []any{"a", map[string]any{"k": "v"}},
		"n":    int64(1),
	}
	cp := cloneValue(orig).(map[string]any)
	assert.Equal(t, orig, cp)

	cp["list"].([]any)[1].(map[string]any)["k"] = "changed"
	cp["n"] = int64(2)

	assert.Equal(t, "v", orig["list"].([]any)[1].(map[string]any)["k"])
	assert.Equal(t, int64(1), orig["n"])
}

func TestValueKind(t *testing.T) {
	tests := []struct {
		input any
		want  string
	}{
		{nil, "null"},
		{true, "boolean"},
		{int64(1), "integer"},
		{uint64(1), "integer"},
		{1.5, "number"},
		{"s", "string"},
		{[]any{}, "array"},
		{map[string]any{}, "object"},
		{struct{}{}, "struct {}"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, valueKind(tt.input))
		})
	}
}
