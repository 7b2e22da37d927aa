package mcpserver

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oasmodel/internal/config"
	"github.com/erraggy/oasmodel/parser"
)

// testConfig mirrors the envconfig defaults without reading the environment.
func testConfig() *config.Config {
	return &config.Config{
		LogLevel:     "warn",
		MaxDepth:     parser.DefaultMaxDepth,
		OutputFormat: "yaml",
		Indent:       2,
	}
}

func newTestToolset() *toolset {
	return newToolset(testConfig(), nil)
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))
	s := makeSlice[string](3)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error returns empty string",
			err:  nil,
			want: "",
		},
		{
			name: "strips absolute path",
			err:  fmt.Errorf("parser: /home/user/secret/api.yaml: document: missing required field"),
			want: "parser: <path>: document: missing required field",
		},
		{
			name: "preserves non-path content",
			err:  fmt.Errorf("decode error at line 5"),
			want: "decode error at line 5",
		},
		{
			name: "strips multiple paths",
			err:  fmt.Errorf("copy /tmp/a.yaml to /tmp/b.json failed"),
			want: "copy <path> to <path> failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeError(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrResult(t *testing.T) {
	res := errResult(fmt.Errorf("boom"))
	assert.True(t, res.IsError)
	assert.Len(t, res.Content, 1)
}
