package cliutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"single arg", "Hello, %s!", []any{"World"}, "Hello, World!"},
		{"no args", "Simple message", nil, "Simple message"},
		{"multiple args", "%s: %d items, %v active", []any{"Status", 42, true}, "Status: 42 items, true active"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Writef(&buf, tt.format, tt.args...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestWritef_WriteError(t *testing.T) {
	assert.NotPanics(t, func() {
		Writef(errorWriter{}, "This will fail")
	})
}
