package mcpserver

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasmodel/oaserrors"
)

const minimalYAML = `openapi: "3.0.0"
info:
  title: Test
  version: "1.0"
paths: {}
`

func writeSpec(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSpecInput_ResolveFile(t *testing.T) {
	ts := newTestToolset()
	path := writeSpec(t, "spec.yaml", minimalYAML)

	result, err := ts.resolve(specInput{File: path}, false)
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", result.Version)
	assert.Equal(t, path, result.SourcePath)
}

func TestSpecInput_ResolveContent(t *testing.T) {
	ts := newTestToolset()
	result, err := ts.resolve(specInput{Content: minimalYAML}, false)
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", result.Version)
	assert.Equal(t, "content", result.SourcePath)
}

func TestSpecInput_ResolveExplicitFormat(t *testing.T) {
	ts := newTestToolset()

	_, err := ts.resolve(specInput{Content: minimalYAML, Format: "json"}, false)
	require.Error(t, err, "YAML content forced through the JSON decoder")
	assert.ErrorIs(t, err, oaserrors.ErrDecode)

	_, err = ts.resolve(specInput{Content: minimalYAML, Format: "xml"}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
}

func TestSpecInput_ResolveInputCount(t *testing.T) {
	ts := newTestToolset()

	_, err := ts.resolve(specInput{}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content must be provided")

	_, err = ts.resolve(specInput{File: "foo.yaml", Content: "bar"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content must be provided")
}

func TestSpecInput_ResolveFileNotFound(t *testing.T) {
	ts := newTestToolset()
	_, err := ts.resolve(specInput{File: filepath.Join(t.TempDir(), "missing.yaml")}, false)
	assert.Error(t, err)
	assert.Zero(t, ts.cache.size())
}

func TestSpecInput_ResolveStrict(t *testing.T) {
	ts := newTestToolset()
	content := minimalYAML + "bogus: true\n"

	lenient, err := ts.resolve(specInput{Content: content}, false)
	require.NoError(t, err)
	assert.Len(t, lenient.Warnings, 1)

	_, err = ts.resolve(specInput{Content: content}, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrSchemaMismatch)
}

func TestSpecCache_HitOnSameFile(t *testing.T) {
	ts := newTestToolset()
	input := specInput{File: writeSpec(t, "spec.yaml", minimalYAML)}

	result1, err := ts.resolve(input, false)
	require.NoError(t, err)
	assert.Equal(t, 1, ts.cache.size())

	result2, err := ts.resolve(input, false)
	require.NoError(t, err)
	assert.Same(t, result1, result2, "expected same pointer from cache hit")
}

func TestSpecCache_MissOnModifiedFile(t *testing.T) {
	ts := newTestToolset()
	path := writeSpec(t, "spec.yaml", `openapi: "3.0.0"
info:
  title: Test V1
  version: "1.0"
paths: {}
`)
	input := specInput{File: path}
	result1, err := ts.resolve(input, false)
	require.NoError(t, err)
	assert.Equal(t, "Test V1", result1.Document.Info().Title)

	require.NoError(t, os.WriteFile(path, []byte(`openapi: "3.0.0"
info:
  title: Test V2
  version: "2.0"
paths: {}
`), 0o644))
	// Ensure mtime differs from the first write on coarse-grained filesystems.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	result2, err := ts.resolve(input, false)
	require.NoError(t, err)
	assert.NotSame(t, result1, result2)
	assert.Equal(t, "Test V2", result2.Document.Info().Title)
}

func TestSpecCache_KeyIncludesSettings(t *testing.T) {
	ts := newTestToolset()
	input := specInput{Content: minimalYAML}

	result1, err := ts.resolve(input, false)
	require.NoError(t, err)
	result2, err := ts.resolve(input, false)
	require.NoError(t, err)
	assert.Same(t, result1, result2)

	result3, err := ts.resolve(input, true)
	require.NoError(t, err)
	assert.NotSame(t, result1, result3)
	assert.Equal(t, 2, ts.cache.size())
}

func TestSpecCache_LRUEviction(t *testing.T) {
	ts := newTestToolset()

	var firstKey string
	for i := range defaultCacheSize + 1 {
		content := `openapi: "3.0.0"
info:
  title: "Spec ` + string(rune('A'+i)) + `"
  version: "1.0"
paths: {}
`
		input := specInput{Content: content}
		if i == 0 {
			firstKey = makeCacheKey(input, false, ts.cfg.MaxDepth)
		}
		_, err := ts.resolve(input, false)
		require.NoError(t, err)
	}

	assert.Equal(t, defaultCacheSize, ts.cache.size())
	assert.Nil(t, ts.cache.get(firstKey), "expected oldest entry to be evicted")
}

func TestSpecCache_GetRefreshesEntry(t *testing.T) {
	c := newSpecCache(2)
	c.put("a", nil)
	c.put("b", nil)
	c.get("a")
	c.put("c", nil)

	_, hasA := c.entries["a"]
	_, hasB := c.entries["b"]
	assert.True(t, hasA)
	assert.False(t, hasB)
}
