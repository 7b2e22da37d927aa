package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/parser"
)

const petstoreYAML = `openapi: 3.0.3
info:
  title: Pet Store
  version: 1.0.0
paths:
  /pets:
    get:
      operationId: listPets
      parameters:
        - $ref: '#/components/parameters/Limit'
      responses:
        "200":
          description: OK
    post:
      operationId: createPet
      deprecated: true
      responses:
        "201":
          description: Created
  /pets/{id}:
    get:
      operationId: getPet
      parameters:
        - name: id
          in: path
          required: true
          schema:
            type: string
      responses:
        default:
          description: error
components:
  parameters:
    Limit:
      name: limit
      in: query
      schema:
        type: integer
        format: int32
        default: 20
  schemas:
    Pet:
      type: object
      properties:
        tags:
          type: array
          items:
            type: string
x-audience: public
`

type testRoot struct {
	out    *bytes.Buffer
	errBuf *bytes.Buffer
	stdin  *bytes.Buffer
}

func newTestRoot(t *testing.T) (*testRoot, func(args ...string) error) {
	t.Helper()
	clearEnv(t)

	root, err := NewRootCmd()
	require.NoError(t, err)
	tr := &testRoot{out: &bytes.Buffer{}, errBuf: &bytes.Buffer{}, stdin: &bytes.Buffer{}}
	root.SetOut(tr.out)
	root.SetErr(tr.errBuf)
	root.SetIn(tr.stdin)

	run := func(args ...string) error {
		root.SetArgs(args)
		return root.Execute()
	}
	return tr, run
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCmd(t *testing.T) {
	tr, run := newTestRoot(t)
	require.NoError(t, run("version"))
	assert.Equal(t, "oasmodel vdev\n", tr.out.String())

	tr, run = newTestRoot(t)
	require.NoError(t, run("version", "--verbose"))
	assert.Contains(t, tr.out.String(), "Go Version: go")
}

func TestParseCmd_Text(t *testing.T) {
	path := writeFile(t, "petstore.yaml", petstoreYAML)
	tr, run := newTestRoot(t)

	require.NoError(t, run("parse", "--operations", path))
	out := tr.out.String()
	assert.Contains(t, out, "OAS Version: 3.0.3 (3.0.x)")
	assert.Contains(t, out, "Source Format: yaml")
	assert.Contains(t, out, "Paths: 2")
	assert.Contains(t, out, "Operations: 3")
	assert.Contains(t, out, "Parameters: 1 inline, 1 by reference")
	assert.Contains(t, out, "Title: Pet Store")
	assert.Contains(t, out, "  GET     /pets (listPets)")
	assert.Contains(t, out, "  POST    /pets (createPet) [deprecated]")
	assert.Contains(t, out, "  GET     /pets/{id} (getPet)")
	assert.Contains(t, out, "Parsing completed successfully!")
	assert.Empty(t, tr.errBuf.String())
}

func TestParseCmd_JSONSummary(t *testing.T) {
	path := writeFile(t, "petstore.yaml", petstoreYAML)
	tr, run := newTestRoot(t)

	require.NoError(t, run("parse", "--json", "--operations", path))
	var summary parseSummary
	require.NoError(t, json.Unmarshal(tr.out.Bytes(), &summary))
	assert.Equal(t, "3.0.3", summary.Version)
	assert.Equal(t, "Pet Store", summary.Title)
	assert.Equal(t, 1, summary.Stats.SchemaCount)
	assert.Equal(t, 3, summary.Stats.MaxSchemaDepth)
	assert.Equal(t, 1, summary.Stats.ExtensionCount)
	require.Len(t, summary.Operations, 3)
	assert.Equal(t, "POST", summary.Operations[1].Method)
}

func TestParseCmd_Stdin(t *testing.T) {
	tr, run := newTestRoot(t)
	tr.stdin.WriteString(`{"swagger": "2.0", "info": {"title": "S", "version": "1"}, "paths": {}}`)

	require.NoError(t, run("parse", "--json", "-"))
	var summary parseSummary
	require.NoError(t, json.Unmarshal(tr.out.Bytes(), &summary))
	assert.Equal(t, "<stdin>", summary.Source)
	assert.Equal(t, "2.0", summary.Version)
	assert.Equal(t, "json", summary.Format)
}

func TestParseCmd_StrictAndWarnings(t *testing.T) {
	path := writeFile(t, "extra.yaml", petstoreYAML+"unexpected: 1\n")

	tr, run := newTestRoot(t)
	require.NoError(t, run("parse", "-q", path))
	assert.Empty(t, tr.out.String())
	assert.Contains(t, tr.errBuf.String(), "Warnings:")
	assert.Contains(t, tr.errBuf.String(), `unknown field "unexpected" ignored`)

	_, run = newTestRoot(t)
	err := run("parse", "--strict", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrSchemaMismatch)

	t.Setenv("OASMODEL_STRICT", "true")
	root, err := NewRootCmd()
	require.NoError(t, err)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"parse", path})
	assert.ErrorIs(t, root.Execute(), oaserrors.ErrSchemaMismatch)
}

func TestParseCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"missing file", []string{"parse", filepath.Join(t.TempDir(), "missing.yaml")}, os.ErrNotExist},
		{"bad input format", []string{"parse", "--input-format", "toml", "x.yaml"}, oaserrors.ErrConfig},
		{"bad log level", []string{"--log-level", "chatty", "parse", "x.yaml"}, oaserrors.ErrConfig},
		{"negative depth", []string{"--max-depth", "-1", "parse", "x.yaml"}, oaserrors.ErrConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, run := newTestRoot(t)
			err := run(tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.is)
		})
	}

	_, run := newTestRoot(t)
	assert.Error(t, run("parse"), "missing argument")
	_, run = newTestRoot(t)
	assert.Error(t, run("--color", "rainbow", "version"))
}

func TestParseCmd_MaxDepth(t *testing.T) {
	path := writeFile(t, "petstore.yaml", petstoreYAML)
	_, run := newTestRoot(t)
	err := run("--max-depth", "2", "parse", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrResourceLimit)
}

func TestConvertCmd_ToJSON(t *testing.T) {
	path := writeFile(t, "petstore.yaml", petstoreYAML)
	tr, run := newTestRoot(t)

	require.NoError(t, run("convert", "--format", "json", path))
	out := tr.out.String()
	assert.True(t, strings.HasPrefix(out, "{\n  \"openapi\": \"3.0.3\",\n  \"info\": {"), out)
	assert.True(t, strings.HasSuffix(out, "}\n"))

	original, err := parser.ParseWithOptions(parser.WithBytes([]byte(petstoreYAML)))
	require.NoError(t, err)
	converted, err := parser.ParseWithOptions(parser.WithBytes(tr.out.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, parser.SourceFormatJSON, converted.SourceFormat)
	assert.Equal(t, original.Document, converted.Document)
}

func TestConvertCmd_CompactFromEnv(t *testing.T) {
	path := writeFile(t, "petstore.yaml", petstoreYAML)
	clearEnv(t)
	t.Setenv("OASMODEL_OUTPUT_FORMAT", "json")
	t.Setenv("OASMODEL_INDENT", "0")

	root, err := NewRootCmd()
	require.NoError(t, err)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"convert", path})
	require.NoError(t, root.Execute())

	assert.True(t, strings.HasPrefix(out.String(), `{"openapi":"3.0.3","info":{"title":"Pet Store","version":"1.0.0"},"paths":{`), out.String())
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))
}

func TestConvertCmd_OutputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "petstore.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"swagger":"2.0","info":{"title":"S","version":"1"},"paths":{}}`), 0o644))
	outPath := filepath.Join(dir, "petstore.yaml")

	tr, run := newTestRoot(t)
	require.NoError(t, run("--color", "never", "convert", "-o", outPath, in))
	assert.Empty(t, tr.out.String())
	assert.Contains(t, tr.errBuf.String(), "Wrote "+outPath+" (yaml,")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "swagger: \"2.0\"\ninfo:\n  title: S\n  version: \"1\"\npaths: {}\n", string(data))
}

func TestConvertCmd_RejectsOverwritingInput(t *testing.T) {
	path := writeFile(t, "petstore.yaml", petstoreYAML)
	_, run := newTestRoot(t)
	err := run("convert", "-o", path, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would overwrite input file")
}

func TestConvertCmd_RejectsSymlinkOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, "petstore.yaml", petstoreYAML)
	target := filepath.Join(dir, "target.yaml")
	link := filepath.Join(dir, "link.yaml")
	require.NoError(t, os.WriteFile(target, nil, 0o644))
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	_, run := newTestRoot(t)
	err := run("convert", "-o", link, in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to write to symlink")
}

func TestFormatSpecPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatSpecPath(StdinFilePath))
	assert.Equal(t, "api.yaml", FormatSpecPath("api.yaml"))
}

// clearEnv unsets every OASMODEL_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LOG_LEVEL", "STRICT", "MAX_DEPTH", "OUTPUT_FORMAT", "INDENT"} {
		key := "OASMODEL_" + k
		t.Setenv(key, "") // restores the original value on cleanup
		require.NoError(t, os.Unsetenv(key))
	}
}
