package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/oasmodel/oaserrors"
)

// utf8BOM is stripped from input before decoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parser turns OpenAPI text into a typed Document
type Parser struct {
	// Format forces JSON or YAML decoding. SourceFormatUnknown (the zero
	// value after New) detects the format from the file extension, then
	// from the content.
	Format SourceFormat
	// Strict reports unknown fields as errors instead of warnings
	Strict bool
	// Logger is the structured logger for diagnostics
	// If nil, logging is disabled (default)
	Logger Logger
	// MaxDepth limits schema nesting. 0 means DefaultMaxDepth.
	MaxDepth int
	// SourceName overrides the name reported in ParseResult.SourcePath and
	// in error messages
	SourceName string
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		Format:   SourceFormatUnknown,
		MaxDepth: DefaultMaxDepth,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

func (p *Parser) maxDepth() int {
	if p.MaxDepth > 0 {
		return p.MaxDepth
	}
	return DefaultMaxDepth
}

// ParseResult contains a parsed document and metadata about its source.
//
// The Document is immutable by convention: callers that want a modified
// variant should work on Document.Clone().
type ParseResult struct {
	// Document is the typed document
	Document *Document
	// Version is the raw "swagger" or "openapi" value (e.g., "2.0", "3.0.3")
	Version string
	// OASVersion is the enumerated version family
	OASVersion OASVersion
	// SourceFormat is the format the text was decoded as
	SourceFormat SourceFormat
	// SourcePath is the file path, the WithSourceName override, or
	// "ParseBytes.<ext>"/"ParseReader.<ext>" for in-memory input
	SourcePath string
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// LoadTime is the time taken to read the source data
	LoadTime time.Duration
	// Warnings lists unknown fields that were skipped (empty in strict mode)
	Warnings []string
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// OAS2Document returns the document as an OAS2Document when it is version
// 2.0.
func (pr *ParseResult) OAS2Document() (*OAS2Document, bool) {
	if pr == nil {
		return nil, false
	}
	return pr.Document.OAS2()
}

// OAS3Document returns the document as an OAS3Document when it is version
// 3.x.
func (pr *ParseResult) OAS3Document() (*OAS3Document, bool) {
	if pr == nil {
		return nil, false
	}
	return pr.Document.OAS3()
}

// Marshal serializes the document in the given format. SourceFormatUnknown
// re-uses the format the document was parsed from.
func (pr *ParseResult) Marshal(format SourceFormat) ([]byte, error) {
	if format == SourceFormatUnknown {
		format = pr.SourceFormat
	}
	return Serialize(pr.Document, format)
}

// Parse reads and parses an OpenAPI document from a local file
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(specPath)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}

	format := p.Format
	if format == SourceFormatUnknown {
		format = detectFormatFromPath(specPath)
	}
	name := specPath
	if p.SourceName != "" {
		name = p.SourceName
	}

	res, err := p.parse(data, format, name)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader parses an OpenAPI document from an io.Reader
// Note: unless SourceName is set, ParseResult.SourcePath will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.parse(data, p.Format, p.SourceName)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	if p.SourceName == "" {
		res.SourcePath = "ParseReader." + string(res.SourceFormat)
	}
	return res, nil
}

// ParseBytes parses an OpenAPI document from a byte slice
// Note: unless SourceName is set, ParseResult.SourcePath will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parse(data, p.Format, p.SourceName)
	if err != nil {
		return nil, err
	}
	if p.SourceName == "" {
		res.SourcePath = "ParseBytes." + string(res.SourceFormat)
	}
	return res, nil
}

// parse runs the pipeline: text to value tree, version dispatch, typed
// decode. format may be SourceFormatUnknown.
func (p *Parser) parse(data []byte, format SourceFormat, name string) (*ParseResult, error) {
	log := p.log()
	if name != "" {
		log = log.With("source", name)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	root, format, err := decodeText(data, format)
	if err != nil {
		return nil, wrapSource(name, err)
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, wrapSource(name, &oaserrors.DecodeError{
			Message: fmt.Sprintf("document root must be an object, got %s", valueKind(root)),
		})
	}

	version, oasVersion, err := detectVersion(obj)
	if err != nil {
		return nil, wrapSource(name, err)
	}
	log.Debug("detected version", "version", version, "family", oasVersion.String(), "format", string(format))

	d := &decoder{
		version:  oasVersion,
		strict:   p.Strict,
		maxDepth: p.maxDepth(),
		logger:   log,
	}
	if oasVersion == Unknown {
		// newer than any known 3.x family; read with the latest known shape
		d.version = OASVersion32
	}

	var doc *Document
	if oasVersion == OASVersion20 {
		v2, err := d.decodeOAS2(obj)
		if err != nil {
			return nil, wrapSource(name, err)
		}
		doc = NewOAS2Document(v2)
	} else {
		v3, err := d.decodeOAS3(obj)
		if err != nil {
			return nil, wrapSource(name, err)
		}
		doc = NewOAS3Document(v3)
	}

	res := &ParseResult{
		Document:     doc,
		Version:      version,
		OASVersion:   oasVersion,
		SourceFormat: format,
		SourcePath:   name,
		SourceSize:   int64(len(data)),
		Warnings:     d.warnings,
		Stats:        GetDocumentStats(doc),
	}
	if len(res.Warnings) > 0 {
		log.Info("parsed with warnings", "warnings", len(res.Warnings))
	}
	return res, nil
}

// decodeText decodes data into a value tree. A document sniffed as JSON
// that fails to decode is retried as YAML, since YAML flow mappings such
// as {swagger: "2.0"} look like JSON but are not.
func decodeText(data []byte, format SourceFormat) (any, SourceFormat, error) {
	switch format {
	case SourceFormatJSON:
		v, err := decodeJSONValue(data)
		return v, SourceFormatJSON, err
	case SourceFormatYAML:
		v, err := decodeYAMLValue(data)
		return v, SourceFormatYAML, err
	}

	switch detectFormatFromContent(data) {
	case SourceFormatUnknown:
		return nil, SourceFormatUnknown, &oaserrors.DecodeError{Message: "empty document"}
	case SourceFormatJSON:
		v, jsonErr := decodeJSONValue(data)
		if jsonErr == nil {
			return v, SourceFormatJSON, nil
		}
		if v, err := decodeYAMLValue(data); err == nil {
			return v, SourceFormatYAML, nil
		}
		return nil, SourceFormatJSON, jsonErr
	}
	v, err := decodeYAMLValue(data)
	return v, SourceFormatYAML, err
}

// wrapSource prefixes err with the source name while keeping it
// inspectable with errors.As.
func wrapSource(name string, err error) error {
	if name == "" {
		return fmt.Errorf("parser: %w", err)
	}
	return fmt.Errorf("parser: %s: %w", name, err)
}

// Serialize renders doc as JSON (two-space indent) or YAML.
func Serialize(doc *Document, format SourceFormat) ([]byte, error) {
	switch format {
	case SourceFormatJSON:
		return MarshalJSON(doc, "  ")
	case SourceFormatYAML:
		return MarshalYAML(doc)
	}
	return nil, &oaserrors.SerializationError{Message: fmt.Sprintf("unsupported output format %q", format)}
}

// MarshalJSON renders doc as JSON. An empty indent produces compact
// output; otherwise each level is indented by indent and the output ends
// with a newline.
func MarshalJSON(doc *Document, indent string) ([]byte, error) {
	obj, err := encodeDocument(doc)
	if err != nil {
		return nil, err
	}
	out, err := orderedJSON(obj, indent)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarshalYAML renders doc as block-style YAML with two-space indentation.
func MarshalYAML(doc *Document) ([]byte, error) {
	obj, err := encodeDocument(doc)
	if err != nil {
		return nil, err
	}
	return orderedYAML(obj)
}

// IsParseError reports whether err came from decoding rather than from
// reading the input.
func IsParseError(err error) bool {
	return errors.Is(err, oaserrors.ErrDecode) ||
		errors.Is(err, oaserrors.ErrSchemaMismatch) ||
		errors.Is(err, oaserrors.ErrUnsupportedVersion) ||
		errors.Is(err, oaserrors.ErrUnrecognizedTag) ||
		errors.Is(err, oaserrors.ErrResourceLimit)
}
