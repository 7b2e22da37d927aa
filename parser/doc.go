// Package parser provides parsing and serialization for OpenAPI Specification
// documents.
//
// The parser reads OAS 2.0 (Swagger) and OAS 3.0.x documents in YAML or JSON
// into a typed [Document], and writes a Document back as YAML or JSON with
// keys in the order the OpenAPI specification lists them. Documents that
// declare a later 3.x version are read with the 3.0 shape.
//
// # Quick Start
//
// Parse a file using functional options:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//		parser.WithStrict(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Version, result.Document.Info().Title)
//
// Or create a reusable Parser instance:
//
//	p := parser.New()
//	p.MaxDepth = 64
//	result1, _ := p.Parse("api1.yaml")
//	result2, _ := p.ParseBytes(data)
//
// Serialize a document in either format:
//
//	yamlOut, err := parser.MarshalYAML(result.Document)
//	jsonOut, err := parser.MarshalJSON(result.Document, "  ")
//
// # Version Detection
//
// The version is read from the "swagger" or "openapi" key of the document
// root before anything else. "swagger" must be exactly "2.0"; "openapi" must
// be a semantic version satisfying [OAS3Requirement]. A document with both
// keys, neither key, or an unsupported value is rejected with an error from
// the oaserrors package.
//
// # Unknown Fields and Extensions
//
// Keys starting with "x-" are specification extensions. They are kept on the
// object they appear on as [Extensions] and written back after the typed
// fields, sorted by key. Any other key the model does not know is dropped
// and reported in ParseResult.Warnings, or fails the parse when strict mode
// is enabled with [WithStrict].
//
// # Parameters, Defaults and Security Schemes
//
// A parameter list entry is either an inline [Parameter] or a [Reference];
// an object carrying "$ref" is always a reference. References are never
// followed. Parameter "default" values are held in a [PropertyDefault] that
// distinguishes integers, booleans and strings. Security schemes are a
// closed set of variants selected by their "type" field, and the accepted
// set depends on the document version.
//
// # Resource Limits
//
// Schema nesting is limited to [DefaultMaxDepth] levels unless changed with
// [WithMaxDepth]. YAML alias expansion is bounded so a small document cannot
// expand into an unbounded tree.
//
// # Errors
//
// Every failure is one of the typed errors in the oaserrors package and can
// be matched with errors.Is against its sentinel:
//
//	if errors.Is(err, oaserrors.ErrUnsupportedVersion) {
//		// ...
//	}
//
// # Immutability
//
// A parsed Document is never modified by this package. Use [Document.Clone]
// to derive a copy that can be changed without affecting the original.
package parser
