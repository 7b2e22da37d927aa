// Package oasmodel models OpenAPI 2.0 (Swagger) and OpenAPI 3.0.x documents
// as a strongly-typed tree and converts between that tree and YAML or JSON
// text.
//
// # Overview
//
//   - parser: parse YAML/JSON into a typed [parser.Document] and serialize it back
//   - oaserrors: the typed error taxonomy returned by parser
//
// Supported versions:
//   - OAS 2.0 (Swagger): https://spec.openapis.org/oas/v2.0.html
//   - OAS 3.0.x: https://spec.openapis.org/oas/v3.0.3.html
//
// Documents declaring a later 3.x version are read with the 3.0 shape.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Document.Info().Title)
//
//	out, err := parser.Serialize(result.Document, parser.SourceFormatJSON)
//
// Vendor extensions (keys starting with "x-") are kept on the object they
// appear on and written back after its typed fields. Unknown non-extension
// keys are reported as warnings, or as errors with [parser.WithStrict].
//
// # Command Line
//
// The oasmodel command parses, converts and serves documents over MCP:
//
//	oasmodel parse openapi.yaml
//	oasmodel convert --format json openapi.yaml
//	oasmodel mcp
package oasmodel
