package parser

// DocumentStats contains statistical information about a document
type DocumentStats struct {
	PathCount            int // Number of path templates
	OperationCount       int // Total number of operations across all paths
	SchemaCount          int // Number of named schemas (definitions or components.schemas)
	SecuritySchemeCount  int // Number of named security schemes
	ExtensionCount       int // Number of x- keys on the document root
	MaxSchemaDepth       int // Deepest schema nesting across all named schemas
	ParameterRefCount    int // Parameter list entries that are references
	InlineParameterCount int // Parameter list entries that are inline parameters
}

// GetDocumentStats returns statistics for a document
func GetDocumentStats(doc *Document) DocumentStats {
	stats := DocumentStats{}
	if doc == nil {
		return stats
	}

	paths := doc.Paths()
	stats.PathCount = len(paths)
	for _, item := range paths {
		if item == nil {
			continue
		}
		countParameters(&stats, item.Parameters)
		for _, op := range item.Operations() {
			stats.OperationCount++
			countParameters(&stats, op.Parameters)
		}
	}

	schemas := doc.Schemas()
	stats.SchemaCount = len(schemas)
	for _, s := range schemas {
		stats.MaxSchemaDepth = max(stats.MaxSchemaDepth, schemaDepth(s))
	}
	stats.SecuritySchemeCount = len(doc.SecuritySchemes())
	stats.ExtensionCount = doc.Extensions().Len()
	return stats
}

func countParameters(stats *DocumentStats, params []ParameterOrRef) {
	for _, p := range params {
		if p.IsRef() {
			stats.ParameterRefCount++
		} else {
			stats.InlineParameterCount++
		}
	}
}

// schemaDepth returns the nesting depth of s, counting s itself as 1.
func schemaDepth(s *Schema) int {
	if s == nil {
		return 0
	}
	deepest := 0
	visit := func(child *Schema) {
		deepest = max(deepest, schemaDepth(child))
	}
	visit(s.Items)
	visit(s.Not)
	for _, child := range s.Properties {
		visit(child)
	}
	for _, list := range [][]*Schema{s.AllOf, s.AnyOf, s.OneOf} {
		for _, child := range list {
			visit(child)
		}
	}
	if s.AdditionalProperties != nil {
		visit(s.AdditionalProperties.Schema)
	}
	return deepest + 1
}
