package parser

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/erraggy/oasmodel/oaserrors"
)

// SourceFormat represents the text format of a document
type SourceFormat string

const (
	// SourceFormatYAML indicates YAML text
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates JSON text
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseSourceFormat maps "json", "yaml" or "yml" to a SourceFormat.
func ParseSourceFormat(s string) (SourceFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return SourceFormatJSON, nil
	case "yaml", "yml":
		return SourceFormatYAML, nil
	}
	return SourceFormatUnknown, &oaserrors.ConfigError{
		Option:  "format",
		Value:   s,
		Message: "must be json or yaml",
	}
}

// FormatBytes formats a byte count into a human-readable string using binary units (KiB, MiB, etc.)
func FormatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// detectFormatFromPath detects the source format from a file extension
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent sniffs the first non-blank byte. JSON documents
// start with '{'; anything else is treated as YAML, which is a superset.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
