package packagelist

import (
	"path/filepath"
	"strings"
)

// Format is an on-disk package list format.
type Format string

const (
	FormatText Format = "txt"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatTOML, FormatYAML, FormatJSON}

// FormatFromPath infers a format from a file extension. A path without an
// extension is text. known is false for unrecognized extensions, which
// also read as text.
func FormatFromPath(path string) (format Format, known bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "", "txt", "text", "list":
		return FormatText, true
	case "toml":
		return FormatTOML, true
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	default:
		return FormatText, false
	}
}

// ParseFormat parses a format name such as "yaml" or "yml".
func ParseFormat(name string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "txt", "text", "plain":
		return FormatText, true
	case "toml":
		return FormatTOML, true
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	default:
		return "", false
	}
}

// Document is the structured form shared by the TOML, YAML and JSON formats.
type Document struct {
	Packages []string `toml:"packages" yaml:"packages" json:"packages"`
}
