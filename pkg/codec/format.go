package codec

import (
	"path/filepath"
	"strings"
)

// Format names a textual document encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// Formats lists the built-in formats in display order
func Formats() []Format {
	return []Format{FormatJSON, FormatXML, FormatYAML}
}

// ParseFormat parses a format name, ignoring case and a leading dot
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", unknownFormat(Format(s))
}

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", unknownFormat(Format(path))
	}
	return ParseFormat(ext)
}

// Ext returns the canonical file extension, including the dot
func (f Format) Ext() string {
	return "." + string(f)
}

func (f Format) String() string {
	return string(f)
}
