package formatters

import "strings"

// OutputFormat represents an output format type
type OutputFormat string

const (
	OutputFormatDOT     OutputFormat = "dot"
	OutputFormatJSON    OutputFormat = "json"
	OutputFormatMermaid OutputFormat = "mermaid"
)

var allFormats = []OutputFormat{OutputFormatDOT, OutputFormatJSON, OutputFormatMermaid}

// String returns the string representation of the format
func (f OutputFormat) String() string {
	return string(f)
}

// ParseOutputFormat converts a user-supplied name into an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, bool) {
	for _, f := range allFormats {
		if strings.EqualFold(name, f.String()) {
			return f, true
		}
	}
	return "", false
}

// SupportedFormats lists every format name, comma-separated.
func SupportedFormats() string {
	names := make([]string, len(allFormats))
	for i, f := range allFormats {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
