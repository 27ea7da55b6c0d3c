package render

import (
	"fmt"
	"strings"

	"prospector/internal/ports"
)

// Format identifies an output renderer
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatXML      Format = "xml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists the supported format names for flag help
func Formats() []string {
	return []string{
		string(FormatText),
		string(FormatJSON),
		string(FormatCSV),
		string(FormatXML),
		string(FormatMarkdown),
		string(FormatHTML),
	}
}

// New returns the renderer for a format name
func New(format Format) (ports.Renderer, error) {
	switch format {
	case FormatText, "":
		return &TextRenderer{}, nil
	case FormatJSON:
		return &JSONRenderer{}, nil
	case FormatCSV:
		return &CSVRenderer{}, nil
	case FormatXML:
		return &XMLRenderer{}, nil
	case FormatMarkdown:
		return &MarkdownRenderer{}, nil
	case FormatHTML:
		return &HTMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: %s)", format, strings.Join(Formats(), ", "))
	}
}
