// Package ingest turns uploaded document bytes into a single plain-text
// string for the extraction pipeline. Each supported format has its own
// Extractor; a Registry dispatches on the declared format tag and rejects
// anything it has no extractor for.
package ingest

import (
	"strings"
	"unicode/utf8"

	metasift "github.com/nevindra/metasift"
)

// Extractor converts raw document content to plain text.
type Extractor interface {
	Extract(content []byte) (string, error)
}

// Format identifies the declared document format of an upload.
type Format string

const (
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
	FormatTXT      Format = "txt"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "md"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
)

// FormatFromExtension maps a file extension (with or without the leading
// dot, any case) to a Format tag. The tag is not validated here; dispatch
// rejects unknown tags.
func FormatFromExtension(ext string) Format {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "htm", "html":
		return FormatHTML
	case "md", "markdown":
		return FormatMarkdown
	case "text", "txt":
		return FormatTXT
	default:
		return Format(ext)
	}
}

// Registry holds the extractors available for dispatch.
type Registry struct {
	extractors map[Format]Extractor
}

// NewRegistry creates a Registry with all built-in extractors registered.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		extractors: map[Format]Extractor{
			FormatTXT:      TextExtractor{},
			FormatPDF:      NewPDFExtractor(),
			FormatDOCX:     DOCXExtractor{},
			FormatHTML:     HTMLExtractor{},
			FormatMarkdown: MarkdownExtractor{},
			FormatCSV:      CSVExtractor{},
			FormatJSON:     JSONExtractor{},
		},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Extract dispatches content to the extractor registered for format.
// Unknown formats fail with metasift.ErrUnsupportedFormat.
func (r *Registry) Extract(content []byte, format Format) (string, error) {
	format = Format(strings.ToLower(string(format)))
	extractor, ok := r.extractors[format]
	if !ok {
		return "", &metasift.ErrUnsupportedFormat{Format: string(format)}
	}
	return extractor.Extract(content)
}

// ExtractText extracts using a registry with default extractors only.
func ExtractText(content []byte, format Format) (string, error) {
	return NewRegistry().Extract(content, format)
}

// MinTextLength is the minimum number of characters (after trimming) that
// acquisition must produce before extraction is worth invoking.
const MinTextLength = 10

// CheckText is the caller-side pre-check: it fails with
// metasift.ErrInsufficientText when the acquired text is too short. The
// extraction pipeline itself accepts any string; below this threshold its
// output is merely degenerate.
func CheckText(text string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(text))
	if n < MinTextLength {
		return &metasift.ErrInsufficientText{Length: n, Min: MinTextLength}
	}
	return nil
}
