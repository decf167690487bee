package ingest

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

var _ Extractor = (*PDFExtractor)(nil)

// ocrTextThreshold is the combined direct-extraction length below which a
// PDF is assumed to be image-based and the OCR fallback kicks in.
const ocrTextThreshold = 50

// PDFExtractor extracts text from PDF documents, page by page in page
// order. When direct extraction yields almost nothing and an OCR
// collaborator is configured, its output is used instead.
type PDFExtractor struct {
	ocr OCR
}

// PDFOption configures a PDFExtractor.
type PDFOption func(*PDFExtractor)

// WithPDFOCR sets the OCR fallback for image-based PDFs.
func WithPDFOCR(ocr OCR) PDFOption {
	return func(e *PDFExtractor) { e.ocr = ocr }
}

// NewPDFExtractor creates a PDF extractor.
func NewPDFExtractor(opts ...PDFOption) *PDFExtractor {
	e := &PDFExtractor{}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Extract extracts plain text from a PDF document.
func (e *PDFExtractor) Extract(content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("empty pdf content")
	}
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var text strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue // skip unreadable pages
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		if text.Len() > 0 {
			text.WriteString("\n")
		}
		text.WriteString(pageText)
	}

	direct := strings.TrimSpace(text.String())
	if utf8.RuneCountInString(direct) < ocrTextThreshold && e.ocr != nil {
		recognized, err := e.ocr.Recognize(content)
		if err == nil && strings.TrimSpace(recognized) != "" {
			return strings.TrimSpace(recognized), nil
		}
	}
	return direct, nil
}
