package ingest

// Option configures a Registry.
type Option func(*Registry)

// WithExtractor registers (or replaces) the Extractor for a format.
func WithExtractor(format Format, e Extractor) Option {
	return func(r *Registry) { r.extractors[format] = e }
}

// WithOCR wires an OCR collaborator into the PDF extractor so image-based
// PDFs still yield text.
func WithOCR(ocr OCR) Option {
	return func(r *Registry) {
		r.extractors[FormatPDF] = NewPDFExtractor(WithPDFOCR(ocr))
	}
}
