package ingest

// OCR is the optical character recognition collaborator used as a fallback
// for image-based PDFs. The engine itself (tesseract, a cloud API, ...) is
// external; implementations receive the original document bytes and return
// whatever text they can recognize. Timeout handling belongs to the
// implementation; acquisition does not bound OCR time itself.
type OCR interface {
	Recognize(content []byte) (string, error)
}
