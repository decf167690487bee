package metasift

import "fmt"

// ErrUnsupportedFormat is returned by the acquisition layer when an upload
// declares a format no extractor is registered for. It is raised before the
// extraction pipeline is ever invoked.
type ErrUnsupportedFormat struct {
	Format string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported format: %s", e.Format)
}

// ErrInsufficientText is a caller-side pre-check failure: the acquired text
// is too short for extraction to produce meaningful output. The pipeline
// itself never rejects short input.
type ErrInsufficientText struct {
	Length int
	Min    int
}

func (e *ErrInsufficientText) Error() string {
	return fmt.Sprintf("insufficient text: %d chars, need at least %d", e.Length, e.Min)
}

// ErrNotFound is returned by Store implementations when no extraction with
// the requested ID exists.
type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("extraction not found: %s", e.ID)
}
