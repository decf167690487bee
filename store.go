package metasift

import "context"

// Store abstracts extraction-history persistence. Implementations live in
// store/sqlite (local, pure Go) and store/postgres.
type Store interface {
	// --- Extractions ---
	SaveExtraction(ctx context.Context, ex Extraction) error
	GetExtraction(ctx context.Context, id string) (Extraction, error)
	ListExtractions(ctx context.Context, limit int) ([]Extraction, error)
	DeleteExtraction(ctx context.Context, id string) error

	// --- Lifecycle ---
	Init(ctx context.Context) error
	Close() error
}
