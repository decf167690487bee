package metasift

import (
	"time"

	"github.com/google/uuid"
)

// NewID generates an extraction record ID: a UUIDv7 (RFC 9562), globally
// unique and time-sortable, so IDs order history listings even when two
// records share a created-at second.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NowUnix returns the current time as Unix seconds, the resolution used for
// Extraction.CreatedAt.
func NowUnix() int64 {
	return time.Now().Unix()
}
