package metasift

// --- Domain types ---

// Metadata is the extraction pipeline's output record. It is always fully
// populated: fields that cannot be determined carry their documented
// fallback values rather than being empty or missing.
type Metadata struct {
	Title          string   `json:"title"`
	Author         string   `json:"author"`
	Dates          []string `json:"dates"`
	Keywords       []string `json:"keywords"`
	Summary        string   `json:"summary"`
	WordCount      int      `json:"word_count"`
	CharacterCount int      `json:"character_count"`
	ExtractionDate string   `json:"extraction_date"`
}

// ExtractionDateLayout is the wall-clock format used for
// Metadata.ExtractionDate. The timestamp is for audit/display only and is
// not intrinsic to the analyzed text.
const ExtractionDateLayout = "2006-01-02 15:04:05"

// Extraction is a persisted extraction result: the metadata record plus
// provenance of the upload that produced it (database record).
type Extraction struct {
	ID        string   `json:"id"`
	Filename  string   `json:"filename"`
	Format    string   `json:"format"`
	Metadata  Metadata `json:"metadata"`
	CreatedAt int64    `json:"created_at"`
}
