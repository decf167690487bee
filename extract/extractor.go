// Package extract implements the heuristic metadata-extraction pipeline.
//
// Given a plain-text document it derives a title, an author, dates, keywords,
// and an extractive summary using ordered regular-expression patterns and
// frequency analysis; no trained models, English stop words only. Every
// field is total: when no heuristic matches, the field degrades to its
// documented fallback value instead of failing, so Extract always returns a
// fully populated record for any input, including the empty string.
package extract

import (
	"strings"
	"time"
	"unicode/utf8"

	metasift "github.com/nevindra/metasift"
)

// Fallback values returned when a field cannot be determined.
const (
	UntitledDocument = "Untitled Document"
	UnknownAuthor    = "Unknown Author"
	NoSummary        = "Summary not available."
)

const (
	// DefaultMaxKeywords is the keyword list cap used by Extract.
	DefaultMaxKeywords = 10

	// DefaultMaxSummarySentences is the summary length used by Extract.
	DefaultMaxSummarySentences = 3

	// summaryKeywordPool is the expanded keyword limit used for sentence
	// scoring inside Summary.
	summaryKeywordPool = 20

	// maxDates caps the number of unique dates returned by Dates.
	maxDates = 5
)

// defaultStopWords are common English words excluded from keyword frequency
// analysis.
var defaultStopWords = []string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
	"has", "he", "in", "is", "it", "its", "of", "on", "that", "the",
	"to", "was", "will", "with", "but", "or", "not", "this", "can",
	"have", "had", "been", "their", "said", "each", "which", "do",
	"how", "if", "who", "what", "where", "when", "why", "all", "any",
	"both", "few", "more", "most", "other", "some", "such",
}

// Extractor derives structured metadata from document text. It holds only
// immutable configuration (stop words, limits), so a single instance is safe
// for concurrent use.
type Extractor struct {
	stopWords    map[string]struct{}
	maxKeywords  int
	maxSentences int
	now          func() time.Time
}

// New creates an Extractor with the default stop-word set and limits.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		stopWords:    make(map[string]struct{}, len(defaultStopWords)),
		maxKeywords:  DefaultMaxKeywords,
		maxSentences: DefaultMaxSummarySentences,
		now:          time.Now,
	}
	for _, w := range defaultStopWords {
		e.stopWords[w] = struct{}{}
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Extract runs the full pipeline and assembles the metadata record. The five
// extractors are independent; each degrades to its own fallback, so Extract
// has no failure mode of its own.
func (e *Extractor) Extract(text string) metasift.Metadata {
	return metasift.Metadata{
		Title:          e.Title(text),
		Author:         e.Author(text),
		Dates:          e.Dates(text),
		Keywords:       e.Keywords(text, e.maxKeywords),
		Summary:        e.Summary(text, e.maxSentences),
		WordCount:      len(strings.Fields(text)),
		CharacterCount: utf8.RuneCountInString(text),
		ExtractionDate: e.now().Format(metasift.ExtractionDateLayout),
	}
}
