package extract

import "time"

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxKeywords sets the keyword cap used by Extract (default 10).
func WithMaxKeywords(n int) Option {
	return func(e *Extractor) { e.maxKeywords = n }
}

// WithMaxSummarySentences sets the summary length used by Extract (default 3).
func WithMaxSummarySentences(n int) Option {
	return func(e *Extractor) { e.maxSentences = n }
}

// WithStopWords replaces the default English stop-word set.
func WithStopWords(words []string) Option {
	return func(e *Extractor) {
		e.stopWords = make(map[string]struct{}, len(words))
		for _, w := range words {
			e.stopWords[w] = struct{}{}
		}
	}
}

// WithClock overrides the wall clock used for the extraction timestamp.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}
