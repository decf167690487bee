package extract

import "regexp"

const monthNames = `January|February|March|April|May|June|July|August|September|October|November|December`

// Date shapes, applied in order against the full text. Matching is purely
// lexical: calendar-invalid strings like "02/30/2024" are accepted as-is.
var datePatterns = []*regexp.Regexp{
	// YYYY-MM-DD
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	// MM/DD/YYYY
	regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`),
	// MM-DD-YYYY
	regexp.MustCompile(`\b\d{2}-\d{2}-\d{4}\b`),
	// D Month YYYY
	regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:` + monthNames + `)\s+\d{4}\b`),
	// Month D, YYYY
	regexp.MustCompile(`(?i)\b(?:` + monthNames + `)\s+\d{1,2},?\s+\d{4}\b`),
}

// Dates returns up to five unique date strings found in the text, in pattern
// order then text-occurrence order, exactly as matched (not normalized).
func (e *Extractor) Dates(text string) []string {
	seen := make(map[string]struct{})
	dates := []string{}
	for _, pattern := range datePatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			dates = append(dates, m)
			if len(dates) == maxDates {
				return dates
			}
		}
	}
	return dates
}
