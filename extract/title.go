package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Title patterns, checked in priority order against each candidate line.
var titlePatterns = []*regexp.Regexp{
	// Title: Something
	regexp.MustCompile(`(?i)^title[:\s]+(.+)$`),
	// Something - Subtitle (hyphen or em-dash); the first part wins
	regexp.MustCompile(`^(.+)\s*[-—]\s*(.+)$`),
	// A sentence-case line with no internal terminal punctuation
	regexp.MustCompile(`^\s*([A-Z][^.!?]*[^.!?\s])\s*$`),
}

// Leading artifacts stripped from the first-line fallback.
var titleArtifactPattern = regexp.MustCompile(`(?i)^(page\s*\d+|chapter\s*\d+)`)

// Title extracts the document title: the first of the leading meaningful
// lines that matches a title pattern, else the first meaningful line with
// page/chapter artifacts stripped, else UntitledDocument. A meaningful line
// has a trimmed length strictly between 10 and 200 characters.
func (e *Extractor) Title(text string) string {
	var meaningful []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if n := utf8.RuneCountInString(trimmed); n > 10 && n < 200 {
			meaningful = append(meaningful, trimmed)
		}
	}
	if len(meaningful) == 0 {
		return UntitledDocument
	}

	// Only the first few meaningful lines are plausible titles.
	limit := 5
	if len(meaningful) < limit {
		limit = len(meaningful)
	}
	for _, line := range meaningful[:limit] {
		for _, pattern := range titlePatterns {
			m := pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			title := strings.TrimSpace(m[1])
			if utf8.RuneCountInString(title) > 5 {
				return title
			}
		}
	}

	first := strings.TrimSpace(titleArtifactPattern.ReplaceAllString(meaningful[0], ""))
	if utf8.RuneCountInString(first) > 5 {
		return first
	}
	return UntitledDocument
}
