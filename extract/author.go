package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Author patterns, tried in order against the whole text. The first pattern
// whose first match survives cleanup wins.
var authorPatterns = []*regexp.Regexp{
	// Author: John Doe
	regexp.MustCompile(`(?i)author[:\s]+([^\n]+)`),
	// by John Doe (two capitalized words)
	regexp.MustCompile(`(?i:by)\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	// written by John Doe
	regexp.MustCompile(`(?i)written\s+by\s+([^\n]+)`),
	// John Doe on a line of its own
	regexp.MustCompile(`(?m)^([A-Z][a-z]+\s+[A-Z][a-z]+)\s*$`),
}

// authorCleanPattern strips everything except letters, spaces, and periods.
var authorCleanPattern = regexp.MustCompile(`[^a-zA-Z\s.]`)

// Author extracts the document author, or UnknownAuthor when no pattern
// yields a name between 4 and 49 characters after cleanup.
func (e *Extractor) Author(text string) string {
	for _, pattern := range authorPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		author := authorCleanPattern.ReplaceAllString(strings.TrimSpace(m[1]), "")
		if n := utf8.RuneCountInString(author); n > 3 && n < 50 {
			return author
		}
	}
	return UnknownAuthor
}
