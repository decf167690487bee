package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// keywordCleanPattern blanks every character that is not a word character,
// whitespace, or period before tokenization.
var keywordCleanPattern = regexp.MustCompile(`[^\w\s.]`)

// Keywords returns up to maxKeywords terms by descending frequency. Ties
// break on first occurrence in the text so results are deterministic. Every
// returned keyword occurs more than once in the filtered token stream.
func (e *Extractor) Keywords(text string, maxKeywords int) []string {
	cleaned := keywordCleanPattern.ReplaceAllString(strings.ToLower(text), " ")

	counts := make(map[string]int)
	var order []string
	for _, word := range strings.Fields(cleaned) {
		if !e.keepToken(word) {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	// Stable sort over first-seen order gives the deterministic tie-break.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	keywords := []string{}
	for i := 0; i < len(order) && i < maxKeywords; i++ {
		if counts[order[i]] > 1 {
			keywords = append(keywords, order[i])
		}
	}
	return keywords
}

// keepToken reports whether a token participates in frequency analysis:
// longer than 3 characters, not a stop word, not numeric, all letters.
func (e *Extractor) keepToken(word string) bool {
	if utf8.RuneCountInString(word) <= 3 {
		return false
	}
	if _, stop := e.stopWords[word]; stop {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
