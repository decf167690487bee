package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// sentenceSplitPattern splits text on runs of sentence-terminal punctuation.
var sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)

// Summary produces an extractive summary of at most maxSentences sentences,
// joined with ". " and a single trailing period. Short texts pass through
// whole; longer texts are reduced to the sentences scoring highest against
// the document's own keywords, re-emitted in original order. When no
// sentence survives even the loose length filter, NoSummary is returned.
func (e *Extractor) Summary(text string, maxSentences int) string {
	sentences := splitSentences(text, 20)
	if len(sentences) == 0 {
		return e.leadingSentences(text, maxSentences)
	}
	if len(sentences) <= maxSentences {
		return strings.Join(sentences, ". ") + "."
	}

	keywords := e.Keywords(text, summaryKeywordPool)
	keywordSet := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		keywordSet[k] = struct{}{}
	}

	type scored struct {
		sentence string
		score    int
	}
	ranked := make([]scored, len(sentences))
	for i, s := range sentences {
		score := 0
		for _, w := range strings.Fields(strings.ToLower(s)) {
			if _, ok := keywordSet[w]; ok {
				score++
			}
		}
		ranked[i] = scored{sentence: s, score: score}
	}
	// Stable: equal-score sentences keep their original relative order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	top := make(map[string]struct{}, maxSentences)
	for _, sc := range ranked[:maxSentences] {
		top[sc.sentence] = struct{}{}
	}

	// Re-walk in original order so the summary reads front to back.
	var picked []string
	for _, s := range sentences {
		if _, ok := top[s]; ok {
			picked = append(picked, s)
		}
		if len(picked) >= maxSentences {
			break
		}
	}
	return strings.Join(picked, ". ") + "."
}

// leadingSentences is the degraded path: the first maxSentences fragments
// under a looser length filter, or NoSummary when nothing qualifies.
func (e *Extractor) leadingSentences(text string, maxSentences int) string {
	sentences := splitSentences(text, 10)
	if len(sentences) == 0 {
		return NoSummary
	}
	if len(sentences) > maxSentences {
		sentences = sentences[:maxSentences]
	}
	return strings.Join(sentences, ". ") + "."
}

// splitSentences splits on terminal punctuation and keeps fragments whose
// trimmed length exceeds minLen.
func splitSentences(text string, minLen int) []string {
	var out []string
	for _, frag := range sentenceSplitPattern.Split(text, -1) {
		frag = strings.TrimSpace(frag)
		if utf8.RuneCountInString(frag) > minLen {
			out = append(out, frag)
		}
	}
	return out
}
