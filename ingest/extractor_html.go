package ingest

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-shiori/go-readability"
)

var _ Extractor = HTMLExtractor{}

// uploadURL is the placeholder page URL handed to readability; uploads have
// no real location and relative links are irrelevant for plain text.
var uploadURL = &url.URL{Scheme: "https", Host: "localhost", Path: "/upload"}

// HTMLExtractor extracts readable text from HTML documents. It tries
// readability's article extraction first and falls back to a plain tag
// strip for pages with no identifiable article body.
type HTMLExtractor struct{}

func (HTMLExtractor) Extract(content []byte) (string, error) {
	article, err := readability.FromReader(bytes.NewReader(content), uploadURL)
	if err == nil {
		if text := strings.TrimSpace(article.TextContent); text != "" {
			return text, nil
		}
	}
	return stripHTMLTags(string(content)), nil
}

var (
	htmlScriptPattern = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	htmlSpacePattern  = regexp.MustCompile(`[ \t]+`)
)

// stripHTMLTags is the crude fallback: drop script/style bodies, replace
// tags with spaces, and decode the common entities.
func stripHTMLTags(html string) string {
	text := htmlScriptPattern.ReplaceAllString(html, " ")
	text = htmlTagPattern.ReplaceAllString(text, " ")
	replacements := [][2]string{
		{"&amp;", "&"}, {"&lt;", "<"}, {"&gt;", ">"},
		{"&quot;", "\""}, {"&apos;", "'"}, {"&#39;", "'"}, {"&nbsp;", " "},
	}
	for _, r := range replacements {
		text = strings.ReplaceAll(text, r[0], r[1])
	}
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(htmlSpacePattern.ReplaceAllString(line, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
