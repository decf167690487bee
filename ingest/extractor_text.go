package ingest

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var _ Extractor = TextExtractor{}

// txtEncodings is the fallback chain for content that is not valid UTF-8.
// Latin-1 maps every byte value, so the chain always yields text; the later
// entries are kept for the declared decode order.
var txtEncodings = []encoding.Encoding{
	charmap.ISO8859_1, // latin-1
	charmap.Windows1252,
	charmap.ISO8859_1, // iso-8859-1 (alias of latin-1)
}

// TextExtractor decodes plain-text uploads: strict UTF-8 first, then the
// single-byte encoding chain, finally lenient UTF-8 with invalid bytes
// dropped.
type TextExtractor struct{}

func (TextExtractor) Extract(content []byte) (string, error) {
	if utf8.Valid(content) {
		return strings.TrimSpace(string(content)), nil
	}
	for _, enc := range txtEncodings {
		decoded, err := enc.NewDecoder().Bytes(content)
		if err != nil {
			continue
		}
		return strings.TrimSpace(string(decoded)), nil
	}
	return strings.TrimSpace(strings.ToValidUTF8(string(content), "")), nil
}
