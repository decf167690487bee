package observer

import "go.opentelemetry.io/otel/attribute"

// Attribute keys for extraction observability spans and metrics.
var (
	AttrFilename = attribute.Key("extraction.filename")
	AttrFormat   = attribute.Key("extraction.format")
	AttrStatus   = attribute.Key("extraction.status")

	AttrDocumentBytes = attribute.Key("extraction.document.bytes")
	AttrWordCount     = attribute.Key("extraction.word_count")
	AttrKeywordCount  = attribute.Key("extraction.keyword_count")
)
