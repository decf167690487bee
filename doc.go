// Package metasift derives structured metadata from unstructured documents.
//
// It combines two stateless stages: text acquisition (PDF, DOCX, TXT and
// friends to a single plain-text string) and a heuristic extraction pipeline
// that turns that string into a flat metadata record: title, author, dates,
// keywords, an extractive summary, and word/character counts. Everything is
// rule-based pattern matching; there are no trained models involved.
//
// # Quick Start
//
//	text, err := ingest.ExtractText(content, ingest.FormatFromExtension("pdf"))
//	if err != nil {
//		return err
//	}
//	meta := extract.New().Extract(text)
//	fmt.Println(meta.Title, meta.Keywords)
//
// # Layout
//
// The root package defines the domain types shared by all components:
//
//   - [Metadata] is the extraction pipeline's output record
//   - [Extraction] is a persisted extraction (record plus upload provenance)
//   - [Store] is the extraction-history persistence contract
//
// Subpackages provide the moving parts: extract (the heuristic pipeline),
// ingest (format-specific text acquisition), store/sqlite and store/postgres
// (history persistence), observer (OpenTelemetry instrumentation), and
// internal/server (the HTTP upload API).
//
// See cmd/metasift for the complete service wiring.
package metasift
