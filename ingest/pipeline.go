package ingest

import (
	"context"
	"log/slog"
	"path/filepath"

	metasift "github.com/nevindra/metasift"
	"github.com/nevindra/metasift/extract"
)

// Processor turns an uploaded file into a stored extraction record.
// Implemented by Pipeline and by instrumented wrappers around it.
type Processor interface {
	Process(ctx context.Context, filename string, content []byte) (metasift.Extraction, error)
}

// Pipeline handles acquisition and metadata extraction for one file.
// Persistence is NOT handled here; the caller is responsible.
type Pipeline struct {
	registry  *Registry
	extractor *extract.Extractor
	logger    *slog.Logger
}

var _ Processor = (*Pipeline)(nil)

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithRegistry replaces the default format registry.
func WithRegistry(r *Registry) PipelineOption {
	return func(p *Pipeline) { p.registry = r }
}

// WithMetadataExtractor replaces the default metadata extractor.
func WithMetadataExtractor(e *extract.Extractor) PipelineOption {
	return func(p *Pipeline) { p.extractor = e }
}

// WithPipelineLogger sets a structured logger for the pipeline.
// If not set, no logs are emitted.
func WithPipelineLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) { p.logger = l }
}

// NewPipeline creates a pipeline with the builtin format registry and a
// default-configured metadata extractor.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		registry:  NewRegistry(),
		extractor: extract.New(),
		logger:    slog.New(nopHandler{}),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Process extracts plain text from content based on the filename's
// extension, validates it, and derives the metadata record.
func (p *Pipeline) Process(ctx context.Context, filename string, content []byte) (metasift.Extraction, error) {
	format := FormatFromExtension(filepath.Ext(filename))
	p.logger.Debug("ingest: process", "filename", filename, "format", format, "bytes", len(content))

	text, err := p.registry.Extract(content, format)
	if err != nil {
		p.logger.Error("ingest: text extraction failed", "filename", filename, "error", err)
		return metasift.Extraction{}, err
	}
	if err := CheckText(text); err != nil {
		p.logger.Error("ingest: text check failed", "filename", filename, "error", err)
		return metasift.Extraction{}, err
	}

	meta := p.extractor.Extract(text)
	ex := metasift.Extraction{
		ID:        metasift.NewID(),
		Filename:  filepath.Base(filename),
		Format:    string(format),
		Metadata:  meta,
		CreatedAt: metasift.NowUnix(),
	}
	p.logger.Debug("ingest: process ok", "id", ex.ID, "filename", ex.Filename,
		"title", meta.Title, "words", meta.WordCount)
	return ex, nil
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nopHandler) WithGroup(string) slog.Handler           { return h }
