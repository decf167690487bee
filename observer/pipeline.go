package observer

import (
	"context"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	metasift "github.com/nevindra/metasift"
	"github.com/nevindra/metasift/ingest"
)

// ObservedPipeline wraps an ingest.Processor with OTEL instrumentation.
type ObservedPipeline struct {
	inner ingest.Processor
	inst  *Instruments
}

var _ ingest.Processor = (*ObservedPipeline)(nil)

// WrapPipeline returns an instrumented processor that emits traces and metrics.
func WrapPipeline(inner ingest.Processor, inst *Instruments) *ObservedPipeline {
	return &ObservedPipeline{inner: inner, inst: inst}
}

func (o *ObservedPipeline) Process(ctx context.Context, filename string, content []byte) (metasift.Extraction, error) {
	format := string(ingest.FormatFromExtension(filepath.Ext(filename)))

	ctx, span := o.inst.Tracer.Start(ctx, "extraction.process", trace.WithAttributes(
		AttrFilename.String(filepath.Base(filename)),
		AttrFormat.String(format),
		AttrDocumentBytes.Int(len(content)),
	))
	defer span.End()
	start := time.Now()

	ex, err := o.inner.Process(ctx, filename, content)

	durationMs := float64(time.Since(start).Milliseconds())
	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(
			AttrWordCount.Int(ex.Metadata.WordCount),
			AttrKeywordCount.Int(len(ex.Metadata.Keywords)),
		)
	}

	attrs := metric.WithAttributes(
		AttrFormat.String(format),
		AttrStatus.String(status),
	)
	o.inst.Extractions.Add(ctx, 1, attrs)
	o.inst.DocumentBytes.Add(ctx, int64(len(content)), attrs)
	o.inst.ExtractDuration.Record(ctx, durationMs, attrs)

	return ex, err
}
