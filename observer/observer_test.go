package observer

import (
	"context"
	"errors"
	"testing"

	metasift "github.com/nevindra/metasift"
)

// mockProcessor for observer tests.
type mockProcessor struct {
	ex  metasift.Extraction
	err error

	gotFilename string
	gotContent  []byte
}

func (m *mockProcessor) Process(_ context.Context, filename string, content []byte) (metasift.Extraction, error) {
	m.gotFilename = filename
	m.gotContent = content
	return m.ex, m.err
}

// testInstruments creates a no-op Instruments using the global OTEL providers
// (which are no-ops by default). This is safe for testing delegation behavior
// without any real OTEL backend.
func testInstruments(t *testing.T) *Instruments {
	t.Helper()
	inst, err := newInstruments()
	if err != nil {
		t.Fatalf("newInstruments: %v", err)
	}
	return inst
}

func TestObservedPipelineProcess(t *testing.T) {
	want := metasift.Extraction{
		ID:       "ex-1",
		Filename: "report.txt",
		Format:   "txt",
		Metadata: metasift.Metadata{Title: "Annual Report", WordCount: 120},
	}
	inner := &mockProcessor{ex: want}
	op := WrapPipeline(inner, testInstruments(t))

	got, err := op.Process(context.Background(), "report.txt", []byte("content"))
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}
	if got.ID != want.ID || got.Metadata.Title != want.Metadata.Title {
		t.Errorf("Process = %+v, want %+v", got, want)
	}
	if inner.gotFilename != "report.txt" {
		t.Errorf("inner received %q", inner.gotFilename)
	}
	if string(inner.gotContent) != "content" {
		t.Errorf("inner received content %q", inner.gotContent)
	}
}

func TestObservedPipelineProcessError(t *testing.T) {
	wantErr := errors.New("extraction failed")
	inner := &mockProcessor{err: wantErr}
	op := WrapPipeline(inner, testInstruments(t))

	_, err := op.Process(context.Background(), "broken.pdf", nil)
	if !errors.Is(err, wantErr) {
		t.Errorf("Process error = %v, want %v", err, wantErr)
	}
}
