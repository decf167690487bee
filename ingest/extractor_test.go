package ingest

import (
	"errors"
	"strings"
	"testing"

	metasift "github.com/nevindra/metasift"
)

func TestFormatFromExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want Format
	}{
		{"pdf", FormatPDF},
		{".PDF", FormatPDF},
		{"Docx", FormatDOCX},
		{"txt", FormatTXT},
		{".text", FormatTXT},
		{"htm", FormatHTML},
		{"markdown", FormatMarkdown},
		{"epub", Format("epub")},
	}
	for _, tt := range tests {
		if got := FormatFromExtension(tt.ext); got != tt.want {
			t.Errorf("FormatFromExtension(%q) = %q, want %q", tt.ext, got, tt.want)
		}
	}
}

func TestRegistryUnsupportedFormat(t *testing.T) {
	_, err := NewRegistry().Extract([]byte("data"), Format("epub"))
	var unsupported *metasift.ErrUnsupportedFormat
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if unsupported.Format != "epub" {
		t.Errorf("expected epub in error, got %q", unsupported.Format)
	}
}

func TestRegistryFormatCaseInsensitive(t *testing.T) {
	out, err := NewRegistry().Extract([]byte("plain text content"), Format("TXT"))
	if err != nil {
		t.Fatal(err)
	}
	if out != "plain text content" {
		t.Errorf("expected passthrough, got %q", out)
	}
}

func TestRegistryCustomExtractor(t *testing.T) {
	r := NewRegistry(WithExtractor(Format("epub"), stubExtractor{"from epub"}))
	out, err := r.Extract(nil, Format("epub"))
	if err != nil {
		t.Fatal(err)
	}
	if out != "from epub" {
		t.Errorf("expected custom extractor output, got %q", out)
	}
}

func TestExtractTextDispatch(t *testing.T) {
	out, err := ExtractText([]byte("hello from a file"), FormatTXT)
	if err != nil {
		t.Fatal(err)
	}
	if out != "hello from a file" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestCheckText(t *testing.T) {
	if err := CheckText("long enough text here"); err != nil {
		t.Errorf("expected nil for sufficient text, got %v", err)
	}

	err := CheckText("  short  ")
	var insufficient *metasift.ErrInsufficientText
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected ErrInsufficientText, got %v", err)
	}
	if insufficient.Length != 5 || insufficient.Min != MinTextLength {
		t.Errorf("unexpected fields: %+v", insufficient)
	}
}

func TestCheckTextEmpty(t *testing.T) {
	if err := CheckText(""); err == nil {
		t.Error("expected error for empty text")
	}
	if err := CheckText(strings.Repeat(" ", 50)); err == nil {
		t.Error("expected error for whitespace-only text")
	}
}

type stubExtractor struct {
	out string
}

func (s stubExtractor) Extract([]byte) (string, error) { return s.out, nil }
