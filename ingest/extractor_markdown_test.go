package ingest

import (
	"strings"
	"testing"
)

func TestMarkdownExtractHeadingsAndParagraphs(t *testing.T) {
	md := "# Annual Report\n\nRevenue grew this year.\n\n## Details\n\nSee the table below."

	out, err := MarkdownExtractor{}.Extract([]byte(md))
	if err != nil {
		t.Fatal(err)
	}
	want := "Annual Report\nRevenue grew this year.\nDetails\nSee the table below."
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestMarkdownExtractStripsEmphasisAndLinks(t *testing.T) {
	md := "Some **bold** and *italic* text with a [link](https://example.com)."

	out, err := MarkdownExtractor{}.Extract([]byte(md))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "**") || strings.Contains(out, "](") {
		t.Errorf("expected markers removed, got %q", out)
	}
	if !strings.Contains(out, "bold") || !strings.Contains(out, "link") {
		t.Errorf("expected text content kept, got %q", out)
	}
}

func TestMarkdownExtractCodeBlocks(t *testing.T) {
	md := "Before.\n\n```go\nfmt.Println(\"hi\")\n```\n\nAfter."

	out, err := MarkdownExtractor{}.Extract([]byte(md))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `fmt.Println("hi")`) {
		t.Errorf("expected code content kept, got %q", out)
	}
	if strings.Contains(out, "```") {
		t.Errorf("expected fences removed, got %q", out)
	}
}

func TestMarkdownExtractListItems(t *testing.T) {
	md := "- first item\n- second item"

	out, err := MarkdownExtractor{}.Extract([]byte(md))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "first item\n") || !strings.Contains(out, "second item") {
		t.Errorf("expected items on separate lines, got %q", out)
	}
	if strings.Contains(out, "-") {
		t.Errorf("expected bullets removed, got %q", out)
	}
}

func TestMarkdownExtractEmpty(t *testing.T) {
	out, err := MarkdownExtractor{}.Extract(nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}
