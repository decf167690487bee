package ingest

import (
	"strings"
	"testing"
)

func TestHTMLExtractArticle(t *testing.T) {
	html := `<!DOCTYPE html><html><head><title>Report</title></head><body>
<article><h1>Annual Report</h1>
<p>Revenue grew substantially this year across every product line we operate.</p>
<p>The board approved a new budget for the coming fiscal period.</p></article>
</body></html>`

	out, err := HTMLExtractor{}.Extract([]byte(html))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Revenue grew substantially") {
		t.Errorf("expected article text, got %q", out)
	}
	if strings.Contains(out, "<p>") {
		t.Errorf("expected tags removed, got %q", out)
	}
}

func TestHTMLExtractStripsScriptAndStyle(t *testing.T) {
	html := `<html><head><style>body { color: red }</style></head>
<body><script>var tracking = true;</script><p>Visible content only.</p></body></html>`

	out, err := HTMLExtractor{}.Extract([]byte(html))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "tracking") || strings.Contains(out, "color") {
		t.Errorf("expected script/style dropped, got %q", out)
	}
	if !strings.Contains(out, "Visible content only.") {
		t.Errorf("expected body text, got %q", out)
	}
}

func TestStripHTMLTags(t *testing.T) {
	out := stripHTMLTags("<p>Tom &amp; Jerry &lt;3</p>\n<div>  spaced   out </div>")
	want := "Tom & Jerry <3\nspaced out"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestStripHTMLTagsDropsScriptBody(t *testing.T) {
	out := stripHTMLTags(`<script type="text/javascript">alert(1)</script>kept`)
	if strings.Contains(out, "alert") {
		t.Errorf("expected script body removed, got %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("expected surrounding text kept, got %q", out)
	}
}
