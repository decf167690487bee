package ingest

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

var _ Extractor = MarkdownExtractor{}

// MarkdownExtractor extracts plain text from markdown by walking the parsed
// AST and collecting text nodes, so formatting markers, link targets, and
// fence delimiters never leak into the output.
type MarkdownExtractor struct{}

func (MarkdownExtractor) Extract(content []byte) (string, error) {
	doc := goldmark.New().Parser().Parse(gmtext.NewReader(content))

	var out strings.Builder
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading, *ast.Paragraph, *ast.ListItem:
			if out.Len() > 0 {
				out.WriteByte('\n')
			}
		case *ast.Text:
			out.Write(node.Segment.Value(content))
			if node.SoftLineBreak() || node.HardLineBreak() {
				out.WriteByte('\n')
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if out.Len() > 0 {
				out.WriteByte('\n')
			}
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				out.Write(seg.Value(content))
			}
		case *ast.CodeSpan:
			out.WriteString(string(node.Text(content)))
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			out.Write(node.URL(content))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out.String()), nil
}
