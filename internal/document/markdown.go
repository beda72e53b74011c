package document

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"shopmate/internal/errors"
)

// extractMarkdown flattens a Markdown document to one text line per
// block, so list items and paragraphs become checklist entries the
// extractor can split on newlines.
func extractMarkdown(data []byte) (string, error) {
	root := goldmark.DefaultParser().Parse(text.NewReader(data))

	var lines []string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindParagraph, ast.KindHeading, ast.KindTextBlock:
			line := blockText(n, data)
			if line != "" {
				lines = append(lines, line)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", errors.NewInvalidRequest("could not parse markdown document")
	}
	return strings.Join(lines, "\n"), nil
}

// blockText collects the raw text of a block node's inline children.
func blockText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
			continue
		}
		sb.WriteString(blockText(c, source))
	}
	return strings.TrimSpace(sb.String())
}
