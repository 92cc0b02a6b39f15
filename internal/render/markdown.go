package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Markdown is the converter used for the reading list page and for link
// cross-checks in lint.
var Markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// HTML converts markdown source to an HTML fragment.
func HTML(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := Markdown.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

// LinkDestinations returns the destination of every link the markdown
// parser recognizes in source, including autolinks.
func LinkDestinations(source []byte) map[string]bool {
	dests := make(map[string]bool)
	root := Markdown.Parser().Parse(text.NewReader(source))

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			dests[string(node.Destination)] = true
		case *ast.AutoLink:
			dests[string(node.URL(source))] = true
		}
		return ast.WalkContinue, nil
	})

	return dests
}
