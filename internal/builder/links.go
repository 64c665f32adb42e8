// internal/builder/links.go
package builder

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// linkRewriter walks the parsed document and rewrites relative links to
// sibling markdown sources so they point at the rendered pages instead.
type linkRewriter struct{}

func newLinkRewriter() parser.ASTTransformer {
	return &linkRewriter{}
}

func (t *linkRewriter) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		dest := link.Destination
		if bytes.Contains(dest, []byte("://")) {
			// Absolute URLs are left alone.
			return ast.WalkContinue, nil
		}
		if bytes.HasSuffix(dest, []byte(".md")) {
			newDest := bytes.TrimSuffix(dest, []byte(".md"))
			link.Destination = append(newDest, []byte(".html")...)
		}
		return ast.WalkContinue, nil
	})
}
