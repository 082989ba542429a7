package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/syntree/pkg/syntax"
)

// treeIndent is the indentation per nesting level in tree dumps.
const treeIndent = "  "

// FormatTree renders the full tree structure, one element per line:
// kind, full span, and for tokens the text. Missing tokens are marked.
func (s *Styles) FormatTree(tree *syntax.Tree) string {
	var builder strings.Builder
	s.writeElement(&builder, tree, tree.Root().AsNodeOrToken(), 0)
	return builder.String()
}

func (s *Styles) writeElement(builder *strings.Builder, tree *syntax.Tree, el syntax.NodeOrToken, depth int) {
	builder.WriteString(strings.Repeat(treeIndent, depth))
	builder.WriteString(s.KindName.Render(tree.KindName(el.Kind())))
	builder.WriteString(" " + s.Span.Render(el.FullSpan().String()))

	if el.IsToken() {
		if el.IsMissing() {
			builder.WriteString(" " + s.Missing.Render("(missing)"))
		} else {
			builder.WriteString(" " + s.TokenText.Render(fmt.Sprintf("%q", el.Text())))
		}
	}
	builder.WriteString("\n")

	for child := range el.ChildNodesAndTokens().All() {
		s.writeElement(builder, tree, child, depth+1)
	}
}

// FormatTokens renders the token stream with trivia, one token per line.
// Trivia pieces appear indented under their carrying token.
func (s *Styles) FormatTokens(tree *syntax.Tree) string {
	var builder strings.Builder
	s.writeTokens(&builder, tree, tree.Root().AsNodeOrToken())
	return builder.String()
}

func (s *Styles) writeTokens(builder *strings.Builder, tree *syntax.Tree, el syntax.NodeOrToken) {
	if !el.IsToken() {
		for child := range el.ChildNodesAndTokens().All() {
			s.writeTokens(builder, tree, child)
		}
		return
	}

	builder.WriteString(s.KindName.Render(tree.KindName(el.Kind())))
	builder.WriteString(" " + s.Span.Render(el.Span().String()))
	if el.IsMissing() {
		builder.WriteString(" " + s.Missing.Render("(missing)"))
	} else {
		builder.WriteString(" " + s.TokenText.Render(fmt.Sprintf("%q", el.Text())))
	}
	builder.WriteString("\n")

	for _, tr := range el.LeadingTrivia() {
		s.writeTrivia(builder, tree, tr, "leading")
	}
	for _, tr := range el.TrailingTrivia() {
		s.writeTrivia(builder, tree, tr, "trailing")
	}
}

func (s *Styles) writeTrivia(builder *strings.Builder, tree *syntax.Tree, tr syntax.Trivia, position string) {
	builder.WriteString(treeIndent)
	builder.WriteString(s.Trivia.Render(fmt.Sprintf("%s %s %s %q",
		position, tree.KindName(tr.Kind()), tr.Span().String(), tr.Text())))
	builder.WriteString("\n")
}
