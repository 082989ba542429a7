package syntax

import "strings"

// GreenTrivia is one piece of non-grammatical text attached to a token:
// whitespace, a comment, a directive, or a run of skipped tokens. Simple
// trivia holds raw text; structured trivia embeds a green node instead.
// GreenTrivia is an immutable value and safe to share.
type GreenTrivia struct {
	kind      Kind
	text      string
	structure *GreenNode
	flags     nodeFlags
}

// NewTrivia creates simple trivia holding raw text.
func NewTrivia(kind Kind, text string) GreenTrivia {
	return GreenTrivia{kind: kind, text: text}
}

// NewDirectiveTrivia creates structured trivia embedding a directive node.
// The embedded structure supplies the trivia's text and width.
func NewDirectiveTrivia(kind Kind, structure *GreenNode) GreenTrivia {
	if structure == nil {
		panic("syntax: nil directive structure")
	}
	return GreenTrivia{
		kind:      kind,
		structure: structure,
		flags:     structure.flags&aggregateMask | flagDirectives,
	}
}

// NewSkippedTokensTrivia wraps tokens discarded during error recovery into
// structured trivia, preserving their text and any attached diagnostics.
func NewSkippedTokensTrivia(kind Kind, tokens ...*GreenToken) GreenTrivia {
	children := make([]GreenElement, len(tokens))
	for i, tok := range tokens {
		children[i] = TokenElement(tok)
	}
	structure := NewGreenNode(kind, children...)
	return GreenTrivia{
		kind:      kind,
		structure: structure,
		flags:     structure.flags&aggregateMask | flagSkipped,
	}
}

// Kind returns the trivia's kind tag.
func (t GreenTrivia) Kind() Kind { return t.kind }

// FullWidth returns the trivia's width in bytes.
func (t GreenTrivia) FullWidth() int {
	if t.structure != nil {
		return t.structure.fullWidth
	}
	return len(t.text)
}

// IsStructured reports whether the trivia embeds a green node.
func (t GreenTrivia) IsStructured() bool { return t.structure != nil }

// IsDirective reports whether the trivia is a structured directive.
func (t GreenTrivia) IsDirective() bool { return t.flags.has(flagDirectives) }

// IsSkippedTokens reports whether the trivia is a skipped-token run.
func (t GreenTrivia) IsSkippedTokens() bool { return t.flags.has(flagSkipped) }

// Structure returns the embedded green node, or nil for simple trivia.
func (t GreenTrivia) Structure() *GreenNode { return t.structure }

// Text returns the trivia's source text.
func (t GreenTrivia) Text() string {
	if t.structure != nil {
		return t.structure.FullText()
	}
	return t.text
}

func (t GreenTrivia) writeTo(sb *strings.Builder) {
	if t.structure != nil {
		t.structure.writeTo(sb)
		return
	}
	sb.WriteString(t.text)
}

// triviaWidth sums the full widths of a trivia list.
func triviaWidth(list []GreenTrivia) int {
	width := 0
	for _, t := range list {
		width += t.FullWidth()
	}
	return width
}

// triviaFlags ORs the aggregate flags of a trivia list.
func triviaFlags(list []GreenTrivia) nodeFlags {
	var flags nodeFlags
	for _, t := range list {
		flags |= t.flags & aggregateMask
	}
	return flags
}
