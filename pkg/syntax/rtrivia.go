package syntax

// Trivia is the positional view of one green trivia piece: the immutable
// value plus the absolute offset it occupies in this particular tree. Like
// all view values it is synthesized on access and disposable.
type Trivia struct {
	green    GreenTrivia
	position int
}

// Green returns the underlying trivia value.
func (t Trivia) Green() GreenTrivia { return t.green }

// Kind returns the trivia's kind tag.
func (t Trivia) Kind() Kind { return t.green.kind }

// Position returns the absolute offset where the trivia begins.
func (t Trivia) Position() int { return t.position }

// FullWidth returns the trivia's width in bytes.
func (t Trivia) FullWidth() int { return t.green.FullWidth() }

// Span returns the trivia's absolute span.
func (t Trivia) Span() TextSpan {
	return TextSpan{Start: t.position, Length: t.green.FullWidth()}
}

// Text returns the trivia's source text.
func (t Trivia) Text() string { return t.green.Text() }

// IsDirective reports whether the trivia is a structured directive.
func (t Trivia) IsDirective() bool { return t.green.IsDirective() }

// IsSkippedTokens reports whether the trivia is a skipped-token run.
func (t Trivia) IsSkippedTokens() bool { return t.green.IsSkippedTokens() }

// Structure returns a detached red root over the embedded structure at the
// trivia's absolute position, or nil for simple trivia.
func (t Trivia) Structure() *Node {
	if t.green.structure == nil {
		return nil
	}
	return &Node{green: t.green.structure, position: t.position}
}

// HasLeadingTrivia reports whether a token handle has leading trivia. Node
// handles delegate to their first token.
func (h NodeOrToken) HasLeadingTrivia() bool {
	return len(h.LeadingTrivia()) > 0
}

// LeadingTrivia returns the leading trivia with absolute positions. For a
// node handle this is the leading trivia of its first token.
func (h NodeOrToken) LeadingTrivia() []Trivia {
	switch {
	case h.IsToken():
		return positionTrivia(h.token.leading, h.position)
	case h.IsNode():
		return h.nodeOrParent.LeadingTrivia()
	default:
		return nil
	}
}

// HasTrailingTrivia reports whether a token handle has trailing trivia.
// Node handles delegate to their last token.
func (h NodeOrToken) HasTrailingTrivia() bool {
	return len(h.TrailingTrivia()) > 0
}

// TrailingTrivia returns the trailing trivia with absolute positions. For
// a node handle this is the trailing trivia of its last token.
func (h NodeOrToken) TrailingTrivia() []Trivia {
	switch {
	case h.IsToken():
		start := h.position + h.token.LeadingTriviaWidth() + len(h.token.text)
		return positionTrivia(h.token.trailing, start)
	case h.IsNode():
		return h.nodeOrParent.TrailingTrivia()
	default:
		return nil
	}
}

func positionTrivia(list []GreenTrivia, pos int) []Trivia {
	if len(list) == 0 {
		return nil
	}
	out := make([]Trivia, len(list))
	for i, tr := range list {
		out[i] = Trivia{green: tr, position: pos}
		pos += tr.FullWidth()
	}
	return out
}
