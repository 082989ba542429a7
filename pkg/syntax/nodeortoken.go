package syntax

// nodeSentinelIndex marks a handle that wraps a node rather than a token.
const nodeSentinelIndex = -1

// NodeOrToken is the polymorphic unit of navigation: a value wrapping
// either a red node or a reconstructed view of a green token. The zero
// value is the "none" sentinel returned by navigation at boundaries.
//
// For a node handle, nodeOrParent is the node itself and index is the node
// sentinel. For a token handle, nodeOrParent is the owning parent node,
// token is the green token, and index is its slot within the parent. Token
// views are synthesized fresh on each access; nothing position-dependent is
// ever stored in the green form.
type NodeOrToken struct {
	nodeOrParent *Node
	token        *GreenToken
	index        int
	position     int
}

// IsNone reports whether the handle wraps nothing.
func (h NodeOrToken) IsNone() bool { return h.nodeOrParent == nil && h.token == nil }

// IsToken reports whether the handle wraps a token.
func (h NodeOrToken) IsToken() bool { return h.token != nil }

// IsNode reports whether the handle wraps a node.
func (h NodeOrToken) IsNode() bool { return h.token == nil && h.nodeOrParent != nil }

// AsNode returns the wrapped red node, or (nil, false) for token and none
// handles.
func (h NodeOrToken) AsNode() (*Node, bool) {
	if !h.IsNode() {
		return nil, false
	}
	return h.nodeOrParent, true
}

// Token returns the wrapped green token, or nil.
func (h NodeOrToken) Token() *GreenToken { return h.token }

// mustNode returns the wrapped node and panics on token or none handles.
// Internal counterpart of AsNode for paths that already checked the tag.
func (h NodeOrToken) mustNode() *Node {
	node, ok := h.AsNode()
	if !ok {
		panic("syntax: handle does not wrap a node")
	}
	return node
}

// Kind returns the wrapped element's kind, or KindNone for the sentinel.
func (h NodeOrToken) Kind() Kind {
	switch {
	case h.IsToken():
		return h.token.kind
	case h.IsNode():
		return h.nodeOrParent.green.kind
	default:
		return KindNone
	}
}

// Parent returns the node that owns this handle: the token's owning node,
// or the node's own parent. The root and the sentinel have no parent.
func (h NodeOrToken) Parent() *Node {
	switch {
	case h.IsToken():
		return h.nodeOrParent
	case h.IsNode():
		return h.nodeOrParent.parent
	default:
		return nil
	}
}

// Position returns the absolute offset of the handle's full span start.
func (h NodeOrToken) Position() int { return h.position }

// FullWidth returns the wrapped element's width including trivia.
func (h NodeOrToken) FullWidth() int {
	switch {
	case h.IsToken():
		return h.token.fullWidth
	case h.IsNode():
		return h.nodeOrParent.green.fullWidth
	default:
		return 0
	}
}

// EndPosition returns the offset just past the handle's full span.
func (h NodeOrToken) EndPosition() int { return h.position + h.FullWidth() }

// FullSpan returns the span including leading and trailing trivia.
func (h NodeOrToken) FullSpan() TextSpan {
	return TextSpan{Start: h.position, Length: h.FullWidth()}
}

// SpanStart returns the absolute offset where the element's own text
// begins, past the leading trivia.
func (h NodeOrToken) SpanStart() int {
	switch {
	case h.IsToken():
		return h.position + h.token.LeadingTriviaWidth()
	case h.IsNode():
		return h.nodeOrParent.SpanStart()
	default:
		return h.position
	}
}

// Span returns the span excluding leading and trailing trivia.
func (h NodeOrToken) Span() TextSpan {
	switch {
	case h.IsToken():
		return TextSpan{Start: h.SpanStart(), Length: len(h.token.text)}
	case h.IsNode():
		return h.nodeOrParent.Span()
	default:
		return TextSpan{Start: h.position}
	}
}

// IsMissing reports whether the wrapped element was synthesized by error
// recovery.
func (h NodeOrToken) IsMissing() bool {
	switch {
	case h.IsToken():
		return h.token.IsMissing()
	case h.IsNode():
		return h.nodeOrParent.IsMissing()
	default:
		return false
	}
}

// ContainsDiagnostics reports whether the wrapped element's subtree carries
// diagnostics.
func (h NodeOrToken) ContainsDiagnostics() bool {
	switch {
	case h.IsToken():
		return h.token.ContainsDiagnostics()
	case h.IsNode():
		return h.nodeOrParent.ContainsDiagnostics()
	default:
		return false
	}
}

// ContainsDirectives reports whether the wrapped element's subtree carries
// directive trivia.
func (h NodeOrToken) ContainsDirectives() bool {
	switch {
	case h.IsToken():
		return h.token.ContainsDirectives()
	case h.IsNode():
		return h.nodeOrParent.ContainsDirectives()
	default:
		return false
	}
}

// ChildNodesAndTokens returns the immediate children for a node handle. A
// token handle yields an empty list.
func (h NodeOrToken) ChildNodesAndTokens() ChildList {
	if node, ok := h.AsNode(); ok {
		return ChildList{parent: node}
	}
	return ChildList{}
}

// Text returns the token's text, or the empty string for node and none
// handles.
func (h NodeOrToken) Text() string {
	if h.IsToken() {
		return h.token.text
	}
	return ""
}

// ToFullString returns the wrapped element's source text, trivia included.
func (h NodeOrToken) ToFullString() string {
	switch {
	case h.IsToken():
		return h.token.FullText()
	case h.IsNode():
		return h.nodeOrParent.ToFullString()
	default:
		return ""
	}
}

// ToString returns the wrapped element's source text without trivia.
func (h NodeOrToken) ToString() string {
	switch {
	case h.IsToken():
		return h.token.text
	case h.IsNode():
		return h.nodeOrParent.ToString()
	default:
		return ""
	}
}

// ownerGreen returns the identity that anchors equality: the green node of
// the owning parent for tokens, or of the parent node for node handles.
func (h NodeOrToken) ownerGreen() *GreenNode {
	parent := h.Parent()
	if parent == nil {
		return nil
	}
	return parent.green
}

// coreGreenNode returns the wrapped green node for node handles, nil
// otherwise.
func (h NodeOrToken) coreGreenNode() *GreenNode {
	if h.IsNode() {
		return h.nodeOrParent.green
	}
	return nil
}

// Equals compares handles by (owner green identity, core green identity,
// slot index). Absolute position deliberately never participates: the same
// logical element reconstructed at two different offsets still compares
// equal as long as the owning and wrapped green objects are the same.
func (h NodeOrToken) Equals(other NodeOrToken) bool {
	if h.IsNone() || other.IsNone() {
		return h.IsNone() && other.IsNone()
	}
	return h.ownerGreen() == other.ownerGreen() &&
		h.coreGreenNode() == other.coreGreenNode() &&
		h.token == other.token &&
		h.index == other.index
}

// Diagnostics collects the diagnostics attached anywhere under the handle,
// bound to absolute spans.
func (h NodeOrToken) Diagnostics() []LocatedDiagnostic {
	var out []LocatedDiagnostic
	switch {
	case h.IsToken():
		collectDiagnostics(TokenElement(h.token), h.position, &out)
	case h.IsNode():
		return h.nodeOrParent.Diagnostics()
	}
	return out
}
