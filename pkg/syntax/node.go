package syntax

import (
	"strings"
	"sync/atomic"
)

// Node is the red (view) form of a green node: the same immutable structure
// plus an absolute position and a non-owning parent back-reference, both
// computed lazily during traversal. Node identity carries no meaning; only
// the (green, position, parent) triple does. Two Nodes wrapping the same
// green at the same position are interchangeable for every read operation.
//
// A Node never mutates its green form. The memoized child slot slice is the
// one lazily derived value; it is published with a single atomic
// compare-and-swap, and a losing racer discards its local result.
type Node struct {
	green    *GreenNode
	parent   *Node
	position int

	// slots caches the child handles with their computed positions.
	slots atomic.Pointer[[]NodeOrToken]
}

// NewRoot wraps a green root into a red node at position 0 with no parent:
// the single entry point for turning a parsed tree into a navigable one.
func NewRoot(green *GreenNode) *Node {
	if green == nil {
		panic("syntax: nil green root")
	}
	return &Node{green: green}
}

// Green returns the underlying green node.
func (n *Node) Green() *GreenNode { return n.green }

// Kind returns the node's kind tag.
func (n *Node) Kind() Kind { return n.green.kind }

// Parent returns the enclosing node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Position returns the absolute offset of the node's full span start.
func (n *Node) Position() int { return n.position }

// FullWidth returns the node's width including trivia.
func (n *Node) FullWidth() int { return n.green.fullWidth }

// FullSpan returns the node's span including leading and trailing trivia.
func (n *Node) FullSpan() TextSpan {
	return TextSpan{Start: n.position, Length: n.green.fullWidth}
}

// SpanStart returns the absolute offset where the node's own text begins,
// past the leading trivia.
func (n *Node) SpanStart() int {
	return n.position + n.green.LeadingTriviaWidth()
}

// Span returns the node's span excluding leading and trailing trivia.
func (n *Node) Span() TextSpan {
	return TextSpan{Start: n.SpanStart(), Length: n.green.Width()}
}

// IsMissing reports whether the node was synthesized by error recovery.
func (n *Node) IsMissing() bool { return n.green.IsMissing() }

// ContainsDiagnostics reports whether the subtree carries diagnostics.
func (n *Node) ContainsDiagnostics() bool { return n.green.ContainsDiagnostics() }

// ContainsDirectives reports whether the subtree carries directive trivia.
func (n *Node) ContainsDirectives() bool { return n.green.ContainsDirectives() }

// ContainsAnnotations reports whether the subtree carries annotations.
func (n *Node) ContainsAnnotations() bool { return n.green.ContainsAnnotations() }

// ContainsSkippedText reports whether the subtree carries skipped-token
// trivia.
func (n *Node) ContainsSkippedText() bool { return n.green.ContainsSkippedText() }

// AsNodeOrToken wraps the node as a handle.
func (n *Node) AsNodeOrToken() NodeOrToken {
	return NodeOrToken{nodeOrParent: n, index: nodeSentinelIndex, position: n.position}
}

// ChildNodesAndTokens returns the node's immediate children as an indexed,
// restartable list of handles with correctly computed positions.
func (n *Node) ChildNodesAndTokens() ChildList {
	return ChildList{parent: n}
}

// childSlots builds (or fetches) the memoized child handle slice. Positions
// are computed in one pass from the node's own position plus each child's
// width; the publish is a single CAS, so concurrent first calls may compute
// twice but all callers observe one winner.
func (n *Node) childSlots() []NodeOrToken {
	if p := n.slots.Load(); p != nil {
		return *p
	}

	kids := n.green.children
	slots := make([]NodeOrToken, len(kids))
	pos := n.position
	for i, child := range kids {
		if child.node != nil {
			red := &Node{green: child.node, parent: n, position: pos}
			slots[i] = red.AsNodeOrToken()
		} else {
			slots[i] = NodeOrToken{nodeOrParent: n, token: child.token, index: i, position: pos}
		}
		pos += child.FullWidth()
	}

	n.slots.CompareAndSwap(nil, &slots)
	return *n.slots.Load()
}

// FirstToken returns the handle of the first token in the subtree, or the
// none sentinel for a node containing no tokens.
func (n *Node) FirstToken() NodeOrToken {
	for _, slot := range n.childSlots() {
		if slot.IsToken() {
			return slot
		}
		if tok := slot.mustNode().FirstToken(); !tok.IsNone() {
			return tok
		}
	}
	return NodeOrToken{}
}

// LastToken returns the handle of the last token in the subtree, or the
// none sentinel.
func (n *Node) LastToken() NodeOrToken {
	slots := n.childSlots()
	for i := len(slots) - 1; i >= 0; i-- {
		if slots[i].IsToken() {
			return slots[i]
		}
		if tok := slots[i].mustNode().LastToken(); !tok.IsNone() {
			return tok
		}
	}
	return NodeOrToken{}
}

// HasLeadingTrivia reports whether the node's first token has leading
// trivia.
func (n *Node) HasLeadingTrivia() bool {
	return len(n.LeadingTrivia()) > 0
}

// LeadingTrivia returns the leading trivia of the node's first token, with
// absolute positions.
func (n *Node) LeadingTrivia() []Trivia {
	if tok := n.FirstToken(); !tok.IsNone() {
		return tok.LeadingTrivia()
	}
	return nil
}

// HasTrailingTrivia reports whether the node's last token has trailing
// trivia.
func (n *Node) HasTrailingTrivia() bool {
	return len(n.TrailingTrivia()) > 0
}

// TrailingTrivia returns the trailing trivia of the node's last token, with
// absolute positions.
func (n *Node) TrailingTrivia() []Trivia {
	if tok := n.LastToken(); !tok.IsNone() {
		return tok.TrailingTrivia()
	}
	return nil
}

// ToFullString returns the subtree's source text, trivia included. For a
// tree built by parsing, the root's full string equals the original source
// byte-for-byte.
func (n *Node) ToFullString() string {
	return n.green.FullText()
}

// ToString returns the subtree's source text without the node's own leading
// and trailing trivia.
func (n *Node) ToString() string {
	full := n.green.FullText()
	lead := n.green.LeadingTriviaWidth()
	trail := n.green.TrailingTriviaWidth()
	return full[lead : len(full)-trail]
}

// Diagnostics collects the diagnostics attached anywhere in the subtree,
// bound to absolute spans. Subtrees whose aggregate flag is unset are never
// visited.
func (n *Node) Diagnostics() []LocatedDiagnostic {
	var out []LocatedDiagnostic
	collectDiagnostics(NodeElement(n.green), n.position, &out)
	return out
}

func collectDiagnostics(el GreenElement, pos int, out *[]LocatedDiagnostic) {
	if !el.elementFlags().has(flagDiagnostics) {
		return
	}
	if el.token != nil {
		tok := el.token
		span := SpanFromBounds(pos+tok.LeadingTriviaWidth(), pos+tok.fullWidth-tok.TrailingTriviaWidth())
		for _, d := range tok.Diagnostics() {
			*out = append(*out, LocatedDiagnostic{Diagnostic: d, Span: span})
		}
		collectTriviaDiagnostics(tok.leading, pos, out)
		collectTriviaDiagnostics(tok.trailing, pos+tok.LeadingTriviaWidth()+len(tok.text), out)
		return
	}
	node := el.node
	span := SpanFromBounds(pos+node.LeadingTriviaWidth(), pos+node.fullWidth-node.TrailingTriviaWidth())
	for _, d := range node.Diagnostics() {
		*out = append(*out, LocatedDiagnostic{Diagnostic: d, Span: span})
	}
	childPos := pos
	for _, child := range node.children {
		collectDiagnostics(child, childPos, out)
		childPos += child.FullWidth()
	}
}

func collectTriviaDiagnostics(list []GreenTrivia, pos int, out *[]LocatedDiagnostic) {
	for _, tr := range list {
		if tr.structure != nil && tr.flags.has(flagDiagnostics) {
			collectDiagnostics(NodeElement(tr.structure), pos, out)
		}
		pos += tr.FullWidth()
	}
}

// writeTo is used by the renderers; it appends the node's full text.
func (n *Node) writeTo(sb *strings.Builder) {
	n.green.writeTo(sb)
}
