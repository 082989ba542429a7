package syntax

import "strings"

// GreenElement is the tagged union over the two shapes a green child can
// take: an interior node or a leaf token. Exactly one of the two fields is
// set. The zero GreenElement is invalid as a child; optional constructs are
// simply omitted or represented by missing tokens.
type GreenElement struct {
	node  *GreenNode
	token *GreenToken
}

// NodeElement wraps a green node as a child element.
func NodeElement(n *GreenNode) GreenElement {
	if n == nil {
		panic("syntax: nil node element")
	}
	return GreenElement{node: n}
}

// TokenElement wraps a green token as a child element.
func TokenElement(t *GreenToken) GreenElement {
	if t == nil {
		panic("syntax: nil token element")
	}
	return GreenElement{token: t}
}

// IsNode reports whether the element wraps a node.
func (e GreenElement) IsNode() bool { return e.node != nil }

// IsToken reports whether the element wraps a token.
func (e GreenElement) IsToken() bool { return e.token != nil }

// IsZero reports whether the element wraps nothing.
func (e GreenElement) IsZero() bool { return e.node == nil && e.token == nil }

// Node returns the wrapped node, or nil.
func (e GreenElement) Node() *GreenNode { return e.node }

// Token returns the wrapped token, or nil.
func (e GreenElement) Token() *GreenToken { return e.token }

// Kind returns the wrapped element's kind.
func (e GreenElement) Kind() Kind {
	if e.node != nil {
		return e.node.kind
	}
	if e.token != nil {
		return e.token.kind
	}
	return KindNone
}

// FullWidth returns the wrapped element's width including trivia.
func (e GreenElement) FullWidth() int {
	if e.node != nil {
		return e.node.fullWidth
	}
	if e.token != nil {
		return e.token.fullWidth
	}
	return 0
}

// IsMissing reports whether the wrapped element was synthesized by error
// recovery.
func (e GreenElement) IsMissing() bool { return e.elementFlags().has(flagMissing) }

func (e GreenElement) elementFlags() nodeFlags {
	if e.node != nil {
		return e.node.flags
	}
	if e.token != nil {
		return e.token.flags
	}
	return 0
}

func (e GreenElement) leadingTriviaWidth() int {
	if e.token != nil {
		return e.token.LeadingTriviaWidth()
	}
	if e.node != nil {
		return e.node.LeadingTriviaWidth()
	}
	return 0
}

func (e GreenElement) trailingTriviaWidth() int {
	if e.token != nil {
		return e.token.TrailingTriviaWidth()
	}
	if e.node != nil {
		return e.node.TrailingTriviaWidth()
	}
	return 0
}

func (e GreenElement) writeTo(sb *strings.Builder) {
	if e.node != nil {
		e.node.writeTo(sb)
		return
	}
	if e.token != nil {
		e.token.writeTo(sb)
	}
}

// GreenNode is one syntactic construct in the core form: a kind, an ordered
// heterogeneous child list, and aggregate facts frozen at construction. It
// stores no parent pointer and no absolute offset, so the same instance may
// appear in many trees at different positions.
//
// Structurally identical nodes constructed independently are distinct
// objects; pointer equality is a reuse signal for incremental reparsing,
// never the definition of equivalence.
type GreenNode struct {
	kind      Kind
	children  []GreenElement
	fullWidth int
	flags     nodeFlags
}

// NewGreenNode constructs a green node. Width and aggregate flags are
// computed from the children once, here. Zero child elements are rejected.
func NewGreenNode(kind Kind, children ...GreenElement) *GreenNode {
	node := &GreenNode{kind: kind, children: children}
	node.recompute()
	return node
}

// recompute refreshes width and flags from the children. Only valid on a
// node not yet shared.
func (n *GreenNode) recompute() {
	width := 0
	var flags nodeFlags
	missing := len(n.children) > 0
	for _, child := range n.children {
		if child.IsZero() {
			panic("syntax: zero child element")
		}
		width += child.FullWidth()
		flags |= child.elementFlags() & aggregateMask
		if !child.IsMissing() {
			missing = false
		}
	}
	if missing {
		flags |= flagMissing
	}
	if _, ok := nodeDiagnostics.load(n); ok {
		flags |= flagDiagnostics
	}
	if _, ok := nodeAnnotations.load(n); ok {
		flags |= flagAnnotations
	}
	n.fullWidth = width
	n.flags = flags
}

// Kind returns the node's kind tag.
func (n *GreenNode) Kind() Kind { return n.kind }

// FullWidth returns the node's width including trivia.
func (n *GreenNode) FullWidth() int { return n.fullWidth }

// Width returns the node's width excluding leading and trailing trivia.
func (n *GreenNode) Width() int {
	return n.fullWidth - n.LeadingTriviaWidth() - n.TrailingTriviaWidth()
}

// ChildCount returns the number of children.
func (n *GreenNode) ChildCount() int { return len(n.children) }

// Child returns the i-th child element.
func (n *GreenNode) Child(i int) GreenElement { return n.children[i] }

// Children returns the child list. The slice is shared; do not mutate it.
func (n *GreenNode) Children() []GreenElement { return n.children }

// offsetOfChild returns the width of the children preceding slot i. The sum
// is local to this node; no tree-wide scan is involved.
func (n *GreenNode) offsetOfChild(i int) int {
	offset := 0
	for _, child := range n.children[:i] {
		offset += child.FullWidth()
	}
	return offset
}

// IsMissing reports whether every child of the node is missing.
func (n *GreenNode) IsMissing() bool { return n.flags.has(flagMissing) }

// ContainsDiagnostics reports whether any element in the subtree carries
// diagnostics.
func (n *GreenNode) ContainsDiagnostics() bool { return n.flags.has(flagDiagnostics) }

// ContainsDirectives reports whether any trivia in the subtree is a
// directive.
func (n *GreenNode) ContainsDirectives() bool { return n.flags.has(flagDirectives) }

// ContainsAnnotations reports whether any element in the subtree carries
// annotations.
func (n *GreenNode) ContainsAnnotations() bool { return n.flags.has(flagAnnotations) }

// ContainsSkippedText reports whether any trivia in the subtree is a
// skipped-token run.
func (n *GreenNode) ContainsSkippedText() bool { return n.flags.has(flagSkipped) }

// firstToken returns the first token in the subtree, or nil for a node with
// no tokens at all.
func (n *GreenNode) firstToken() *GreenToken {
	for _, child := range n.children {
		if child.token != nil {
			return child.token
		}
		if tok := child.node.firstToken(); tok != nil {
			return tok
		}
	}
	return nil
}

// lastToken returns the last token in the subtree, or nil.
func (n *GreenNode) lastToken() *GreenToken {
	for i := len(n.children) - 1; i >= 0; i-- {
		child := n.children[i]
		if child.token != nil {
			return child.token
		}
		if tok := child.node.lastToken(); tok != nil {
			return tok
		}
	}
	return nil
}

// LeadingTriviaWidth returns the leading trivia width of the node's first
// token.
func (n *GreenNode) LeadingTriviaWidth() int {
	if tok := n.firstToken(); tok != nil {
		return tok.LeadingTriviaWidth()
	}
	return 0
}

// TrailingTriviaWidth returns the trailing trivia width of the node's last
// token.
func (n *GreenNode) TrailingTriviaWidth() int {
	if tok := n.lastToken(); tok != nil {
		return tok.TrailingTriviaWidth()
	}
	return 0
}

// clone copies the node and carries its side-table entries to the copy.
func (n *GreenNode) clone() *GreenNode {
	dup := &GreenNode{
		kind:      n.kind,
		children:  n.children,
		fullWidth: n.fullWidth,
		flags:     n.flags,
	}
	if n.flags.has(flagDiagnostics) {
		if diags, ok := nodeDiagnostics.load(n); ok {
			nodeDiagnostics.store(dup, diags)
		}
	}
	if n.flags.has(flagAnnotations) {
		if anns, ok := nodeAnnotations.load(n); ok {
			nodeAnnotations.store(dup, anns)
		}
	}
	return dup
}

// WithChild returns a copy of the node with slot i replaced. The original
// is unchanged; untouched children are shared between both nodes.
func (n *GreenNode) WithChild(i int, child GreenElement) *GreenNode {
	if i < 0 || i >= len(n.children) {
		panic("syntax: child index out of range")
	}
	dup := n.clone()
	children := make([]GreenElement, len(n.children))
	copy(children, n.children)
	children[i] = child
	dup.children = children
	dup.recompute()
	return dup
}

// WithDiagnostics returns a copy of the node with the diagnostics appended
// to its side-table entry. The original is unchanged.
func (n *GreenNode) WithDiagnostics(diags ...Diagnostic) *GreenNode {
	if len(diags) == 0 {
		return n
	}
	dup := n.clone()
	existing, _ := nodeDiagnostics.load(dup)
	nodeDiagnostics.store(dup, append(existing[:len(existing):len(existing)], diags...))
	dup.flags |= flagDiagnostics
	return dup
}

// Diagnostics returns the diagnostics attached to this node itself, not
// including those of its children.
func (n *GreenNode) Diagnostics() []Diagnostic {
	if !n.flags.has(flagDiagnostics) {
		return nil
	}
	diags, _ := nodeDiagnostics.load(n)
	return diags
}

// WithAnnotations returns a copy of the node with the annotations appended
// to its side-table entry. The original is unchanged.
func (n *GreenNode) WithAnnotations(anns ...Annotation) *GreenNode {
	if len(anns) == 0 {
		return n
	}
	dup := n.clone()
	existing, _ := nodeAnnotations.load(dup)
	nodeAnnotations.store(dup, append(existing[:len(existing):len(existing)], anns...))
	dup.flags |= flagAnnotations
	return dup
}

// Annotations returns the annotations attached to this node.
func (n *GreenNode) Annotations() []Annotation {
	if !n.flags.has(flagAnnotations) {
		return nil
	}
	anns, _ := nodeAnnotations.load(n)
	return anns
}

// WithoutAnnotations returns a copy of the node with annotations of the
// given kind removed. When no such annotation exists the receiver itself is
// returned, unchanged and unallocated.
func (n *GreenNode) WithoutAnnotations(kind string) *GreenNode {
	existing := n.Annotations()
	remaining, removed := withoutKind(existing, kind)
	if !removed {
		return n
	}
	dup := n.clone()
	if len(remaining) == 0 {
		nodeAnnotations.delete(dup)
		dup.flags &^= flagAnnotations
		// Child annotations still count toward the aggregate flag.
		for _, child := range dup.children {
			if child.elementFlags().has(flagAnnotations) {
				dup.flags |= flagAnnotations
			}
		}
	} else {
		nodeAnnotations.store(dup, remaining)
	}
	return dup
}

// WithoutAnnotations returns a copy of the token with annotations of the
// given kind removed, or the receiver itself when none exist.
func (t *GreenToken) WithoutAnnotations(kind string) *GreenToken {
	existing := t.Annotations()
	remaining, removed := withoutKind(existing, kind)
	if !removed {
		return t
	}
	dup := t.clone()
	if len(remaining) == 0 {
		tokenAnnotations.delete(dup)
		dup.flags &^= flagAnnotations
		dup.flags |= (triviaFlags(dup.leading) | triviaFlags(dup.trailing)) & flagAnnotations
	} else {
		tokenAnnotations.store(dup, remaining)
	}
	return dup
}

// FullText returns the subtree's text with all trivia included.
func (n *GreenNode) FullText() string {
	var sb strings.Builder
	sb.Grow(n.fullWidth)
	n.writeTo(&sb)
	return sb.String()
}

func (n *GreenNode) writeTo(sb *strings.Builder) {
	for _, child := range n.children {
		child.writeTo(sb)
	}
}
