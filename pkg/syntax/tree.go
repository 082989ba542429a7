package syntax

import (
	"fmt"
	"sync/atomic"
)

// Tree binds a green root to the source it was parsed from. It is the
// hand-off point between a front end and every consumer: the red root, the
// line index and the kind namer all live here, the first two computed
// lazily and published atomically so a shared Tree is safe to read from any
// number of goroutines.
type Tree struct {
	path      string
	source    []byte
	green     *GreenNode
	kindNamer func(Kind) string

	root  atomic.Pointer[Node]
	lines atomic.Pointer[LineIndex]
}

// TreeOption configures a Tree at construction.
type TreeOption func(*Tree)

// WithKindNamer supplies the surface language's kind display names.
func WithKindNamer(namer func(Kind) string) TreeOption {
	return func(t *Tree) { t.kindNamer = namer }
}

// NewTree wraps a parsed green root with its source. The source slice is
// retained; callers must not mutate it.
func NewTree(path string, source []byte, green *GreenNode, opts ...TreeOption) *Tree {
	if green == nil {
		panic("syntax: nil green root")
	}
	t := &Tree{path: path, source: source, green: green}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Path returns the source path (may be empty for in-memory content).
func (t *Tree) Path() string { return t.path }

// Source returns the original source bytes. The slice is shared; do not
// mutate it.
func (t *Tree) Source() []byte { return t.source }

// GreenRoot returns the tree's green root.
func (t *Tree) GreenRoot() *GreenNode { return t.green }

// Root returns the red root at position 0 with no parent. The root is
// built once; a concurrent first call may build a duplicate that loses the
// CAS and is discarded.
func (t *Tree) Root() *Node {
	if root := t.root.Load(); root != nil {
		return root
	}
	t.root.CompareAndSwap(nil, NewRoot(t.green))
	return t.root.Load()
}

// Lines returns the memoized line index over the source.
func (t *Tree) Lines() *LineIndex {
	if ix := t.lines.Load(); ix != nil {
		return ix
	}
	t.lines.CompareAndSwap(nil, NewLineIndex(t.source))
	return t.lines.Load()
}

// KindName renders a kind using the language's namer, falling back to the
// numeric form.
func (t *Tree) KindName(k Kind) string {
	if t.kindNamer != nil {
		if name := t.kindNamer(k); name != "" {
			return name
		}
	}
	return k.String()
}

// LineContent returns the text of a 1-based line, excluding the newline,
// or nil when out of range.
func (t *Tree) LineContent(line int) []byte {
	start, end, ok := t.Lines().Line(line)
	if !ok {
		return nil
	}
	return t.source[start:end]
}

// RoundTrips reports whether the tree reproduces its source byte-for-byte.
// A tree built by parsing always does; this exists so checkers can assert
// the guarantee cheaply.
func (t *Tree) RoundTrips() bool {
	return t.Root().ToFullString() == string(t.source)
}

// VerifyRoundTrip returns an error describing the first divergence between
// the tree's full text and the source, or nil.
func (t *Tree) VerifyRoundTrip() error {
	full := t.Root().ToFullString()
	src := string(t.source)
	if full == src {
		return nil
	}
	limit := min(len(full), len(src))
	at := limit
	for i := range limit {
		if full[i] != src[i] {
			at = i
			break
		}
	}
	return fmt.Errorf("tree text diverges from source at offset %d (tree %d bytes, source %d bytes)",
		at, len(full), len(src))
}
