package syntax

import (
	"sort"
	"sync/atomic"
)

// DefaultSiblingSearchThreshold is the child count at which sibling lookup
// switches from a linear scan to a position binary search. The value is a
// throughput trade-off inherited from profiling, not a derived constant;
// it is configurable for that reason.
const DefaultSiblingSearchThreshold = 8

//nolint:gochecknoglobals // Runtime-tunable navigation parameter
var siblingSearchThreshold atomic.Int32

// SiblingSearchThreshold returns the current linear/binary cutover.
func SiblingSearchThreshold() int {
	if v := siblingSearchThreshold.Load(); v > 0 {
		return int(v)
	}
	return DefaultSiblingSearchThreshold
}

// SetSiblingSearchThreshold sets the linear/binary cutover. Values below 1
// restore the default.
func SetSiblingSearchThreshold(n int) {
	if n < 1 {
		siblingSearchThreshold.Store(0)
		return
	}
	siblingSearchThreshold.Store(int32(n))
}

// NextSibling returns the following child of this handle's parent, or the
// none sentinel when this is the last child or the root.
func (h NodeOrToken) NextSibling() NodeOrToken {
	parent := h.Parent()
	if parent == nil {
		return NodeOrToken{}
	}
	slots := parent.childSlots()
	i := parent.slotIndexOf(h)
	if i < 0 || i+1 >= len(slots) {
		return NodeOrToken{}
	}
	return slots[i+1]
}

// PrevSibling returns the preceding child of this handle's parent, or the
// none sentinel when this is the first child or the root.
func (h NodeOrToken) PrevSibling() NodeOrToken {
	parent := h.Parent()
	if parent == nil {
		return NodeOrToken{}
	}
	i := parent.slotIndexOf(h)
	if i <= 0 {
		return NodeOrToken{}
	}
	return parent.childSlots()[i-1]
}

// slotIndexOf locates the handle among the node's children by value
// equality. Below the threshold a linear scan from the start is cheaper
// than setting up a binary search; at or above it, a binary search on the
// handle's position narrows to a starting index and a short forward scan
// finds the match among any zero-width neighbours sharing that position.
//
// Equality deliberately excludes position, so one green subtree mounted in
// several slots of the same parent yields Equals-equal handles. Among
// equal candidates the slot whose position matches the queried handle wins;
// positions inside one parent disambiguate every non-zero-width mount. The
// first equal slot is kept as a fallback for handles whose position does
// not line up with any slot (detached copies).
func (n *Node) slotIndexOf(h NodeOrToken) int {
	slots := n.childSlots()

	if len(slots) < SiblingSearchThreshold() {
		fallback := -1
		for i, slot := range slots {
			if !slot.Equals(h) {
				continue
			}
			if slot.position == h.position {
				return i
			}
			if fallback < 0 {
				fallback = i
			}
		}
		return fallback
	}

	fallback := -1
	start := sort.Search(len(slots), func(i int) bool {
		return slots[i].EndPosition() >= h.position
	})
	for i := start; i < len(slots); i++ {
		if slots[i].position > h.position {
			break
		}
		if !slots[i].Equals(h) {
			continue
		}
		if slots[i].position == h.position {
			return i
		}
		if fallback < 0 {
			fallback = i
		}
	}
	return fallback
}

// ChildContainingPosition returns the child whose range covers the given
// absolute position, which must lie within the node's full span. When the
// position falls on a boundary shared by zero-width children, the leftmost
// child whose end reaches the position is selected, deterministically:
// error-recovery trees make zero-width children common and callers depend
// on that choice.
func (n *Node) ChildContainingPosition(pos int) NodeOrToken {
	if pos < n.position || pos > n.position+n.green.fullWidth {
		panic("syntax: position outside the node's full span")
	}
	slots := n.childSlots()
	if len(slots) == 0 {
		return NodeOrToken{}
	}
	i := sort.Search(len(slots), func(i int) bool {
		return slots[i].EndPosition() >= pos
	})
	if i == len(slots) {
		// Unreachable given the span check above; kept as an invariant trap.
		panic("syntax: positional search fell off the child list")
	}
	return slots[i]
}

// FindTokenAtPosition descends from the node to the token whose full span
// covers the position. Returns the none sentinel only for a node that
// contains no tokens at all.
func (n *Node) FindTokenAtPosition(pos int) NodeOrToken {
	current := n
	for {
		child := current.ChildContainingPosition(pos)
		if child.IsNone() || child.IsToken() {
			return child
		}
		current = child.mustNode()
	}
}
