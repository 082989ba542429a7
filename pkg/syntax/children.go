package syntax

import "iter"

// ChildList is a lazy, finite, restartable view of a node's immediate
// children. The zero ChildList is empty (what token handles return).
type ChildList struct {
	parent *Node
}

// Len returns the number of children.
func (l ChildList) Len() int {
	if l.parent == nil {
		return 0
	}
	return len(l.parent.green.children)
}

// At returns the i-th child handle. It panics when i is out of range.
func (l ChildList) At(i int) NodeOrToken {
	if l.parent == nil || i < 0 || i >= l.Len() {
		panic("syntax: child index out of range")
	}
	return l.parent.childSlots()[i]
}

// All iterates the children in order. The sequence may be ranged over any
// number of times.
func (l ChildList) All() iter.Seq[NodeOrToken] {
	return func(yield func(NodeOrToken) bool) {
		if l.parent == nil {
			return
		}
		for _, slot := range l.parent.childSlots() {
			if !yield(slot) {
				return
			}
		}
	}
}

// Nodes iterates only the node children.
func (l ChildList) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if l.parent == nil {
			return
		}
		for _, slot := range l.parent.childSlots() {
			if node, ok := slot.AsNode(); ok {
				if !yield(node) {
					return
				}
			}
		}
	}
}

// First returns the first child, or the none sentinel for an empty list.
func (l ChildList) First() NodeOrToken {
	if l.Len() == 0 {
		return NodeOrToken{}
	}
	return l.At(0)
}

// Last returns the last child, or the none sentinel for an empty list.
func (l ChildList) Last() NodeOrToken {
	n := l.Len()
	if n == 0 {
		return NodeOrToken{}
	}
	return l.At(n - 1)
}
