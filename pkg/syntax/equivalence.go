package syntax

// IsEquivalentTo reports structural sameness with another node: same kinds,
// same child shapes, same token and trivia text throughout. Annotations,
// diagnostics, positions and object identity are all ignored, so two
// independently parsed trees over the same source are equivalent with no
// objects shared.
func (n *Node) IsEquivalentTo(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return greenNodesEquivalent(n.green, other.green)
}

// IsEquivalentTo reports structural sameness with another handle.
func (h NodeOrToken) IsEquivalentTo(other NodeOrToken) bool {
	switch {
	case h.IsNone() || other.IsNone():
		return h.IsNone() && other.IsNone()
	case h.IsToken() != other.IsToken():
		return false
	case h.IsToken():
		return greenTokensEquivalent(h.token, other.token)
	default:
		return greenNodesEquivalent(h.nodeOrParent.green, other.nodeOrParent.green)
	}
}

func greenNodesEquivalent(a, b *GreenNode) bool {
	if a == b {
		// Shared green: structurally identical by construction.
		return true
	}
	if a.kind != b.kind || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !greenElementsEquivalent(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

func greenElementsEquivalent(a, b GreenElement) bool {
	if a.IsToken() != b.IsToken() {
		return false
	}
	if a.IsToken() {
		return greenTokensEquivalent(a.token, b.token)
	}
	return greenNodesEquivalent(a.node, b.node)
}

func greenTokensEquivalent(a, b *GreenToken) bool {
	if a == b {
		return true
	}
	if a.kind != b.kind || a.text != b.text || a.IsMissing() != b.IsMissing() {
		return false
	}
	return triviaListsEquivalent(a.leading, b.leading) &&
		triviaListsEquivalent(a.trailing, b.trailing)
}

func triviaListsEquivalent(a, b []GreenTrivia) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].kind != b[i].kind {
			return false
		}
		as, bs := a[i].structure, b[i].structure
		if (as == nil) != (bs == nil) {
			return false
		}
		if as != nil {
			if !greenNodesEquivalent(as, bs) {
				return false
			}
			continue
		}
		if a[i].text != b[i].text {
			return false
		}
	}
	return true
}
