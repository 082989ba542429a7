package syntax

// testHookDirectiveVisit, when set, observes every green element the
// directive scan touches. Tests use it to verify flag-gated pruning.
//
//nolint:gochecknoglobals // Test seam
var testHookDirectiveVisit func(Kind)

// Directives collects the structured directive trivia in the subtree, in
// source order, optionally filtered by match (nil matches everything).
//
// The scan descends into a child only when its bottom-up directive flag is
// set, so the cost is proportional to the number of directives rather than
// the size of the tree.
func (n *Node) Directives(match func(Trivia) bool) []Trivia {
	var out []Trivia
	scanDirectives(NodeElement(n.green), n.position, match, &out)
	return out
}

// Directives collects directives under the handle; see Node.Directives.
func (h NodeOrToken) Directives(match func(Trivia) bool) []Trivia {
	if h.IsToken() {
		var out []Trivia
		scanDirectives(TokenElement(h.token), h.position, match, &out)
		return out
	}
	if node, ok := h.AsNode(); ok {
		return node.Directives(match)
	}
	return nil
}

func scanDirectives(el GreenElement, pos int, match func(Trivia) bool, out *[]Trivia) {
	if !el.elementFlags().has(flagDirectives) {
		return
	}
	if testHookDirectiveVisit != nil {
		testHookDirectiveVisit(el.Kind())
	}

	if el.token != nil {
		tok := el.token
		scanTriviaDirectives(tok.leading, pos, match, out)
		scanTriviaDirectives(tok.trailing, pos+tok.LeadingTriviaWidth()+len(tok.text), match, out)
		return
	}

	childPos := pos
	for _, child := range el.node.children {
		scanDirectives(child, childPos, match, out)
		childPos += child.FullWidth()
	}
}

func scanTriviaDirectives(list []GreenTrivia, pos int, match func(Trivia) bool, out *[]Trivia) {
	for _, tr := range list {
		if tr.IsDirective() {
			view := Trivia{green: tr, position: pos}
			if match == nil || match(view) {
				*out = append(*out, view)
			}
		}
		pos += tr.FullWidth()
	}
}
