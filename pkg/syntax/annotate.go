package syntax

// GetAnnotations returns the annotations of the given kind attached to the
// wrapped element itself.
func (h NodeOrToken) GetAnnotations(kind string) []Annotation {
	return annotationsOfKind(h.ownAnnotations(), kind)
}

// HasAnnotations reports whether the wrapped element carries an annotation
// of the given kind.
func (h NodeOrToken) HasAnnotations(kind string) bool {
	return len(h.GetAnnotations(kind)) > 0
}

func (h NodeOrToken) ownAnnotations() []Annotation {
	switch {
	case h.IsToken():
		return h.token.Annotations()
	case h.IsNode():
		return h.nodeOrParent.green.Annotations()
	default:
		return nil
	}
}

// WithExtraAnnotations returns a handle over a copy of the wrapped element
// with the annotations added. The copy is detached: it keeps this handle's
// absolute position but belongs to no parent, since attaching it would
// require rebuilding the spine. The original tree is never mutated.
func (h NodeOrToken) WithExtraAnnotations(anns ...Annotation) NodeOrToken {
	if len(anns) == 0 {
		return h
	}
	switch {
	case h.IsToken():
		return h.detachedToken(h.token.WithAnnotations(anns...))
	case h.IsNode():
		return h.detachedNode(h.nodeOrParent.green.WithAnnotations(anns...))
	default:
		panic("syntax: annotating the none sentinel")
	}
}

// WithoutAnnotations returns a handle without annotations of the given
// kind. When the element carries none, the receiver itself is returned:
// the no-op preserves identity and allocates nothing.
func (h NodeOrToken) WithoutAnnotations(kind string) NodeOrToken {
	switch {
	case h.IsToken():
		stripped := h.token.WithoutAnnotations(kind)
		if stripped == h.token {
			return h
		}
		return h.detachedToken(stripped)
	case h.IsNode():
		stripped := h.nodeOrParent.green.WithoutAnnotations(kind)
		if stripped == h.nodeOrParent.green {
			return h
		}
		return h.detachedNode(stripped)
	default:
		return h
	}
}

func (h NodeOrToken) detachedToken(tok *GreenToken) NodeOrToken {
	return NodeOrToken{nodeOrParent: nil, token: tok, index: 0, position: h.position}
}

func (h NodeOrToken) detachedNode(green *GreenNode) NodeOrToken {
	red := &Node{green: green, position: h.position}
	return red.AsNodeOrToken()
}
