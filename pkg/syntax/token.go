package syntax

import "strings"

// GreenToken is a leaf of the core form: kind, text, and the leading and
// trailing trivia that attach the surrounding non-grammatical text to it.
// Like all green elements it is immutable, carries no parent pointer and no
// absolute position, and may be shared between trees.
type GreenToken struct {
	kind      Kind
	text      string
	leading   []GreenTrivia
	trailing  []GreenTrivia
	fullWidth int
	flags     nodeFlags
}

// NewToken creates a token with no attached trivia.
func NewToken(kind Kind, text string) *GreenToken {
	return NewTokenWithTrivia(kind, text, nil, nil)
}

// NewTokenWithTrivia creates a token with leading and trailing trivia.
// The trivia slices are retained; callers must not mutate them afterwards.
func NewTokenWithTrivia(kind Kind, text string, leading, trailing []GreenTrivia) *GreenToken {
	return &GreenToken{
		kind:      kind,
		text:      text,
		leading:   leading,
		trailing:  trailing,
		fullWidth: triviaWidth(leading) + len(text) + triviaWidth(trailing),
		flags:     triviaFlags(leading) | triviaFlags(trailing),
	}
}

// NewMissingToken synthesizes a zero-width token standing in for one the
// parser expected but did not find.
func NewMissingToken(kind Kind) *GreenToken {
	return &GreenToken{kind: kind, flags: flagMissing}
}

// Kind returns the token's kind tag.
func (t *GreenToken) Kind() Kind { return t.kind }

// Text returns the token's text without trivia.
func (t *GreenToken) Text() string { return t.text }

// Width returns the token's width excluding trivia.
func (t *GreenToken) Width() int { return len(t.text) }

// FullWidth returns the token's width including trivia.
func (t *GreenToken) FullWidth() int { return t.fullWidth }

// LeadingTriviaWidth returns the total width of the leading trivia.
func (t *GreenToken) LeadingTriviaWidth() int { return triviaWidth(t.leading) }

// TrailingTriviaWidth returns the total width of the trailing trivia.
func (t *GreenToken) TrailingTriviaWidth() int { return triviaWidth(t.trailing) }

// LeadingTrivia returns the leading trivia list. The slice is shared; do
// not mutate it.
func (t *GreenToken) LeadingTrivia() []GreenTrivia { return t.leading }

// TrailingTrivia returns the trailing trivia list. The slice is shared; do
// not mutate it.
func (t *GreenToken) TrailingTrivia() []GreenTrivia { return t.trailing }

// IsMissing reports whether the token was synthesized by error recovery.
func (t *GreenToken) IsMissing() bool { return t.flags.has(flagMissing) }

// ContainsDirectives reports whether any attached trivia is a directive.
func (t *GreenToken) ContainsDirectives() bool { return t.flags.has(flagDirectives) }

// ContainsDiagnostics reports whether the token or its trivia carry
// diagnostics.
func (t *GreenToken) ContainsDiagnostics() bool { return t.flags.has(flagDiagnostics) }

// ContainsAnnotations reports whether the token carries annotations.
func (t *GreenToken) ContainsAnnotations() bool { return t.flags.has(flagAnnotations) }

// ContainsSkippedText reports whether any attached trivia is a skipped-token
// run.
func (t *GreenToken) ContainsSkippedText() bool { return t.flags.has(flagSkipped) }

// clone copies the token and carries its side-table entries to the copy.
func (t *GreenToken) clone() *GreenToken {
	dup := &GreenToken{
		kind:      t.kind,
		text:      t.text,
		leading:   t.leading,
		trailing:  t.trailing,
		fullWidth: t.fullWidth,
		flags:     t.flags,
	}
	if t.flags.has(flagDiagnostics) {
		if diags, ok := tokenDiagnostics.load(t); ok {
			tokenDiagnostics.store(dup, diags)
		}
	}
	if t.flags.has(flagAnnotations) {
		if anns, ok := tokenAnnotations.load(t); ok {
			tokenAnnotations.store(dup, anns)
		}
	}
	return dup
}

// WithLeadingTrivia returns a copy of the token with the given leading
// trivia. The original is unchanged.
func (t *GreenToken) WithLeadingTrivia(leading []GreenTrivia) *GreenToken {
	dup := t.clone()
	dup.leading = leading
	dup.recompute()
	return dup
}

// WithTrailingTrivia returns a copy of the token with the given trailing
// trivia. The original is unchanged.
func (t *GreenToken) WithTrailingTrivia(trailing []GreenTrivia) *GreenToken {
	dup := t.clone()
	dup.trailing = trailing
	dup.recompute()
	return dup
}

// recompute refreshes width and aggregate flags after a trivia change.
// Only valid on a fresh clone not yet shared.
func (t *GreenToken) recompute() {
	t.fullWidth = triviaWidth(t.leading) + len(t.text) + triviaWidth(t.trailing)
	flags := t.flags & flagMissing
	if _, ok := tokenDiagnostics.load(t); ok {
		flags |= flagDiagnostics
	}
	if _, ok := tokenAnnotations.load(t); ok {
		flags |= flagAnnotations
	}
	t.flags = flags | triviaFlags(t.leading) | triviaFlags(t.trailing)
}

// WithDiagnostics returns a copy of the token with the diagnostics appended
// to its side-table entry. The original is unchanged.
func (t *GreenToken) WithDiagnostics(diags ...Diagnostic) *GreenToken {
	if len(diags) == 0 {
		return t
	}
	dup := t.clone()
	existing, _ := tokenDiagnostics.load(dup)
	tokenDiagnostics.store(dup, append(existing[:len(existing):len(existing)], diags...))
	dup.flags |= flagDiagnostics
	return dup
}

// Diagnostics returns the diagnostics attached to this token itself, not
// including any carried by trivia structures.
func (t *GreenToken) Diagnostics() []Diagnostic {
	if !t.flags.has(flagDiagnostics) {
		return nil
	}
	diags, _ := tokenDiagnostics.load(t)
	return diags
}

// WithAnnotations returns a copy of the token with the annotations appended
// to its side-table entry. The original is unchanged.
func (t *GreenToken) WithAnnotations(anns ...Annotation) *GreenToken {
	if len(anns) == 0 {
		return t
	}
	dup := t.clone()
	existing, _ := tokenAnnotations.load(dup)
	tokenAnnotations.store(dup, append(existing[:len(existing):len(existing)], anns...))
	dup.flags |= flagAnnotations
	return dup
}

// Annotations returns the annotations attached to this token.
func (t *GreenToken) Annotations() []Annotation {
	if !t.flags.has(flagAnnotations) {
		return nil
	}
	anns, _ := tokenAnnotations.load(t)
	return anns
}

// FullText returns the token text with trivia included.
func (t *GreenToken) FullText() string {
	var sb strings.Builder
	sb.Grow(t.fullWidth)
	t.writeTo(&sb)
	return sb.String()
}

func (t *GreenToken) writeTo(sb *strings.Builder) {
	for _, tr := range t.leading {
		tr.writeTo(sb)
	}
	sb.WriteString(t.text)
	for _, tr := range t.trailing {
		tr.writeTo(sb)
	}
}
