package syntax

// Annotation is an out-of-band tag attached to a green element. Rewriters
// use annotations to track elements across structural copies; the engine
// preserves them but never interprets them.
type Annotation struct {
	// Kind groups annotations for lookup (e.g., "formatter.align").
	Kind string

	// Data is optional payload, opaque to the engine.
	Data string
}

// annotationsOfKind filters a list by kind.
func annotationsOfKind(anns []Annotation, kind string) []Annotation {
	var out []Annotation
	for _, a := range anns {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

// withoutKind returns the list minus annotations of the given kind, and
// whether anything was removed.
func withoutKind(anns []Annotation, kind string) ([]Annotation, bool) {
	removed := false
	var out []Annotation
	for _, a := range anns {
		if a.Kind == kind {
			removed = true
			continue
		}
		out = append(out, a)
	}
	return out, removed
}
