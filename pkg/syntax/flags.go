package syntax

// nodeFlags are the aggregate facts computed bottom-up when a green element
// is constructed, and frozen from then on. Each flag on a parent is the OR
// of its children's flags with any local condition.
type nodeFlags uint8

const (
	// flagMissing marks synthesized elements standing in for constructs the
	// parser expected but did not find. Unlike the other flags it is an AND
	// over children: a node is missing only if all of its children are.
	flagMissing nodeFlags = 1 << iota

	// flagDiagnostics marks elements with a diagnostics side-table entry
	// anywhere in their subtree.
	flagDiagnostics

	// flagDirectives marks elements with structured directive trivia
	// anywhere in their subtree. Directive collection prunes on it.
	flagDirectives

	// flagAnnotations marks elements with an annotation side-table entry
	// anywhere in their subtree.
	flagAnnotations

	// flagSkipped marks elements carrying skipped-token trivia produced by
	// error recovery.
	flagSkipped
)

// aggregateMask covers the flags that propagate upward by OR.
const aggregateMask = flagDiagnostics | flagDirectives | flagAnnotations | flagSkipped

func (f nodeFlags) has(mask nodeFlags) bool {
	return f&mask != 0
}
