package syntax

import "strconv"

// Kind is an opaque tag identifying the syntactic category of a node, token
// or trivia piece. The engine never interprets kinds; each surface language
// defines its own kind space and supplies a namer to Tree for display.
type Kind uint16

// KindNone is the zero kind. No constructed element carries it.
const KindNone Kind = 0

// String renders the numeric kind. Language packages provide human-readable
// names via Tree kind namers; this is only the fallback.
func (k Kind) String() string {
	return "Kind(" + strconv.FormatUint(uint64(k), 10) + ")"
}
