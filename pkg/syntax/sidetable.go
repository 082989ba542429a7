package syntax

import (
	"runtime"
	"sync"
	"weak"
)

// sideTable attaches values to green elements by identity without storing
// them in the element payload. Keys are weak pointers, so an entry does not
// keep its element alive; a runtime cleanup evicts the entry once the
// element is collected.
//
// Lookups are gated by the per-element aggregate flags, so an element whose
// flag is unset never consults the table. Stores happen during construction
// of the element, before it is shared, which is what makes lock-free reads
// safe here.
type sideTable[T any, V any] struct {
	m sync.Map // weak.Pointer[T] -> V
}

func (st *sideTable[T, V]) store(key *T, value V) {
	handle := weak.Make(key)
	st.m.Store(handle, value)
	runtime.AddCleanup(key, func(h weak.Pointer[T]) {
		st.m.Delete(h)
	}, handle)
}

func (st *sideTable[T, V]) delete(key *T) {
	st.m.Delete(weak.Make(key))
}

func (st *sideTable[T, V]) load(key *T) (V, bool) {
	value, ok := st.m.Load(weak.Make(key))
	if !ok {
		var zero V
		return zero, false
	}
	return value.(V), true
}

// The four process-wide side tables: diagnostics and annotations, keyed by
// green node and green token identity respectively.
//
//nolint:gochecknoglobals // Identity-keyed side tables are process-wide by design
var (
	nodeDiagnostics  sideTable[GreenNode, []Diagnostic]
	tokenDiagnostics sideTable[GreenToken, []Diagnostic]
	nodeAnnotations  sideTable[GreenNode, []Annotation]
	tokenAnnotations sideTable[GreenToken, []Annotation]
)
