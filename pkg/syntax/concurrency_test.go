package syntax_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/yaklabco/syntree/pkg/syntax"
)

// traverseAll walks every handle in the tree, recording kind, span and flag
// facts into a deterministic transcript.
func traverseAll(h syntax.NodeOrToken, out *[]string) {
	*out = append(*out, fmt.Sprintf("%d %s %s %v %v",
		h.Kind(), h.Span(), h.FullSpan(), h.IsMissing(), h.ContainsDiagnostics()))
	for child := range h.ChildNodesAndTokens().All() {
		traverseAll(child, out)
	}
}

// deepTree builds a few levels of structure with trivia and a diagnostic so
// the traversal exercises every lazily computed path.
func deepTree() *syntax.GreenNode {
	leafA := syntax.NewTokenWithTrivia(kindIdent, "alpha",
		[]syntax.GreenTrivia{ws("  ")}, []syntax.GreenTrivia{ws("\n")})
	leafB := tok(kindNumber, "42").WithDiagnostics(syntax.Diagnostic{Code: "T020", Message: "m"})

	inner := node(kindGroup, tk(leafA), tk(leafB))
	var groups []syntax.GreenElement
	for range 8 {
		groups = append(groups, nd(inner)) // shared subtree, eight mounts
	}
	return node(kindFile, groups...)
}

func TestConcurrentTraversal_MatchesSequential(t *testing.T) {
	t.Parallel()

	green := deepTree()
	tree := syntax.NewTree("mem", []byte(green.FullText()), green)

	var want []string
	traverseAll(tree.Root().AsNodeOrToken(), &want)

	const workers = 16
	results := make([][]string, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var got []string
			traverseAll(tree.Root().AsNodeOrToken(), &got)
			results[i] = got
		}()
	}
	wg.Wait()

	for i, got := range results {
		if len(got) != len(want) {
			t.Fatalf("worker %d: transcript length %d, want %d", i, len(got), len(want))
		}
		for j := range got {
			if got[j] != want[j] {
				t.Fatalf("worker %d: transcript diverges at %d: %q vs %q", i, j, got[j], want[j])
			}
		}
	}
}

func TestConcurrentRootAndSlotMemoization(t *testing.T) {
	t.Parallel()

	tree := syntax.NewTree("mem", nil, deepTree())

	const workers = 8
	roots := make([]*syntax.Node, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			roots[i] = tree.Root()
		}()
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if roots[i] != roots[0] {
			t.Fatal("all goroutines must observe the same published root")
		}
	}
}
