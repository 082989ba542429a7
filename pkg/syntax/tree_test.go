package syntax_test

import (
	"testing"

	"github.com/yaklabco/syntree/pkg/syntax"
)

func TestTree_RoundTrip(t *testing.T) {
	t.Parallel()

	green := sampleTree()
	tree := syntax.NewTree("sample", []byte("  a ,bb"), green)

	if !tree.RoundTrips() {
		t.Fatal("expected the tree to reproduce its source")
	}
	if err := tree.VerifyRoundTrip(); err != nil {
		t.Fatalf("unexpected round-trip error: %v", err)
	}

	broken := syntax.NewTree("sample", []byte("  a ,bX"), green)
	if broken.RoundTrips() {
		t.Fatal("expected a mismatched source to fail the round trip")
	}
	if err := broken.VerifyRoundTrip(); err == nil {
		t.Fatal("expected a round-trip error")
	}
}

func TestTree_KindNamer(t *testing.T) {
	t.Parallel()

	green := sampleTree()

	unnamed := syntax.NewTree("", nil, green)
	if unnamed.KindName(kindFile) != kindFile.String() {
		t.Error("expected numeric fallback without a namer")
	}

	named := syntax.NewTree("", nil, green, syntax.WithKindNamer(func(k syntax.Kind) string {
		if k == kindFile {
			return "File"
		}
		return ""
	}))
	if named.KindName(kindFile) != "File" {
		t.Error("expected namer result")
	}
	if named.KindName(kindItem) != kindItem.String() {
		t.Error("expected numeric fallback for unnamed kinds")
	}
}

func TestTree_RootIsMemoized(t *testing.T) {
	t.Parallel()

	tree := syntax.NewTree("", nil, sampleTree())
	if tree.Root() != tree.Root() {
		t.Error("expected the same red root on every call")
	}
	if tree.Root().Position() != 0 {
		t.Error("expected the root at position 0")
	}
}

func TestTree_LineContent(t *testing.T) {
	t.Parallel()

	src := []byte("first\r\nsecond\nthird")
	tree := syntax.NewTree("", src, node(kindFile, tk(tok(kindIdent, string(src)))))

	if got := string(tree.LineContent(1)); got != "first" {
		t.Errorf("expected 'first', got %q", got)
	}
	if got := string(tree.LineContent(3)); got != "third" {
		t.Errorf("expected 'third', got %q", got)
	}
	if tree.LineContent(4) != nil {
		t.Error("expected nil for an out-of-range line")
	}
}
