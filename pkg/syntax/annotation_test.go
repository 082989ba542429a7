package syntax_test

import (
	"testing"

	"github.com/yaklabco/syntree/pkg/syntax"
)

func TestWithoutAnnotations_NoOpPreservesIdentity(t *testing.T) {
	t.Parallel()

	root := syntax.NewRoot(sampleTree())
	handle := root.ChildNodesAndTokens().At(0)

	stripped := handle.WithoutAnnotations("never-added")

	if !stripped.Equals(handle) {
		t.Error("removing an absent annotation kind must return an equal handle")
	}

	strippedNode, ok := stripped.AsNode()
	if !ok {
		t.Fatal("expected a node handle back")
	}
	original, _ := handle.AsNode()
	if strippedNode != original {
		t.Error("the no-op must return the very same red node, not a copy")
	}
}

func TestWithoutAnnotations_GreenNoOpReturnsReceiver(t *testing.T) {
	t.Parallel()

	green := node(kindItem, tk(tok(kindIdent, "x")))
	if green.WithoutAnnotations("missing") != green {
		t.Error("green-level no-op must return the receiver, not a copy")
	}

	token := tok(kindIdent, "y")
	if token.WithoutAnnotations("missing") != token {
		t.Error("token-level no-op must return the receiver, not a copy")
	}
}

func TestAnnotations_AddQueryRemove(t *testing.T) {
	t.Parallel()

	root := syntax.NewRoot(sampleTree())
	handle := root.ChildNodesAndTokens().At(1)

	tagged := handle.WithExtraAnnotations(
		syntax.Annotation{Kind: "rename", Data: "newName"},
		syntax.Annotation{Kind: "format"},
	)

	if !tagged.HasAnnotations("rename") {
		t.Fatal("expected rename annotation")
	}
	got := tagged.GetAnnotations("rename")
	if len(got) != 1 || got[0].Data != "newName" {
		t.Fatalf("unexpected annotations %v", got)
	}

	// The original handle and tree are untouched.
	if handle.HasAnnotations("rename") {
		t.Error("annotating must not mutate the original handle")
	}
	if root.ContainsAnnotations() {
		t.Error("annotating must not mutate the original tree")
	}

	// Removing one kind keeps the other.
	pruned := tagged.WithoutAnnotations("rename")
	if pruned.HasAnnotations("rename") {
		t.Error("expected rename annotation removed")
	}
	if !pruned.HasAnnotations("format") {
		t.Error("expected format annotation kept")
	}
}

func TestAnnotations_PreservedAcrossStructuralCopy(t *testing.T) {
	t.Parallel()

	tagged := node(kindItem, tk(tok(kindIdent, "a"))).
		WithAnnotations(syntax.Annotation{Kind: "keep"})
	group := node(kindGroup, nd(tagged), tk(tok(kindComma, ",")))

	if !group.ContainsAnnotations() {
		t.Fatal("expected annotation flag on the parent")
	}

	// Replace the sibling; the annotated child is shared into the copy.
	updated := group.WithChild(1, tk(tok(kindComma, ";")))
	if !updated.ContainsAnnotations() {
		t.Error("structural copy must preserve the annotation flag")
	}
	if len(updated.Child(0).Node().Annotations()) != 1 {
		t.Error("structural copy must preserve the annotation entry")
	}
}

func TestAnnotations_PositionKeptOnDetachedCopy(t *testing.T) {
	t.Parallel()

	root := syntax.NewRoot(sampleTree())
	handle := root.ChildNodesAndTokens().At(1)

	tagged := handle.WithExtraAnnotations(syntax.Annotation{Kind: "k"})

	if tagged.Position() != handle.Position() {
		t.Error("annotated copy must keep the handle's absolute position")
	}
	if tagged.Parent() != nil {
		t.Error("annotated copy is detached and must have no parent")
	}
	if tagged.ToFullString() != handle.ToFullString() {
		t.Error("annotated copy must reproduce the same text")
	}
}
