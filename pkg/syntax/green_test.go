package syntax_test

import (
	"testing"

	"github.com/yaklabco/syntree/pkg/syntax"
)

func TestGreenToken_Widths(t *testing.T) {
	t.Parallel()

	token := syntax.NewTokenWithTrivia(kindIdent, "name",
		[]syntax.GreenTrivia{ws("  ")},
		[]syntax.GreenTrivia{ws(" "), ws("\n")},
	)

	if token.Width() != 4 {
		t.Errorf("expected width 4, got %d", token.Width())
	}
	if token.FullWidth() != 8 {
		t.Errorf("expected full width 8, got %d", token.FullWidth())
	}
	if token.LeadingTriviaWidth() != 2 {
		t.Errorf("expected leading trivia width 2, got %d", token.LeadingTriviaWidth())
	}
	if token.TrailingTriviaWidth() != 2 {
		t.Errorf("expected trailing trivia width 2, got %d", token.TrailingTriviaWidth())
	}
	if token.FullText() != "  name \n" {
		t.Errorf("unexpected full text %q", token.FullText())
	}
}

func TestGreenNode_WidthIsSumOfChildren(t *testing.T) {
	t.Parallel()

	group := node(kindGroup,
		tk(syntax.NewTokenWithTrivia(kindIdent, "ab", nil, []syntax.GreenTrivia{ws(" ")})),
		tk(tok(kindComma, ",")),
		tk(tok(kindNumber, "123")),
	)

	if group.FullWidth() != 7 {
		t.Errorf("expected full width 7, got %d", group.FullWidth())
	}
	if group.FullText() != "ab ,123" {
		t.Errorf("unexpected full text %q", group.FullText())
	}
}

func TestGreenNode_MissingRequiresAllChildrenMissing(t *testing.T) {
	t.Parallel()

	allMissing := node(kindItem,
		tk(syntax.NewMissingToken(kindIdent)),
		tk(syntax.NewMissingToken(kindComma)),
	)
	if !allMissing.IsMissing() {
		t.Error("expected node with only missing children to be missing")
	}
	if allMissing.FullWidth() != 0 {
		t.Errorf("expected zero width, got %d", allMissing.FullWidth())
	}

	partlyMissing := node(kindItem,
		tk(syntax.NewMissingToken(kindIdent)),
		tk(tok(kindComma, ",")),
	)
	if partlyMissing.IsMissing() {
		t.Error("expected node with one real child to not be missing")
	}

	empty := node(kindItem)
	if empty.IsMissing() {
		t.Error("expected empty node to not be missing")
	}
}

func TestGreenNode_DiagnosticsFlagPropagates(t *testing.T) {
	t.Parallel()

	bad := syntax.NewMissingToken(kindIdent).WithDiagnostics(syntax.Diagnostic{
		Severity: syntax.SeverityError,
		Code:     "T001",
		Message:  "identifier expected",
	})

	inner := node(kindItem, tk(bad))
	outer := node(kindFile, nd(inner), tk(tok(kindComma, ",")))

	if !inner.ContainsDiagnostics() {
		t.Error("expected inner node to contain diagnostics")
	}
	if !outer.ContainsDiagnostics() {
		t.Error("expected diagnostics flag to propagate to the root")
	}
	if len(bad.Diagnostics()) != 1 {
		t.Fatalf("expected 1 diagnostic on token, got %d", len(bad.Diagnostics()))
	}
	if len(inner.Diagnostics()) != 0 {
		t.Error("node-level diagnostics must not include child diagnostics")
	}
}

func TestGreenToken_WithDiagnosticsDoesNotMutateOriginal(t *testing.T) {
	t.Parallel()

	clean := tok(kindIdent, "x")
	dirty := clean.WithDiagnostics(syntax.Diagnostic{Code: "T002", Message: "suspicious"})

	if clean == dirty {
		t.Fatal("expected a new token instance")
	}
	if clean.ContainsDiagnostics() {
		t.Error("original token must stay diagnostic-free")
	}
	if !dirty.ContainsDiagnostics() {
		t.Error("copy must carry the diagnostic")
	}
}

func TestGreenNode_WithChildSharesUntouchedChildren(t *testing.T) {
	t.Parallel()

	left := node(kindItem, tk(tok(kindIdent, "a")))
	right := node(kindItem, tk(tok(kindIdent, "bb")))
	group := node(kindGroup, nd(left), nd(right))

	replacement := node(kindItem, tk(tok(kindIdent, "ccc")))
	updated := group.WithChild(1, nd(replacement))

	if group.FullWidth() != 3 {
		t.Errorf("original width changed: %d", group.FullWidth())
	}
	if updated.FullWidth() != 4 {
		t.Errorf("expected updated width 4, got %d", updated.FullWidth())
	}
	if updated.Child(0).Node() != left {
		t.Error("untouched child must be shared by identity")
	}
	if updated.Child(1).Node() != replacement {
		t.Error("replaced child must be the new node")
	}
}

func TestNewGreenNode_RejectsZeroElement(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero child element")
		}
	}()
	syntax.NewGreenNode(kindGroup, syntax.GreenElement{})
}

func TestSkippedTokensTrivia(t *testing.T) {
	t.Parallel()

	skipped := syntax.NewSkippedTokensTrivia(kindSkippedTrivia,
		tok(kindComma, ","), tok(kindComma, ","))

	if !skipped.IsSkippedTokens() {
		t.Error("expected skipped-token trivia")
	}
	if skipped.FullWidth() != 2 {
		t.Errorf("expected width 2, got %d", skipped.FullWidth())
	}

	carrier := syntax.NewTokenWithTrivia(kindIdent, "next",
		[]syntax.GreenTrivia{skipped}, nil)
	if !carrier.ContainsSkippedText() {
		t.Error("expected skipped flag to reach the carrying token")
	}
	root := node(kindFile, tk(carrier))
	if !root.ContainsSkippedText() {
		t.Error("expected skipped flag to reach the root")
	}
	if root.FullText() != ",,next" {
		t.Errorf("unexpected full text %q", root.FullText())
	}
}
