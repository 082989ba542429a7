package calc_test

import (
	"testing"

	"github.com/yaklabco/syntree/pkg/lang/calc"
	"github.com/yaklabco/syntree/pkg/syntax"
)

func TestParse_RoundTripsCleanSource(t *testing.T) {
	t.Parallel()

	src := "// header\n#pragma once\nlet x = 1 + 2 * (3 - y);\n\n/* block */ x / 4;\n"
	tree := calc.Parse("clean.calc", []byte(src))

	if err := tree.VerifyRoundTrip(); err != nil {
		t.Fatal(err)
	}
	if diags := tree.Root().Diagnostics(); len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
	if tree.Root().Kind() != calc.KindScript {
		t.Errorf("expected a Script root, got %s", tree.KindName(tree.Root().Kind()))
	}
}

func TestParse_LetStatementShape(t *testing.T) {
	t.Parallel()

	tree := calc.Parse("", []byte("let x = 1 + 2 * 3;"))
	root := tree.Root()

	stmt := root.ChildNodesAndTokens().At(0)
	if stmt.Kind() != calc.KindLetStatement {
		t.Fatalf("expected a LetStatement, got %s", tree.KindName(stmt.Kind()))
	}

	parts := stmt.ChildNodesAndTokens()
	if parts.Len() != 5 {
		t.Fatalf("expected 5 children, got %d", parts.Len())
	}
	wantKinds := []syntax.Kind{
		calc.KindLetKeyword, calc.KindIdentToken, calc.KindEqualsToken,
		calc.KindBinaryExpression, calc.KindSemicolonToken,
	}
	for i, want := range wantKinds {
		if got := parts.At(i).Kind(); got != want {
			t.Errorf("child %d: expected %s, got %s", i, tree.KindName(want), tree.KindName(got))
		}
	}

	// Multiplication binds tighter: 1 + (2 * 3).
	sum, _ := parts.At(3).AsNode()
	right := sum.ChildNodesAndTokens().At(2)
	if right.Kind() != calc.KindBinaryExpression {
		t.Errorf("expected the right operand of + to be the * expression")
	}
	if right.ToString() != "2 * 3" {
		t.Errorf("expected '2 * 3', got %q", right.ToString())
	}
}

func TestParse_LeftAssociativity(t *testing.T) {
	t.Parallel()

	tree := calc.Parse("", []byte("a - b - c;"))
	stmt, _ := tree.Root().ChildNodesAndTokens().At(0).AsNode()
	expr := stmt.ChildNodesAndTokens().At(0)

	if expr.Kind() != calc.KindBinaryExpression {
		t.Fatalf("expected a BinaryExpression, got %s", tree.KindName(expr.Kind()))
	}
	exprNode, _ := expr.AsNode()
	left := exprNode.ChildNodesAndTokens().At(0)
	if left.Kind() != calc.KindBinaryExpression || left.ToString() != "a - b" {
		t.Errorf("expected the left operand to be 'a - b', got %q", left.ToString())
	}
}

func TestParse_UnaryBindsTighterThanBinary(t *testing.T) {
	t.Parallel()

	tree := calc.Parse("", []byte("-a * b;"))
	stmt, _ := tree.Root().ChildNodesAndTokens().At(0).AsNode()
	expr := stmt.ChildNodesAndTokens().At(0)

	if expr.Kind() != calc.KindBinaryExpression {
		t.Fatalf("expected * at the top, got %s", tree.KindName(expr.Kind()))
	}
	exprNode, _ := expr.AsNode()
	if left := exprNode.ChildNodesAndTokens().At(0); left.Kind() != calc.KindUnaryExpression {
		t.Errorf("expected the left operand to be the unary expression")
	}
}

func TestParse_PragmaDirective(t *testing.T) {
	t.Parallel()

	src := "#pragma check strict\nlet x = 1;\n"
	tree := calc.Parse("", []byte(src))
	if err := tree.VerifyRoundTrip(); err != nil {
		t.Fatal(err)
	}

	dirs := tree.Root().Directives(nil)
	if len(dirs) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(dirs))
	}
	d := dirs[0]
	if d.Kind() != calc.KindPragmaTrivia || d.Position() != 0 {
		t.Errorf("unexpected directive kind/position: %s at %d", tree.KindName(d.Kind()), d.Position())
	}
	if d.Text() != "#pragma check strict\n" {
		t.Errorf("unexpected directive text %q", d.Text())
	}

	structure := d.Structure()
	if structure == nil || structure.Kind() != calc.KindPragma {
		t.Fatal("expected a Pragma structure node")
	}
	arg := structure.ChildNodesAndTokens().At(1)
	if arg.Kind() != calc.KindPragmaTextToken || arg.ToString() != "check strict" {
		t.Errorf("unexpected pragma argument %q", arg.ToString())
	}
}

func TestParse_MissingTokensCarryDiagnostics(t *testing.T) {
	t.Parallel()

	tree := calc.Parse("", []byte("let = 5"))
	if err := tree.VerifyRoundTrip(); err != nil {
		t.Fatal(err)
	}

	stmt := tree.Root().ChildNodesAndTokens().At(0)
	name := stmt.ChildNodesAndTokens().At(1)
	if name.Kind() != calc.KindIdentToken || !name.IsMissing() {
		t.Error("expected a missing identifier token")
	}
	if name.FullWidth() != 0 {
		t.Error("expected the missing token to be zero width")
	}

	codes := diagnosticCodes(tree.Root().Diagnostics())
	if codes[calc.CodeExpectedToken] != 2 { // identifier and semicolon
		t.Errorf("expected 2 expected-token diagnostics, got %v", codes)
	}
}

func TestParse_SkippedTokensPreserveText(t *testing.T) {
	t.Parallel()

	src := "let x = 1; @ ) let y = 2;"
	tree := calc.Parse("", []byte(src))
	if err := tree.VerifyRoundTrip(); err != nil {
		t.Fatal(err)
	}

	root := tree.Root()
	if !root.ContainsSkippedText() {
		t.Fatal("expected the skipped-text flag on the root")
	}
	if root.ChildNodesAndTokens().Len() != 3 { // two statements plus EOF
		t.Fatalf("expected 3 children, got %d", root.ChildNodesAndTokens().Len())
	}

	codes := diagnosticCodes(root.Diagnostics())
	if codes[calc.CodeUnexpectedCharacter] != 1 || codes[calc.CodeUnexpectedTokens] != 1 {
		t.Errorf("unexpected diagnostic codes %v", codes)
	}
}

func TestParse_UnterminatedBlockComment(t *testing.T) {
	t.Parallel()

	tree := calc.Parse("", []byte("x; /* never closed"))
	if err := tree.VerifyRoundTrip(); err != nil {
		t.Fatal(err)
	}
	codes := diagnosticCodes(tree.Root().Diagnostics())
	if codes[calc.CodeUnterminatedComment] != 1 {
		t.Errorf("expected an unterminated-comment diagnostic, got %v", codes)
	}
}

func TestParse_MalformedInputAlwaysRoundTrips(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		";",
		"let",
		"let let let",
		"((((",
		"1 +",
		"@#$%^&",
		"#pragma\n",
		"let x = (1; y = 2",
		"\r\n\r\n let \r\n",
		"/*/",
	}
	for _, src := range inputs {
		tree := calc.Parse("", []byte(src))
		if err := tree.VerifyRoundTrip(); err != nil {
			t.Errorf("input %q: %v", src, err)
		}
	}
}

func diagnosticCodes(diags []syntax.LocatedDiagnostic) map[string]int {
	codes := make(map[string]int)
	for _, d := range diags {
		codes[d.Code]++
	}
	return codes
}
