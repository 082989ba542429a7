package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/syntree/internal/ui/pretty"
	"github.com/yaklabco/syntree/pkg/lang/calc"
)

func TestFormatTree(t *testing.T) {
	styles := pretty.NewStyles(false)

	tree := calc.Parse("script.calc", []byte("let x = 1 + 2;\n"))
	result := styles.FormatTree(tree)

	assert.Contains(t, result, "Script")
	assert.Contains(t, result, "LetStatement")
	assert.Contains(t, result, "BinaryExpression")
	assert.Contains(t, result, `"let"`)
	assert.Contains(t, result, `"x"`)

	// Nested elements are indented under the root.
	lines := strings.Split(result, "\n")
	assert.False(t, strings.HasPrefix(lines[0], " "), "root line should not be indented")
	assert.True(t, strings.HasPrefix(lines[1], "  "), "children should be indented")
}

func TestFormatTree_MarksMissingTokens(t *testing.T) {
	styles := pretty.NewStyles(false)

	tree := calc.Parse("script.calc", []byte("let = 5;\n"))
	result := styles.FormatTree(tree)

	assert.Contains(t, result, "(missing)")
}

func TestFormatTokens(t *testing.T) {
	styles := pretty.NewStyles(false)

	tree := calc.Parse("script.calc", []byte("// note\nlet x = 1;\n"))
	result := styles.FormatTokens(tree)

	assert.Contains(t, result, "LetKeyword")
	assert.Contains(t, result, "IdentToken")
	assert.Contains(t, result, "NumberToken")
	assert.Contains(t, result, "EOFToken")

	assert.Contains(t, result, "leading")
	assert.Contains(t, result, "trailing")
	assert.Contains(t, result, "LineCommentTrivia")
	assert.Contains(t, result, `"// note"`)
}

func TestFormatTokens_CoversEveryToken(t *testing.T) {
	styles := pretty.NewStyles(false)

	// Tokens nested several levels deep must still appear in the stream.
	tree := calc.Parse("script.calc", []byte("a + (b * c);\n"))
	result := styles.FormatTokens(tree)

	for _, text := range []string{`"a"`, `"+"`, `"("`, `"b"`, `"*"`, `"c"`, `")"`, `";"`} {
		assert.Contains(t, result, text)
	}
}
