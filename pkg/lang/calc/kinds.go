// Package calc is the front end for the calc surface language: small
// let-bound arithmetic scripts with line and block comments and #pragma
// directive lines. The parser produces lossless trees; every byte of the
// input, including malformed stretches, ends up in the tree.
package calc

import "github.com/yaklabco/syntree/pkg/syntax"

// Token kinds.
const (
	KindEOFToken syntax.Kind = iota + 1
	KindIdentToken
	KindNumberToken
	KindLetKeyword
	KindPlusToken
	KindMinusToken
	KindStarToken
	KindSlashToken
	KindEqualsToken
	KindSemicolonToken
	KindOpenParenToken
	KindCloseParenToken
	KindPragmaKeyword
	KindPragmaTextToken
	KindBadToken
)

// Trivia kinds.
const (
	KindWhitespaceTrivia syntax.Kind = iota + 32
	KindNewlineTrivia
	KindLineCommentTrivia
	KindBlockCommentTrivia
	KindPragmaTrivia
	KindSkippedTrivia
)

// Node kinds.
const (
	KindScript syntax.Kind = iota + 64
	KindLetStatement
	KindExpressionStatement
	KindBinaryExpression
	KindUnaryExpression
	KindParenExpression
	KindNameExpression
	KindNumberExpression
	KindPragma
)

var kindNames = map[syntax.Kind]string{
	KindEOFToken:            "EOFToken",
	KindIdentToken:          "IdentToken",
	KindNumberToken:         "NumberToken",
	KindLetKeyword:          "LetKeyword",
	KindPlusToken:           "PlusToken",
	KindMinusToken:          "MinusToken",
	KindStarToken:           "StarToken",
	KindSlashToken:          "SlashToken",
	KindEqualsToken:         "EqualsToken",
	KindSemicolonToken:      "SemicolonToken",
	KindOpenParenToken:      "OpenParenToken",
	KindCloseParenToken:     "CloseParenToken",
	KindPragmaKeyword:       "PragmaKeyword",
	KindPragmaTextToken:     "PragmaTextToken",
	KindBadToken:            "BadToken",
	KindWhitespaceTrivia:    "WhitespaceTrivia",
	KindNewlineTrivia:       "NewlineTrivia",
	KindLineCommentTrivia:   "LineCommentTrivia",
	KindBlockCommentTrivia:  "BlockCommentTrivia",
	KindPragmaTrivia:        "PragmaTrivia",
	KindSkippedTrivia:       "SkippedTrivia",
	KindScript:              "Script",
	KindLetStatement:        "LetStatement",
	KindExpressionStatement: "ExpressionStatement",
	KindBinaryExpression:    "BinaryExpression",
	KindUnaryExpression:     "UnaryExpression",
	KindParenExpression:     "ParenExpression",
	KindNameExpression:      "NameExpression",
	KindNumberExpression:    "NumberExpression",
	KindPragma:              "Pragma",
}

// KindName returns the display name for a calc kind, or "" for kinds the
// language does not define.
func KindName(k syntax.Kind) string { return kindNames[k] }
