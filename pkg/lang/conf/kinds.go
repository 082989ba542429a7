// Package conf is the front end for INI-style configuration files:
// sections, key/value entries, ; and # comments, and #include directive
// lines. Like every front end in this repo it produces lossless trees.
package conf

import "github.com/yaklabco/syntree/pkg/syntax"

// Token kinds.
const (
	KindEOFToken syntax.Kind = iota + 1
	KindIdentToken
	KindValueToken
	KindOpenBracketToken
	KindCloseBracketToken
	KindEqualsToken
	KindIncludeKeyword
	KindPathToken
	KindBadToken
)

// Trivia kinds.
const (
	KindWhitespaceTrivia syntax.Kind = iota + 32
	KindNewlineTrivia
	KindCommentTrivia
	KindIncludeTrivia
	KindSkippedTrivia
)

// Node kinds.
const (
	KindDocument syntax.Kind = iota + 64
	KindSection
	KindSectionHeader
	KindEntry
	KindInclude
)

var kindNames = map[syntax.Kind]string{
	KindEOFToken:          "EOFToken",
	KindIdentToken:        "IdentToken",
	KindValueToken:        "ValueToken",
	KindOpenBracketToken:  "OpenBracketToken",
	KindCloseBracketToken: "CloseBracketToken",
	KindEqualsToken:       "EqualsToken",
	KindIncludeKeyword:    "IncludeKeyword",
	KindPathToken:         "PathToken",
	KindBadToken:          "BadToken",
	KindWhitespaceTrivia:  "WhitespaceTrivia",
	KindNewlineTrivia:     "NewlineTrivia",
	KindCommentTrivia:     "CommentTrivia",
	KindIncludeTrivia:     "IncludeTrivia",
	KindSkippedTrivia:     "SkippedTrivia",
	KindDocument:          "Document",
	KindSection:           "Section",
	KindSectionHeader:     "SectionHeader",
	KindEntry:             "Entry",
	KindInclude:           "Include",
}

// KindName returns the display name for a conf kind, or "" for kinds the
// language does not define.
func KindName(k syntax.Kind) string { return kindNames[k] }
