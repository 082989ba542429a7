package calc

import (
	"fmt"
	"unicode/utf8"

	"github.com/yaklabco/syntree/pkg/syntax"
)

// Diagnostic codes reported by the calc front end.
const (
	CodeUnexpectedCharacter = "calc/unexpected-character"
	CodeUnterminatedComment = "calc/unterminated-comment"
	CodeExpectedToken       = "calc/expected-token"
	CodeExpectedExpression  = "calc/expected-expression"
	CodeUnexpectedTokens    = "calc/unexpected-tokens"
)

type lexer struct {
	src []byte
	pos int
}

// lex tokenizes the whole source. Trivia between tokens attaches to tokens
// under the usual lossless convention: a token's trailing trivia runs up to
// and including the first newline after it, everything else is leading
// trivia of the next token. The final EOF token is zero width and carries
// any trivia after the last real token.
func lex(src []byte) []*syntax.GreenToken {
	lx := &lexer{src: src}
	var tokens []*syntax.GreenToken
	for {
		leading, leadDiags := lx.scanTrivia(true)
		if lx.pos >= len(lx.src) {
			eof := syntax.NewTokenWithTrivia(KindEOFToken, "", leading, nil)
			tokens = append(tokens, eof.WithDiagnostics(leadDiags...))
			return tokens
		}
		kind, text, tokDiags := lx.scanToken()
		trailing, trailDiags := lx.scanTrivia(false)
		tok := syntax.NewTokenWithTrivia(kind, text, leading, trailing)
		diags := append(append(leadDiags, tokDiags...), trailDiags...)
		tokens = append(tokens, tok.WithDiagnostics(diags...))
	}
}

// scanTrivia consumes whitespace, comments and directives starting at the
// current position. In trailing position it stops after the first newline;
// in leading position it also recognizes #pragma lines at line starts.
func (lx *lexer) scanTrivia(leading bool) ([]syntax.GreenTrivia, []syntax.Diagnostic) {
	var list []syntax.GreenTrivia
	var diags []syntax.Diagnostic
	for lx.pos < len(lx.src) {
		b := lx.src[lx.pos]
		switch {
		case b == ' ' || b == '\t':
			start := lx.pos
			for lx.pos < len(lx.src) && (lx.src[lx.pos] == ' ' || lx.src[lx.pos] == '\t') {
				lx.pos++
			}
			list = append(list, syntax.NewTrivia(KindWhitespaceTrivia, string(lx.src[start:lx.pos])))
		case b == '\n' || (b == '\r' && lx.peekAt(1) == '\n'):
			list = append(list, syntax.NewTrivia(KindNewlineTrivia, lx.takeNewline()))
			if !leading {
				return list, diags
			}
		case b == '/' && lx.peekAt(1) == '/':
			start := lx.pos
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' &&
				!(lx.src[lx.pos] == '\r' && lx.peekAt(1) == '\n') {
				lx.pos++
			}
			list = append(list, syntax.NewTrivia(KindLineCommentTrivia, string(lx.src[start:lx.pos])))
		case b == '/' && lx.peekAt(1) == '*':
			trivia, diag := lx.scanBlockComment()
			list = append(list, trivia)
			if diag != nil {
				diags = append(diags, *diag)
			}
		case leading && b == '#' && lx.atLineStart() && lx.hasPrefix("#pragma"):
			list = append(list, lx.scanPragma())
		default:
			return list, diags
		}
	}
	return list, diags
}

func (lx *lexer) scanBlockComment() (syntax.GreenTrivia, *syntax.Diagnostic) {
	start := lx.pos
	lx.pos += 2
	for lx.pos < len(lx.src) {
		if lx.src[lx.pos] == '*' && lx.peekAt(1) == '/' {
			lx.pos += 2
			return syntax.NewTrivia(KindBlockCommentTrivia, string(lx.src[start:lx.pos])), nil
		}
		lx.pos++
	}
	return syntax.NewTrivia(KindBlockCommentTrivia, string(lx.src[start:lx.pos])), &syntax.Diagnostic{
		Severity: syntax.SeverityError,
		Code:     CodeUnterminatedComment,
		Message:  "unterminated block comment",
	}
}

// scanPragma consumes a full "#pragma ..." line into structured directive
// trivia. The structure holds the keyword token and, when arguments are
// present, a text token carrying the separating space and the terminating
// newline as its own trivia, so the directive reproduces the line exactly.
func (lx *lexer) scanPragma() syntax.GreenTrivia {
	lx.pos += len("#pragma")
	kw := syntax.NewToken(KindPragmaKeyword, "#pragma")

	wsStart := lx.pos
	for lx.pos < len(lx.src) && (lx.src[lx.pos] == ' ' || lx.src[lx.pos] == '\t') {
		lx.pos++
	}
	var sep []syntax.GreenTrivia
	if lx.pos > wsStart {
		sep = []syntax.GreenTrivia{syntax.NewTrivia(KindWhitespaceTrivia, string(lx.src[wsStart:lx.pos]))}
	}

	argStart := lx.pos
	for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' &&
		!(lx.src[lx.pos] == '\r' && lx.peekAt(1) == '\n') {
		lx.pos++
	}
	argText := string(lx.src[argStart:lx.pos])

	var eol []syntax.GreenTrivia
	if lx.pos < len(lx.src) {
		eol = []syntax.GreenTrivia{syntax.NewTrivia(KindNewlineTrivia, lx.takeNewline())}
	}

	var structure *syntax.GreenNode
	if argText != "" {
		arg := syntax.NewTokenWithTrivia(KindPragmaTextToken, argText, sep, eol)
		structure = syntax.NewGreenNode(KindPragma,
			syntax.TokenElement(kw), syntax.TokenElement(arg))
	} else {
		kw = kw.WithTrailingTrivia(append(sep, eol...))
		structure = syntax.NewGreenNode(KindPragma, syntax.TokenElement(kw))
	}
	return syntax.NewDirectiveTrivia(KindPragmaTrivia, structure)
}

func (lx *lexer) scanToken() (syntax.Kind, string, []syntax.Diagnostic) {
	b := lx.src[lx.pos]
	switch {
	case isDigit(b):
		start := lx.pos
		for lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
			lx.pos++
		}
		if lx.pos < len(lx.src) && lx.src[lx.pos] == '.' && isDigit(lx.peekAt(1)) {
			lx.pos++
			for lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
				lx.pos++
			}
		}
		return KindNumberToken, string(lx.src[start:lx.pos]), nil
	case isIdentStart(b):
		start := lx.pos
		for lx.pos < len(lx.src) && isIdentPart(lx.src[lx.pos]) {
			lx.pos++
		}
		text := string(lx.src[start:lx.pos])
		if text == "let" {
			return KindLetKeyword, text, nil
		}
		return KindIdentToken, text, nil
	}

	if kind, ok := punctKinds[b]; ok {
		lx.pos++
		return kind, string(b), nil
	}

	r, size := utf8.DecodeRune(lx.src[lx.pos:])
	lx.pos += size
	return KindBadToken, string(lx.src[lx.pos-size : lx.pos]), []syntax.Diagnostic{{
		Severity: syntax.SeverityError,
		Code:     CodeUnexpectedCharacter,
		Message:  fmt.Sprintf("unexpected character %q", r),
	}}
}

var punctKinds = map[byte]syntax.Kind{
	'+': KindPlusToken,
	'-': KindMinusToken,
	'*': KindStarToken,
	'/': KindSlashToken,
	'=': KindEqualsToken,
	';': KindSemicolonToken,
	'(': KindOpenParenToken,
	')': KindCloseParenToken,
}

func (lx *lexer) peekAt(ahead int) byte {
	if lx.pos+ahead >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+ahead]
}

func (lx *lexer) atLineStart() bool {
	return lx.pos == 0 || lx.src[lx.pos-1] == '\n'
}

func (lx *lexer) hasPrefix(s string) bool {
	return lx.pos+len(s) <= len(lx.src) && string(lx.src[lx.pos:lx.pos+len(s)]) == s
}

// takeNewline consumes "\n" or "\r\n" and returns its text.
func (lx *lexer) takeNewline() string {
	if lx.src[lx.pos] == '\r' {
		lx.pos += 2
		return "\r\n"
	}
	lx.pos++
	return "\n"
}

func isDigit(b byte) bool      { return b >= '0' && b <= '9' }
func isIdentStart(b byte) bool { return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isIdentPart(b byte) bool  { return isIdentStart(b) || isDigit(b) }
