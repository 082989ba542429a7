package conf

import (
	"fmt"
	"unicode/utf8"

	"github.com/yaklabco/syntree/pkg/syntax"
)

// Diagnostic codes reported by the conf front end.
const (
	CodeUnexpectedCharacter = "conf/unexpected-character"
	CodeExpectedToken       = "conf/expected-token"
	CodeUnexpectedTokens    = "conf/unexpected-tokens"
)

type lexer struct {
	src []byte
	pos int

	// afterEquals makes the next token on the line a raw value running to
	// the end of the line. Reset when a newline is consumed.
	afterEquals bool
}

func lex(src []byte) []*syntax.GreenToken {
	lx := &lexer{src: src}
	var tokens []*syntax.GreenToken
	for {
		leading := lx.scanTrivia(true)
		if lx.pos >= len(lx.src) {
			tokens = append(tokens, syntax.NewTokenWithTrivia(KindEOFToken, "", leading, nil))
			return tokens
		}
		kind, text, diags := lx.scanToken()
		trailing := lx.scanTrivia(false)
		tok := syntax.NewTokenWithTrivia(kind, text, leading, trailing)
		tokens = append(tokens, tok.WithDiagnostics(diags...))
	}
}

func (lx *lexer) scanTrivia(leading bool) []syntax.GreenTrivia {
	var list []syntax.GreenTrivia
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
			lx.afterEquals = false
			list = append(list, syntax.NewTrivia(KindNewlineTrivia, lx.takeNewline()))
			if !leading {
				return list
			}
		case b == ';' || (b == '#' && !lx.isInclude()):
			start := lx.pos
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' &&
				!(lx.src[lx.pos] == '\r' && lx.peekAt(1) == '\n') {
				lx.pos++
			}
			list = append(list, syntax.NewTrivia(KindCommentTrivia, string(lx.src[start:lx.pos])))
		case leading && lx.isInclude():
			list = append(list, lx.scanInclude())
		default:
			return list
		}
	}
	return list
}

func (lx *lexer) isInclude() bool {
	return lx.atLineStart() && lx.hasPrefix("#include")
}

// scanInclude consumes a full "#include ..." line into structured directive
// trivia holding the keyword and the path text, trivia-wrapped so the
// directive reproduces the line exactly.
func (lx *lexer) scanInclude() syntax.GreenTrivia {
	lx.pos += len("#include")
	kw := syntax.NewToken(KindIncludeKeyword, "#include")

	wsStart := lx.pos
	for lx.pos < len(lx.src) && (lx.src[lx.pos] == ' ' || lx.src[lx.pos] == '\t') {
		lx.pos++
	}
	var sep []syntax.GreenTrivia
	if lx.pos > wsStart {
		sep = []syntax.GreenTrivia{syntax.NewTrivia(KindWhitespaceTrivia, string(lx.src[wsStart:lx.pos]))}
	}

	pathStart := lx.pos
	for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' &&
		!(lx.src[lx.pos] == '\r' && lx.peekAt(1) == '\n') {
		lx.pos++
	}
	pathText := string(lx.src[pathStart:lx.pos])

	var eol []syntax.GreenTrivia
	if lx.pos < len(lx.src) {
		eol = []syntax.GreenTrivia{syntax.NewTrivia(KindNewlineTrivia, lx.takeNewline())}
	}

	var structure *syntax.GreenNode
	if pathText != "" {
		path := syntax.NewTokenWithTrivia(KindPathToken, pathText, sep, eol)
		structure = syntax.NewGreenNode(KindInclude,
			syntax.TokenElement(kw), syntax.TokenElement(path))
	} else {
		kw = kw.WithTrailingTrivia(append(sep, eol...))
		structure = syntax.NewGreenNode(KindInclude, syntax.TokenElement(kw))
	}
	return syntax.NewDirectiveTrivia(KindIncludeTrivia, structure)
}

func (lx *lexer) scanToken() (syntax.Kind, string, []syntax.Diagnostic) {
	if lx.afterEquals {
		lx.afterEquals = false
		return KindValueToken, lx.takeValue(), nil
	}

	b := lx.src[lx.pos]
	switch b {
	case '[':
		lx.pos++
		return KindOpenBracketToken, "[", nil
	case ']':
		lx.pos++
		return KindCloseBracketToken, "]", nil
	case '=':
		lx.afterEquals = true
		lx.pos++
		return KindEqualsToken, "=", nil
	}

	if isIdentPart(b) {
		start := lx.pos
		for lx.pos < len(lx.src) && isIdentPart(lx.src[lx.pos]) {
			lx.pos++
		}
		return KindIdentToken, string(lx.src[start:lx.pos]), nil
	}

	r, size := utf8.DecodeRune(lx.src[lx.pos:])
	lx.pos += size
	return KindBadToken, string(lx.src[lx.pos-size : lx.pos]), []syntax.Diagnostic{{
		Severity: syntax.SeverityError,
		Code:     CodeUnexpectedCharacter,
		Message:  fmt.Sprintf("unexpected character %q", r),
	}}
}

// takeValue consumes the rest of the line as raw value text, stopping
// before an inline comment and leaving trailing whitespace for the trivia
// scanner.
func (lx *lexer) takeValue() string {
	start := lx.pos
	for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' && lx.src[lx.pos] != ';' &&
		lx.src[lx.pos] != '#' && !(lx.src[lx.pos] == '\r' && lx.peekAt(1) == '\n') {
		lx.pos++
	}
	end := lx.pos
	for end > start && (lx.src[end-1] == ' ' || lx.src[end-1] == '\t') {
		end--
	}
	lx.pos = end
	return string(lx.src[start:end])
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

func (lx *lexer) takeNewline() string {
	if lx.src[lx.pos] == '\r' {
		lx.pos += 2
		return "\r\n"
	}
	lx.pos++
	return "\n"
}

func isIdentPart(b byte) bool {
	return b == '_' || b == '.' || b == '-' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
