package calc

import (
	"fmt"

	"github.com/yaklabco/syntree/pkg/syntax"
)

// Parse builds a lossless tree for calc source. The returned tree always
// reproduces src byte-for-byte; syntax errors surface as diagnostics on
// missing or skipped tokens, never as a failed parse.
func Parse(path string, src []byte) *syntax.Tree {
	p := &parser{tokens: lex(src)}
	return syntax.NewTree(path, src, p.parseScript(), syntax.WithKindNamer(KindName))
}

type parser struct {
	tokens []*syntax.GreenToken
	pos    int
}

func (p *parser) current() *syntax.GreenToken { return p.tokens[p.pos] }

func (p *parser) at(kind syntax.Kind) bool { return p.current().Kind() == kind }

func (p *parser) advance() *syntax.GreenToken {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// expect consumes the current token when it has the wanted kind, otherwise
// it synthesizes a zero-width missing token carrying a diagnostic.
func (p *parser) expect(kind syntax.Kind) *syntax.GreenToken {
	if p.at(kind) {
		return p.advance()
	}
	return syntax.NewMissingToken(kind).WithDiagnostics(syntax.Diagnostic{
		Severity: syntax.SeverityError,
		Code:     CodeExpectedToken,
		Message:  fmt.Sprintf("%s expected", kindNames[kind]),
	})
}

func (p *parser) parseScript() *syntax.GreenNode {
	var children []syntax.GreenElement
	for !p.at(KindEOFToken) {
		if !startsStatement(p.current().Kind()) {
			p.skipUnexpected()
			continue
		}
		children = append(children, syntax.NodeElement(p.parseStatement()))
	}
	children = append(children, syntax.TokenElement(p.advance()))
	return syntax.NewGreenNode(KindScript, children...)
}

// skipUnexpected moves tokens that cannot start a statement into
// skipped-token trivia on the next surviving token, keeping the source
// text intact.
func (p *parser) skipUnexpected() {
	var skipped []*syntax.GreenToken
	for !p.at(KindEOFToken) && !startsStatement(p.current().Kind()) {
		skipped = append(skipped, p.advance())
	}
	skipped[0] = skipped[0].WithDiagnostics(syntax.Diagnostic{
		Severity: syntax.SeverityError,
		Code:     CodeUnexpectedTokens,
		Message:  "unexpected tokens",
	})
	trivia := syntax.NewSkippedTokensTrivia(KindSkippedTrivia, skipped...)

	anchor := p.tokens[p.pos]
	leading := append([]syntax.GreenTrivia{trivia}, anchor.LeadingTrivia()...)
	p.tokens[p.pos] = anchor.WithLeadingTrivia(leading)
}

func startsStatement(kind syntax.Kind) bool {
	switch kind {
	case KindLetKeyword, KindIdentToken, KindNumberToken, KindOpenParenToken, KindMinusToken:
		return true
	}
	return false
}

func (p *parser) parseStatement() *syntax.GreenNode {
	if p.at(KindLetKeyword) {
		return syntax.NewGreenNode(KindLetStatement,
			syntax.TokenElement(p.advance()),
			syntax.TokenElement(p.expect(KindIdentToken)),
			syntax.TokenElement(p.expect(KindEqualsToken)),
			syntax.NodeElement(p.parseExpression(0)),
			syntax.TokenElement(p.expect(KindSemicolonToken)),
		)
	}
	return syntax.NewGreenNode(KindExpressionStatement,
		syntax.NodeElement(p.parseExpression(0)),
		syntax.TokenElement(p.expect(KindSemicolonToken)),
	)
}

const unaryPrecedence = 3

func binaryPrecedence(kind syntax.Kind) int {
	switch kind {
	case KindStarToken, KindSlashToken:
		return 2
	case KindPlusToken, KindMinusToken:
		return 1
	}
	return 0
}

// parseExpression is a standard precedence climber. Binary operators are
// left associative.
func (p *parser) parseExpression(minPrecedence int) *syntax.GreenNode {
	var left *syntax.GreenNode
	if p.at(KindMinusToken) {
		op := p.advance()
		left = syntax.NewGreenNode(KindUnaryExpression,
			syntax.TokenElement(op),
			syntax.NodeElement(p.parseExpression(unaryPrecedence)))
	} else {
		left = p.parsePrimary()
	}

	for {
		prec := binaryPrecedence(p.current().Kind())
		if prec == 0 || prec <= minPrecedence {
			return left
		}
		op := p.advance()
		right := p.parseExpression(prec)
		left = syntax.NewGreenNode(KindBinaryExpression,
			syntax.NodeElement(left),
			syntax.TokenElement(op),
			syntax.NodeElement(right))
	}
}

func (p *parser) parsePrimary() *syntax.GreenNode {
	switch p.current().Kind() {
	case KindNumberToken:
		return syntax.NewGreenNode(KindNumberExpression, syntax.TokenElement(p.advance()))
	case KindIdentToken:
		return syntax.NewGreenNode(KindNameExpression, syntax.TokenElement(p.advance()))
	case KindOpenParenToken:
		return syntax.NewGreenNode(KindParenExpression,
			syntax.TokenElement(p.advance()),
			syntax.NodeElement(p.parseExpression(0)),
			syntax.TokenElement(p.expect(KindCloseParenToken)))
	}
	missing := syntax.NewMissingToken(KindIdentToken).WithDiagnostics(syntax.Diagnostic{
		Severity: syntax.SeverityError,
		Code:     CodeExpectedExpression,
		Message:  "expression expected",
	})
	return syntax.NewGreenNode(KindNameExpression, syntax.TokenElement(missing))
}
