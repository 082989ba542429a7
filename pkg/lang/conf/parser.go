package conf

import (
	"fmt"

	"github.com/yaklabco/syntree/pkg/syntax"
)

// Parse builds a lossless tree for INI-style source. The returned tree
// always reproduces src byte-for-byte; malformed lines surface as
// diagnostics on missing or skipped tokens.
func Parse(path string, src []byte) *syntax.Tree {
	p := &parser{tokens: lex(src)}
	return syntax.NewTree(path, src, p.parseDocument(), syntax.WithKindNamer(KindName))
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

// parseDocument groups entries before the first section header directly
// under the document; every later entry belongs to the closest preceding
// section.
func (p *parser) parseDocument() *syntax.GreenNode {
	var children []syntax.GreenElement
	for !p.at(KindEOFToken) {
		switch {
		case p.at(KindOpenBracketToken):
			children = append(children, syntax.NodeElement(p.parseSection()))
		case p.at(KindIdentToken):
			children = append(children, syntax.NodeElement(p.parseEntry()))
		default:
			p.skipUnexpected()
		}
	}
	children = append(children, syntax.TokenElement(p.advance()))
	return syntax.NewGreenNode(KindDocument, children...)
}

func (p *parser) parseSection() *syntax.GreenNode {
	header := syntax.NewGreenNode(KindSectionHeader,
		syntax.TokenElement(p.advance()),
		syntax.TokenElement(p.expect(KindIdentToken)),
		syntax.TokenElement(p.expect(KindCloseBracketToken)),
	)
	children := []syntax.GreenElement{syntax.NodeElement(header)}
	for {
		switch {
		case p.at(KindIdentToken):
			children = append(children, syntax.NodeElement(p.parseEntry()))
		case p.at(KindEOFToken), p.at(KindOpenBracketToken):
			return syntax.NewGreenNode(KindSection, children...)
		default:
			p.skipUnexpected()
		}
	}
}

// parseEntry parses "key = value". The value child is omitted when the
// line has none; that is legal and carries no diagnostic.
func (p *parser) parseEntry() *syntax.GreenNode {
	children := []syntax.GreenElement{
		syntax.TokenElement(p.advance()),
		syntax.TokenElement(p.expect(KindEqualsToken)),
	}
	if p.at(KindValueToken) {
		children = append(children, syntax.TokenElement(p.advance()))
	}
	return syntax.NewGreenNode(KindEntry, children...)
}

func (p *parser) skipUnexpected() {
	var skipped []*syntax.GreenToken
	for !p.at(KindEOFToken) && !p.at(KindOpenBracketToken) && !p.at(KindIdentToken) {
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
