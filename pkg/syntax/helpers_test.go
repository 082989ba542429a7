package syntax_test

import (
	"github.com/yaklabco/syntree/pkg/syntax"
)

// A minimal kind space for engine tests. Real kind spaces live in the
// language packages; the engine never interprets these values.
const (
	kindFile syntax.Kind = iota + 1
	kindGroup
	kindItem
	kindIdent
	kindNumber
	kindComma
	kindWhitespaceTrivia
	kindCommentTrivia
	kindDirectiveTrivia
	kindDirectiveBody
	kindSkippedTrivia
)

func tok(kind syntax.Kind, text string) *syntax.GreenToken {
	return syntax.NewToken(kind, text)
}

func ws(text string) syntax.GreenTrivia {
	return syntax.NewTrivia(kindWhitespaceTrivia, text)
}

func node(kind syntax.Kind, children ...syntax.GreenElement) *syntax.GreenNode {
	return syntax.NewGreenNode(kind, children...)
}

func nd(n *syntax.GreenNode) syntax.GreenElement  { return syntax.NodeElement(n) }
func tk(t *syntax.GreenToken) syntax.GreenElement { return syntax.TokenElement(t) }

// widthsNode builds a node whose children are tokens with the given text
// widths; zero-width entries become missing tokens.
func widthsNode(widths ...int) *syntax.GreenNode {
	children := make([]syntax.GreenElement, len(widths))
	for i, w := range widths {
		if w == 0 {
			children[i] = tk(syntax.NewMissingToken(kindIdent))
			continue
		}
		text := make([]byte, w)
		for j := range text {
			text[j] = 'x'
		}
		children[i] = tk(tok(kindIdent, string(text)))
	}
	return node(kindGroup, children...)
}

// directive builds structured directive trivia whose text is the given
// marker plus newline.
func directive(text string) syntax.GreenTrivia {
	body := node(kindDirectiveBody, tk(tok(kindIdent, text)))
	return syntax.NewDirectiveTrivia(kindDirectiveTrivia, body)
}
