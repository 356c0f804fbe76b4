package highlight

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"termdeck/internal/style"
)

// ErrUnknownLanguage is returned when no lexer matches a language tag.
var ErrUnknownLanguage = errors.New("unknown language")

// Token is one lexed span of source.
type Token struct {
	Type  chroma.TokenType
	Value string
}

// Tokenise lexes source with the lexer registered for language. Trailing
// whitespace is stripped first. An empty language yields a single Text
// token.
func Tokenise(language, source string) ([]Token, error) {
	source = strings.TrimRight(source, " \t\r\n")
	if language == "" {
		if source == "" {
			return nil, nil
		}
		return []Token{{Type: chroma.Text, Value: source}}, nil
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil, fmt.Errorf("tokenise %s: %w", language, err)
	}

	var tokens []Token
	for _, tok := range it.Tokens() {
		if tok.Value == "" {
			continue
		}
		tokens = append(tokens, Token{Type: tok.Type, Value: tok.Value})
	}
	return tokens, nil
}

// Colorize renders tokens as an ANSI string on background bg. Tokens whose
// category maps to ColorDefault use fg. Line breaks inside tokens are
// preserved.
func (m *Mapper) Colorize(tokens []Token, fg, bg style.Color) string {
	var b strings.Builder
	for _, tok := range tokens {
		c := m.Color(tok.Type)
		if c == style.ColorDefault {
			c = fg
		}
		b.WriteString(style.Render(tok.Value, c, bg, style.AttrNormal))
	}
	return strings.TrimRight(b.String(), "\n")
}
