// Package highlight maps chroma token categories to terminal colors and
// turns token streams into colored character cells.
package highlight

import (
	"errors"

	"github.com/alecthomas/chroma/v2"

	"termdeck/internal/style"
)

// Root is the category every token type descends from.
const Root chroma.TokenType = 0

// ErrNoRoot is returned by NewMapper when the table has no Root entry.
var ErrNoRoot = errors.New("color table has no root entry")

// Parent returns the immediate parent category of t. Chroma numbers its
// categories so that NameFunction (2xxx) refines Name (2000) and
// LiteralStringDouble (31xx) refines LiteralString (3100), which refines
// Literal (3000). Meta types (negative) hang off Root. Parent(Root) is Root.
func Parent(t chroma.TokenType) chroma.TokenType {
	switch {
	case t == Root:
		return Root
	case t%100 != 0:
		return t / 100 * 100
	case t%1000 != 0:
		return t / 1000 * 1000
	default:
		return Root
	}
}

// Mapper resolves a token type to a color using nearest-ancestor fallback.
// It is immutable after construction.
type Mapper struct {
	table map[chroma.TokenType]style.Color
}

// NewMapper copies table into a Mapper. The table must contain Root.
func NewMapper(table map[chroma.TokenType]style.Color) (*Mapper, error) {
	if _, ok := table[Root]; !ok {
		return nil, ErrNoRoot
	}
	m := &Mapper{table: make(map[chroma.TokenType]style.Color, len(table))}
	for t, c := range table {
		m.table[t] = c
	}
	return m, nil
}

// Color returns the color of the closest category to t that has an entry.
func (m *Mapper) Color(t chroma.TokenType) style.Color {
	for {
		if c, ok := m.table[t]; ok {
			return c
		}
		if t == Root {
			// unreachable for mappers built by NewMapper
			return style.ColorDefault
		}
		t = Parent(t)
	}
}

// DefaultTable is the built-in token palette for dark code surfaces.
var DefaultTable = map[chroma.TokenType]style.Color{
	Root: style.ColorDefault,

	chroma.TextWhitespace: style.ColorBlack,
	chroma.Comment:        style.ColorBlack,
	chroma.CommentPreproc: style.ColorCyan,
	chroma.Keyword:        style.ColorBlue,
	chroma.KeywordType:    style.ColorCyan,
	chroma.OperatorWord:   style.ColorMagenta,
	chroma.NameBuiltin:    style.ColorCyan,
	chroma.NameFunction:   style.ColorGreen,
	chroma.NameNamespace:  style.ColorCyan,
	chroma.NameClass:      style.ColorGreen,
	chroma.NameException:  style.ColorCyan,
	chroma.NameDecorator:  style.ColorBlack,
	chroma.NameVariable:   style.ColorRed,
	chroma.NameConstant:   style.ColorRed,
	chroma.NameAttribute:  style.ColorCyan,
	chroma.NameTag:        style.ColorBlue,
	chroma.LiteralString:  style.ColorYellow,
	chroma.LiteralNumber:  style.ColorBlue,

	chroma.GenericDeleted:    style.ColorRed,
	chroma.GenericInserted:   style.ColorGreen,
	chroma.GenericHeading:    style.ColorDefault,
	chroma.GenericSubheading: style.ColorMagenta,
	chroma.GenericPrompt:     style.ColorDefault,
	chroma.GenericError:      style.ColorRed,

	chroma.Error: style.ColorRed,
}

var defaultMapper = mustMapper(DefaultTable)

func mustMapper(table map[chroma.TokenType]style.Color) *Mapper {
	m, err := NewMapper(table)
	if err != nil {
		panic(err)
	}
	return m
}

// DefaultMapper returns the shared mapper built from DefaultTable.
func DefaultMapper() *Mapper {
	return defaultMapper
}
