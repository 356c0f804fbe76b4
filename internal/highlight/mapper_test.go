package highlight

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termdeck/internal/style"
)

func TestParent(t *testing.T) {
	tests := []struct {
		in, want chroma.TokenType
	}{
		{chroma.NameFunction, chroma.Name},
		{chroma.Name, Root},
		{chroma.LiteralStringDouble, chroma.LiteralString},
		{chroma.LiteralString, chroma.Literal},
		{chroma.Literal, Root},
		{chroma.CommentPreprocFile, chroma.CommentPreproc},
		{chroma.Error, Root},
		{Root, Root},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Parent(tt.in), "Parent(%s)", tt.in)
	}
}

func TestNewMapperRequiresRoot(t *testing.T) {
	_, err := NewMapper(map[chroma.TokenType]style.Color{chroma.Keyword: style.ColorBlue})
	assert.ErrorIs(t, err, ErrNoRoot)
}

func TestMapperFallback(t *testing.T) {
	m := DefaultMapper()

	assert.Equal(t, style.ColorGreen, m.Color(chroma.NameFunction))
	// KeywordDeclaration has no entry, Keyword does.
	assert.Equal(t, style.ColorBlue, m.Color(chroma.KeywordDeclaration))
	// LiteralStringDouble -> LiteralString.
	assert.Equal(t, style.ColorYellow, m.Color(chroma.LiteralStringDouble))
	// Punctuation has no entry anywhere up its chain.
	assert.Equal(t, style.ColorDefault, m.Color(chroma.Punctuation))
	assert.Equal(t, style.ColorRed, m.Color(chroma.Error))
}

func TestMapperTerminatesForEveryCategory(t *testing.T) {
	m, err := NewMapper(map[chroma.TokenType]style.Color{Root: style.ColorWhite})
	require.NoError(t, err)

	for tt := chroma.TokenType(-20); tt < 9000; tt++ {
		hops := 0
		for cur := tt; cur != Root; cur = Parent(cur) {
			hops++
			require.LessOrEqual(t, hops, 3, "too many hops from %d", tt)
		}
		assert.Equal(t, style.ColorWhite, m.Color(tt))
	}
}

func TestMapperCopiesTable(t *testing.T) {
	table := map[chroma.TokenType]style.Color{Root: style.ColorWhite}
	m, err := NewMapper(table)
	require.NoError(t, err)

	table[chroma.Keyword] = style.ColorRed
	assert.Equal(t, style.ColorWhite, m.Color(chroma.Keyword))
}
