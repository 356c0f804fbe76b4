package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termdeck/internal/document"
	"termdeck/internal/slide"
)

func buildSlides(t *testing.T, dir, src string) []*slide.Slide {
	t.Helper()
	c := slide.NewClassifier(dir)
	c.Terminal = slide.FixedTerminal{Cols: 100, Rows: 40}
	nodes, err := document.Parse([]byte(src))
	require.NoError(t, err)
	slides, err := slide.NewBuilder(c).Build(nodes)
	require.NoError(t, err)
	return slides
}

func TestLayoutCentersLoneBlock(t *testing.T) {
	s := buildSlides(t, t.TempDir(), "### Title\n")[0]
	got := Layout(s, []int{5}, 100, 40)
	assert.Equal(t, []Placement{{Index: 0, Row: 19, Col: 47}}, got)
}

func TestLayoutStacksBlocks(t *testing.T) {
	s := buildSlides(t, t.TempDir(), "## A\n\ntext\n\n```\nx\ny\n```\n\nend\n")[0]
	require.Len(t, s.Elements, 4)

	got := Layout(s, []int{1, 4, 3, 3}, 100, 40)
	assert.Equal(t, []Placement{
		{Index: 0, Row: 8, Col: 49},
		{Index: 1, Row: 12, Col: 48},
		{Index: 2, Row: 15, Col: 48},
		{Index: 3, Row: 21, Col: 48},
	}, got)
}

func TestLayoutLoneCodeIsNotCentered(t *testing.T) {
	s := buildSlides(t, t.TempDir(), "```\nx\n```\n")[0]
	got := Layout(s, []int{3}, 100, 40)
	assert.Equal(t, 8, got[0].Row)
}

func TestLayoutClampsToArea(t *testing.T) {
	s := buildSlides(t, t.TempDir(), "### Title\n")[0]
	got := Layout(s, []int{200}, 100, 1)
	assert.Equal(t, []Placement{{Index: 0, Row: 0, Col: 0}}, got)
}
