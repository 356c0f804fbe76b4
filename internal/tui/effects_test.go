package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termdeck/internal/style"
)

func TestEveryPaletteEffectHasRenderer(t *testing.T) {
	assert.Equal(t, style.DefaultPalette().Effects(), EffectNames())
	for _, name := range style.DefaultPalette().Effects() {
		_, err := NewEffect(name, 40, 12, 1)
		assert.NoError(t, err, name)
	}
}

func TestUnknownEffect(t *testing.T) {
	_, err := NewEffect("confetti", 10, 10, 1)
	assert.ErrorIs(t, err, ErrNoEffect)
}

func runEffect(t *testing.T, name string, w, h, frames int, seed uint64) []string {
	t.Helper()
	e, err := NewEffect(name, w, h, seed)
	require.NoError(t, err)
	g := NewGrid(w, h, style.ColorWhite, style.ColorBlack)
	for f := 0; f < frames; f++ {
		g.Clear()
		e.Draw(g, f)
	}
	return g.Rows()
}

func TestEffectsAreRepeatable(t *testing.T) {
	for _, name := range EffectNames() {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, runEffect(t, name, 30, 10, 40, 7), runEffect(t, name, 30, 10, 40, 7))
		})
	}
}

func TestEffectsStayInBounds(t *testing.T) {
	for _, name := range EffectNames() {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() { runEffect(t, name, 0, 0, 5, 1) })
			assert.NotPanics(t, func() { runEffect(t, name, 3, 2, 200, 2) })
		})
	}
}

func TestStarsDrawSomething(t *testing.T) {
	e, err := NewEffect("stars", 40, 10, 3)
	require.NoError(t, err)
	g := NewGrid(40, 10, style.ColorWhite, style.ColorBlack)
	e.Draw(g, 0)

	drawn := 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y).Ch != ' ' {
				drawn++
			}
		}
	}
	assert.Positive(t, drawn)
}
