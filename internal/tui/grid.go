package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"termdeck/internal/style"
)

// Cell is one character position of the background layer.
type Cell struct {
	Ch   rune
	Fg   style.Color
	Bg   style.Color
	Attr style.Attr
}

// Grid is a fixed-size character surface that effects draw into.
type Grid struct {
	W, H  int
	cells []Cell
	blank Cell
}

// NewGrid returns a w x h grid cleared to spaces on bg.
func NewGrid(w, h int, fg, bg style.Color) *Grid {
	w, h = max(w, 0), max(h, 0)
	g := &Grid{W: w, H: h, cells: make([]Cell, w*h), blank: Cell{Ch: ' ', Fg: fg, Bg: bg}}
	g.Clear()
	return g
}

// Clear resets every cell to the blank cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.blank
	}
}

// Set writes c at x, y. Positions outside the grid are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	g.cells[y*g.W+x] = c
}

// At returns the cell at x, y.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return g.blank
	}
	return g.cells[y*g.W+x]
}

// Rows renders each grid row as a styled string, one style run at a time.
func (g *Grid) Rows() []string {
	rows := make([]string, g.H)
	var run strings.Builder
	for y := 0; y < g.H; y++ {
		var b strings.Builder
		start := g.At(0, y)
		run.Reset()
		for x := 0; x < g.W; x++ {
			c := g.At(x, y)
			if c.Fg != start.Fg || c.Bg != start.Bg || c.Attr != start.Attr {
				b.WriteString(style.Lipgloss(start.Fg, start.Bg, start.Attr).Render(run.String()))
				run.Reset()
				start = c
			}
			run.WriteRune(c.Ch)
		}
		if run.Len() > 0 {
			b.WriteString(style.Lipgloss(start.Fg, start.Bg, start.Attr).Render(run.String()))
		}
		rows[y] = b.String()
	}
	return rows
}

// overlay writes line over row starting at visible column col. Both may
// carry ANSI styling.
func overlay(row, line string, col int) string {
	w := ansi.StringWidth(line)
	if w == 0 {
		return row
	}
	left := ansi.Truncate(row, col, "")
	if pad := col - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(row, col+w, "")
	return left + line + right
}
