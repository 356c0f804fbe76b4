package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"termdeck/internal/reveal"
	"termdeck/internal/slide"
	"termdeck/internal/style"
)

// Placement is a block's position on the slide area.
type Placement struct {
	Index    int
	Row, Col int
}

// Layout positions the blocks of s on a w x h area. widths holds the
// visible width of each block as drawn.
//
// A lone block on a slide with no code, image or live reveal is centered
// vertically. Otherwise blocks stack from 20% of the height, each taking
// its size plus a gap of 4 rows after code and live blocks and 2 after
// everything else. Every block is centered horizontally.
func Layout(s *slide.Slide, widths []int, w, h int) []Placement {
	f := s.Flags
	row := h / 5
	if len(s.Elements) == 1 && !f.HasCode && !f.HasImage && !f.HasLiveReveal {
		row = h/2 - s.Elements[0].Size()
	}
	row = max(row, 0)

	out := make([]Placement, 0, len(s.Elements))
	for i, e := range s.Elements {
		out = append(out, Placement{Index: i, Row: row, Col: max((w-widths[i])/2, 0)})
		pad := 2
		switch e.(type) {
		case *slide.Code, slide.Live:
			pad = 4
		}
		row += e.Size() + pad
	}
	return out
}

// blockWidth is the width the layout centers on: the declared width of
// wide blocks, otherwise the widest drawn line.
func blockWidth(b slide.Block, lines []string) int {
	if w, ok := b.(slide.Wide); ok {
		return w.Width()
	}
	width := 0
	for _, l := range lines {
		width = max(width, ansi.StringWidth(l))
	}
	return width
}

// liveLines draws the current reveal frame of lb inside a white on black
// box of the block's width and size.
func liveLines(lb *slide.LiveBlock) []string {
	w, h := lb.Element.Width(), lb.Element.Size()
	box := NewGrid(w, h, style.ColorWhite, style.ColorBlack)
	rows := box.Rows()

	byRow := map[int][]reveal.Placed{}
	for _, p := range lb.Animation.Engine().Frame(lb.Element.Layout()).Cells {
		byRow[p.Row] = append(byRow[p.Row], p)
	}
	for r, cells := range byRow {
		if r < 0 || r >= h {
			continue
		}
		sort.SliceStable(cells, func(i, j int) bool { return cells[i].Col < cells[j].Col })
		var b strings.Builder
		col := 1
		for _, p := range cells {
			if p.Col > col {
				b.WriteString(strings.Repeat(" ", p.Col-col))
				col = p.Col
			}
			fg, bg := p.Cell.Color, p.Cell.Bg
			if fg == style.ColorDefault {
				fg = style.ColorWhite
			}
			if bg == style.ColorDefault {
				bg = style.ColorBlack
			}
			b.WriteString(style.Lipgloss(fg, bg, p.Cell.Attr).Render(p.Cell.Text))
			col += ansi.StringWidth(p.Cell.Text)
		}
		line := ansi.Truncate(b.String(), max(w-2, 0), "")
		rows[r] = overlay(rows[r], line, 2)
		rows[r] = ansi.Truncate(rows[r], w, "")
	}
	return rows
}
