package reveal

import (
	"unicode/utf8"

	"termdeck/internal/style"
)

// Placed is a cell positioned on the display surface.
type Placed struct {
	Row  int
	Col  int
	Cell style.Cell
}

// Frame is the content of one display tick, offset by a one-cell border.
type Frame struct {
	Cells []Placed
}

// Layout selects how shown lines map to rows.
type Layout int

const (
	// Flow stacks rows in display order: input row, then output row.
	Flow Layout = iota
	// Fixed puts line i on row i+1 regardless of what earlier lines show.
	Fixed
)

// Frame renders the visible lines as positioned cells.
func (e *Engine) Frame(layout Layout) Frame {
	var f Frame
	row := 1
	for _, v := range e.Visible() {
		l := e.lines[v.Index]
		if layout == Fixed {
			row = v.Index + 1
		}
		if v.HasInput {
			f.Cells = append(f.Cells, inputCells(row, l, v)...)
			row++
		}
		if v.Output != "" {
			f.Cells = append(f.Cells, Placed{Row: row, Col: 1, Cell: style.Cell{
				Text:  v.Output,
				Color: l.Color,
				Attr:  l.Attr,
				Bg:    style.ColorDefault,
				Line:  v.Index,
			}})
			row++
		}
	}
	return f
}

func inputCells(row int, l Line, v Shown) []Placed {
	col := 1
	var cells []Placed
	if v.Prompt != "" {
		prompt := v.Prompt + " "
		if v.Spans == nil {
			// prompt and input share the line style
			return []Placed{{Row: row, Col: col, Cell: style.Cell{
				Text: prompt + v.Input, Color: l.Color, Attr: l.Attr, Bg: style.ColorDefault, Line: v.Index,
			}}}
		}
		cells = append(cells, Placed{Row: row, Col: col, Cell: style.Cell{
			Text: prompt, Color: style.ColorDefault, Bg: style.ColorDefault, Line: v.Index, Gutter: true,
		}})
		col += utf8.RuneCountInString(prompt)
	}
	if v.Spans == nil {
		if v.Input != "" {
			cells = append(cells, Placed{Row: row, Col: col, Cell: style.Cell{
				Text: v.Input, Color: l.Color, Attr: l.Attr, Bg: style.ColorDefault, Line: v.Index,
			}})
		}
		return cells
	}
	for _, c := range v.Spans {
		cells = append(cells, Placed{Row: row, Col: col, Cell: c})
		col += utf8.RuneCountInString(c.Text)
	}
	return cells
}

// Animation drives an Engine from a display loop: Tick is called once per
// frame and steps the engine at most once every Delay frames, starting on
// the first frame.
type Animation struct {
	engine *Engine
	delay  int
	frame  int
}

// NewAnimation wraps e. A delay below 1 is treated as 1.
func NewAnimation(e *Engine, delay int) *Animation {
	if delay < 1 {
		delay = 1
	}
	return &Animation{engine: e, delay: delay}
}

// Engine returns the wrapped engine.
func (a *Animation) Engine() *Engine { return a.engine }

// Delay returns the number of frames between steps.
func (a *Animation) Delay() int { return a.delay }

// Tick advances the frame counter and steps the engine when due. It
// reports whether the engine changed.
func (a *Animation) Tick() bool {
	due := a.frame%a.delay == 0
	a.frame++
	if !due {
		return false
	}
	return a.engine.Advance()
}

// Reset restarts both the engine and the frame counter.
func (a *Animation) Reset() {
	a.engine.Reset()
	a.frame = 0
}
