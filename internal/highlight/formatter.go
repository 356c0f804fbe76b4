package highlight

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"termdeck/internal/style"
)

// Formatter turns a token stream into character cells for a grid surface.
// The zero value uses no line numbers and must be given a Mapper.
type Formatter struct {
	Mapper      *Mapper
	LineNumbers bool
}

// Format splits every token on line breaks and emits one cell per non-empty
// fragment. With LineNumbers set, each line that is emitted starts with a
// gutter cell such as "0007: ". A final line with no content is omitted.
func (f Formatter) Format(tokens []Token) []style.Cell {
	var (
		cells  []style.Cell
		line   int
		col    int
		gutter bool
	)
	startLine := func() {
		if gutter {
			return
		}
		gutter = true
		if !f.LineNumbers {
			return
		}
		cells = append(cells, style.Cell{
			Text:   fmt.Sprintf("%04d: ", line+1),
			Color:  style.ColorDefault,
			Bg:     style.ColorBlack,
			Line:   line,
			Gutter: true,
		})
	}

	for _, tok := range tokens {
		color := f.Mapper.Color(tok.Type)
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				startLine()
				line++
				col = 0
				gutter = false
			}
			if part == "" {
				continue
			}
			startLine()
			cells = append(cells, style.Cell{
				Text:  part,
				Color: color,
				Bg:    style.ColorBlack,
				Line:  line,
				Col:   col,
			})
			col += utf8.RuneCountInString(part)
		}
	}
	return cells
}

// SplitLines groups cells by their Line. The result has one entry per line
// up to the last line that has a cell, including empty lines in between.
func SplitLines(cells []style.Cell) [][]style.Cell {
	if len(cells) == 0 {
		return nil
	}
	lines := make([][]style.Cell, cells[len(cells)-1].Line+1)
	for _, c := range cells {
		lines[c.Line] = append(lines[c.Line], c)
	}
	return lines
}

// MarshalCells encodes cells as JSON for consumers outside this process.
func MarshalCells(cells []style.Cell) ([]byte, error) {
	if cells == nil {
		cells = []style.Cell{}
	}
	return json.MarshalIndent(cells, "", "  ")
}
