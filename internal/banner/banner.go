// Package banner renders level 1 headings as large ASCII-art text.
package banner

import (
	"strings"

	"github.com/common-nighthawk/go-figure"
)

// DefaultFont is the figlet font used when none is set.
const DefaultFont = "standard"

// Figlet renders text with a figlet font.
type Figlet struct {
	Font string
}

// Lines returns the banner rows with trailing blank rows removed.
func (f Figlet) Lines(text string) []string {
	font := f.Font
	if font == "" {
		font = DefaultFont
	}
	rows := figure.NewFigure(text, font, false).Slicify()
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	for i, r := range rows {
		rows[i] = strings.TrimRight(r, " ")
	}
	if len(rows) == 0 {
		return []string{text}
	}
	return rows
}
