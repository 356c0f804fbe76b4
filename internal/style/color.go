// Package style holds the color and attribute vocabulary shared by every
// renderable element, the per-slide style directive and its validation.
package style

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is one of the eight basic terminal colors, or ColorDefault.
type Color int8

const (
	ColorDefault Color = iota - 1
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var colorNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func (c Color) String() string {
	if c < ColorBlack || c > ColorWhite {
		return "default"
	}
	return colorNames[c]
}

// Attr is a text attribute. Only one applies at a time.
type Attr uint8

const (
	AttrNormal Attr = iota
	AttrBold
	AttrReverse
	AttrUnderline
)

func (a Attr) String() string {
	switch a {
	case AttrBold:
		return "bold"
	case AttrReverse:
		return "reverse"
	case AttrUnderline:
		return "underline"
	default:
		return "normal"
	}
}

// Cell is one colored run of text on a character grid. Line and Col locate
// the run inside the buffer it was produced from; Gutter marks line-number
// prefixes.
type Cell struct {
	Text   string `json:"text"`
	Color  Color  `json:"color"`
	Attr   Attr   `json:"attr"`
	Bg     Color  `json:"bg"`
	Line   int    `json:"line"`
	Col    int    `json:"col"`
	Gutter bool   `json:"gutter,omitempty"`
}

// Lipgloss converts a color pair and attribute into a lipgloss style.
// ColorDefault leaves the corresponding color unset.
func Lipgloss(fg, bg Color, attr Attr) lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg != ColorDefault {
		s = s.Foreground(lipgloss.Color(strconv.Itoa(int(fg))))
	}
	if bg != ColorDefault {
		s = s.Background(lipgloss.Color(strconv.Itoa(int(bg))))
	}
	switch attr {
	case AttrBold:
		s = s.Bold(true)
	case AttrReverse:
		s = s.Reverse(true)
	case AttrUnderline:
		s = s.Underline(true)
	}
	return s
}

// Render styles text line by line so that lines keep their own widths.
// Empty lines stay empty.
func Render(text string, fg, bg Color, attr Attr) string {
	if text == "" {
		return ""
	}
	st := Lipgloss(fg, bg, attr)
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = st.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}
