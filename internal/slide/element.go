// Package slide classifies document nodes into renderable elements and
// groups them into slides.
package slide

import (
	"fmt"
	"strings"

	"termdeck/internal/reveal"
	"termdeck/internal/style"
)

// Kind tags an element variant.
type Kind int

const (
	KindHeading Kind = iota
	KindList
	KindCode
	KindTranscript
	KindSourceFile
	KindImage
	KindRawMarkup
	KindText
	KindCodespan
	KindStrong
	KindEmphasis
	KindLink
	KindParagraph
	KindBlockQuote
)

var kindNames = [...]string{
	KindHeading:    "heading",
	KindList:       "list",
	KindCode:       "code",
	KindTranscript: "transcript",
	KindSourceFile: "source_file",
	KindImage:      "image",
	KindRawMarkup:  "raw_markup",
	KindText:       "text",
	KindCodespan:   "codespan",
	KindStrong:     "strong",
	KindEmphasis:   "emphasis",
	KindLink:       "link",
	KindParagraph:  "paragraph",
	KindBlockQuote: "block_quote",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Element is anything produced by classification. Only the colors change
// after construction, and only through the slide's color pass.
type Element interface {
	Kind() Kind
	Attr() style.Attr
	Colors() (fg, bg style.Color)
	SetColors(fg, bg style.Color)
	// Render returns the element's text, styled for a terminal.
	Render() string
}

// Block is an element that takes part in vertical layout.
type Block interface {
	Element
	// Size is the rendered height in rows.
	Size() int
}

// Wide is a block with a fixed column footprint.
type Wide interface {
	Block
	Width() int
}

// Live is a block revealed over time by a reveal engine.
type Live interface {
	Wide
	// Delay is the number of display frames between reveal steps.
	Delay() int
	Layout() reveal.Layout
	RevealLines() []reveal.Line
}

type colors struct {
	fg, bg style.Color
}

func (c *colors) Colors() (style.Color, style.Color) { return c.fg, c.bg }

func (c *colors) SetColors(fg, bg style.Color) { c.fg, c.bg = fg, bg }

func (c *colors) Attr() style.Attr { return style.AttrNormal }

func (c *colors) paint(text string, attr style.Attr) string {
	return style.Render(text, c.fg, c.bg, attr)
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
