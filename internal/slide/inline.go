package slide

import (
	"fmt"

	"termdeck/internal/style"
)

// Inline spans have no size; they only exist inside paragraphs.

type Text struct {
	colors
	Text string
}

func (t *Text) Kind() Kind     { return KindText }
func (t *Text) Render() string { return t.paint(t.Text, style.AttrNormal) }

type Codespan struct {
	colors
	Text string
}

func (c *Codespan) Kind() Kind       { return KindCodespan }
func (c *Codespan) Attr() style.Attr { return style.AttrReverse }
func (c *Codespan) Render() string   { return c.paint(c.Text, c.Attr()) }

type Strong struct {
	colors
	Text string
}

func (s *Strong) Kind() Kind       { return KindStrong }
func (s *Strong) Attr() style.Attr { return style.AttrBold }
func (s *Strong) Render() string   { return s.paint(s.Text, s.Attr()) }

type Emphasis struct {
	colors
	Text string
}

func (e *Emphasis) Kind() Kind     { return KindEmphasis }
func (e *Emphasis) Render() string { return e.paint(e.Text, style.AttrNormal) }

type Link struct {
	colors
	Text string
	URL  string
}

func (l *Link) Kind() Kind { return KindLink }
func (l *Link) Render() string {
	return l.paint(fmt.Sprintf("%s (%s)", l.Text, l.URL), style.AttrNormal)
}

// InlineMarkup is raw inline HTML; it renders as nothing.
type InlineMarkup struct {
	colors
	Text string
}

func (m *InlineMarkup) Kind() Kind     { return KindRawMarkup }
func (m *InlineMarkup) Render() string { return "" }
