package slide

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"termdeck/internal/document"
	"termdeck/internal/style"
)

// Heading is a level 1 banner, a level 2 underlined title or a bold
// level 3+ title.
type Heading struct {
	colors
	Level  int
	Text   string
	banner []string
}

func (h *Heading) Kind() Kind { return KindHeading }

func (h *Heading) Attr() style.Attr {
	if h.Level >= 3 {
		return style.AttrBold
	}
	return style.AttrNormal
}

func (h *Heading) Size() int {
	switch h.Level {
	case 1:
		return len(h.banner)
	case 2:
		return 2
	default:
		return 1
	}
}

func (h *Heading) Render() string {
	var text string
	switch h.Level {
	case 1:
		text = strings.Join(h.banner, "\n")
	case 2:
		text = h.Text + "\n" + strings.Repeat("-", ansi.StringWidth(h.Text))
	default:
		text = h.Text
	}
	return h.paint(text, h.Attr())
}

// List is a flattened bullet list, two spaces of indent per nesting level.
type List struct {
	colors
	Items []string
}

func flattenList(list *document.Node, level int, out []string) []string {
	for _, item := range list.Children {
		if item.Text != "" {
			out = append(out, strings.Repeat(" ", 2*level)+"• "+item.Text)
		}
		for _, nested := range item.Children {
			if nested.Kind == document.KindList {
				out = flattenList(nested, level+1, out)
			}
		}
	}
	return out
}

func (l *List) Kind() Kind { return KindList }

func (l *List) Size() int { return len(l.Items) }

func (l *List) Render() string {
	return l.paint(strings.Join(l.Items, "\n"), style.AttrNormal)
}

// Code is a highlighted code block drawn white on black inside a one cell
// frame.
type Code struct {
	colors
	Text     string
	Language string
	lines    []string
	width    int
}

func newCode(text, language, highlighted string) *Code {
	c := &Code{Text: text, Language: language}
	if highlighted != "" {
		c.lines = strings.Split(highlighted, "\n")
	}
	for _, l := range c.lines {
		c.width = max(c.width, ansi.StringWidth(l))
	}
	return c
}

func (c *Code) Kind() Kind { return KindCode }

// Size counts source lines only; the frame is added by the layout.
func (c *Code) Size() int { return lineCount(c.Text) }

// Width is the longest highlighted line plus the frame.
func (c *Code) Width() int { return c.width + 2 }

func (c *Code) Render() string {
	if len(c.lines) == 0 {
		return ""
	}
	frame := func(n int) string {
		return style.Render(strings.Repeat(" ", n), style.ColorWhite, style.ColorBlack, style.AttrNormal)
	}
	out := make([]string, 0, len(c.lines)+2)
	out = append(out, frame(c.width+2))
	for _, l := range c.lines {
		out = append(out, frame(1)+l+frame(c.width+1-ansi.StringWidth(l)))
	}
	out = append(out, frame(c.width+2))
	return strings.Join(out, "\n")
}

// Image refers to an image file drawn by the display's image renderer.
type Image struct {
	colors
	Path string
	Alt  string
	rows int
}

func (i *Image) Kind() Kind { return KindImage }

// Size is half the terminal height at classification time.
func (i *Image) Size() int { return i.rows }

func (i *Image) Render() string {
	label := i.Alt
	if label == "" {
		label = i.Path
	}
	return fmt.Sprintf("[%s]", label)
}

// RawMarkup is a raw HTML block. It is never drawn; its directive styles
// the slide.
type RawMarkup struct {
	colors
	Text      string
	Directive style.Directive
}

func (r *RawMarkup) Kind() Kind { return KindRawMarkup }

func (r *RawMarkup) Size() int { return 0 }

func (r *RawMarkup) Render() string { return "" }

// Paragraph concatenates its inline children.
type Paragraph struct {
	colors
	Children []Element
}

func (p *Paragraph) Kind() Kind { return KindParagraph }

func (p *Paragraph) SetColors(fg, bg style.Color) {
	p.colors.SetColors(fg, bg)
	for _, c := range p.Children {
		c.SetColors(fg, bg)
	}
}

func (p *Paragraph) Render() string {
	var b strings.Builder
	for _, c := range p.Children {
		b.WriteString(c.Render())
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *Paragraph) Size() int { return lineCount(p.Render()) }

// BlockQuote prefixes every line of its children with a quote bar.
type BlockQuote struct {
	colors
	Children []Block
}

const quoteMarker = "▌ "

func (q *BlockQuote) Kind() Kind { return KindBlockQuote }

func (q *BlockQuote) SetColors(fg, bg style.Color) {
	q.colors.SetColors(fg, bg)
	for _, c := range q.Children {
		c.SetColors(fg, bg)
	}
}

func (q *BlockQuote) Render() string {
	var lines []string
	marker := q.paint(quoteMarker, style.AttrNormal)
	for _, c := range q.Children {
		r := c.Render()
		if r == "" {
			continue
		}
		for _, l := range strings.Split(r, "\n") {
			lines = append(lines, marker+l)
		}
	}
	return strings.Join(lines, "\n")
}

func (q *BlockQuote) Size() int { return lineCount(q.Render()) }
