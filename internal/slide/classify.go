package slide

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"termdeck/internal/document"
	"termdeck/internal/highlight"
	"termdeck/internal/style"
	"termdeck/internal/transcript"
)

var (
	// ErrResource marks a referenced file that does not exist or cannot be read.
	ErrResource = errors.New("missing resource")
	// ErrContent marks a node that cannot be turned into an element.
	ErrContent = errors.New("unsupported content")
)

// Terminal reports the display size in cells.
type Terminal interface {
	Size() (cols, rows int)
}

// FixedTerminal is a Terminal of constant size.
type FixedTerminal struct{ Cols, Rows int }

func (t FixedTerminal) Size() (int, int) { return t.Cols, t.Rows }

// Banner renders large text for level 1 headings.
type Banner interface {
	Lines(text string) []string
}

// PlainBanner renders the text as a single line.
type PlainBanner struct{}

func (PlainBanner) Lines(text string) []string { return []string{text} }

// Classifier turns document nodes into elements. Relative paths resolve
// against Dir.
type Classifier struct {
	Dir         string
	Terminal    Terminal
	Banner      Banner
	Palette     *style.Palette
	Mapper      *highlight.Mapper
	LineNumbers bool
	Log         *slog.Logger
}

// NewClassifier returns a classifier with the default palette and token
// colors, an 80x24 terminal and a plain banner.
func NewClassifier(dir string) *Classifier {
	return &Classifier{
		Dir:      dir,
		Terminal: FixedTerminal{Cols: 80, Rows: 24},
		Banner:   PlainBanner{},
		Palette:  style.DefaultPalette(),
		Mapper:   highlight.DefaultMapper(),
		Log:      slog.Default(),
	}
}

// Classify converts n into an element. fg and bg are the ambient colors
// given to the element and, for containers, to its children.
func (c *Classifier) Classify(n *document.Node, fg, bg style.Color) (Element, error) {
	base := colors{fg: fg, bg: bg}

	switch n.Kind {
	case document.KindHeading:
		h := &Heading{colors: base, Level: n.Level, Text: n.Text}
		if h.Level == 1 {
			h.banner = c.Banner.Lines(n.Text)
		}
		return h, nil

	case document.KindList:
		return &List{colors: base, Items: flattenList(n, 0, nil)}, nil

	case document.KindCode:
		tokens, err := highlight.Tokenise(n.Info, n.Text)
		if err != nil {
			return nil, errors.Wrapf(ErrContent, "code block: %v", err)
		}
		code := newCode(n.Text, n.Info, c.Mapper.Colorize(tokens, style.ColorWhite, style.ColorBlack))
		code.colors = base
		return code, nil

	case document.KindImage:
		path := c.resolve(n.Dest)
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(ErrResource, "image %s: %v", path, err)
		}
		_, rows := c.Terminal.Size()
		return &Image{colors: base, Path: path, Alt: n.Alt, rows: rows / 2}, nil

	case document.KindTranscript:
		return c.live(n.Dest, base)

	case document.KindRawMarkup:
		d, ignored := style.ParseDirective(n.Text)
		if len(ignored) > 0 {
			c.Log.Warn("ignoring unknown style keys", "keys", ignored)
		}
		return &RawMarkup{colors: base, Text: n.Text, Directive: d}, nil

	case document.KindText:
		return &Text{colors: base, Text: n.Text}, nil

	case document.KindCodespan:
		return &Codespan{colors: base, Text: n.Text}, nil

	case document.KindStrong:
		return &Strong{colors: base, Text: n.PlainText()}, nil

	case document.KindEmphasis:
		return &Emphasis{colors: base, Text: n.PlainText()}, nil

	case document.KindLink:
		return &Link{colors: base, Text: n.PlainText(), URL: n.Dest}, nil

	case document.KindParagraph:
		p := &Paragraph{colors: base}
		for _, child := range n.Children {
			var (
				e   Element
				err error
			)
			if child.Kind == document.KindRawMarkup {
				e = &InlineMarkup{colors: base, Text: child.Text}
			} else {
				e, err = c.Classify(child, fg, bg)
			}
			if err != nil {
				return nil, err
			}
			p.Children = append(p.Children, e)
		}
		return p, nil

	case document.KindBlockQuote:
		q := &BlockQuote{colors: base}
		for _, child := range n.Children {
			e, err := c.Classify(child, fg, bg)
			if err != nil {
				return nil, err
			}
			b, ok := e.(Block)
			if !ok {
				return nil, errors.Wrapf(ErrContent, "%s inside block quote", e.Kind())
			}
			q.Children = append(q.Children, b)
		}
		return q, nil

	case document.KindListItem, document.KindThematicBreak:
		return nil, errors.Wrapf(ErrContent, "%s outside its container", n.Kind)

	default:
		return nil, errors.Wrapf(document.ErrUnknownKind, "%s", n.Kind)
	}
}

func (c *Classifier) live(ref string, base colors) (Element, error) {
	path := c.resolve(ref)
	f, err := transcript.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrapf(ErrResource, "transcript %s", path)
	}
	if err != nil {
		return nil, err
	}

	speed, clamped := transcript.ClampSpeed(f.RawSpeed())
	if clamped {
		c.Log.Warn("transcript speed out of range, clamping",
			"path", path, "speed", f.RawSpeed(), "clamped", speed)
	}
	delay := transcript.Delay(speed)

	if f.IsSourceFile() {
		src := c.resolve(f.File)
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, errors.Wrapf(ErrResource, "source file %s: %v", src, err)
		}
		sf, err := newSourceFile(src, f.Language, string(data), delay,
			highlight.Formatter{Mapper: c.Mapper, LineNumbers: c.LineNumbers})
		if err != nil {
			return nil, errors.Wrapf(ErrContent, "source file %s: %v", src, err)
		}
		sf.colors = base
		return sf, nil
	}

	cols, _ := c.Terminal.Size()
	t := &Transcript{colors: base, File: f, delay: delay, width: transcriptWidth(f, cols)}
	t.lines, err = transcriptLines(f, t.width, c.Palette)
	if err != nil {
		return nil, errors.Wrapf(err, "transcript %s", path)
	}
	return t, nil
}

func (c *Classifier) resolve(ref string) string {
	if ref == "~" || strings.HasPrefix(ref, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			ref = filepath.Join(home, strings.TrimPrefix(ref, "~"))
		}
	}
	if filepath.IsAbs(ref) || c.Dir == "" {
		return ref
	}
	return filepath.Join(c.Dir, ref)
}
