package slide

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"termdeck/internal/highlight"
	"termdeck/internal/reveal"
	"termdeck/internal/style"
	"termdeck/internal/transcript"
)

// Transcript is a simulated terminal session typed out line by line.
type Transcript struct {
	colors
	File  *transcript.File
	delay int
	width int
	lines []reveal.Line
}

// transcriptWidth is the widest of every prompt, every input and output
// (counting spaces twice) and, for progress lines, a quarter of the
// terminal, plus a two cell frame on each side.
func transcriptWidth(f *transcript.File, termCols int) int {
	width := 0
	for _, l := range f.Lines {
		if l.Progress {
			width = max(width, termCols/4)
		}
		width = max(width,
			runewidth.StringWidth(l.Prompt),
			runewidth.StringWidth(l.In)+strings.Count(l.In, " "),
			runewidth.StringWidth(l.Out)+strings.Count(l.Out, " "),
		)
	}
	return width + 4
}

// transcriptLines normalizes file lines into reveal lines: progress lines
// become a bar of progressChar, prompt-only lines print at once, empty
// lines are dropped.
func transcriptLines(f *transcript.File, width int, palette *style.Palette) ([]reveal.Line, error) {
	var lines []reveal.Line
	for _, l := range f.Lines {
		if l.Progress {
			ch := l.ProgressChar
			if ch == "" {
				ch = transcript.DefaultProgressChar
			}
			lines = append(lines, reveal.Line{
				Input: strings.Repeat(ch, int(0.6*float64(width))),
				Color: style.ColorDefault,
			})
			continue
		}
		if l.Prompt == "" && l.In == "" && l.Out == "" {
			continue
		}

		rl := reveal.Line{Prompt: l.Prompt, Input: l.In, Output: l.Out, Color: style.ColorDefault}
		if l.In == "" && l.Out == "" {
			rl.Prompt, rl.Output = "", l.Prompt
		}
		if l.Color != "" {
			c, ok := palette.Color(l.Color)
			if !ok {
				return nil, &style.ConfigError{Field: "color", Value: l.Color, Err: style.ErrUnsupportedColor}
			}
			rl.Color = c
		}
		switch {
		case l.Underline:
			rl.Attr = style.AttrUnderline
		case l.Bold:
			rl.Attr = style.AttrBold
		}
		lines = append(lines, rl)
	}
	return lines, nil
}

func (t *Transcript) Kind() Kind { return KindTranscript }

func (t *Transcript) Delay() int { return t.delay }

func (t *Transcript) Width() int { return t.width }

// Size counts every file line, one extra row for lines showing both input
// and output, and the frame.
func (t *Transcript) Size() int {
	rows := len(t.File.Lines)
	for _, l := range t.File.Lines {
		if l.In != "" && l.Out != "" {
			rows++
		}
	}
	return rows + 2
}

func (t *Transcript) Layout() reveal.Layout { return reveal.Flow }

func (t *Transcript) RevealLines() []reveal.Line {
	return append([]reveal.Line(nil), t.lines...)
}

// Render returns the fully revealed session.
func (t *Transcript) Render() string {
	return renderComplete(t.lines, t.Layout())
}

// SourceFile is a source file typed out with syntax colors.
type SourceFile struct {
	colors
	Path     string
	Language string
	delay    int
	width    int
	lines    []reveal.Line
}

func newSourceFile(path, language, source string, delay int, f highlight.Formatter) (*SourceFile, error) {
	source = strings.ReplaceAll(source, "\t", "    ")
	tokens, err := highlight.Tokenise(language, source)
	if err != nil {
		return nil, err
	}
	sf := &SourceFile{Path: path, Language: language, delay: delay}
	for _, cells := range highlight.SplitLines(f.Format(tokens)) {
		var rl reveal.Line
		rl.Color = style.ColorDefault
		for _, c := range cells {
			if c.Gutter {
				rl.Prompt = strings.TrimSuffix(c.Text, " ")
				continue
			}
			rl.Input += c.Text
			rl.Spans = append(rl.Spans, c)
		}
		if rl.Input == "" {
			rl.Prompt, rl.Output = "", rl.Prompt
		}
		w := runewidth.StringWidth(rl.Input)
		if rl.Prompt != "" {
			w += runewidth.StringWidth(rl.Prompt) + 1
		}
		sf.width = max(sf.width, w)
		sf.lines = append(sf.lines, rl)
	}
	sf.width += 4
	return sf, nil
}

func (s *SourceFile) Kind() Kind { return KindSourceFile }

func (s *SourceFile) Delay() int { return s.delay }

func (s *SourceFile) Width() int { return s.width }

func (s *SourceFile) Size() int { return len(s.lines) + 2 }

func (s *SourceFile) Layout() reveal.Layout { return reveal.Fixed }

func (s *SourceFile) RevealLines() []reveal.Line {
	return append([]reveal.Line(nil), s.lines...)
}

func (s *SourceFile) Render() string {
	return renderComplete(s.lines, s.Layout())
}

// renderComplete draws the final frame of lines as plain rows.
func renderComplete(lines []reveal.Line, layout reveal.Layout) string {
	e := reveal.New(lines)
	for e.Advance() {
	}
	return FrameText(e.Frame(layout))
}

// FrameText flattens a frame into text rows, dropping the border offset.
func FrameText(f reveal.Frame) string {
	var rows []string
	for _, p := range f.Cells {
		for len(rows) < p.Row {
			rows = append(rows, "")
		}
		rows[p.Row-1] += p.Cell.Text
	}
	return strings.Join(rows, "\n")
}
