package slide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termdeck/internal/document"
	"termdeck/internal/reveal"
	"termdeck/internal/style"
)

const demoTranscript = `
speed: 42
lines:
  - prompt: "$"
    in: "echo hi there"
    out: "hi there"
    color: green
    bold: true
    underline: true
  - progress: true
  - prompt: "done"
  - {}
`

func TestTranscript(t *testing.T) {
	c := newTestClassifier(t)
	writeFile(t, c.Dir, "demo.yml", demoTranscript)

	tr := classify(t, c, &document.Node{Kind: document.KindTranscript, Dest: "demo.yml"}).(*Transcript)

	// progress line: 100 cols / 4 = 25 beats "echo hi there" (13 + 2 spaces)
	assert.Equal(t, 29, tr.Width())
	// 4 lines, one with input and output, plus frame
	assert.Equal(t, 7, tr.Size())
	assert.Equal(t, 1, tr.Delay())
	assert.Equal(t, reveal.Flow, tr.Layout())

	lines := tr.RevealLines()
	require.Len(t, lines, 3)
	assert.Equal(t, reveal.Line{Prompt: "$", Input: "echo hi there", Output: "hi there", Color: style.ColorGreen, Attr: style.AttrUnderline}, lines[0])
	assert.Equal(t, 17, len([]rune(lines[1].Input)))
	assert.Empty(t, lines[1].Prompt)
	assert.Equal(t, reveal.Line{Output: "done", Color: style.ColorDefault}, lines[2])

	assert.Equal(t, "$ echo hi there\nhi there\n█████████████████\ndone", tr.Render())
}

func TestTranscriptWidthWithoutProgress(t *testing.T) {
	c := newTestClassifier(t)
	writeFile(t, c.Dir, "t.yml", "lines:\n  - prompt: \">>>\"\n    in: \"1 + 1\"\n    out: \"2\"\n")

	tr := classify(t, c, &document.Node{Kind: document.KindTranscript, Dest: "t.yml"}).(*Transcript)
	assert.Equal(t, len("1 + 1")+2+4, tr.Width())
	assert.Equal(t, 1+1+2, tr.Size())
	assert.Equal(t, 6, tr.Delay())
}

func TestTranscriptErrors(t *testing.T) {
	c := newTestClassifier(t)

	_, err := c.Classify(&document.Node{Kind: document.KindTranscript, Dest: "missing.yml"}, style.ColorDefault, style.ColorDefault)
	assert.ErrorIs(t, err, ErrResource)

	writeFile(t, c.Dir, "bad.yml", "lines:\n  - in: x\n    color: mauve\n")
	_, err = c.Classify(&document.Node{Kind: document.KindTranscript, Dest: "bad.yml"}, style.ColorDefault, style.ColorDefault)
	assert.ErrorIs(t, err, style.ErrUnsupportedColor)
}

func TestSourceFile(t *testing.T) {
	c := newTestClassifier(t)
	c.LineNumbers = true
	writeFile(t, c.Dir, "main.py", "def f():\n\treturn 1\n\nprint(f())\n")
	writeFile(t, c.Dir, "src.yml", "type: sourceFile\nfile: main.py\nlanguage: python\nspeed: 10\n")

	sf := classify(t, c, &document.Node{Kind: document.KindTranscript, Dest: "src.yml"}).(*SourceFile)
	assert.Equal(t, 4+2, sf.Size())
	assert.Equal(t, 1, sf.Delay())
	assert.Equal(t, reveal.Fixed, sf.Layout())
	// "0002: " + "    return 1"
	assert.Equal(t, len("0002:")+1+len("    return 1")+4, sf.Width())

	lines := sf.RevealLines()
	require.Len(t, lines, 4)
	assert.Equal(t, "0001:", lines[0].Prompt)
	assert.Equal(t, "def f():", lines[0].Input)
	assert.Equal(t, "    return 1", lines[1].Input)
	assert.Equal(t, reveal.Line{Output: "0003:", Color: style.ColorDefault}, lines[2])
	assert.NotEmpty(t, lines[3].Spans)

	assert.Equal(t, "0001: def f():\n0002:     return 1\n0003:\n0004: print(f())", sf.Render())
}

func TestSourceFileMissing(t *testing.T) {
	c := newTestClassifier(t)
	writeFile(t, c.Dir, "src.yml", "type: sourceFile\nfile: gone.go\n")
	_, err := c.Classify(&document.Node{Kind: document.KindTranscript, Dest: "src.yml"}, style.ColorDefault, style.ColorDefault)
	assert.ErrorIs(t, err, ErrResource)
}
