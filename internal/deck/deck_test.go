package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termdeck/internal/slide"
	"termdeck/internal/style"
)

func write(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "demo.yml", "lines:\n  - prompt: $\n    in: ls\n    out: a b\n")
	path := write(t, dir, "talk.md", `## Welcome

---

<!-- fg=yellow bg=blue -->

- one
- two

---

![codio](demo.yml)
`)

	d, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Welcome", d.Title)
	assert.Equal(t, dir, d.Dir)
	require.Len(t, d.Slides, 3)

	assert.Equal(t, style.ColorYellow, d.Slides[1].Foreground)
	assert.Equal(t, style.ColorBlue, d.Slides[1].Background)
	assert.True(t, d.Slides[2].Flags.HasLiveReveal)
	assert.Len(t, d.Slides[2].Live(), 1)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "02-second.md", "second\n")
	write(t, dir, "01-first.md", "# first\n")
	write(t, dir, "_notes.md", "not a slide\n")
	write(t, dir, TitleFile, "  My Talk \n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "img.md"), 0o755))

	d, err := Load(dir, Options{Banner: slide.PlainBanner{}})
	require.NoError(t, err)
	assert.Equal(t, "My Talk", d.Title)
	assert.Equal(t, dir, d.Dir)
	require.Len(t, d.Slides, 2)
	assert.Equal(t, slide.KindHeading, d.Slides[0].Elements[0].Kind())
	assert.Equal(t, slide.KindParagraph, d.Slides[1].Elements[0].Kind())
	assert.Equal(t, "# first\n\n---\n\nsecond\n", d.Source)
}

func TestLoadTitleFallsBackToFileName(t *testing.T) {
	path := write(t, t.TempDir(), "intro.md", "just text\n")
	d, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, "intro", d.Title)
}

func TestLoadColors(t *testing.T) {
	path := write(t, t.TempDir(), "talk.md", "hello\n")

	d, err := Load(path, Options{Foreground: "green", Background: "black"})
	require.NoError(t, err)
	assert.Equal(t, style.ColorGreen, d.Slides[0].Foreground)
	assert.Equal(t, style.ColorBlack, d.Slides[0].Background)

	_, err = Load(path, Options{Background: "mauve"})
	assert.ErrorIs(t, err, style.ErrUnsupportedColor)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.md"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := write(t, dir, "bad.md", "![pic](nope.png)\n")
	_, err = Load(path, Options{})
	assert.ErrorIs(t, err, slide.ErrResource)

	path = write(t, dir, "style.md", "<!-- effect=stars -->\n\n```\ncode\n```\n")
	_, err = Load(path, Options{})
	assert.ErrorIs(t, err, style.ErrEffectWithCode)
	assert.Contains(t, err.Error(), "slide 1")
}

func TestSplitSource(t *testing.T) {
	src := "# One\n\n---\n\nSetext\n---\n\n```\n---\n```\n\n***\n\n~~~md\n___\n~~~\n\n---\n\n---\n"
	want := []string{
		"# One\n",
		"Setext\n---\n\n```\n---\n```\n",
		"~~~md\n___\n~~~\n",
	}
	if diff := cmp.Diff(want, SplitSource(src)); diff != "" {
		t.Errorf("SplitSource mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, SplitSource("\n\n---\n"))
}

func TestSplitSourceMatchesLoad(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"after list", "- item\n---\nnext\n"},
		{"after quote", "> quote\n---\nnext\n"},
		{"after html block", "text\n\n<div>\nbox\n</div>\n\n---\n\nnext\n"},
		{"after comment", "hello\n\n<!-- fg=red -->\n---\nnext\n"},
		{"setext heading", "Title\n---\n\nbody\n"},
		{"inside fence", "```\n---\n```\n\n* * *\n\nend\n"},
		{"indented", "para\n\n    ---\n\n___\n\nmore\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Load(write(t, t.TempDir(), "talk.md", tt.src), Options{})
			require.NoError(t, err)
			assert.Len(t, SplitSource(tt.src), len(d.Slides))
		})
	}
}
