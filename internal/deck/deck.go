// Package deck loads a whole show: a markdown file, or a directory of
// markdown files, turned into slides.
package deck

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"termdeck/internal/document"
	"termdeck/internal/highlight"
	"termdeck/internal/slide"
	"termdeck/internal/style"
)

// TitleFile names the optional file holding a directory deck's title.
const TitleFile = "_title.md"

// Options controls how slides are built. Zero fields take the classifier
// defaults.
type Options struct {
	Terminal    slide.Terminal
	Banner      slide.Banner
	Palette     *style.Palette
	Mapper      *highlight.Mapper
	// Foreground and Background name the palette colors of slides
	// without a style directive. Empty keeps black on white.
	Foreground  string
	Background  string
	LineNumbers bool
	Log         *slog.Logger
}

// Deck is a loaded show.
type Deck struct {
	Path   string
	Dir    string
	Title  string
	Source string
	Slides []*slide.Slide
}

// Load reads path and builds its slides. A directory loads every *.md file
// not starting with an underscore, in name order, each file starting a new
// slide.
func Load(path string, opts Options) (*Deck, error) {
	d, err := Read(path)
	if err != nil {
		return nil, err
	}

	nodes, err := document.Parse([]byte(d.Source))
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if d.Title == "" {
		d.Title = title(nodes, path)
	}

	b, err := opts.builder(d.Dir)
	if err != nil {
		return nil, err
	}
	d.Slides, err = b.Build(nodes)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s", path)
	}
	b.Log.Info("deck loaded", "path", path, "slides", len(d.Slides))
	return d, nil
}

// Read loads the markdown of path without building slides. Title is only
// set for directories with a title file.
func Read(path string) (*Deck, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "open deck")
	}

	d := &Deck{Path: path}
	if info.IsDir() {
		d.Dir = path
		d.Source, d.Title, err = readDir(path)
	} else {
		d.Dir = filepath.Dir(path)
		var data []byte
		data, err = os.ReadFile(path)
		d.Source = string(data)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read deck")
	}
	return d, nil
}

func (o Options) builder(dir string) (*slide.Builder, error) {
	c := slide.NewClassifier(dir)
	if o.Terminal != nil {
		c.Terminal = o.Terminal
	}
	if o.Banner != nil {
		c.Banner = o.Banner
	}
	if o.Palette != nil {
		c.Palette = o.Palette
	}
	if o.Mapper != nil {
		c.Mapper = o.Mapper
	}
	if o.Log != nil {
		c.Log = o.Log
	}
	c.LineNumbers = o.LineNumbers

	b := slide.NewBuilder(c)
	for _, pick := range []struct {
		field, name string
		dst         *style.Color
	}{
		{"foreground", o.Foreground, &b.Foreground},
		{"background", o.Background, &b.Background},
	} {
		if pick.name == "" {
			continue
		}
		color, ok := c.Palette.Color(pick.name)
		if !ok {
			return nil, &style.ConfigError{Field: pick.field, Value: pick.name, Err: style.ErrUnsupportedColor}
		}
		*pick.dst = color
	}
	return b, nil
}

func readDir(dir string) (source, title string, err error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", "", err
	}

	if content, err := os.ReadFile(filepath.Join(dir, TitleFile)); err == nil {
		title = strings.TrimSpace(string(content))
	}

	var names []string
	for _, f := range files {
		if !f.IsDir() && filepath.Ext(f.Name()) == ".md" && !strings.HasPrefix(f.Name(), "_") {
			names = append(names, f.Name())
		}
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", "", err
		}
		parts = append(parts, strings.TrimSpace(string(content)))
	}
	return strings.Join(parts, "\n\n---\n\n") + "\n", title, nil
}

// title is the first heading's text, or the file name without extension.
func title(nodes []*document.Node, path string) string {
	for _, n := range nodes {
		if n.Kind == document.KindHeading && strings.TrimSpace(n.Text) != "" {
			return strings.TrimSpace(n.Text)
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SplitSource splits markdown into per-slide sources at the breaks Load
// splits slides at.
func SplitSource(source string) []string {
	return document.Split([]byte(source))
}
