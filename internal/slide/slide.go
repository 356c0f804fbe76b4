package slide

import (
	"log/slog"

	"github.com/pkg/errors"

	"termdeck/internal/document"
	"termdeck/internal/reveal"
	"termdeck/internal/style"
)

// Flags summarizes what a slide contains.
type Flags struct {
	HasCode        bool `json:"hasCode"`
	HasImage       bool `json:"hasImage"`
	HasLiveReveal  bool `json:"hasLiveReveal"`
	HasCustomStyle bool `json:"hasCustomStyle"`
}

// FoldFlags computes the flags of an element list, including elements
// nested in block quotes. Only top-level raw markup styles a slide.
func FoldFlags(elements []Element) Flags {
	var f Flags
	for _, e := range elements {
		f = f.fold(e, false)
	}
	return f
}

func (f Flags) fold(e Element, nested bool) Flags {
	switch e := e.(type) {
	case *Code:
		f.HasCode = true
	case *Image:
		f.HasImage = true
	case Live:
		f.HasLiveReveal = true
	case *RawMarkup:
		if !nested && !e.Directive.Empty() {
			f.HasCustomStyle = true
		}
	case *BlockQuote:
		for _, c := range e.Children {
			f = f.fold(c, true)
		}
	}
	return f
}

// LiveBlock is the reveal state of one live element on a slide.
type LiveBlock struct {
	// Index is the element's position in Slide.Elements.
	Index     int
	Element   Live
	Animation *reveal.Animation
}

// Slide is an ordered group of blocks shown together.
type Slide struct {
	Elements   []Block
	Flags      Flags
	Foreground style.Color
	Background style.Color
	Effect     string

	live []*LiveBlock
}

// Live returns the slide's live blocks in element order.
func (s *Slide) Live() []*LiveBlock { return s.live }

// Enter prepares the slide for display. Reveal state starts over unless
// resume is set.
func (s *Slide) Enter(resume bool) {
	if !resume {
		s.Restart()
	}
}

// Restart resets every live block.
func (s *Slide) Restart() {
	for _, lb := range s.live {
		lb.Animation.Reset()
	}
}

// Tick is called once per display frame and reports whether any live
// block changed.
func (s *Slide) Tick() bool {
	changed := false
	for _, lb := range s.live {
		if lb.Animation.Tick() {
			changed = true
		}
	}
	return changed
}

// Builder groups classified nodes into slides.
type Builder struct {
	Classifier *Classifier
	Palette    *style.Palette
	Foreground style.Color
	Background style.Color
	Log        *slog.Logger
}

// NewBuilder returns a builder using c with black on white slides.
func NewBuilder(c *Classifier) *Builder {
	return &Builder{
		Classifier: c,
		Palette:    c.Palette,
		Foreground: style.ColorBlack,
		Background: style.ColorWhite,
		Log:        c.Log,
	}
}

// Build classifies nodes and splits them into slides at thematic breaks.
// Slides without drawable elements are dropped.
func (b *Builder) Build(nodes []*document.Node) ([]*Slide, error) {
	var (
		slides []*Slide
		buf    []Element
	)
	flush := func() error {
		s, err := b.Assemble(buf)
		if err != nil {
			return errors.Wrapf(err, "slide %d", len(slides)+1)
		}
		if s != nil {
			slides = append(slides, s)
		}
		buf = nil
		return nil
	}

	for _, n := range nodes {
		if n.Kind == document.KindThematicBreak {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		e, err := b.Classifier.Classify(n, style.ColorDefault, style.ColorDefault)
		if err != nil {
			return nil, err
		}
		buf = append(buf, e)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return slides, nil
}

// Assemble builds one slide from its elements. Raw markup styles the slide
// and is dropped. It returns nil when nothing drawable remains.
func (b *Builder) Assemble(elements []Element) (*Slide, error) {
	flags := FoldFlags(elements)
	base := style.Resolved{Foreground: b.Foreground, Background: b.Background}

	var (
		kept   []Block
		merged style.Directive
		count  int
	)
	for _, e := range elements {
		if raw, ok := e.(*RawMarkup); ok {
			if raw.Directive.Empty() {
				continue
			}
			// each directive must be valid alone
			if _, err := b.Palette.Resolve(raw.Directive, base, flags.HasCode); err != nil {
				return nil, err
			}
			merged = merged.Merge(raw.Directive)
			count++
			continue
		}
		block, ok := e.(Block)
		if !ok {
			return nil, errors.Wrapf(ErrContent, "%s at top level", e.Kind())
		}
		kept = append(kept, block)
	}

	resolved := base
	if count > 0 {
		if count > 1 {
			b.Log.Warn("multiple style directives on one slide, later values win", "directives", count)
		}
		// then as one, so directive order never hides a conflict
		var err error
		if resolved, err = b.Palette.Resolve(merged, base, flags.HasCode); err != nil {
			return nil, err
		}
	}
	if len(kept) == 0 {
		return nil, nil
	}

	s := &Slide{
		Elements:   kept,
		Flags:      flags,
		Foreground: resolved.Foreground,
		Background: resolved.Background,
		Effect:     resolved.Effect,
	}
	for i, e := range kept {
		fg, bg := e.Colors()
		switch {
		case s.Effect != "":
			e.SetColors(s.Foreground, s.Background)
		case fg == style.ColorDefault && bg == style.ColorDefault:
			e.SetColors(s.Foreground, s.Background)
		}
		if l, ok := e.(Live); ok {
			s.live = append(s.live, &LiveBlock{
				Index:     i,
				Element:   l,
				Animation: reveal.NewAnimation(reveal.New(l.RevealLines()), l.Delay()),
			})
		}
	}
	return s, nil
}
