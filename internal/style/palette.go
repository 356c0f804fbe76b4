package style

import "sort"

// Palette is the immutable lookup configuration for color names and effect
// names. It is built once and shared by reference.
type Palette struct {
	colors  map[string]Color
	effects map[string]struct{}
}

// NewPalette copies colors and effects into a new Palette.
func NewPalette(colors map[string]Color, effects []string) *Palette {
	p := &Palette{
		colors:  make(map[string]Color, len(colors)),
		effects: make(map[string]struct{}, len(effects)),
	}
	for name, c := range colors {
		p.colors[name] = c
	}
	for _, name := range effects {
		p.effects[name] = struct{}{}
	}
	return p
}

var defaultPalette = NewPalette(
	map[string]Color{
		"black":   ColorBlack,
		"red":     ColorRed,
		"green":   ColorGreen,
		"yellow":  ColorYellow,
		"blue":    ColorBlue,
		"magenta": ColorMagenta,
		"cyan":    ColorCyan,
		"white":   ColorWhite,
	},
	[]string{"fireworks", "explosions", "stars", "matrix", "plasma"},
)

// DefaultPalette returns the shared palette with the eight terminal colors
// and the built-in effects.
func DefaultPalette() *Palette {
	return defaultPalette
}

// Color looks up a color by name.
func (p *Palette) Color(name string) (Color, bool) {
	c, ok := p.colors[name]
	return c, ok
}

// HasEffect reports whether name is a known effect.
func (p *Palette) HasEffect(name string) bool {
	_, ok := p.effects[name]
	return ok
}

// Effects returns the known effect names, sorted.
func (p *Palette) Effects() []string {
	names := make([]string, 0, len(p.effects))
	for name := range p.effects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
