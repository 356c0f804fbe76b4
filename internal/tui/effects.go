package tui

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/pkg/errors"

	"termdeck/internal/style"
)

// Effect animates the background layer of a slide.
type Effect interface {
	// Draw renders frame into g. Frames start at 0 and increase by one
	// per display tick.
	Draw(g *Grid, frame int)
}

// ErrNoEffect is returned for an effect name without a renderer.
var ErrNoEffect = errors.New("no renderer for effect")

type effectFunc func(w, h int, rng *rand.Rand) Effect

var effects = map[string]effectFunc{
	"stars":      newStars,
	"matrix":     newMatrix,
	"plasma":     func(w, h int, _ *rand.Rand) Effect { return plasma{} },
	"fireworks":  newFireworks,
	"explosions": newExplosions,
}

// EffectNames lists the effects that have a renderer.
func EffectNames() []string {
	names := make([]string, 0, len(effects))
	for n := range effects {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NewEffect builds the named effect for a w x h surface. The same seed
// yields the same animation.
func NewEffect(name string, w, h int, seed uint64) (Effect, error) {
	fn, ok := effects[name]
	if !ok {
		return nil, errors.Wrapf(ErrNoEffect, "%q", name)
	}
	return fn(w, h, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))), nil
}

type star struct {
	x, y, phase int
}

type stars struct {
	stars []star
}

func newStars(w, h int, rng *rand.Rand) Effect {
	n := w * h / 40
	s := &stars{stars: make([]star, n)}
	for i := range s.stars {
		s.stars[i] = star{x: rng.IntN(max(w, 1)), y: rng.IntN(max(h, 1)), phase: rng.IntN(16)}
	}
	return s
}

func (s *stars) Draw(g *Grid, frame int) {
	const twinkle = "..++**++"
	for _, st := range s.stars {
		i := (frame/2 + st.phase) % len(twinkle)
		g.Set(st.x, st.y, Cell{Ch: rune(twinkle[i]), Fg: style.ColorWhite, Bg: style.ColorBlack})
	}
}

type drop struct {
	head, speed, length int
}

type matrix struct {
	cols []drop
	rng  *rand.Rand
	h    int
}

func newMatrix(w, h int, rng *rand.Rand) Effect {
	m := &matrix{cols: make([]drop, w), rng: rng, h: h}
	for i := range m.cols {
		m.cols[i] = m.drop()
		m.cols[i].head = rng.IntN(max(h, 1))
	}
	return m
}

func (m *matrix) drop() drop {
	return drop{head: -m.rng.IntN(max(m.h, 1)), speed: 1 + m.rng.IntN(3), length: 4 + m.rng.IntN(max(m.h/2, 1))}
}

func (m *matrix) Draw(g *Grid, frame int) {
	const glyphs = "0123456789abcdefghijklmnopqrstuvwxyz@#$%&*+=<>"
	for x := range m.cols {
		d := &m.cols[x]
		if frame%d.speed == 0 {
			d.head++
		}
		for i := 0; i < d.length; i++ {
			y := d.head - i
			if y < 0 || y >= g.H {
				continue
			}
			ch := rune(glyphs[(x*7+y*13+frame)%len(glyphs)])
			attr := style.AttrNormal
			if i == 0 {
				attr = style.AttrBold
			}
			g.Set(x, y, Cell{Ch: ch, Fg: style.ColorGreen, Bg: style.ColorBlack, Attr: attr})
		}
		if d.head-d.length > m.h {
			*d = m.drop()
		}
	}
}

type plasma struct{}

var plasmaColors = []style.Color{
	style.ColorBlue, style.ColorMagenta, style.ColorRed, style.ColorYellow,
	style.ColorGreen, style.ColorCyan,
}

func (plasma) Draw(g *Grid, frame int) {
	t := float64(frame) / 8
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			fx, fy := float64(x)/8, float64(y)/4
			v := math.Sin(fx+t) + math.Sin(fy+t/2) + math.Sin((fx+fy+t)/2) + math.Sin(math.Hypot(fx-4, fy-4)+t)
			i := int((v + 4) / 8 * float64(len(plasmaColors)))
			c := plasmaColors[min(max(i, 0), len(plasmaColors)-1)]
			g.Set(x, y, Cell{Ch: ' ', Fg: style.ColorWhite, Bg: c})
		}
	}
}

type burst struct {
	x, y   int
	start  int
	radius int
	color  style.Color
}

// bursts spawns a burst every few frames and draws each one from its start
// frame until it has spread to its radius.
type bursts struct {
	w, h   int
	every  int
	rng    *rand.Rand
	active []burst
	draw   func(g *Grid, b burst, age int)
}

var burstColors = []style.Color{
	style.ColorRed, style.ColorYellow, style.ColorGreen,
	style.ColorCyan, style.ColorBlue, style.ColorMagenta,
}

func (b *bursts) Draw(g *Grid, frame int) {
	if frame%b.every == 0 && b.w > 0 && b.h > 0 {
		b.active = append(b.active, burst{
			x:      b.rng.IntN(b.w),
			y:      b.rng.IntN(b.h),
			start:  frame,
			radius: 3 + b.rng.IntN(max(b.h/3, 1)),
			color:  burstColors[b.rng.IntN(len(burstColors))],
		})
	}
	live := b.active[:0]
	for _, bu := range b.active {
		age := frame - bu.start
		if age > bu.radius {
			continue
		}
		b.draw(g, bu, age)
		live = append(live, bu)
	}
	b.active = live
}

func newFireworks(w, h int, rng *rand.Rand) Effect {
	return &bursts{w: w, h: h, every: 6, rng: rng, draw: func(g *Grid, b burst, age int) {
		ch := '*'
		if age > b.radius*2/3 {
			ch = '.'
		}
		for a := 0; a < 16; a++ {
			theta := float64(a) * math.Pi / 8
			x := b.x + int(math.Round(float64(age)*2*math.Cos(theta)))
			y := b.y + int(math.Round(float64(age)*math.Sin(theta)))
			g.Set(x, y, Cell{Ch: ch, Fg: b.color, Bg: style.ColorBlack, Attr: style.AttrBold})
		}
	}}
}

func newExplosions(w, h int, rng *rand.Rand) Effect {
	const debris = "#@%*+:. "
	return &bursts{w: w, h: h, every: 10, rng: rng, draw: func(g *Grid, b burst, age int) {
		for dy := -age; dy <= age; dy++ {
			for dx := -2 * age; dx <= 2*age; dx++ {
				d := math.Hypot(float64(dx)/2, float64(dy))
				if d > float64(age) {
					continue
				}
				fade := age * len(debris) / (b.radius + 1)
				i := min(fade+int(d)/2, len(debris)-1)
				color := b.color
				if i < 2 {
					color = style.ColorYellow
				}
				g.Set(b.x+dx, b.y+dy, Cell{Ch: rune(debris[i]), Fg: color, Bg: style.ColorBlack})
			}
		}
	}}
}
