// Package tui plays a deck in the terminal with bubbletea.
package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termdeck/internal/deck"
	"termdeck/internal/slide"
)

// EndMessage is shown after the last slide.
const EndMessage = "Press 'r' to restart."

// Options controls playback.
type Options struct {
	// FPS is the number of display ticks per second.
	FPS int
	// Resume keeps reveal progress when a slide is shown again.
	Resume bool
	// Seed makes effect animations repeatable.
	Seed   uint64
	Images *ImageRenderer
	Log    *slog.Logger
}

type tickMsg struct{}

// Model is the bubbletea model of a running show.
type Model struct {
	deck     *deck.Deck
	opts     Options
	current  int
	ended    bool
	width    int
	height   int
	frame    int
	effect   Effect
	grid     *Grid
	progress progress.Model
	start    tea.Cmd
}

// New returns a model showing the first slide of d.
func New(d *deck.Deck, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 20
	}
	if opts.Images == nil {
		opts.Images = NewImageRenderer()
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	m := Model{
		deck:     d,
		opts:     opts,
		progress: progress.New(progress.WithDefaultGradient()),
	}
	if s := m.slide(); s != nil {
		s.Enter(opts.Resume)
	}
	m.start = m.progress.SetPercent(m.percent())
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.start)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Current returns the index of the slide on screen.
func (m Model) Current() int { return m.current }

// Ended reports whether the end screen is showing.
func (m Model) Ended() bool { return m.ended }

func (m Model) slide() *slide.Slide {
	if m.current < 0 || m.current >= len(m.deck.Slides) {
		return nil
	}
	return m.deck.Slides[m.current]
}

func (m Model) percent() float64 {
	if len(m.deck.Slides) == 0 {
		return 0
	}
	return float64(m.current+1) / float64(len(m.deck.Slides))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = max(msg.Width-4, 0)
		m.resetEffect()
		return m, nil

	case tickMsg:
		if s := m.slide(); s != nil && !m.ended {
			s.Tick()
			if m.effect != nil {
				m.grid.Clear()
				m.effect.Draw(m.grid, m.frame)
			}
			m.frame++
		}
		return m, m.tick()

	case tea.KeyMsg:
		return m.key(msg.String())

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m Model) key(k string) (tea.Model, tea.Cmd) {
	if k == "ctrl+c" || k == "q" {
		return m, tea.Quit
	}
	if m.ended || len(m.deck.Slides) == 0 {
		if k == "r" && len(m.deck.Slides) > 0 {
			return m.show(0)
		}
		return m, tea.Quit
	}

	switch k {
	case " ", "n", "l", "right", "pgdown":
		if m.current < len(m.deck.Slides)-1 {
			return m.show(m.current + 1)
		}
		m.ended = true
		return m, nil

	case "b", "h", "left", "pgup":
		if m.current > 0 {
			return m.show(m.current - 1)
		}

	case "r":
		m.slide().Restart()
		m.resetEffect()
	}
	return m, nil
}

func (m Model) show(i int) (tea.Model, tea.Cmd) {
	m.current = i
	m.ended = false
	m.slide().Enter(m.opts.Resume)
	m.resetEffect()
	return m, m.progress.SetPercent(m.percent())
}

// resetEffect rebuilds the background effect for the current slide and
// screen size.
func (m *Model) resetEffect() {
	m.frame = 0
	m.effect, m.grid = nil, nil
	s := m.slide()
	if s == nil || s.Effect == "" || m.width <= 0 {
		return
	}
	w, h := m.width, m.contentHeight()
	e, err := NewEffect(s.Effect, w, h, m.opts.Seed+uint64(m.current))
	if err != nil {
		m.opts.Log.Warn("effect not drawn", "slide", m.current+1, "error", err)
		return
	}
	m.effect = e
	m.grid = NewGrid(w, h, s.Foreground, s.Background)
	m.effect.Draw(m.grid, 0)
}

// contentHeight leaves two rows for the status line and progress bar.
func (m Model) contentHeight() int { return max(m.height-2, 0) }

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if len(m.deck.Slides) == 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, "No slides.\n\nPress 'q' to quit.")
	}
	if m.ended {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, EndMessage)
	}

	content := strings.Join(m.slideRows(), "\n")
	status := statusLine(m.width, m.current+1, len(m.deck.Slides), m.deck.Title)
	return content + "\n" + status + "\n" + m.progress.View()
}

// slideRows composes the slide's blocks over its background.
func (m Model) slideRows() []string {
	s := m.slide()
	w, h := m.width, m.contentHeight()

	var rows []string
	if m.grid != nil {
		rows = m.grid.Rows()
	} else {
		rows = NewGrid(w, h, s.Foreground, s.Background).Rows()
	}

	live := make(map[int]*slide.LiveBlock, len(s.Live()))
	for _, lb := range s.Live() {
		live[lb.Index] = lb
	}

	drawn := make([][]string, len(s.Elements))
	widths := make([]int, len(s.Elements))
	for i, b := range s.Elements {
		drawn[i] = m.blockLines(b, live[i], w)
		widths[i] = blockWidth(b, drawn[i])
	}

	for _, p := range Layout(s, widths, w, h) {
		for j, line := range drawn[p.Index] {
			r := p.Row + j
			if r < 0 || r >= len(rows) {
				continue
			}
			rows[r] = overlay(rows[r], line, p.Col)
		}
	}
	return rows
}

func (m Model) blockLines(b slide.Block, lb *slide.LiveBlock, cols int) []string {
	if lb != nil {
		return liveLines(lb)
	}
	if img, ok := b.(*slide.Image); ok {
		lines, err := m.opts.Images.Render(img.Path, cols, img.Size())
		if err == nil {
			return lines
		}
		m.opts.Log.Warn("image not drawn", "path", img.Path, "error", err)
	}
	text := b.Render()
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
