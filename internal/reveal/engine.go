// Package reveal implements the live-typing state machine: transcript
// lines are revealed one character per step, strictly in order, with a
// line's output appearing only once its input is complete.
package reveal

import (
	"fmt"

	"termdeck/internal/style"
)

// Line is one step of a transcript. Spans, when set, colors Input rune by
// rune and must cover exactly the runes of Input.
type Line struct {
	Prompt string
	Input  string
	Output string
	Color  style.Color
	Attr   style.Attr
	Spans  []style.Cell
}

func (l Line) inert() bool { return l.Input == "" && l.Output == "" }

// Phase is a line's position in pending -> revealing -> complete.
type Phase int

const (
	Pending Phase = iota
	Revealing
	Complete
)

func (p Phase) String() string {
	switch p {
	case Revealing:
		return "revealing"
	case Complete:
		return "complete"
	default:
		return "pending"
	}
}

// State is the reveal progress of one line.
type State struct {
	Revealed int
	Started  bool
	Finished bool
}

// Phase derives the phase from the flags.
func (s State) Phase() Phase {
	switch {
	case s.Finished:
		return Complete
	case s.Started:
		return Revealing
	default:
		return Pending
	}
}

// Engine holds the reveal state for one transcript. It has no clock: each
// call to Advance is one step.
type Engine struct {
	lines  []Line
	inputs [][]rune
	states []State
}

// New returns an engine with every line pending.
func New(lines []Line) *Engine {
	e := &Engine{
		lines:  append([]Line(nil), lines...),
		inputs: make([][]rune, len(lines)),
		states: make([]State, len(lines)),
	}
	for i, l := range e.lines {
		e.inputs[i] = []rune(l.Input)
		if l.Spans != nil && spanLen(l.Spans) != len(e.inputs[i]) {
			panic(fmt.Sprintf("reveal: line %d spans cover %d runes, input has %d",
				i, spanLen(l.Spans), len(e.inputs[i])))
		}
	}
	e.Reset()
	return e
}

// Len returns the number of lines.
func (e *Engine) Len() int { return len(e.lines) }

// Line returns line i.
func (e *Engine) Line(i int) Line { return e.lines[i] }

// Reset puts every line back to pending. Inert lines, which have neither
// input nor output, are complete from the start and never displayed.
func (e *Engine) Reset() {
	for i, l := range e.lines {
		if l.inert() {
			e.states[i] = State{Started: true, Finished: true}
			continue
		}
		e.states[i] = State{}
	}
}

// States returns a copy of the per-line state.
func (e *Engine) States() []State {
	return append([]State(nil), e.states...)
}

// Done reports whether every line is complete.
func (e *Engine) Done() bool {
	return e.active() < 0
}

// active returns the first line that is not complete, or -1. It is the
// only line eligible to change on the next step.
func (e *Engine) active() int {
	for i, s := range e.states {
		if !s.Finished {
			return i
		}
	}
	return -1
}

// Advance performs one step and reports whether anything changed. A line
// with input reveals one more rune and completes when the whole input is
// shown; a line with only output completes at once.
func (e *Engine) Advance() bool {
	i := e.active()
	if i < 0 {
		return false
	}
	s := e.states[i]
	s.Started = true
	if n := len(e.inputs[i]); n == 0 {
		s.Finished = true
	} else {
		s.Revealed++
		if s.Revealed >= n {
			s.Revealed = n
			s.Finished = true
		}
	}
	e.states[i] = s
	e.check()
	return true
}

// check panics if the state array breaks ordering or bounds.
func (e *Engine) check() {
	ready := true
	for i, s := range e.states {
		n := len(e.inputs[i])
		switch {
		case s.Revealed < 0 || s.Revealed > n:
			panic(fmt.Sprintf("reveal: line %d revealed %d of %d", i, s.Revealed, n))
		case s.Finished && !e.lines[i].inert() && s.Revealed != n:
			panic(fmt.Sprintf("reveal: line %d complete at %d of %d", i, s.Revealed, n))
		case s.Started && !ready && !e.lines[i].inert():
			panic(fmt.Sprintf("reveal: line %d started before its predecessor finished", i))
		}
		ready = ready && s.Finished
	}
}

// Shown is what one line displays in the current state.
type Shown struct {
	Index int
	// HasInput is set when the prompt/input row is drawn, even while the
	// revealed input is still empty.
	HasInput bool
	Prompt   string
	Input    string
	Output   string
	Spans    []style.Cell
}

// Visible returns the lines to display, in order.
func (e *Engine) Visible() []Shown {
	var shown []Shown
	for i, s := range e.states {
		l := e.lines[i]
		if !s.Started || l.inert() {
			continue
		}
		v := Shown{Index: i}
		if len(e.inputs[i]) > 0 {
			v.HasInput = true
			v.Prompt = l.Prompt
			v.Input = string(e.inputs[i][:s.Revealed])
			if l.Spans != nil {
				v.Spans = truncateSpans(l.Spans, s.Revealed)
			}
		}
		if s.Finished {
			v.Output = l.Output
		}
		shown = append(shown, v)
	}
	return shown
}

func spanLen(spans []style.Cell) int {
	n := 0
	for _, c := range spans {
		n += len([]rune(c.Text))
	}
	return n
}

func truncateSpans(spans []style.Cell, n int) []style.Cell {
	var out []style.Cell
	for _, c := range spans {
		if n <= 0 {
			break
		}
		r := []rune(c.Text)
		if len(r) > n {
			c.Text = string(r[:n])
		}
		n -= len(r)
		out = append(out, c)
	}
	return out
}
