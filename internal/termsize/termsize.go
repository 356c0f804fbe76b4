// Package termsize reports the size of the controlling terminal.
package termsize

import (
	"os"

	"golang.org/x/term"
)

// Fallback size used when no terminal is attached.
const (
	DefaultCols = 80
	DefaultRows = 24
)

// Terminal reads its size from a file descriptor on every call, so a
// resized window is picked up by the next slide built.
type Terminal struct {
	fd int
}

// Stdout returns a Terminal bound to standard output.
func Stdout() *Terminal { return &Terminal{fd: int(os.Stdout.Fd())} }

// FromFile returns a Terminal bound to f.
func FromFile(f *os.File) *Terminal { return &Terminal{fd: int(f.Fd())} }

// Size returns the terminal size, or 80x24 when fd is not a terminal.
func (t *Terminal) Size() (cols, rows int) {
	if !term.IsTerminal(t.fd) {
		return DefaultCols, DefaultRows
	}
	cols, rows, err := term.GetSize(t.fd)
	if err != nil || cols <= 0 || rows <= 0 {
		return DefaultCols, DefaultRows
	}
	return cols, rows
}

// IsTerminal reports whether the descriptor is attached to a terminal.
func (t *Terminal) IsTerminal() bool { return term.IsTerminal(t.fd) }
