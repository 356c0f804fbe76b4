package tui

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// ImageRenderer draws image files as rows of half-block characters, two
// pixels per cell. Results are cached per path and size.
type ImageRenderer struct {
	mu    sync.Mutex
	cache map[imageKey][]string
}

type imageKey struct {
	path       string
	cols, rows int
}

// NewImageRenderer returns an empty renderer.
func NewImageRenderer() *ImageRenderer {
	return &ImageRenderer{cache: make(map[imageKey][]string)}
}

// Render fits the image at path into cols x rows cells keeping its aspect
// ratio.
func (r *ImageRenderer) Render(path string, cols, rows int) ([]string, error) {
	if cols <= 0 || rows <= 0 {
		return nil, nil
	}
	key := imageKey{path: path, cols: cols, rows: rows}

	r.mu.Lock()
	defer r.mu.Unlock()
	if out, ok := r.cache[key]; ok {
		return out, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	img = resize.Thumbnail(uint(cols), uint(rows*2), img, resize.Bilinear)

	out := halfBlocks(img)
	r.cache[key] = out
	return out, nil
}

func halfBlocks(img image.Image) []string {
	b := img.Bounds()
	var rows []string
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var sb strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			st := lipgloss.NewStyle().Foreground(hex(img, x, y))
			if y+1 < b.Max.Y {
				st = st.Background(hex(img, x, y+1))
			}
			sb.WriteString(st.Render("▀"))
		}
		rows = append(rows, sb.String())
	}
	return rows
}

func hex(img image.Image, x, y int) lipgloss.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
