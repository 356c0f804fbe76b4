package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// DefaultTitle is shown when the deck has no title.
const DefaultTitle = "termdeck"

var statusStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("240")).
	Foreground(lipgloss.Color("15")).
	Padding(0, 1)

// statusLine shows "Slide n/N" on the left and the title on the right,
// truncating the title when they do not fit.
func statusLine(width, current, total int, title string) string {
	left := fmt.Sprintf("Slide %d/%d", current, total)
	right := title
	if right == "" {
		right = DefaultTitle
	}

	// padding takes one column on each side
	available := width - 2
	if runewidth.StringWidth(left)+runewidth.StringWidth(right)+2 > available {
		maxTitle := available - runewidth.StringWidth(left) - 2
		if maxTitle < 10 {
			right = DefaultTitle
		} else {
			right = runewidth.Truncate(right, maxTitle, "...")
		}
	}

	gap := available - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	var content string
	if gap > 0 {
		content = left + strings.Repeat(" ", gap) + right
	} else {
		content = left + " " + right
	}
	return statusStyle.Width(max(width, 0)).Render(content)
}
