package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tenfold/internal/ui/theme"
)

// ProgressBar shows how far a drill has come. Caption follows the bar,
// e.g. "3/20" tasks or "0:40/2:00" minutes.
type ProgressBar struct {
	Done    float64 // fraction in [0, 1]
	Caption string
	Width   int

	// Urgent paints the bar in the warning colour, for the last seconds
	// of a timed drill.
	Urgent bool
}

// View renders the bar and its caption within Width columns.
func (p ProgressBar) View() string {
	caption := ""
	if p.Caption != "" {
		caption = "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Caption)
	}

	cells := max(p.Width-lipgloss.Width(caption), 4)
	filled := min(max(int(float64(cells)*p.Done+0.5), 0), cells)

	fill := theme.ProgressFilled
	if p.Urgent {
		fill = fill.Background(theme.Warning)
	}
	return fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", cells-filled)) +
		caption
}
