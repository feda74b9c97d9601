// Package layout draws the frame around every screen: the header with the
// running score, the footer with key hints and the size guard.
package layout

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tenfold/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

const brand = "Tenfold ×10"

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Score is the drill status shown on the right of the header.
type Score struct {
	Correct   int
	Attempted int

	// Left is the remaining tasks or time, already formatted.
	Left string
}

// IsZero reports whether there is nothing to show.
func (s Score) IsZero() bool {
	return s == Score{}
}

// String renders the score without styling, e.g. "✓ 3/4 · 1:20".
func (s Score) String() string {
	if s.IsZero() {
		return ""
	}
	out := fmt.Sprintf("✓ %d/%d", s.Correct, s.Attempted)
	if s.Left != "" {
		out += " · " + s.Left
	}
	return out
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a larger terminal.
func RenderMinSizeMessage(width, height int) string {
	body := fmt.Sprintf("%s needs at least %d × %d.\nThis terminal is %d × %d.\n\nResize the window, or run tenfold play --quick.",
		brand, MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(body))
}

// RenderHeader renders the brand on the left, the screen title in the
// middle and the score, if any, on the right.
func RenderHeader(title string, score Score, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(brand)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := renderScore(score)

	inner := max(width-4, 0)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	return bar(left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, width)
}

// renderScore colours the tick by how the drill is going: green while
// every answer is right, amber once one is missed.
func renderScore(s Score) string {
	if s.IsZero() {
		return ""
	}
	tick := theme.Success
	if s.Correct < s.Attempted {
		tick = theme.Warning
	}
	out := lipgloss.NewStyle().Foreground(tick).Bold(true).Render(fmt.Sprintf("✓ %d/%d", s.Correct, s.Attempted))
	if s.Left != "" {
		out += lipgloss.NewStyle().Foreground(theme.TextDim).Render(" · ") +
			lipgloss.NewStyle().Foreground(theme.Accent).Render(s.Left)
	}
	return out
}

// RenderFooter renders the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar(strings.Join(parts, "   "), width)
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFrame stacks header, content and footer, giving the content all
// rows the bars leave free.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rows).MaxHeight(rows).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// FormatClock renders a duration as m:ss, rounding partial seconds up so a
// countdown shows 0:00 only once time is up.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
