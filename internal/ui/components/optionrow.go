package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tenfold/internal/ui/theme"
)

// OptionRow is a labeled single-choice selector cycled with left and right.
type OptionRow struct {
	Label    string
	Options  []string
	Selected int
}

// NewOptionRow creates an option row with the given option selected.
func NewOptionRow(label string, options []string, selected int) OptionRow {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return OptionRow{
		Label:    label,
		Options:  options,
		Selected: selected,
	}
}

// Update cycles the selection on left/right (and h/l). It reports whether
// the selection changed.
func (o OptionRow) Update(msg tea.Msg) (OptionRow, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(o.Options) == 0 {
		return o, false
	}

	switch kmsg.String() {
	case "left", "h":
		o.Selected = (o.Selected - 1 + len(o.Options)) % len(o.Options)
		return o, true
	case "right", "l":
		o.Selected = (o.Selected + 1) % len(o.Options)
		return o, true
	}
	return o, false
}

// Value returns the selected option.
func (o OptionRow) Value() string {
	if len(o.Options) == 0 {
		return ""
	}
	return o.Options[o.Selected]
}

// View renders the row. The focused row shows arrows around its value.
func (o OptionRow) View(focused bool, labelWidth int) string {
	label := o.Label
	if pad := labelWidth - lipgloss.Width(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}

	if focused {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+label) +
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("‹ "+o.Value()+" ›")
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+label) +
		lipgloss.NewStyle().Foreground(theme.Text).Render("  "+o.Value())
}
