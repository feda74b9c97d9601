package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tenfold/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle  MascotVariant = iota // chalk green
	MascotAlert                      // amber, settings need fixing
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ×10 │
└─────┘`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ○  │
│ :10 │
└─────┘`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	if v == MascotAlert {
		art, fg = mascotAlert, theme.Accent
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
