package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tenfold/internal/ui/theme"
)

const bannerArt = `
 ████████╗███████╗███╗   ██╗███████╗ ██████╗ ██╗     ██████╗
 ╚══██╔══╝██╔════╝████╗  ██║██╔════╝██╔═══██╗██║     ██╔══██╗
    ██║   █████╗  ██╔██╗ ██║█████╗  ██║   ██║██║     ██║  ██║
    ██║   ██╔══╝  ██║╚██╗██║██╔══╝  ██║   ██║██║     ██║  ██║
    ██║   ███████╗██║ ╚████║██║     ╚██████╔╝███████╗██████╔╝
    ╚═╝   ╚══════╝╚═╝  ╚═══╝╚═╝      ╚═════╝ ╚══════╝╚═════╝`

const bannerCompact = "T E N F O L D"

// RenderBanner returns the TENFOLD banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < lipgloss.Width(bannerArt)+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
