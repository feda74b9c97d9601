package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tenfold/internal/ui/theme"
)

// Block-letter title.
const arcadeTitleFull = `████████╗███████╗███╗   ██╗███████╗ ██████╗ ██╗     ██████╗
╚══██╔══╝██╔════╝████╗  ██║██╔════╝██╔═══██╗██║     ██╔══██╗
   ██║   █████╗  ██╔██╗ ██║█████╗  ██║   ██║██║     ██║  ██║
   ██║   ██╔══╝  ██║╚██╗██║██╔══╝  ██║   ██║██║     ██║  ██║
   ██║   ███████╗██║ ╚████║██║     ╚██████╔╝███████╗██████╔╝
   ╚═╝   ╚══════╝╚═╝  ╚═══╝╚═╝      ╚═════╝ ╚══════╝╚═════╝`

const arcadeTitleCompact = "T · E · N · F · O · L · D   × 10"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact || cw < lipgloss.Width(arcadeTitleFull) {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderSetupCard shows what the next drill will look like.
func renderSetupCard(describe, advance string, cw int, compact bool) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	if compact {
		b.WriteString(valueStyle.Render(describe))
	} else {
		b.WriteString(labelStyle.Render("NEXT DRILL"))
		b.WriteString("\n")
		b.WriteString(valueStyle.Render(describe))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(advance))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(b.String())
}

// renderSettingsError explains why the drill cannot start.
func renderSettingsError(err error, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Warning).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("⚠ %v. Open SETTINGS to fix it.", err))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
