package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tenfold/internal/router"
	"github.com/abhisek/tenfold/internal/screen"
	"github.com/abhisek/tenfold/internal/session"
	"github.com/abhisek/tenfold/internal/ui/components"
	"github.com/abhisek/tenfold/internal/ui/layout"
	"github.com/abhisek/tenfold/internal/ui/theme"
)

// SummaryScreen displays the result of a finished session.
type SummaryScreen struct {
	summary *session.SessionSummary
	restart func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscapeHandler = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. restart builds the screen shown when the
// learner asks for another round; it may be nil.
func New(summary *session.SessionSummary, restart func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, restart: restart}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Result"
}

// HandlesEscape is true because Esc goes all the way home.
func (s *SummaryScreen) HandlesEscape() bool {
	return true
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Home"}}
	if s.restart != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Again"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "esc", "q":
		// The session screen was replaced by this one, so home is the root.
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case "r", "R":
		if s.restart == nil {
			return s, nil
		}
		next := s.restart()
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	cw := components.ContentWidth(width)
	text := lipgloss.NewStyle().Foreground(theme.Text)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder

	b.WriteString(components.Centered(theme.Title, "Drill complete!", width))
	b.WriteString("\n\n")

	var card strings.Builder
	card.WriteString(text.Bold(true).Render(
		fmt.Sprintf("Correct: %d of %d", sum.Correct, sum.Attempted)))
	card.WriteString("\n")
	if sum.Attempted > 0 {
		card.WriteString(lipgloss.NewStyle().Foreground(accuracyColor(sum)).Bold(true).Render(
			fmt.Sprintf("Accuracy: %d%%", sum.AccuracyPercent)))
	} else {
		card.WriteString(dim.Render("No answers given"))
	}
	card.WriteString("\n\n")
	card.WriteString(dim.Render(fmt.Sprintf("Tasks shown: %d   Skipped: %d", sum.Presented, sum.Skipped)))
	card.WriteString("\n")
	card.WriteString(dim.Render(fmt.Sprintf("Time: %s   Limit: %s", layout.FormatClock(sum.Duration), sum.Termination)))

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.ArcadeCard(card.String(), cw)))
	b.WriteString("\n\n")

	if sum.IsPerfect {
		b.WriteString(components.Centered(
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true),
			"★ Perfect session! 🏆 ★", width))
	} else {
		b.WriteString(components.Centered(theme.Subtitle, "Well done!", width))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func accuracyColor(sum *session.SessionSummary) color.Color {
	switch {
	case sum.AccuracyPercent >= 90:
		return theme.Success
	case sum.AccuracyPercent >= 60:
		return theme.Accent
	default:
		return theme.Error
	}
}
