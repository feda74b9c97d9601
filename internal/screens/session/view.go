package session

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/tenfold/internal/session"
	"github.com/abhisek/tenfold/internal/ui/components"
	"github.com/abhisek/tenfold/internal/ui/layout"
	"github.com/abhisek/tenfold/internal/ui/theme"
)

// renderTaskView renders the info line, progress, task and answer input.
func (s *SessionScreen) renderTaskView(width, height int) string {
	state := s.state
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.progressBar(cw).View()))
	b.WriteString("\n\n\n")

	task := sess.CurrentTaskText(state)
	b.WriteString(components.Centered(theme.Task, task, width))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Answer ")+s.input.View()))
	b.WriteString("\n\n")

	if line := s.renderFeedback(); line != "" {
		b.WriteString(components.Centered(lipgloss.NewStyle(), line, width))
		b.WriteString("\n\n")
	}

	b.WriteString(components.Centered(theme.Hint,
		"Decimals use a comma. You can answer with a comma or a point.", width))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// urgentTimeLeft is when a timed drill's bar turns to the warning colour.
const urgentTimeLeft = 10 * time.Second

// progressBar shows done tasks in count mode and elapsed time against the
// limit in duration mode.
func (s *SessionScreen) progressBar(width int) components.ProgressBar {
	state := s.state
	t := state.Config.Termination
	bar := components.ProgressBar{Done: sess.Progress(state), Width: width}
	if t.Mode == sess.ModeDuration {
		bar.Caption = layout.FormatClock(sess.Elapsed(state)) + "/" + layout.FormatClock(t.Limit())
		bar.Urgent = sess.TimeLeft(state) < urgentTimeLeft
	} else {
		bar.Caption = fmt.Sprintf("%d/%d", t.Count-state.Remaining, t.Count)
	}
	return bar
}

// renderInfoLine shows correct, attempted and remaining tasks or time.
func (s *SessionScreen) renderInfoLine(width int) string {
	state := s.state
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var left string
	if state.Config.Termination.Mode == sess.ModeDuration {
		left = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render("Time left " + layout.FormatClock(sess.TimeLeft(state)))
	} else {
		left = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("Left %d of %d", state.Remaining, state.Config.Termination.Count))
	}

	right := fmt.Sprintf("%s %d   %s %d",
		lipgloss.NewStyle().Foreground(theme.Success).Render("Correct"), state.Correct,
		dim.Render("Attempted"), state.Attempted)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, left+dim.Render("   │   ")+right)
}

func (s *SessionScreen) renderFeedback() string {
	switch s.feedback.kind {
	case feedbackCorrect:
		return theme.Correct.Render(s.feedback.text)
	case feedbackIncorrect:
		return theme.Incorrect.Render(s.feedback.text)
	case feedbackWarning:
		return theme.Notice.Render(s.feedback.text)
	case feedbackInfo:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.feedback.text)
	}
	return ""
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(components.Centered(lipgloss.NewStyle().Foreground(theme.Text).Bold(true),
		"End drill early?", width))
	b.WriteString("\n")
	b.WriteString(components.Centered(lipgloss.NewStyle().Foreground(theme.TextDim),
		"You will see the result so far.", width))
	b.WriteString("\n\n")
	b.WriteString(components.Centered(lipgloss.NewStyle().Foreground(theme.Success),
		"[Y] Yes, end drill", width))
	b.WriteString("\n")
	b.WriteString(components.Centered(lipgloss.NewStyle().Foreground(theme.Primary),
		"[N] No, keep going", width))
	return b.String()
}

// renderLoading renders the state before the first task arrives.
func renderLoading(width int) string {
	return components.Centered(lipgloss.NewStyle().Foreground(theme.TextDim),
		"\n\n\n  Preparing your drill...", width)
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return components.Centered(lipgloss.NewStyle().Foreground(theme.Error),
		fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg), width)
}
