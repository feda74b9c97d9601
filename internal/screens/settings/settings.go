// Package settings implements the screen where the learner picks
// operations, factors, number type and session length.
package settings

import (
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tenfold/internal/config"
	"github.com/abhisek/tenfold/internal/problemgen"
	"github.com/abhisek/tenfold/internal/router"
	"github.com/abhisek/tenfold/internal/screen"
	"github.com/abhisek/tenfold/internal/session"
	"github.com/abhisek/tenfold/internal/ui/components"
	"github.com/abhisek/tenfold/internal/ui/layout"
	"github.com/abhisek/tenfold/internal/ui/theme"
)

// Row order on screen.
const (
	rowOperations = iota
	rowFactors
	rowDifficulty
	rowMode
	rowCount
	rowMinutes
	rowAdvance
	numRows
)

const labelWidth = 14

var (
	operationChoices = [][]string{
		{string(problemgen.OpMultiply)},
		{string(problemgen.OpDivide)},
		{string(problemgen.OpMultiply), string(problemgen.OpDivide)},
	}
	operationLabels = []string{"Multiply (·)", "Divide (:)", "Both"}

	factorChoices = [][]int{{10}, {100}, {1000}, {10, 100, 1000}}
	factorLabels  = []string{"10", "100", "1000", "All"}

	modeChoices = []session.Mode{session.ModeCount, session.ModeDuration}
	modeLabels  = []string{"Number of tasks", "Time limit"}
)

// SettingsScreen edits a config.Settings in place. Changes are saved when
// the screen is left.
type SettingsScreen struct {
	settings *config.Settings

	operations components.OptionRow
	factors    components.OptionRow
	difficulty components.OptionRow
	mode       components.OptionRow
	advance    components.OptionRow

	// factorChoices may carry one extra entry for a combination that came
	// from the config file.
	factorChoices [][]int

	count   int
	minutes int
	focus   int
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)
var _ screen.EscapeHandler = (*SettingsScreen)(nil)

// New creates a SettingsScreen editing s.
func New(s *config.Settings) *SettingsScreen {
	sc := &SettingsScreen{
		settings:      s,
		factorChoices: slices.Clone(factorChoices),
		count:         clamp(s.Count, session.MinCount, session.MaxCount),
		minutes:       clamp(s.Minutes, session.MinMinutes, session.MaxMinutes),
	}

	sc.operations = components.NewOptionRow("Operations", operationLabels, operationIndex(s.Operations))

	labels := slices.Clone(factorLabels)
	fi := slices.IndexFunc(sc.factorChoices, func(c []int) bool { return sameInts(c, s.Factors) })
	if fi < 0 && len(s.Factors) > 0 {
		sc.factorChoices = append(sc.factorChoices, slices.Clone(s.Factors))
		labels = append(labels, joinInts(s.Factors))
		fi = len(labels) - 1
	}
	sc.factors = components.NewOptionRow("Factors", labels, fi)

	diffLabels := make([]string, len(problemgen.AllDifficulties))
	for i, d := range problemgen.AllDifficulties {
		diffLabels[i] = d.DisplayName()
	}
	sc.difficulty = components.NewOptionRow("Numbers", diffLabels, difficultyIndex(s.Difficulty))

	mi := 0
	if m, err := session.ParseMode(s.Mode); err == nil && m == session.ModeDuration {
		mi = 1
	}
	sc.mode = components.NewOptionRow("Session", modeLabels, mi)

	advLabels := make([]string, len(session.AllAdvancePolicies))
	for i, p := range session.AllAdvancePolicies {
		advLabels[i] = p.DisplayName()
	}
	sc.advance = components.NewOptionRow("After answer", advLabels, advanceIndex(s.Advance))

	return sc
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

// HandlesEscape is true because Esc saves before leaving.
func (s *SettingsScreen) HandlesEscape() bool {
	return true
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Save"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		s.focus = (s.focus - 1 + numRows) % numRows
		return s, nil
	case "down", "j", "tab":
		s.focus = (s.focus + 1) % numRows
		return s, nil
	case "enter", "esc":
		s.save()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.focus {
	case rowOperations:
		s.operations, _ = s.operations.Update(msg)
	case rowFactors:
		s.factors, _ = s.factors.Update(msg)
	case rowDifficulty:
		s.difficulty, _ = s.difficulty.Update(msg)
	case rowMode:
		s.mode, _ = s.mode.Update(msg)
	case rowCount:
		s.count = step(kmsg.String(), s.count, session.MinCount, session.MaxCount)
	case rowMinutes:
		s.minutes = step(kmsg.String(), s.minutes, session.MinMinutes, session.MaxMinutes)
	case rowAdvance:
		s.advance, _ = s.advance.Update(msg)
	}
	return s, nil
}

// save writes the selections back to the settings.
func (s *SettingsScreen) save() {
	st := s.settings
	st.Operations = slices.Clone(operationChoices[s.operations.Selected])
	st.Factors = slices.Clone(s.factorChoices[s.factors.Selected])
	st.Difficulty = string(problemgen.AllDifficulties[s.difficulty.Selected])
	st.Mode = string(modeChoices[s.mode.Selected])
	st.Count = s.count
	st.Minutes = s.minutes
	st.Advance = string(session.AllAdvancePolicies[s.advance.Selected])
	log.Printf("settings saved: %s", st.Describe())
}

func (s *SettingsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	timed := modeChoices[s.mode.Selected] == session.ModeDuration

	lines := []string{
		s.operations.View(s.focus == rowOperations, labelWidth),
		s.factors.View(s.focus == rowFactors, labelWidth),
		s.difficulty.View(s.focus == rowDifficulty, labelWidth),
		s.mode.View(s.focus == rowMode, labelWidth),
		numberRow("Tasks", strconv.Itoa(s.count), s.focus == rowCount, !timed),
		numberRow("Minutes", strconv.Itoa(s.minutes), s.focus == rowMinutes, timed),
		s.advance.View(s.focus == rowAdvance, labelWidth),
	}

	var b strings.Builder
	b.WriteString(components.Centered(theme.Title, "Drill settings", width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.ArcadeCard(lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.Join(lines, "\n")), cw)))
	b.WriteString("\n\n")
	b.WriteString(components.Centered(theme.Hint, "PgUp/PgDn change tasks and minutes by 10.", width))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// numberRow renders a numeric row. The row not used by the current
// session mode is dimmed.
func numberRow(label, value string, focused, active bool) string {
	if pad := labelWidth - lipgloss.Width(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}
	if focused {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+label) +
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("‹ "+value+" ›")
	}
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if !active {
		valueStyle = valueStyle.Foreground(theme.Border)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+label) +
		valueStyle.Render("  "+value)
}

func step(key string, v, lo, hi int) int {
	switch key {
	case "left", "h", "-":
		v--
	case "right", "l", "+":
		v++
	case "pgdown":
		v -= 10
	case "pgup":
		v += 10
	}
	return clamp(v, lo, hi)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func operationIndex(ops []string) int {
	var mul, div bool
	for _, raw := range ops {
		switch op, _ := problemgen.ParseOperation(raw); op {
		case problemgen.OpMultiply:
			mul = true
		case problemgen.OpDivide:
			div = true
		}
	}
	switch {
	case mul && !div:
		return 0
	case div && !mul:
		return 1
	}
	return 2
}

// difficultyIndex resolves aliases such as "decimals" or "hel". Unknown
// values select mixed, the default.
func difficultyIndex(raw string) int {
	d, err := problemgen.ParseDifficulty(raw)
	if err != nil {
		d = problemgen.DifficultyMixed
	}
	return max(slices.Index(problemgen.AllDifficulties, d), 0)
}

// advanceIndex resolves aliases such as "every" or "never". Unknown values
// select on-correct, the default.
func advanceIndex(raw string) int {
	p, err := session.ParseAdvancePolicy(raw)
	if err != nil {
		p = session.AdvanceOnCorrect
	}
	return max(slices.Index(session.AllAdvancePolicies, p), 0)
}

func sameInts(a, b []int) bool {
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(slices.Compact(a), slices.Compact(b))
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
