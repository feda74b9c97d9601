package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tenfold/internal/problemgen"
	"github.com/abhisek/tenfold/internal/router"
	"github.com/abhisek/tenfold/internal/screen"
	sess "github.com/abhisek/tenfold/internal/session"
	"github.com/abhisek/tenfold/internal/ui/components"
	"github.com/abhisek/tenfold/internal/ui/layout"
)

// feedbackKind selects the style of the feedback line.
type feedbackKind int

const (
	feedbackNone feedbackKind = iota
	feedbackCorrect
	feedbackIncorrect
	feedbackWarning
	feedbackInfo
)

type feedback struct {
	kind feedbackKind
	text string
}

// SessionScreen implements screen.Screen for a running drill.
type SessionScreen struct {
	cfg       sess.Config
	policy    sess.AdvancePolicy
	generator problemgen.Generator
	opts      []sess.Option

	// restart is set when the screen reruns a finished session.
	restart *sess.SessionState

	state       *sess.SessionState
	input       components.TextInput
	feedback    feedback
	confirmQuit bool
	ended       bool
	errMsg      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)
var _ screen.EscapeHandler = (*SessionScreen)(nil)

// New creates a SessionScreen that starts a session with cfg when shown.
func New(cfg sess.Config, policy sess.AdvancePolicy, generator problemgen.Generator, opts ...sess.Option) *SessionScreen {
	return &SessionScreen{
		cfg:       cfg,
		policy:    policy,
		generator: generator,
		opts:      opts,
		input:     newAnswerInput(),
	}
}

// NewRestart creates a SessionScreen that restarts a finished session.
func NewRestart(state *sess.SessionState, policy sess.AdvancePolicy) *SessionScreen {
	return &SessionScreen{
		cfg:     state.Config,
		policy:  policy,
		restart: state,
		input:   newAnswerInput(),
	}
}

func newAnswerInput() components.TextInput {
	return components.NewTextInput("e.g. 12,5", true, 24)
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(
		s.initSession(),
		s.input.Init(),
	)
}

func (s *SessionScreen) Title() string {
	return "Drill"
}

// Status shows the running score and what is left in the header.
func (s *SessionScreen) Status() layout.Score {
	if s.state == nil {
		return layout.Score{}
	}
	return layout.Score{
		Correct:   s.state.Correct,
		Attempted: s.state.Attempted,
		Left:      s.left(),
	}
}

// left is the remaining time as m:ss or the remaining task count.
func (s *SessionScreen) left() string {
	if s.state.Config.Termination.Mode == sess.ModeDuration {
		return layout.FormatClock(sess.TimeLeft(s.state))
	}
	return fmt.Sprintf("%d left", s.state.Remaining)
}

// HandlesEscape is true because Esc opens the quit confirmation.
func (s *SessionScreen) HandlesEscape() bool {
	return s.errMsg == ""
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End drill"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Ctrl+N", Description: "New task"},
		{Key: "Esc", Description: "End"},
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	return s.renderTaskView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return s.handleInit(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward to input while a task is shown (cursor blink and paste).
	if s.state != nil && !s.confirmQuit && s.errMsg == "" {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// initSession starts the session, or restarts the finished one.
func (s *SessionScreen) initSession() tea.Cmd {
	restart := s.restart
	cfg, gen, opts := s.cfg, s.generator, s.opts
	return func() tea.Msg {
		if restart != nil {
			if err := sess.Restart(restart); err != nil {
				return sessionInitMsg{Err: err}
			}
			return sessionInitMsg{State: restart}
		}
		state, err := sess.Start(cfg, gen, opts...)
		return sessionInitMsg{State: state, Err: err}
	}
}

func (s *SessionScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	s.restart = nil
	return s, tickCmd()
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, nil
	}
	if s.state.Phase == sess.PhaseFinished {
		return s, nil
	}
	if sess.IsFinished(s.state) {
		return s, endCmd()
	}
	return s, tickCmd()
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.ended {
		return s, nil
	}
	s.ended = true
	sess.Finish(s.state)

	next := newSummaryScreenAdapter(s.state, s.policy)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.state == nil {
		return s, nil
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s, endCmd()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	case "ctrl+n":
		return s.requestNewTask()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer scores the typed answer and applies the advance policy.
// Empty input is ignored.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	raw := s.input.Value()
	if strings.TrimSpace(raw) == "" {
		return s, nil
	}

	res, err := sess.HandleAnswer(s.state, raw)
	if errors.Is(err, sess.ErrSessionFinished) {
		return s, endCmd()
	}
	if err != nil {
		s.feedback = feedback{kind: feedbackWarning, text: err.Error()}
		return s, nil
	}

	advance := s.policy.ShouldAdvance(res)
	s.feedback = feedbackFor(res, advance, s.policy)
	s.input.Reset()

	if res.Finished {
		return s, endCmd()
	}
	if advance {
		if err := sess.NextTask(s.state); err != nil {
			s.errMsg = err.Error()
		}
	}
	return s, nil
}

func (s *SessionScreen) requestNewTask() (screen.Screen, tea.Cmd) {
	if sess.IsFinished(s.state) {
		return s, endCmd()
	}
	if err := sess.NextTask(s.state); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.input.Reset()
	s.feedback = feedback{kind: feedbackInfo, text: "New task."}
	return s, nil
}

func feedbackFor(res sess.Result, advanced bool, policy sess.AdvancePolicy) feedback {
	switch res.Outcome {
	case sess.OutcomeCorrect:
		if !advanced && policy == sess.AdvanceManual && res.CanAdvance {
			return feedback{kind: feedbackCorrect, text: "Correct! ✅  Press Ctrl+N for a new task."}
		}
		return feedback{kind: feedbackCorrect, text: "Correct! ✅"}
	case sess.OutcomeIncorrect:
		if advanced || res.Finished {
			return feedback{kind: feedbackIncorrect, text: fmt.Sprintf("Wrong. The correct answer was %s.", res.Revealed)}
		}
		return feedback{kind: feedbackIncorrect, text: "Wrong. Try again."}
	case sess.OutcomeParseError:
		return feedback{kind: feedbackWarning, text: "Could not read the answer. Use digits with a comma or a point."}
	}
	return feedback{}
}

func endCmd() tea.Cmd {
	return func() tea.Msg { return sessionEndMsg{} }
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
