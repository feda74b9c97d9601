package session

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/tenfold/internal/problemgen"
)

var (
	// ErrSessionFinished is returned when submitting to a finished session.
	ErrSessionFinished = errors.New("session is finished")

	// ErrNoTask is returned when there is no task to answer.
	ErrNoTask = errors.New("no current task")
)

// Start validates cfg, creates a running session and serves its first task.
// A nil generator is replaced with a time-seeded DrillGenerator.
func Start(cfg Config, gen problemgen.Generator, opts ...Option) (*SessionState, error) {
	cfg.Operations = append([]problemgen.Operation(nil), cfg.Operations...)
	cfg.Factors = append([]problemgen.Factor(nil), cfg.Factors...)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	if gen == nil {
		gen = problemgen.New(nil)
	}

	state := &SessionState{
		Config:    cfg,
		Phase:     PhaseNotStarted,
		generator: gen,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(state)
	}
	if state.ID == "" {
		state.ID = uuid.NewString()
	}

	if err := begin(state); err != nil {
		return nil, err
	}
	log.Printf("session %s started: %s", state.ID, state.Config.Termination)
	return state, nil
}

// Restart resets counters and timestamps and serves a new first task with
// the same configuration. The session gets a new ID.
func Restart(state *SessionState) error {
	state.ID = uuid.NewString()
	state.Correct = 0
	state.Attempted = 0
	state.Presented = 0
	state.Skipped = 0
	state.FinishedAt = time.Time{}
	state.LastResult = nil
	state.Phase = PhaseNotStarted

	if err := begin(state); err != nil {
		return err
	}
	log.Printf("session %s restarted: %s", state.ID, state.Config.Termination)
	return nil
}

func begin(state *SessionState) error {
	state.StartedAt = state.now()
	state.EndsAt = time.Time{}
	state.Remaining = 0
	switch state.Config.Termination.Mode {
	case ModeCount:
		state.Remaining = state.Config.Termination.Count
	case ModeDuration:
		state.EndsAt = state.StartedAt.Add(state.Config.Termination.Limit())
	}
	state.Phase = PhaseRunning

	task, err := state.generator.Generate(state.Config.GenerateInput())
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	state.CurrentTask = task
	state.Presented = 1
	return nil
}

// NextTask replaces the current task with a new one. It does nothing once
// the session is finished.
func NextTask(state *SessionState) error {
	if IsFinished(state) || state.Phase != PhaseRunning {
		return nil
	}
	task, err := state.generator.Generate(state.Config.GenerateInput())
	if err != nil {
		return fmt.Errorf("next task: %w", err)
	}
	state.CurrentTask = task
	state.Presented++
	return nil
}

// HandleAnswer scores a learner submission against the current task.
//
// An empty submission is a skip and an unreadable one is a parse error.
// Neither changes the score or the remaining count; both reveal the answer.
// A scored attempt updates the counters and, in count mode, may finish the
// session. The current task is never replaced here.
func HandleAnswer(state *SessionState, raw string) (Result, error) {
	if IsFinished(state) {
		return Result{}, ErrSessionFinished
	}
	if state.Phase != PhaseRunning || state.CurrentTask == nil {
		return Result{}, ErrNoTask
	}

	task := state.CurrentTask
	r := Result{
		Revealed:  task.Answer,
		Submitted: raw,
	}

	value, err := problemgen.ParseAnswer(raw)
	switch {
	case errors.Is(err, problemgen.ErrEmptyAnswer):
		r.Outcome = OutcomeSkipped
		state.Skipped++
	case err != nil:
		r.Outcome = OutcomeParseError
	default:
		state.Attempted++
		if problemgen.AmountsEqual(value, task.Result) {
			r.Outcome = OutcomeCorrect
			state.Correct++
		} else {
			r.Outcome = OutcomeIncorrect
		}
		if state.Config.Termination.Mode == ModeCount {
			state.Remaining = max(state.Remaining-1, 0)
			if state.Remaining == 0 {
				finish(state)
				r.Finished = true
			}
		}
	}

	r.CanAdvance = state.Phase == PhaseRunning
	state.LastResult = &r
	return r, nil
}

// IsFinished reports whether the session has ended. In duration mode a
// passed deadline finishes the session here.
func IsFinished(state *SessionState) bool {
	if state.Phase == PhaseFinished {
		return true
	}
	if state.Phase == PhaseRunning && state.Config.Termination.Mode == ModeDuration &&
		!state.now().Before(state.EndsAt) {
		finish(state)
		return true
	}
	return false
}

// Finish ends a running session early.
func Finish(state *SessionState) {
	if state.Phase != PhaseFinished {
		finish(state)
	}
}

func finish(state *SessionState) {
	state.Phase = PhaseFinished
	state.FinishedAt = state.now()
	if state.Config.Termination.Mode == ModeDuration && state.FinishedAt.After(state.EndsAt) {
		state.FinishedAt = state.EndsAt
	}
	state.CurrentTask = nil
	log.Printf("session %s finished: %d/%d correct, %d presented",
		state.ID, state.Correct, state.Attempted, state.Presented)
}

// CurrentTaskText returns the text of the task being shown, or "" when
// there is none.
func CurrentTaskText(state *SessionState) string {
	if state.CurrentTask == nil {
		return ""
	}
	return state.CurrentTask.Text
}
