package session

import (
	"time"

	"github.com/abhisek/tenfold/internal/problemgen"
)

// SessionPhase represents the lifecycle phase of a session.
type SessionPhase int

const (
	PhaseNotStarted SessionPhase = iota // Created, no task served yet
	PhaseRunning                        // Serving tasks
	PhaseFinished                       // Count reached or time expired
)

func (p SessionPhase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// SessionState tracks the runtime state of one drill session.
type SessionState struct {
	// ID is the UUID for this session.
	ID string

	// Config is the validated policy the session runs with.
	Config Config

	// Phase is the current lifecycle phase.
	Phase SessionPhase

	// Correct is the number of correct scored attempts.
	Correct int

	// Attempted is the number of scored attempts. Skips and unreadable
	// answers are not scored.
	Attempted int

	// Presented is the number of tasks shown, including replaced ones.
	Presented int

	// Skipped is the number of empty submissions.
	Skipped int

	// Remaining is the number of scored attempts left in count mode.
	Remaining int

	// StartedAt is when the session began.
	StartedAt time.Time

	// EndsAt is the deadline in duration mode, zero otherwise.
	EndsAt time.Time

	// FinishedAt is set once, when the session enters PhaseFinished.
	FinishedAt time.Time

	// CurrentTask is the task being shown (nil once finished).
	CurrentTask *problemgen.Task

	// LastResult is the outcome of the most recent submission.
	LastResult *Result

	generator problemgen.Generator
	now       func() time.Time
}

// Option customizes Start.
type Option func(*SessionState)

// WithClock replaces time.Now for deadline checks.
func WithClock(now func() time.Time) Option {
	return func(s *SessionState) {
		s.now = now
	}
}

// WithID sets the session ID instead of generating one.
func WithID(id string) Option {
	return func(s *SessionState) {
		s.ID = id
	}
}
