package session

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionSummary holds the data displayed when a session ends.
type SessionSummary struct {
	ID          string
	Correct     int
	Attempted   int
	Presented   int
	Skipped     int
	Duration    time.Duration
	Termination Termination

	// AccuracyPercent is 100·Correct/Attempted rounded half to even, or 0
	// when nothing was attempted.
	AccuracyPercent int

	// IsPerfect is true when at least one attempt was made and all were correct.
	IsPerfect bool
}

// BuildSummary creates a SessionSummary from the current session state.
func BuildSummary(state *SessionState) *SessionSummary {
	return &SessionSummary{
		ID:              state.ID,
		Correct:         state.Correct,
		Attempted:       state.Attempted,
		Presented:       state.Presented,
		Skipped:         state.Skipped,
		Duration:        Elapsed(state),
		Termination:     state.Config.Termination,
		AccuracyPercent: AccuracyPercent(state.Correct, state.Attempted),
		IsPerfect:       state.Attempted > 0 && state.Correct == state.Attempted,
	}
}

// AccuracyPercent returns 100·correct/attempted as a whole percentage,
// rounding ties to even (1/8 gives 12, 2/3 gives 67).
func AccuracyPercent(correct, attempted int) int {
	if attempted <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(correct)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(attempted)), 16).
		RoundBank(0)
	return int(pct.IntPart())
}
