package session

import "time"

// Elapsed returns how long the session has run. A finished session reports
// its final duration.
func Elapsed(state *SessionState) time.Duration {
	if state.StartedAt.IsZero() {
		return 0
	}
	end := state.FinishedAt
	if end.IsZero() {
		end = state.now()
	}
	if d := end.Sub(state.StartedAt); d > 0 {
		return d
	}
	return 0
}

// TimeLeft returns the time until the deadline in duration mode, floored
// at zero. It is always zero in count mode.
func TimeLeft(state *SessionState) time.Duration {
	if state.Config.Termination.Mode != ModeDuration || state.Phase == PhaseFinished {
		return 0
	}
	if left := state.EndsAt.Sub(state.now()); left > 0 {
		return left
	}
	return 0
}

// Progress returns the completed fraction in [0, 1]: scored attempts over
// the task count, or elapsed time over the limit.
func Progress(state *SessionState) float64 {
	if state.Phase == PhaseFinished {
		return 1
	}
	t := state.Config.Termination
	var p float64
	switch t.Mode {
	case ModeCount:
		if t.Count > 0 {
			p = float64(t.Count-state.Remaining) / float64(t.Count)
		}
	case ModeDuration:
		if limit := t.Limit(); limit > 0 {
			p = float64(Elapsed(state)) / float64(limit)
		}
	}
	return min(max(p, 0), 1)
}
