package session

import (
	"github.com/abhisek/tenfold/internal/screen"
	"github.com/abhisek/tenfold/internal/screens/summary"
	sess "github.com/abhisek/tenfold/internal/session"
)

// newSummaryScreenAdapter creates a summary screen whose restart action
// reruns the finished session with the same configuration.
func newSummaryScreenAdapter(state *sess.SessionState, policy sess.AdvancePolicy) screen.Screen {
	return summary.New(sess.BuildSummary(state), func() screen.Screen {
		return NewRestart(state, policy)
	})
}
