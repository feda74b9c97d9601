package session

import (
	"time"

	sess "github.com/abhisek/tenfold/internal/session"
)

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// sessionInitMsg is sent when the session has started (or restarted).
type sessionInitMsg struct {
	State *sess.SessionState
	Err   error
}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}
