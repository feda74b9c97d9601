package session

import (
	"fmt"
	"strings"
)

// Outcome classifies a submission.
type Outcome int

const (
	OutcomeCorrect    Outcome = iota // scored, matches the answer
	OutcomeIncorrect                 // scored, does not match
	OutcomeSkipped                   // empty submission, not scored
	OutcomeParseError                // unreadable submission, not scored
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeParseError:
		return "parse-error"
	}
	return "unknown"
}

// Scored reports whether the outcome counted as an attempt.
func (o Outcome) Scored() bool {
	return o == OutcomeCorrect || o == OutcomeIncorrect
}

// Result describes what a submission did.
type Result struct {
	Outcome Outcome

	// Revealed is the correct answer rendered for display.
	Revealed string

	// Submitted is the raw learner input.
	Submitted string

	// Finished is true when this submission ended the session.
	Finished bool

	// CanAdvance is true while the session is still running. The engine
	// never replaces the task on its own; front-ends call NextTask.
	CanAdvance bool
}

// AdvancePolicy decides whether a front-end moves to a new task after a
// submission.
type AdvancePolicy string

const (
	AdvanceOnCorrect    AdvancePolicy = "on-correct"
	AdvanceEveryAttempt AdvancePolicy = "every-attempt"
	AdvanceManual       AdvancePolicy = "manual"
)

// AllAdvancePolicies lists the policies in menu order.
var AllAdvancePolicies = []AdvancePolicy{AdvanceOnCorrect, AdvanceEveryAttempt, AdvanceManual}

// ParseAdvancePolicy maps user or config text to an AdvancePolicy.
func ParseAdvancePolicy(s string) (AdvancePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on-correct", "correct", "oncorrect":
		return AdvanceOnCorrect, nil
	case "every-attempt", "every", "always":
		return AdvanceEveryAttempt, nil
	case "manual", "never":
		return AdvanceManual, nil
	}
	return "", &ConfigError{Field: "advance", Message: fmt.Sprintf("unknown advance policy %q", s)}
}

// DisplayName returns the label used in menus.
func (p AdvancePolicy) DisplayName() string {
	switch p {
	case AdvanceOnCorrect:
		return "New task when correct"
	case AdvanceEveryAttempt:
		return "New task after every answer"
	case AdvanceManual:
		return "New task on request"
	}
	return string(p)
}

// ShouldAdvance reports whether the front-end should request a new task
// after r. Skips and unreadable answers never advance under this policy.
func (p AdvancePolicy) ShouldAdvance(r Result) bool {
	if !r.CanAdvance {
		return false
	}
	switch p {
	case AdvanceOnCorrect:
		return r.Outcome == OutcomeCorrect
	case AdvanceEveryAttempt:
		return r.Outcome.Scored()
	}
	return false
}
