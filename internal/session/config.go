package session

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/abhisek/tenfold/internal/problemgen"
)

// Session length bounds.
const (
	MinCount   = 1
	MaxCount   = 999
	MinMinutes = 1
	MaxMinutes = 60
)

// ErrInvalidConfig is wrapped by every ConfigError.
var ErrInvalidConfig = errors.New("invalid session configuration")

// ConfigError describes a rejected configuration field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Mode selects how a session ends.
type Mode string

const (
	ModeCount    Mode = "count"    // after a fixed number of scored attempts
	ModeDuration Mode = "duration" // when the time limit passes
)

// ParseMode maps user or config text to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "count", "tasks", "n":
		return ModeCount, nil
	case "duration", "time", "timed", "minutes":
		return ModeDuration, nil
	}
	return "", &ConfigError{Field: "mode", Message: fmt.Sprintf("unknown mode %q", s)}
}

// Termination is the rule that ends a session. Only the field matching
// Mode is used.
type Termination struct {
	Mode    Mode
	Count   int
	Minutes int
}

// Limit returns the duration of a timed session, or zero in count mode.
func (t Termination) Limit() time.Duration {
	if t.Mode != ModeDuration {
		return 0
	}
	return time.Duration(t.Minutes) * time.Minute
}

// String renders the termination the way menus show it.
func (t Termination) String() string {
	if t.Mode == ModeDuration {
		if t.Minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", t.Minutes)
	}
	if t.Count == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", t.Count)
}

// Config is the immutable policy a session runs with.
type Config struct {
	Operations  []problemgen.Operation
	Factors     []problemgen.Factor
	Difficulty  problemgen.Difficulty
	Termination Termination
}

// Validate checks the configuration and collapses duplicate operations and
// factors so random picks stay uniform. The first problem found is returned
// as a *ConfigError.
func (c *Config) Validate() error {
	if len(c.Operations) == 0 {
		return &ConfigError{Field: "operations", Message: "at least one operation is required"}
	}
	for _, op := range c.Operations {
		if !op.Valid() {
			return &ConfigError{Field: "operations", Message: fmt.Sprintf("unknown operation %q", string(op))}
		}
	}
	if len(c.Factors) == 0 {
		return &ConfigError{Field: "factors", Message: "at least one factor is required"}
	}
	for _, f := range c.Factors {
		if !f.Valid() {
			return &ConfigError{Field: "factors", Message: fmt.Sprintf("factor %d is not one of 10, 100, 1000", int(f))}
		}
	}
	if !c.Difficulty.Valid() {
		return &ConfigError{Field: "difficulty", Message: fmt.Sprintf("unknown difficulty %q", string(c.Difficulty))}
	}

	switch c.Termination.Mode {
	case ModeCount:
		if c.Termination.Count < MinCount || c.Termination.Count > MaxCount {
			return &ConfigError{Field: "count", Message: fmt.Sprintf("must be between %d and %d, got %d", MinCount, MaxCount, c.Termination.Count)}
		}
	case ModeDuration:
		if c.Termination.Minutes < MinMinutes || c.Termination.Minutes > MaxMinutes {
			return &ConfigError{Field: "minutes", Message: fmt.Sprintf("must be between %d and %d, got %d", MinMinutes, MaxMinutes, c.Termination.Minutes)}
		}
	default:
		return &ConfigError{Field: "mode", Message: fmt.Sprintf("unknown mode %q", string(c.Termination.Mode))}
	}

	c.Operations = dedupe(c.Operations)
	c.Factors = dedupe(c.Factors)
	return nil
}

// GenerateInput returns the generator policy for this configuration.
func (c Config) GenerateInput() problemgen.GenerateInput {
	return problemgen.GenerateInput{
		Operations: c.Operations,
		Factors:    c.Factors,
		Difficulty: c.Difficulty,
	}
}

func dedupe[T comparable](in []T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
