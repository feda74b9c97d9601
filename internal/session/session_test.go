package session

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tenfold/internal/problemgen"
)

// fixedGenerator serves the same task every time.
type fixedGenerator struct {
	operand string
	op      problemgen.Operation
	factor  problemgen.Factor
	calls   int
	err     error
}

func (g *fixedGenerator) Generate(problemgen.GenerateInput) (*problemgen.Task, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return problemgen.NewTask(decimal.RequireFromString(g.operand), g.op, g.factor), nil
}

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func countConfig(n int) Config {
	return Config{
		Operations:  []problemgen.Operation{problemgen.OpMultiply},
		Factors:     []problemgen.Factor{problemgen.Factor100},
		Difficulty:  problemgen.DifficultyWhole,
		Termination: Termination{Mode: ModeCount, Count: n},
	}
}

func durationConfig(minutes int) Config {
	cfg := countConfig(0)
	cfg.Termination = Termination{Mode: ModeDuration, Minutes: minutes}
	return cfg
}

func TestStart_CountSession(t *testing.T) {
	gen := &fixedGenerator{operand: "7", op: problemgen.OpMultiply, factor: problemgen.Factor100}
	state, err := Start(countConfig(1), gen)
	require.NoError(t, err)

	assert.Equal(t, PhaseRunning, state.Phase)
	assert.Equal(t, "7 · 100 = ?", CurrentTaskText(state))
	assert.Equal(t, 1, state.Presented)
	assert.Equal(t, 1, state.Remaining)
	assert.NotEmpty(t, state.ID)

	r, err := HandleAnswer(state, "700")
	require.NoError(t, err)
	assert.Equal(t, OutcomeCorrect, r.Outcome)
	assert.True(t, r.Finished)
	assert.False(t, r.CanAdvance)

	assert.True(t, IsFinished(state))
	assert.Equal(t, 1, state.Correct)
	assert.Equal(t, 1, state.Attempted)
	assert.Equal(t, 0, state.Remaining)
	assert.Empty(t, CurrentTaskText(state))

	_, err = HandleAnswer(state, "700")
	assert.ErrorIs(t, err, ErrSessionFinished)
}

func TestStart_InvalidConfig(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"no operations", Config{Factors: problemgen.AllFactors, Difficulty: problemgen.DifficultyWhole, Termination: Termination{Mode: ModeCount, Count: 5}}, "operations"},
		{"no factors", Config{Operations: problemgen.AllOperations, Difficulty: problemgen.DifficultyWhole, Termination: Termination{Mode: ModeCount, Count: 5}}, "factors"},
		{"bad factor", Config{Operations: problemgen.AllOperations, Factors: []problemgen.Factor{50}, Difficulty: problemgen.DifficultyWhole, Termination: Termination{Mode: ModeCount, Count: 5}}, "factors"},
		{"bad difficulty", Config{Operations: problemgen.AllOperations, Factors: problemgen.AllFactors, Difficulty: "hard", Termination: Termination{Mode: ModeCount, Count: 5}}, "difficulty"},
		{"zero count", countConfig(0), "count"},
		{"huge count", countConfig(1000), "count"},
		{"zero minutes", durationConfig(0), "minutes"},
		{"long session", durationConfig(61), "minutes"},
		{"no mode", Config{Operations: problemgen.AllOperations, Factors: problemgen.AllFactors, Difficulty: problemgen.DifficultyWhole}, "mode"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Start(tc.cfg, &fixedGenerator{operand: "1", op: problemgen.OpMultiply, factor: 10})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestConfig_ValidateDedupes(t *testing.T) {
	cfg := Config{
		Operations:  []problemgen.Operation{problemgen.OpDivide, problemgen.OpDivide, problemgen.OpMultiply},
		Factors:     []problemgen.Factor{10, 10, 1000},
		Difficulty:  problemgen.DifficultyMixed,
		Termination: Termination{Mode: ModeCount, Count: 999},
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []problemgen.Operation{problemgen.OpDivide, problemgen.OpMultiply}, cfg.Operations)
	assert.Equal(t, []problemgen.Factor{10, 1000}, cfg.Factors)
}

func TestHandleAnswer_EmptyNeverChangesCounts(t *testing.T) {
	gen := &fixedGenerator{operand: "0.07", op: problemgen.OpDivide, factor: problemgen.Factor1000}
	state, err := Start(countConfig(3), gen)
	require.NoError(t, err)

	for _, raw := range []string{"", "   ", "\t"} {
		r, err := HandleAnswer(state, raw)
		require.NoError(t, err)
		assert.Equal(t, OutcomeSkipped, r.Outcome)
		assert.Equal(t, "0,00007", r.Revealed)
		assert.True(t, r.CanAdvance)
	}
	assert.Equal(t, 0, state.Correct)
	assert.Equal(t, 0, state.Attempted)
	assert.Equal(t, 3, state.Remaining)
	assert.Equal(t, 3, state.Skipped)
	assert.Equal(t, PhaseRunning, state.Phase)
}

func TestHandleAnswer_ParseError(t *testing.T) {
	gen := &fixedGenerator{operand: "7.03", op: problemgen.OpMultiply, factor: problemgen.Factor100}
	state, err := Start(countConfig(2), gen)
	require.NoError(t, err)

	r, err := HandleAnswer(state, "seven hundred")
	require.NoError(t, err)
	assert.Equal(t, OutcomeParseError, r.Outcome)
	assert.Equal(t, "703", r.Revealed)
	assert.Equal(t, 0, state.Attempted)
	assert.Equal(t, 2, state.Remaining)
	assert.Equal(t, 0, state.Skipped)
}

func TestHandleAnswer_CommaAndPoint(t *testing.T) {
	gen := &fixedGenerator{operand: "125", op: problemgen.OpDivide, factor: problemgen.Factor10}
	state, err := Start(countConfig(10), gen)
	require.NoError(t, err)

	for _, raw := range []string{"12,5", "12.5", "12,50"} {
		r, err := HandleAnswer(state, raw)
		require.NoError(t, err)
		assert.Equal(t, OutcomeCorrect, r.Outcome, "input %q", raw)
	}
	assert.Equal(t, 3, state.Correct)
	assert.Equal(t, 7, state.Remaining)
}

func TestHandleAnswer_IncorrectKeepsTask(t *testing.T) {
	gen := &fixedGenerator{operand: "7", op: problemgen.OpMultiply, factor: problemgen.Factor100}
	state, err := Start(countConfig(5), gen)
	require.NoError(t, err)
	task := state.CurrentTask

	r, err := HandleAnswer(state, "70")
	require.NoError(t, err)
	assert.Equal(t, OutcomeIncorrect, r.Outcome)
	assert.Equal(t, "700", r.Revealed)
	assert.Same(t, task, state.CurrentTask)
	assert.Equal(t, 1, state.Attempted)
	assert.Equal(t, 0, state.Correct)
	assert.Equal(t, 4, state.Remaining)
	assert.Equal(t, 1, gen.calls)
}

func TestNextTask(t *testing.T) {
	gen := &fixedGenerator{operand: "7", op: problemgen.OpMultiply, factor: problemgen.Factor100}
	state, err := Start(countConfig(1), gen)
	require.NoError(t, err)

	require.NoError(t, NextTask(state))
	assert.Equal(t, 2, state.Presented)
	assert.Equal(t, 0, state.Attempted)
	assert.Equal(t, 1, state.Remaining)

	_, err = HandleAnswer(state, "700")
	require.NoError(t, err)
	require.True(t, IsFinished(state))

	require.NoError(t, NextTask(state))
	assert.Equal(t, 2, state.Presented)
	assert.Nil(t, state.CurrentTask)
}

func TestNextTask_GeneratorError(t *testing.T) {
	gen := &fixedGenerator{operand: "7", op: problemgen.OpMultiply, factor: problemgen.Factor100}
	state, err := Start(countConfig(3), gen)
	require.NoError(t, err)

	gen.err = problemgen.ErrNoFactors
	err = NextTask(state)
	assert.ErrorIs(t, err, problemgen.ErrNoFactors)
	assert.Equal(t, 1, state.Presented)
}

func TestDurationSession(t *testing.T) {
	clock := newClock()
	gen := &fixedGenerator{operand: "3", op: problemgen.OpMultiply, factor: problemgen.Factor10}
	state, err := Start(durationConfig(2), gen, WithClock(clock.Now), WithID("drill-1"))
	require.NoError(t, err)
	assert.Equal(t, "drill-1", state.ID)
	assert.Equal(t, 2*time.Minute, TimeLeft(state))

	clock.Advance(30 * time.Second)
	r, err := HandleAnswer(state, "30")
	require.NoError(t, err)
	assert.Equal(t, OutcomeCorrect, r.Outcome)
	assert.False(t, r.Finished)
	assert.InDelta(t, 0.25, Progress(state), 1e-9)
	assert.Equal(t, 90*time.Second, TimeLeft(state))

	clock.Advance(90 * time.Second)
	_, err = HandleAnswer(state, "30")
	assert.ErrorIs(t, err, ErrSessionFinished)
	assert.Equal(t, PhaseFinished, state.Phase)
	assert.Equal(t, 1, state.Attempted)
	assert.Equal(t, time.Duration(0), TimeLeft(state))

	sum := BuildSummary(state)
	assert.Equal(t, 2*time.Minute, sum.Duration)
}

func TestIsFinished_StampsOnce(t *testing.T) {
	clock := newClock()
	gen := &fixedGenerator{operand: "3", op: problemgen.OpMultiply, factor: problemgen.Factor10}
	state, err := Start(durationConfig(1), gen, WithClock(clock.Now))
	require.NoError(t, err)

	assert.False(t, IsFinished(state))
	clock.Advance(2 * time.Minute)
	assert.True(t, IsFinished(state))
	stamped := state.FinishedAt

	clock.Advance(time.Hour)
	assert.True(t, IsFinished(state))
	assert.Equal(t, stamped, state.FinishedAt)
	assert.Equal(t, state.EndsAt, state.FinishedAt)
}

func TestRestart(t *testing.T) {
	clock := newClock()
	gen := &fixedGenerator{operand: "7", op: problemgen.OpMultiply, factor: problemgen.Factor100}
	state, err := Start(countConfig(1), gen, WithClock(clock.Now))
	require.NoError(t, err)
	firstID := state.ID

	_, err = HandleAnswer(state, "700")
	require.NoError(t, err)
	require.True(t, IsFinished(state))

	clock.Advance(time.Minute)
	require.NoError(t, Restart(state))
	assert.Equal(t, PhaseRunning, state.Phase)
	assert.NotEqual(t, firstID, state.ID)
	assert.Equal(t, 0, state.Correct)
	assert.Equal(t, 0, state.Attempted)
	assert.Equal(t, 1, state.Presented)
	assert.Equal(t, 1, state.Remaining)
	assert.True(t, state.FinishedAt.IsZero())
	assert.Equal(t, clock.Now(), state.StartedAt)
	assert.Equal(t, "7 · 100 = ?", CurrentTaskText(state))
}

func TestFinishEarly(t *testing.T) {
	gen := &fixedGenerator{operand: "7", op: problemgen.OpMultiply, factor: problemgen.Factor100}
	state, err := Start(countConfig(10), gen)
	require.NoError(t, err)

	Finish(state)
	assert.True(t, IsFinished(state))
	_, err = HandleAnswer(state, "700")
	assert.ErrorIs(t, err, ErrSessionFinished)
}

func TestProgress_Count(t *testing.T) {
	gen := &fixedGenerator{operand: "7", op: problemgen.OpMultiply, factor: problemgen.Factor100}
	state, err := Start(countConfig(4), gen)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, Progress(state), 1e-9)
	_, _ = HandleAnswer(state, "1")
	assert.InDelta(t, 0.25, Progress(state), 1e-9)
	_, _ = HandleAnswer(state, "")
	assert.InDelta(t, 0.25, Progress(state), 1e-9)
}
