// Package console runs a drill session over plain line-based input and
// output, for pipes and terminals without full-screen support.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/abhisek/tenfold/internal/config"
	"github.com/abhisek/tenfold/internal/problemgen"
	"github.com/abhisek/tenfold/internal/session"
)

// ErrInputClosed is returned when input ends before the session does.
var ErrInputClosed = errors.New("input closed before the session ended")

// Console is a blocking question-and-answer front-end.
type Console struct {
	in    io.Reader
	out   io.Writer
	lines chan lineResult
	gen   problemgen.Generator
	now   func() time.Time
	quick bool
}

type lineResult struct {
	text string
	err  error
}

// Option customizes a Console.
type Option func(*Console)

// WithGenerator sets the task generator.
func WithGenerator(gen problemgen.Generator) Option {
	return func(c *Console) {
		c.gen = gen
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Console) {
		c.now = now
	}
}

// WithQuick skips the setup menus and uses the given settings as they are.
func WithQuick(quick bool) Option {
	return func(c *Console) {
		c.quick = quick
	}
}

// New creates a Console reading lines from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:  in,
		out: out,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// scan feeds input lines to c.lines until the input ends or done is
// closed. A read blocked in the reader itself is only released when the
// reader returns.
func (c *Console) scan(lines chan<- lineResult, done <-chan struct{}) {
	defer close(lines)
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		select {
		case lines <- lineResult{text: scanner.Text()}:
		case <-done:
			return
		}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	select {
	case lines <- lineResult{err: err}:
	case <-done:
	}
}

// readLine waits for the next input line. A positive timeout bounds the
// wait; errTimeout is returned when it passes.
func (c *Console) readLine(ctx context.Context, timeout time.Duration) (string, error) {
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-expired:
		return "", errTimeout
	case l, ok := <-c.lines:
		if !ok {
			return "", ErrInputClosed
		}
		if l.err != nil {
			if errors.Is(l.err, io.EOF) {
				return "", ErrInputClosed
			}
			return "", fmt.Errorf("read input: %w", l.err)
		}
		return l.text, nil
	}
}

var errTimeout = errors.New("time is up")

// Run collects the session settings, drills until the session ends and
// prints the result block.
func (c *Console) Run(ctx context.Context, settings config.Settings) (*session.SessionSummary, error) {
	done := make(chan struct{})
	defer close(done)
	c.lines = make(chan lineResult)
	go c.scan(c.lines, done)

	fmt.Fprintln(c.out, "=== Tenfold drill ===")

	if !c.quick {
		var err error
		settings, err = c.collectSettings(ctx, settings)
		if err != nil {
			return nil, err
		}
	}

	cfg, err := settings.SessionConfig()
	if err != nil {
		return nil, fmt.Errorf("configure session: %w", err)
	}

	state, err := session.Start(cfg, c.gen, session.WithClock(c.now))
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(c.out)
	if cfg.Termination.Mode == session.ModeDuration {
		fmt.Fprintf(c.out, "You have %s.\n", cfg.Termination)
	}
	fmt.Fprintln(c.out, "Answer with either a comma or a point. Press Enter to skip.")
	fmt.Fprintln(c.out)

	if err := c.drill(ctx, state); err != nil {
		return nil, err
	}

	summary := session.BuildSummary(state)
	c.printResult(summary)
	return summary, nil
}

// drill serves tasks until the session finishes. Every submission moves on
// to a new task.
func (c *Console) drill(ctx context.Context, state *session.SessionState) error {
	for !session.IsFinished(state) {
		fmt.Fprintf(c.out, "Task %d: %s\n", state.Presented, session.CurrentTaskText(state))
		fmt.Fprint(c.out, "Answer: ")

		raw, err := c.readLine(ctx, c.deadline(state))
		if errors.Is(err, errTimeout) {
			fmt.Fprintln(c.out)
			session.Finish(state)
			break
		}
		if err != nil {
			session.Finish(state)
			return err
		}

		res, err := session.HandleAnswer(state, raw)
		if errors.Is(err, session.ErrSessionFinished) {
			fmt.Fprintln(c.out, "   Time is up, that answer was not counted.")
			fmt.Fprintln(c.out)
			break
		}
		if err != nil {
			return err
		}
		c.printFeedback(res)

		if err := session.NextTask(state); err != nil {
			return err
		}
	}

	if state.Config.Termination.Mode == session.ModeDuration {
		fmt.Fprintln(c.out, "Time is up!")
		fmt.Fprintln(c.out)
	}
	return nil
}

func (c *Console) deadline(state *session.SessionState) time.Duration {
	if state.Config.Termination.Mode != session.ModeDuration {
		return 0
	}
	// Zero would disable the timer.
	return max(session.TimeLeft(state), time.Millisecond)
}

func (c *Console) printFeedback(res session.Result) {
	switch res.Outcome {
	case session.OutcomeSkipped:
		fmt.Fprintf(c.out, "   Solution: %s\n", res.Revealed)
	case session.OutcomeParseError:
		fmt.Fprintf(c.out, "   Could not read the answer. The correct answer is %s.\n", res.Revealed)
	case session.OutcomeCorrect:
		fmt.Fprintln(c.out, "   Correct! ✅")
	case session.OutcomeIncorrect:
		fmt.Fprintf(c.out, "   Wrong. The correct answer is %s.\n", res.Revealed)
	}
	fmt.Fprintln(c.out)
}

func (c *Console) printResult(s *session.SessionSummary) {
	fmt.Fprintln(c.out, "=== Result ===")
	fmt.Fprintf(c.out, "Correct: %d of %d (attempted %d / presented %d)\n",
		s.Correct, s.Attempted, s.Attempted, s.Presented)
	if s.Attempted > 0 {
		fmt.Fprintf(c.out, "Accuracy: %d%%\n", s.AccuracyPercent)
	}
	if s.IsPerfect {
		fmt.Fprintln(c.out, "Perfect session! 🏆")
	}
	fmt.Fprintln(c.out, "Well done!")
}
