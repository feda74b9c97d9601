// Package config loads drill settings from defaults, a TOML file, the
// environment and command-line flags, in increasing precedence.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/tenfold/internal/problemgen"
	"github.com/abhisek/tenfold/internal/session"
)

// Settings is the user-editable drill configuration in its raw form.
type Settings struct {
	Operations []string `env:"TENFOLD_OPERATIONS" envSeparator:","`
	Factors    []int    `env:"TENFOLD_FACTORS" envSeparator:","`
	Difficulty string   `env:"TENFOLD_DIFFICULTY"`
	Mode       string   `env:"TENFOLD_MODE"`
	Count      int      `env:"TENFOLD_COUNT"`
	Minutes    int      `env:"TENFOLD_MINUTES"`
	Advance    string   `env:"TENFOLD_ADVANCE"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Operations: []string{string(problemgen.OpMultiply), string(problemgen.OpDivide)},
		Factors:    []int{10, 100, 1000},
		Difficulty: string(problemgen.DifficultyMixed),
		Mode:       string(session.ModeCount),
		Count:      20,
		Minutes:    2,
		Advance:    string(session.AdvanceOnCorrect),
	}
}

// Load builds settings from the defaults, the config file at path and the
// environment. Flags are applied by the caller.
func Load(path string) (Settings, error) {
	s := Defaults()
	fc, err := LoadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	fc.Apply(&s)
	if err := ParseEnv(&s); err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return s, nil
}

// SessionConfig converts the settings into a validated session.Config.
func (s Settings) SessionConfig() (session.Config, error) {
	var cfg session.Config

	for _, raw := range s.Operations {
		op, err := problemgen.ParseOperation(raw)
		if err != nil {
			return session.Config{}, &session.ConfigError{Field: "operations", Message: err.Error()}
		}
		cfg.Operations = append(cfg.Operations, op)
	}
	for _, n := range s.Factors {
		cfg.Factors = append(cfg.Factors, problemgen.Factor(n))
	}

	d, err := problemgen.ParseDifficulty(s.Difficulty)
	if err != nil {
		return session.Config{}, &session.ConfigError{Field: "difficulty", Message: err.Error()}
	}
	cfg.Difficulty = d

	mode, err := session.ParseMode(s.Mode)
	if err != nil {
		return session.Config{}, err
	}
	cfg.Termination = session.Termination{Mode: mode, Count: s.Count, Minutes: s.Minutes}

	if err := cfg.Validate(); err != nil {
		return session.Config{}, err
	}
	return cfg, nil
}

// AdvancePolicy parses the after-answer policy.
func (s Settings) AdvancePolicy() (session.AdvancePolicy, error) {
	return session.ParseAdvancePolicy(s.Advance)
}

// Validate checks that the settings produce a usable session.
func (s Settings) Validate() error {
	if _, err := s.SessionConfig(); err != nil {
		return err
	}
	if _, err := s.AdvancePolicy(); err != nil {
		return err
	}
	return nil
}

// Describe returns a one-line human summary, e.g.
// "multiply, divide by 10, 100, 1000 · mixed · 20 tasks".
func (s Settings) Describe() string {
	factors := make([]string, len(s.Factors))
	for i, f := range s.Factors {
		factors[i] = strconv.Itoa(f)
	}
	length := session.Termination{Mode: session.Mode(s.Mode), Count: s.Count, Minutes: s.Minutes}
	return fmt.Sprintf("%s by %s · %s · %s",
		strings.Join(s.Operations, ", "),
		strings.Join(factors, ", "),
		s.Difficulty,
		length,
	)
}
