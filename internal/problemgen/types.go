package problemgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Task is one generated drill problem together with its exact answer.
type Task struct {
	// Operand is the number being scaled, e.g. 7.03.
	Operand decimal.Decimal

	// Operation is multiply or divide.
	Operation Operation

	// Factor is 10, 100 or 1000.
	Factor Factor

	// Result is the exact correct answer.
	Result decimal.Decimal

	// Text is the prompt shown to the learner, e.g. "7,03 · 100 = ?".
	Text string

	// Answer is Result rendered with FormatAmount, e.g. "703".
	Answer string
}

// Difficulty selects which kind of operand the number generator produces.
type Difficulty string

const (
	DifficultyWhole   Difficulty = "whole"   // 1..9999 or a round number
	DifficultyDecimal Difficulty = "decimal" // 0..999 with 1-3 fractional digits
	DifficultyMixed   Difficulty = "mixed"   // either of the above
)

// AllDifficulties lists the difficulties in menu order.
var AllDifficulties = []Difficulty{DifficultyWhole, DifficultyDecimal, DifficultyMixed}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyWhole, DifficultyDecimal, DifficultyMixed:
		return true
	}
	return false
}

// DisplayName returns the label used in menus.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyWhole:
		return "Whole numbers"
	case DifficultyDecimal:
		return "Decimals"
	case DifficultyMixed:
		return "Mixed"
	default:
		return string(d)
	}
}

// ParseDifficulty maps user or config text to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "whole", "wholes", "whole-numbers", "integer", "integers", "hel":
		return DifficultyWhole, nil
	case "decimal", "decimals", "desimal":
		return DifficultyDecimal, nil
	case "mixed", "mix", "blandet":
		return DifficultyMixed, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

// Operation is the arithmetic applied to the operand.
type Operation string

const (
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// AllOperations lists both operations in menu order.
var AllOperations = []Operation{OpMultiply, OpDivide}

// Valid reports whether o is multiply or divide.
func (o Operation) Valid() bool {
	return o == OpMultiply || o == OpDivide
}

// Symbol returns the operator shown in task text.
func (o Operation) Symbol() string {
	if o == OpDivide {
		return ":"
	}
	return "·"
}

// ParseOperation maps user or config text to an Operation.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "multiply", "mul", "times", "*", "x", "·":
		return OpMultiply, nil
	case "divide", "div", "/", ":":
		return OpDivide, nil
	}
	return "", fmt.Errorf("unknown operation %q", s)
}

// Factor is the power of ten the operand is scaled by.
type Factor int

const (
	Factor10   Factor = 10
	Factor100  Factor = 100
	Factor1000 Factor = 1000
)

// AllFactors lists the allowed factors in ascending order.
var AllFactors = []Factor{Factor10, Factor100, Factor1000}

// Valid reports whether f is 10, 100 or 1000.
func (f Factor) Valid() bool {
	return f == Factor10 || f == Factor100 || f == Factor1000
}

// Places returns how many digits the decimal point moves.
func (f Factor) Places() int32 {
	switch f {
	case Factor10:
		return 1
	case Factor100:
		return 2
	case Factor1000:
		return 3
	}
	return 0
}

// Amount returns the factor as an exact decimal.
func (f Factor) Amount() decimal.Decimal {
	return decimal.NewFromInt(int64(f))
}

func (f Factor) String() string {
	return strconv.Itoa(int(f))
}

// ParseFactor parses "10", "100" or "1000".
func ParseFactor(s string) (Factor, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid factor %q: %w", s, err)
	}
	f := Factor(n)
	if !f.Valid() {
		return 0, fmt.Errorf("factor %d is not one of 10, 100, 1000", n)
	}
	return f, nil
}

// GenerateInput holds the policy a task is drawn from.
type GenerateInput struct {
	// Operations is the non-empty set the operation is picked from.
	Operations []Operation

	// Factors is the non-empty set the factor is picked from.
	Factors []Factor

	// Difficulty is passed to the number generator.
	Difficulty Difficulty
}
