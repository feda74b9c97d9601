package problemgen

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// DivisionPlaces is the number of fractional digits kept when dividing.
// Operands carry at most a handful of digits, so the quotient is exact.
const DivisionPlaces = 28

var (
	// ErrNoOperations is returned when the operation set is empty.
	ErrNoOperations = errors.New("no operations to choose from")

	// ErrNoFactors is returned when the factor set is empty.
	ErrNoFactors = errors.New("no factors to choose from")
)

// Generator produces drill tasks.
type Generator interface {
	// Generate draws a single task from the given policy.
	Generate(input GenerateInput) (*Task, error)
}

// DrillGenerator picks an operation and a factor uniformly and an operand
// from its NumberGenerator.
type DrillGenerator struct {
	numbers *NumberGenerator
	src     Source
}

// New creates a DrillGenerator drawing from src. A nil src is replaced with
// a time-seeded one.
func New(src Source) *DrillGenerator {
	if src == nil {
		src = timeSeededSource()
	}
	return &DrillGenerator{
		numbers: NewNumberGenerator(src),
		src:     src,
	}
}

// NewWithNumbers creates a DrillGenerator with a custom number generator.
func NewWithNumbers(numbers *NumberGenerator, src Source) *DrillGenerator {
	return &DrillGenerator{numbers: numbers, src: src}
}

// Generate implements Generator.
func (g *DrillGenerator) Generate(input GenerateInput) (*Task, error) {
	if len(input.Operations) == 0 {
		return nil, ErrNoOperations
	}
	if len(input.Factors) == 0 {
		return nil, ErrNoFactors
	}

	op := input.Operations[g.src.IntN(len(input.Operations))]
	factor := input.Factors[g.src.IntN(len(input.Factors))]

	operand, err := g.numbers.Generate(input.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("generate task: %w", err)
	}
	return NewTask(operand, op, factor), nil
}

// Compute applies op with factor to operand exactly.
func Compute(operand decimal.Decimal, op Operation, factor Factor) decimal.Decimal {
	if op == OpDivide {
		return operand.DivRound(factor.Amount(), DivisionPlaces)
	}
	return operand.Mul(factor.Amount())
}

// NewTask builds the task for a fixed operand, operation and factor.
func NewTask(operand decimal.Decimal, op Operation, factor Factor) *Task {
	result := Compute(operand, op, factor)
	return &Task{
		Operand:   operand,
		Operation: op,
		Factor:    factor,
		Result:    result,
		Text:      fmt.Sprintf("%s %s %s = ?", FormatAmount(operand), op.Symbol(), factor),
		Answer:    FormatAmount(result),
	}
}
