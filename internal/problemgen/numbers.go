package problemgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidDifficulty is returned for a difficulty the generator does not know.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Source is the randomness the generators draw from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func timeSeededSource() *rand.Rand {
	return NewSource(uint64(time.Now().UnixNano()))
}

// NumberGenerator produces operands for drill tasks.
type NumberGenerator struct {
	src Source
	cfg Config
}

// NewNumberGenerator creates a NumberGenerator with the default ranges.
func NewNumberGenerator(src Source) *NumberGenerator {
	return NewNumberGeneratorWithConfig(src, DefaultConfig())
}

// NewNumberGeneratorWithConfig creates a NumberGenerator with custom ranges.
func NewNumberGeneratorWithConfig(src Source, cfg Config) *NumberGenerator {
	if src == nil {
		src = timeSeededSource()
	}
	return &NumberGenerator{src: src, cfg: cfg}
}

// Generate draws one operand for the given difficulty.
//
// After the branch for the difficulty has produced a value, a single roll
// with probability OverrideChance replaces it with a fraction in (0, 1)
// that has one to three fractional digits.
func (g *NumberGenerator) Generate(d Difficulty) (decimal.Decimal, error) {
	var v decimal.Decimal
	switch d {
	case DifficultyWhole:
		v = g.wholeNumber()
	case DifficultyDecimal:
		v = g.decimalNumber()
	case DifficultyMixed:
		if g.pickMixedBranch() == DifficultyWhole {
			v = g.wholeNumber()
		} else {
			v = g.decimalNumber()
		}
	default:
		return decimal.Zero, fmt.Errorf("generate amount: %w: %q", ErrInvalidDifficulty, string(d))
	}

	if g.src.Float64() < g.cfg.OverrideChance {
		v = g.smallFraction()
	}
	return v, nil
}

// pickMixedBranch chooses between the whole and decimal branches with equal odds.
func (g *NumberGenerator) pickMixedBranch() Difficulty {
	if g.src.IntN(2) == 0 {
		return DifficultyWhole
	}
	return DifficultyDecimal
}

func (g *NumberGenerator) wholeNumber() decimal.Decimal {
	if g.src.IntN(2) == 0 || len(g.cfg.RoundNumbers) == 0 {
		return decimal.NewFromInt(int64(1 + g.src.IntN(g.cfg.MaxWhole)))
	}
	return decimal.NewFromInt(g.cfg.RoundNumbers[g.src.IntN(len(g.cfg.RoundNumbers))])
}

func (g *NumberGenerator) decimalNumber() decimal.Decimal {
	whole := int64(g.src.IntN(g.cfg.MaxDecimalWhole + 1))
	digits, frac := g.fraction()
	return decimal.New(whole*pow10(digits)+frac, -int32(digits))
}

func (g *NumberGenerator) smallFraction() decimal.Decimal {
	digits, frac := g.fraction()
	return decimal.New(frac, -int32(digits))
}

// fraction draws a digit count and a fractional part in [1, 9·10^(digits-1)].
func (g *NumberGenerator) fraction() (int, int64) {
	digits := 1 + g.src.IntN(g.cfg.MaxFractionDigits)
	upper := 9 * pow10(digits-1)
	return digits, 1 + int64(g.src.IntN(int(upper)))
}

func pow10(n int) int64 {
	p := int64(1)
	for range n {
		p *= 10
	}
	return p
}

// GenerateAmount draws one operand from a time-seeded source.
func GenerateAmount(d Difficulty) (decimal.Decimal, error) {
	return NewNumberGenerator(timeSeededSource()).Generate(d)
}
