package problemgen

// Config controls the ranges the NumberGenerator draws from.
type Config struct {
	// MaxWhole is the upper bound of the plain whole-number branch (1..MaxWhole).
	MaxWhole int

	// RoundNumbers is the set the "round number" whole branch picks from.
	RoundNumbers []int64

	// MaxDecimalWhole is the upper bound of the integer part of a decimal
	// operand (0..MaxDecimalWhole).
	MaxDecimalWhole int

	// MaxFractionDigits is the largest number of fractional digits a
	// generated decimal can have. Digit counts are drawn from 1..MaxFractionDigits.
	MaxFractionDigits int

	// OverrideChance is the probability that the generated value is
	// replaced with a small fraction in (0, 1).
	OverrideChance float64
}

// DefaultConfig returns the ranges used by the drill.
func DefaultConfig() Config {
	return Config{
		MaxWhole:          9999,
		RoundNumbers:      []int64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 200, 500, 1000},
		MaxDecimalWhole:   999,
		MaxFractionDigits: 3,
		OverrideChance:    0.2,
	}
}
