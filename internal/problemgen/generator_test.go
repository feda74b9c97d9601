package problemgen

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws. IntN returns the next int modulo n.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNumberGenerator_WholeBranches(t *testing.T) {
	// plain branch: coin 0, value index 6 -> 7
	g := NewNumberGenerator(&scriptedSource{ints: []int{0, 6}, floats: []float64{0.5}})
	v, err := g.Generate(DifficultyWhole)
	require.NoError(t, err)
	assert.True(t, v.Equal(dec("7")), "got %s", v)

	// round-number branch: coin 1, index 11 -> 500
	g = NewNumberGenerator(&scriptedSource{ints: []int{1, 11}, floats: []float64{0.5}})
	v, err = g.Generate(DifficultyWhole)
	require.NoError(t, err)
	assert.True(t, v.Equal(dec("500")), "got %s", v)
}

func TestNumberGenerator_Decimal(t *testing.T) {
	// whole 7, digits index 1 -> 2 digits, fraction index 2 -> 3: 7.03
	g := NewNumberGenerator(&scriptedSource{ints: []int{7, 1, 2}, floats: []float64{0.5}})
	v, err := g.Generate(DifficultyDecimal)
	require.NoError(t, err)
	assert.True(t, v.Equal(dec("7.03")), "got %s", v)
	assert.Equal(t, "7,03", FormatAmount(v))
}

func TestNumberGenerator_Override(t *testing.T) {
	// whole branch draws 7, then the override roll hits and draws
	// 2 digits with fraction 7: 0.07
	g := NewNumberGenerator(&scriptedSource{ints: []int{0, 6, 1, 6}, floats: []float64{0.1}})
	v, err := g.Generate(DifficultyWhole)
	require.NoError(t, err)
	assert.True(t, v.Equal(dec("0.07")), "got %s", v)
}

func TestNumberGenerator_MixedDispatch(t *testing.T) {
	g := NewNumberGenerator(&scriptedSource{ints: []int{0, 0, 41}, floats: []float64{0.9}})
	v, err := g.Generate(DifficultyMixed)
	require.NoError(t, err)
	assert.True(t, v.Equal(dec("42")), "got %s", v)

	g = NewNumberGenerator(&scriptedSource{ints: []int{1, 12, 0, 4}, floats: []float64{0.9}})
	v, err = g.Generate(DifficultyMixed)
	require.NoError(t, err)
	assert.True(t, v.Equal(dec("12.5")), "got %s", v)
}

func TestNumberGenerator_InvalidDifficulty(t *testing.T) {
	g := NewNumberGenerator(NewSource(1))
	_, err := g.Generate(Difficulty("hard"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
}

func TestNumberGenerator_Ranges(t *testing.T) {
	g := NewNumberGenerator(NewSource(42))
	maxWhole := dec("9999")
	maxDecimal := dec("1000")

	for i := 0; i < 2000; i++ {
		w, err := g.Generate(DifficultyWhole)
		require.NoError(t, err)
		assert.True(t, w.IsPositive(), "whole value %s not positive", w)
		assert.True(t, w.LessThanOrEqual(maxWhole), "whole value %s too large", w)
		if w.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			assert.True(t, w.IsInteger(), "whole value %s has a fraction", w)
		}

		d, err := g.Generate(DifficultyDecimal)
		require.NoError(t, err)
		assert.True(t, d.IsPositive(), "decimal value %s not positive", d)
		assert.True(t, d.LessThan(maxDecimal), "decimal value %s too large", d)
		assert.False(t, d.IsInteger(), "decimal value %s has no fraction", d)
		assert.LessOrEqual(t, -d.Exponent(), int32(3), "decimal value %s has too many digits", d)
	}
}

func TestGenerateAmount(t *testing.T) {
	v, err := GenerateAmount(DifficultyMixed)
	require.NoError(t, err)
	assert.True(t, v.IsPositive())

	_, err = GenerateAmount("nope")
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		operand string
		op      Operation
		factor  Factor
		want    string
	}{
		{"7.03", OpMultiply, Factor100, "703"},
		{"0.07", OpDivide, Factor1000, "0.00007"},
		{"7", OpMultiply, Factor100, "700"},
		{"12.5", OpDivide, Factor10, "1.25"},
		{"999.999", OpMultiply, Factor1000, "999999"},
		{"1", OpDivide, Factor1000, "0.001"},
	}

	for _, tc := range tests {
		got := Compute(dec(tc.operand), tc.op, tc.factor)
		assert.True(t, got.Equal(dec(tc.want)), "%s %s %d = %s, want %s", tc.operand, tc.op, tc.factor, got, tc.want)
	}
}

func TestMultiplyDivideInverse(t *testing.T) {
	g := NewNumberGenerator(NewSource(3))
	for i := 0; i < 500; i++ {
		v, err := g.Generate(DifficultyMixed)
		require.NoError(t, err)
		for _, f := range AllFactors {
			back := Compute(Compute(v, OpMultiply, f), OpDivide, f)
			assert.True(t, back.Equal(v), "(%s · %d) : %d = %s", v, f, f, back)
		}
	}
}

func TestNewTask(t *testing.T) {
	task := NewTask(dec("7"), OpMultiply, Factor100)
	assert.Equal(t, "7 · 100 = ?", task.Text)
	assert.Equal(t, "700", task.Answer)

	task = NewTask(dec("0.07"), OpDivide, Factor1000)
	assert.Equal(t, "0,07 : 1000 = ?", task.Text)
	assert.Equal(t, "0,00007", task.Answer)
}

func TestDrillGenerator_Generate(t *testing.T) {
	// op index 1 -> divide, factor index 0 -> 10, then whole 7
	src := &scriptedSource{ints: []int{1, 0, 0, 6}, floats: []float64{0.9}}
	g := New(src)

	task, err := g.Generate(GenerateInput{
		Operations: AllOperations,
		Factors:    AllFactors,
		Difficulty: DifficultyWhole,
	})
	require.NoError(t, err)
	assert.Equal(t, OpDivide, task.Operation)
	assert.Equal(t, Factor10, task.Factor)
	assert.Equal(t, "7 : 10 = ?", task.Text)
	assert.Equal(t, "0,7", task.Answer)
}

func TestDrillGenerator_RespectsPolicy(t *testing.T) {
	g := New(NewSource(11))
	input := GenerateInput{
		Operations: []Operation{OpDivide},
		Factors:    []Factor{Factor1000},
		Difficulty: DifficultyDecimal,
	}
	for i := 0; i < 200; i++ {
		task, err := g.Generate(input)
		require.NoError(t, err)
		assert.Equal(t, OpDivide, task.Operation)
		assert.Equal(t, Factor1000, task.Factor)
		assert.True(t, CheckAnswer(task.Answer, task), "answer %q does not check for %q", task.Answer, task.Text)
	}
}

func TestDrillGenerator_CustomNumbers(t *testing.T) {
	src := NewSource(5)
	cfg := DefaultConfig()
	cfg.OverrideChance = 0
	cfg.MaxWhole = 9
	g := NewWithNumbers(NewNumberGeneratorWithConfig(src, cfg), src)

	input := GenerateInput{Operations: []Operation{OpMultiply}, Factors: []Factor{Factor10}, Difficulty: DifficultyWhole}
	for i := 0; i < 200; i++ {
		task, err := g.Generate(input)
		require.NoError(t, err)
		assert.True(t, task.Operand.IsInteger(), "operand %s should be whole without the override", task.Operand)
		assert.True(t, task.Operand.GreaterThanOrEqual(decimal.NewFromInt(1)))
		assert.True(t, task.Operand.LessThanOrEqual(decimal.NewFromInt(1000)))
	}
}

func TestDrillGenerator_Errors(t *testing.T) {
	g := New(NewSource(1))

	_, err := g.Generate(GenerateInput{Factors: AllFactors, Difficulty: DifficultyWhole})
	assert.ErrorIs(t, err, ErrNoOperations)

	_, err = g.Generate(GenerateInput{Operations: AllOperations, Difficulty: DifficultyWhole})
	assert.ErrorIs(t, err, ErrNoFactors)

	_, err = g.Generate(GenerateInput{Operations: AllOperations, Factors: AllFactors, Difficulty: "x"})
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
}

func TestParseEnums(t *testing.T) {
	d, err := ParseDifficulty("Decimals")
	require.NoError(t, err)
	assert.Equal(t, DifficultyDecimal, d)

	_, err = ParseDifficulty("hard")
	assert.ErrorIs(t, err, ErrInvalidDifficulty)

	op, err := ParseOperation(":")
	require.NoError(t, err)
	assert.Equal(t, OpDivide, op)

	f, err := ParseFactor(" 100 ")
	require.NoError(t, err)
	assert.Equal(t, Factor100, f)
	assert.Equal(t, int32(2), f.Places())

	_, err = ParseFactor("50")
	assert.Error(t, err)
}
