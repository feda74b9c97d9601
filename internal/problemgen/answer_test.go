package problemgen

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{" 42 ", "42"},
		{"042", "42"},
		{"12,5", "12.5"},
		{"12.5", "12.5"},
		{"0,00007", "0.00007"},
		{"1 000,5", "1000.5"},
		{",5", "0.5"},
		{"-3,25", "-3.25"},
		{"+7", "7"},
		{"12.", "12"},
		{"7.030", "7.03"},
	}

	for _, tc := range tests {
		got, err := ParseAnswer(tc.input)
		if err != nil {
			t.Errorf("ParseAnswer(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("ParseAnswer(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParseAnswer_Rejects(t *testing.T) {
	for _, input := range []string{"abc", "1,2,3", "1.2.3", "1e5", "NaN", "Inf", "--1", "7 · 100", "."} {
		_, err := ParseAnswer(input)
		if !errors.Is(err, ErrParse) {
			t.Errorf("ParseAnswer(%q) error = %v, want ErrParse", input, err)
		}
	}
}

func TestParseAnswer_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := ParseAnswer(input)
		if !errors.Is(err, ErrEmptyAnswer) {
			t.Errorf("ParseAnswer(%q) error = %v, want ErrEmptyAnswer", input, err)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"700", "700"},
		{"700.000", "700"},
		{"0.00007", "0,00007"},
		{"7.030", "7,03"},
		{"0", "0"},
		{"0.000", "0"},
		{"12.5", "12,5"},
		{"1234.5678", "1234,5678"},
	}

	for _, tc := range tests {
		got := FormatAmount(decimal.RequireFromString(tc.value))
		if got != tc.want {
			t.Errorf("FormatAmount(%s) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatAmount_RoundTrip(t *testing.T) {
	src := NewSource(7)
	numbers := NewNumberGenerator(src)
	for i := 0; i < 500; i++ {
		v, err := numbers.Generate(DifficultyMixed)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		parsed, err := ParseAnswer(FormatAmount(v))
		if err != nil {
			t.Fatalf("ParseAnswer(FormatAmount(%s)): %v", v, err)
		}
		if !parsed.Equal(v) {
			t.Errorf("round trip of %s gave %s", v, parsed)
		}
	}
}

func TestCheckAnswer(t *testing.T) {
	task := NewTask(decimal.RequireFromString("7.03"), OpMultiply, Factor100)

	tests := []struct {
		input string
		want  bool
	}{
		{"703", true},
		{"703,0", true},
		{"703.00", true},
		{" 703 ", true},
		{"70,3", false},
		{"", false},
		{"seven", false},
	}

	for _, tc := range tests {
		if got := CheckAnswer(tc.input, task); got != tc.want {
			t.Errorf("CheckAnswer(%q, 7,03 · 100) = %v, want %v", tc.input, got, tc.want)
		}
	}

	if CheckAnswer("703", nil) {
		t.Error("CheckAnswer with nil task should be false")
	}
}
