package problemgen

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	// ErrParse is wrapped by every ParseAnswer failure except an empty answer.
	ErrParse = errors.New("answer is not a decimal number")

	// ErrEmptyAnswer is returned when nothing but whitespace was submitted.
	ErrEmptyAnswer = errors.New("answer is empty")
)

// Plain decimal notation only. Exponents are rejected because comparing
// against a huge exponent would force a huge rescale.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// NormalizeAnswer prepares learner input for parsing.
//
// Normalization rules:
// - Surrounding whitespace is trimmed
// - Whitespace inside the number is dropped ("1 000,5" reads as 1000.5)
// - A decimal comma is read as a decimal point
func NormalizeAnswer(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		if r == ',' {
			r = '.'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseAnswer reads learner input as an exact decimal. "12,5" and "12.5"
// produce the same value.
func ParseAnswer(raw string) (decimal.Decimal, error) {
	s := NormalizeAnswer(raw)
	if s == "" {
		return decimal.Zero, ErrEmptyAnswer
	}
	if !decimalPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrParse, raw)
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(s, "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return d, nil
}

// FormatAmount renders d the way tasks and answers are shown: integers as
// plain digits, fractions with trailing zeros trimmed and a decimal comma.
func FormatAmount(d decimal.Decimal) string {
	var s string
	if d.IsInteger() {
		s = d.Truncate(0).String()
	} else {
		// String drops trailing fractional zeros.
		s = d.String()
	}
	if s == "" {
		return "0"
	}
	return strings.Replace(s, ".", ",", 1)
}

// AmountsEqual compares two amounts by value, so 7.030 equals 7.03.
func AmountsEqual(a, b decimal.Decimal) bool {
	return a.Equal(b)
}

// CheckAnswer reports whether the learner's input matches the task's
// result. Unreadable or empty input is never correct.
func CheckAnswer(learnerAnswer string, task *Task) bool {
	if task == nil {
		return false
	}
	d, err := ParseAnswer(learnerAnswer)
	if err != nil {
		return false
	}
	return AmountsEqual(d, task.Result)
}
