package problemgen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidNumericInput is returned when an answer cannot be read as a
// whole number. The caller should ask again; the score is not affected.
var ErrInvalidNumericInput = errors.New("please enter a valid whole number")

// zeroFractionPattern matches whole numbers written with a zero fraction,
// e.g. "4.0", "-12.000".
var zeroFractionPattern = regexp.MustCompile(`^-?\d+\.0+$`)

// Result is the outcome of checking a learner's answer.
type Result struct {
	// Accepted is true when the answer equals the correct value.
	Accepted bool

	// Value is the parsed integer. Zero when the input was rejected for
	// having a non-zero fractional part.
	Value int

	// Fractional is true when the input was rejected outright because it
	// had a non-zero or malformed fractional part (e.g. "4.5", "4.").
	Fractional bool
}

// CheckAnswer compares raw learner input against the correct answer.
//
// Rules:
//   - Whitespace is trimmed.
//   - Input containing "." that is not of the form -?digits.0+ is wrong,
//     without error ("4.5" for 4 is simply incorrect).
//   - Otherwise the integer part is parsed as a signed 32-bit integer;
//     failure returns an error wrapping ErrInvalidNumericInput.
func CheckAnswer(raw string, correct int) (Result, error) {
	text := strings.TrimSpace(raw)

	if strings.Contains(text, ".") {
		if !zeroFractionPattern.MatchString(text) {
			return Result{Fractional: true}, nil
		}
		text = text[:strings.IndexByte(text, '.')]
	}

	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidNumericInput, strings.TrimSpace(raw))
	}

	value := int(n)
	return Result{Accepted: value == correct, Value: value}, nil
}
