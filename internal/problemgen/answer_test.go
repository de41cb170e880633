package problemgen

import (
	"errors"
	"testing"
)

func TestCheckAnswer_Integer(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"4", true},
		{" 4 ", true},
		{"\t4\n", true},
		{"04", true},
		{"+4", true},
		{"5", false},
		{"-4", false},
	}

	for _, tc := range tests {
		res, err := CheckAnswer(tc.input, 4)
		if err != nil {
			t.Errorf("CheckAnswer(%q, 4) returned error: %v", tc.input, err)
			continue
		}
		if res.Accepted != tc.want {
			t.Errorf("CheckAnswer(%q, 4) = %v, want %v", tc.input, res.Accepted, tc.want)
		}
	}
}

func TestCheckAnswer_ZeroFraction(t *testing.T) {
	tests := []struct {
		input   string
		correct int
		want    bool
	}{
		{"4.0", 4, true},
		{"4.00", 4, true},
		{" 4.000 ", 4, true},
		{"-3.0", -3, true},
		{"5.0", 4, false},
	}

	for _, tc := range tests {
		res, err := CheckAnswer(tc.input, tc.correct)
		if err != nil {
			t.Errorf("CheckAnswer(%q, %d) returned error: %v", tc.input, tc.correct, err)
			continue
		}
		if res.Accepted != tc.want {
			t.Errorf("CheckAnswer(%q, %d) = %v, want %v", tc.input, tc.correct, res.Accepted, tc.want)
		}
		if res.Fractional {
			t.Errorf("CheckAnswer(%q, %d) marked fractional", tc.input, tc.correct)
		}
	}
}

func TestCheckAnswer_NonZeroFractionRejectedWithoutError(t *testing.T) {
	for _, input := range []string{"4.5", "3.9999", "4.", ".0", "4.0.0", "+4.0", "abc.0", "4.01"} {
		res, err := CheckAnswer(input, 4)
		if err != nil {
			t.Errorf("CheckAnswer(%q, 4) returned error %v, want plain rejection", input, err)
			continue
		}
		if res.Accepted {
			t.Errorf("CheckAnswer(%q, 4) accepted, want rejected", input)
		}
		if !res.Fractional {
			t.Errorf("CheckAnswer(%q, 4) not marked fractional", input)
		}
	}
}

func TestCheckAnswer_InvalidNumericInput(t *testing.T) {
	for _, input := range []string{"abc", "", "   ", "4a", "-", "1 2", "99999999999", "0x10"} {
		_, err := CheckAnswer(input, 4)
		if err == nil {
			t.Errorf("CheckAnswer(%q, 4) expected error", input)
			continue
		}
		if !errors.Is(err, ErrInvalidNumericInput) {
			t.Errorf("CheckAnswer(%q, 4) error = %v, want ErrInvalidNumericInput", input, err)
		}
	}
}

func TestCheckAnswer_ParsedValue(t *testing.T) {
	res, err := CheckAnswer(" -12.00 ", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value != -12 {
		t.Errorf("Value = %d, want -12", res.Value)
	}
	if res.Accepted {
		t.Error("expected -12 not to match 7")
	}
}
