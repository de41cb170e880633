package problemgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Operator is one of the five supported arithmetic operations.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
	OpModulo   Operator = "%"
)

// ErrUnknownOperator is returned when text does not name a supported operator.
var ErrUnknownOperator = errors.New("unknown operator")

// ErrUnknownLevel is returned when a level number or name is not one of the
// fixed difficulty bands.
var ErrUnknownLevel = errors.New("unknown level")

// Operators returns all supported operators in display order.
func Operators() []Operator {
	return []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide, OpModulo}
}

// Valid reports whether o is in the supported set.
func (o Operator) Valid() bool {
	switch o {
	case OpAdd, OpSubtract, OpMultiply, OpDivide, OpModulo:
		return true
	}
	return false
}

// Symbol returns the single-character symbol, e.g. "+".
func (o Operator) Symbol() string { return string(o) }

// Name returns the lowercase operator name used in flags and config.
func (o Operator) Name() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	case OpModulo:
		return "modulo"
	default:
		return "unknown"
	}
}

// DisplayName returns the label shown in the operations panel.
func (o Operator) DisplayName() string {
	if !o.Valid() {
		return "UNKNOWN"
	}
	return fmt.Sprintf("%s (%s)", operatorTitles[o], o.Symbol())
}

var operatorTitles = map[Operator]string{
	OpAdd:      "ADDITION",
	OpSubtract: "SUBTRACTION",
	OpMultiply: "MULTIPLICATION",
	OpDivide:   "DIVISION",
	OpModulo:   "MODULO",
}

var operatorAliases = map[string]Operator{
	"+": OpAdd, "add": OpAdd, "addition": OpAdd, "plus": OpAdd,
	"-": OpSubtract, "sub": OpSubtract, "subtract": OpSubtract, "subtraction": OpSubtract, "minus": OpSubtract,
	"*": OpMultiply, "x": OpMultiply, "×": OpMultiply, "mul": OpMultiply, "multiply": OpMultiply, "multiplication": OpMultiply, "times": OpMultiply,
	"/": OpDivide, "÷": OpDivide, "div": OpDivide, "divide": OpDivide, "division": OpDivide,
	"%": OpModulo, "mod": OpModulo, "modulo": OpModulo, "remainder": OpModulo,
}

// ParseOperator accepts a symbol or a name (case-insensitive).
func ParseOperator(s string) (Operator, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if op, ok := operatorAliases[key]; ok {
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperator, s)
}

// Next returns the operator after o in display order, wrapping around.
// Unknown operators map to the first operator.
func (o Operator) Next() Operator {
	return o.shift(1)
}

// Prev returns the operator before o in display order, wrapping around.
func (o Operator) Prev() Operator {
	return o.shift(-1)
}

func (o Operator) shift(delta int) Operator {
	ops := Operators()
	for i, op := range ops {
		if op == o {
			return ops[(i+delta+len(ops))%len(ops)]
		}
	}
	return ops[0]
}

// Level is a named inclusive operand range.
type Level struct {
	Number int
	Min    int
	Max    int
}

var levels = []Level{
	{Number: 1, Min: 1, Max: 100},
	{Number: 2, Min: 101, Max: 500},
	{Number: 3, Min: 501, Max: 1000},
}

// Levels returns the fixed difficulty bands in ascending order.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// DefaultLevel returns level 1.
func DefaultLevel() Level { return levels[0] }

// LevelByNumber returns the band with the given number (1-3).
func LevelByNumber(n int) (Level, error) {
	for _, l := range levels {
		if l.Number == n {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %d", ErrUnknownLevel, n)
}

// ParseLevel accepts "2", "level2", "LEVEL 2" or "level-2".
func ParseLevel(s string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if rest, ok := strings.CutPrefix(key, "level"); ok {
		key = strings.TrimLeft(rest, " -_")
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return Level{}, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
	return LevelByNumber(n)
}

// Display returns the range as "min-max".
func (l Level) Display() string {
	return fmt.Sprintf("%d-%d", l.Min, l.Max)
}

// Label returns e.g. "LEVEL 1 (1-100)".
func (l Level) Label() string {
	return fmt.Sprintf("LEVEL %d (%s)", l.Number, l.Display())
}

// Next returns the following band, wrapping from the last to the first.
func (l Level) Next() Level {
	return l.shift(1)
}

// Prev returns the preceding band, wrapping from the first to the last.
func (l Level) Prev() Level {
	return l.shift(-1)
}

func (l Level) shift(delta int) Level {
	for i, lv := range levels {
		if lv.Number == l.Number {
			return levels[(i+delta+len(levels))%len(levels)]
		}
	}
	return levels[0]
}

// Question is a single generated arithmetic problem.
type Question struct {
	Operand1 int
	Operand2 int

	// Operator is the effective operator. It is always a valid operator,
	// even when generation fell back from an unrecognized one.
	Operator Operator

	// Answer is the exact integer result of Operand1 Operator Operand2.
	Answer int

	// Level is the band the operands were drawn from.
	Level Level
}

// Text renders the question as "12 + 7".
func (q Question) Text() string {
	return fmt.Sprintf("%d %s %d", q.Operand1, q.Operator.Symbol(), q.Operand2)
}
