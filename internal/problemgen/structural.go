package problemgen

import "fmt"

// OperandRangeValidator checks that operands were drawn from the bounds the
// question's level and operator allow.
type OperandRangeValidator struct{}

func (v *OperandRangeValidator) Name() string { return "operand-range" }

func (v *OperandRangeValidator) Validate(q *Question) *ValidationError {
	lo, hi := q.Level.Min, q.Level.Max

	if !q.Operator.Valid() {
		return v.fail("operator %q is not supported", q.Operator)
	}

	switch q.Operator {
	case OpAdd, OpSubtract, OpMultiply:
		if !within(q.Operand1, lo, hi) {
			return v.fail("operand1 %d outside [%d, %d]", q.Operand1, lo, hi)
		}
		if !within(q.Operand2, lo, hi) {
			return v.fail("operand2 %d outside [%d, %d]", q.Operand2, lo, hi)
		}
	case OpModulo:
		if !within(q.Operand1, lo, hi) {
			return v.fail("operand1 %d outside [%d, %d]", q.Operand1, lo, hi)
		}
		if !within(q.Operand2, 1, max(1, hi)) {
			return v.fail("modulo divisor %d outside [1, %d]", q.Operand2, max(1, hi))
		}
	case OpDivide:
		if !within(q.Operand2, max(1, lo), max(1, hi)) {
			return v.fail("divisor %d outside [%d, %d]", q.Operand2, max(1, lo), max(1, hi))
		}
	}
	return nil
}

func (v *OperandRangeValidator) fail(format string, args ...any) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
}

func within(n, lo, hi int) bool {
	return n >= lo && n <= hi
}
