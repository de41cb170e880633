package problemgen

import "fmt"

// MathCheckValidator independently recomputes the answer from the operands
// and checks the per-operator result constraints.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question) *ValidationError {
	computed, err := compute(q.Operand1, q.Operator, q.Operand2)
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	if computed != q.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d but question claims %d for %s", computed, q.Answer, q.Text()),
		}
	}

	switch q.Operator {
	case OpSubtract:
		if q.Answer < 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("subtraction result %d is negative", q.Answer),
			}
		}
	case OpDivide:
		if q.Operand2*q.Answer != q.Operand1 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("%s leaves a remainder", q.Text()),
			}
		}
	case OpModulo:
		if q.Answer < 0 || q.Answer >= q.Operand2 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("remainder %d not in [0, %d)", q.Answer, q.Operand2),
			}
		}
	}
	return nil
}

// compute evaluates a op b with integer semantics.
func compute(a int, op Operator, b int) (int, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return a / b, nil
	case OpModulo:
		if b == 0 {
			return 0, fmt.Errorf("modulo by zero")
		}
		return a % b, nil
	default:
		return 0, fmt.Errorf("unsupported operator: %s", op)
	}
}
