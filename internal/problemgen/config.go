package problemgen

// Config controls the behavior of the Generator.
type Config struct {
	// Verify enables the validator chain on every generated question.
	Verify bool

	// Validators is the ordered list of validators run when Verify is set.
	// The first failure stops the chain.
	Validators []Validator

	// MaxAttempts bounds how many times a failing question is regenerated.
	MaxAttempts int
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Verify: true,
		Validators: []Validator{
			&OperandRangeValidator{},
			&MathCheckValidator{},
		},
		MaxAttempts: 3,
	}
}
