package problemgen

import (
	"math/rand"
	"time"

	"github.com/golang/glog"
)

// Generate builds a question for op drawn from level using rng.
//
// Division questions are built from a divisor and a quotient so the result
// never has a remainder. Modulo divisors are drawn from [1, max]. An
// operator outside the supported set falls back to addition and the
// returned question reports OpAdd.
func Generate(rng *rand.Rand, op Operator, level Level) Question {
	lo, hi := level.Min, level.Max
	q := Question{Operator: op, Level: level}

	switch op {
	case OpAdd:
		q.Operand1 = between(rng, lo, hi)
		q.Operand2 = between(rng, lo, hi)
		q.Answer = q.Operand1 + q.Operand2

	case OpSubtract:
		q.Operand1 = between(rng, lo, hi)
		q.Operand2 = between(rng, lo, hi)
		if q.Operand2 > q.Operand1 {
			q.Operand1, q.Operand2 = q.Operand2, q.Operand1
		}
		q.Answer = q.Operand1 - q.Operand2

	case OpMultiply:
		q.Operand1 = between(rng, lo, hi)
		q.Operand2 = between(rng, lo, hi)
		q.Answer = q.Operand1 * q.Operand2

	case OpDivide:
		divisor := between(rng, max(1, lo), max(1, hi))
		quotient := between(rng, lo, max(lo, hi/divisor))
		if quotient < 1 {
			quotient = 1
		}
		q.Operand1 = divisor * quotient
		q.Operand2 = divisor
		q.Answer = quotient

	case OpModulo:
		q.Operand2 = between(rng, 1, max(1, hi))
		q.Operand1 = between(rng, lo, hi)
		q.Answer = q.Operand1 % q.Operand2

	default:
		q.Operator = OpAdd
		q.Operand1 = between(rng, lo, hi)
		q.Operand2 = between(rng, lo, hi)
		q.Answer = q.Operand1 + q.Operand2
	}

	return q
}

// between draws uniformly from the inclusive range [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return rng.Intn(hi-lo+1) + lo
}

// Generator produces questions from its own random source and checks each
// one against the configured validator chain.
type Generator struct {
	rng *rand.Rand
	cfg Config
}

// NewGenerator returns a Generator seeded with seed. A zero seed uses the
// current time.
func NewGenerator(seed int64, cfg Config) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Generate returns a question for op and level. When verification is
// enabled, a question failing a validator is discarded and regenerated, up
// to cfg.MaxAttempts times; the last attempt is returned regardless.
func (g *Generator) Generate(op Operator, level Level) Question {
	attempts := g.cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var q Question
	for attempt := 1; attempt <= attempts; attempt++ {
		q = Generate(g.rng, op, level)
		if !g.cfg.Verify {
			break
		}
		verr := RunValidators(g.cfg.Validators, &q)
		if verr == nil {
			break
		}
		glog.Warningf("generated question %q failed validation (attempt %d/%d): %v",
			q.Text(), attempt, attempts, verr)
	}

	glog.V(2).Infof("generated %s question at level %d: %s = %d",
		q.Operator.Name(), level.Number, q.Text(), q.Answer)
	return q
}
