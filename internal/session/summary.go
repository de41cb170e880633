package session

import (
	"time"

	"github.com/abhisek/arithgame/internal/problemgen"
)

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	Duration        time.Duration
	TotalQuestions  int
	TotalCorrect    int
	TotalIncorrect  int
	Accuracy        float64
	OperatorResults []OperatorResult
}

// BuildSummary creates a SessionSummary from the current session state.
// Operator results are listed in display order, skipping operators that
// were never answered.
func BuildSummary(state *SessionState) *SessionSummary {
	var results []OperatorResult
	for _, op := range problemgen.Operators() {
		if r, ok := state.PerOperator[op]; ok && r.Attempted > 0 {
			results = append(results, *r)
		}
	}

	return &SessionSummary{
		Duration:        state.Elapsed,
		TotalQuestions:  state.Score.Total(),
		TotalCorrect:    state.Score.Correct,
		TotalIncorrect:  state.Score.Incorrect,
		Accuracy:        state.Score.Accuracy(),
		OperatorResults: results,
	}
}
