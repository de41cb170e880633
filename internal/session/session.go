package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"

	"github.com/abhisek/arithgame/internal/problemgen"
)

// ErrNoQuestion is returned when an answer is submitted with no question on
// screen.
var ErrNoQuestion = errors.New("no active question")

// HandleAnswer checks raw against the current question and updates the
// score. Input that is not a whole number returns an error wrapping
// problemgen.ErrInvalidNumericInput and leaves the score and question
// untouched so the caller can ask again.
func HandleAnswer(state *SessionState, raw string) (bool, error) {
	q := state.CurrentQuestion
	if q == nil || state.Phase != PhaseActive {
		return false, ErrNoQuestion
	}

	res, err := problemgen.CheckAnswer(raw, q.Answer)
	if err != nil {
		state.InputError = err
		glog.V(1).Infof("session %s: rejected input %q for %s: %v", state.SessionID, raw, q.Text(), err)
		return false, err
	}

	correct := res.Accepted
	state.InputError = nil
	state.LastAnswerCorrect = correct
	state.LastAnswer = raw
	state.LastQuestion = q
	state.Score.Record(correct)

	r := state.PerOperator[q.Operator]
	if r == nil {
		r = &OperatorResult{Operator: q.Operator}
		state.PerOperator[q.Operator] = r
	}
	r.Attempted++
	if correct {
		r.Correct++
	}

	state.Phase = PhaseFeedback
	glog.V(1).Infof("session %s: %s = %d, answered %q, correct=%t (score %d/%d)",
		state.SessionID, q.Text(), q.Answer, raw, correct, state.Score.Correct, state.Score.Total())
	return correct, nil
}

// NextQuestion replaces the current question with a fresh one for the
// current selections and returns to the active phase.
func NextQuestion(state *SessionState, gen QuestionGenerator) {
	q := gen.Generate(state.Operator, state.Level)
	state.CurrentQuestion = &q
	state.InputError = nil
	state.Phase = PhaseActive
}

// SetOperator changes the operator and generates a new question.
func SetOperator(state *SessionState, gen QuestionGenerator, op problemgen.Operator) error {
	if !op.Valid() {
		return fmt.Errorf("%w: %q", problemgen.ErrUnknownOperator, op)
	}
	state.Operator = op
	NextQuestion(state, gen)
	return nil
}

// SetLevel changes the level and generates a new question.
func SetLevel(state *SessionState, gen QuestionGenerator, level problemgen.Level) error {
	lvl, err := problemgen.LevelByNumber(level.Number)
	if err != nil {
		return err
	}
	state.Level = lvl
	NextQuestion(state, gen)
	return nil
}

// End marks the game over and records its duration.
func End(state *SessionState, now time.Time) {
	state.Elapsed = now.Sub(state.StartTime)
	state.Phase = PhaseSummary
	glog.Infof("session %s ended: %d correct, %d incorrect in %s",
		state.SessionID, state.Score.Correct, state.Score.Incorrect, state.Elapsed.Round(time.Second))
}
