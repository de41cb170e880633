package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/arithgame/internal/problemgen"
)

// fixedGenerator returns a fixed question for whatever operator and level
// are requested, and records each request.
type fixedGenerator struct {
	calls []problemgen.Operator
}

func (g *fixedGenerator) Generate(op problemgen.Operator, level problemgen.Level) problemgen.Question {
	g.calls = append(g.calls, op)
	return problemgen.Question{Operand1: 6, Operand2: 3, Operator: op, Answer: 2, Level: level}
}

func testState() (*SessionState, *fixedGenerator) {
	gen := &fixedGenerator{}
	return NewSessionState(gen, problemgen.OpDivide, problemgen.DefaultLevel()), gen
}

func TestNewSessionState(t *testing.T) {
	state, gen := testState()

	require.NotNil(t, state.CurrentQuestion)
	assert.Len(t, gen.calls, 1)
	assert.Equal(t, PhaseActive, state.Phase)
	assert.NotEmpty(t, state.SessionID)
	assert.Zero(t, state.Score.Total())
}

func TestHandleAnswer_Correct(t *testing.T) {
	state, _ := testState()

	correct, err := HandleAnswer(state, "2")
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, Score{Correct: 1}, state.Score)
	assert.Equal(t, PhaseFeedback, state.Phase)
	assert.True(t, state.LastAnswerCorrect)
	assert.Equal(t, 1, state.PerOperator[problemgen.OpDivide].Correct)
}

func TestHandleAnswer_ZeroFractionCountsAsCorrect(t *testing.T) {
	state, _ := testState()

	correct, err := HandleAnswer(state, " 2.0 ")
	require.NoError(t, err)
	assert.True(t, correct)
}

func TestHandleAnswer_Incorrect(t *testing.T) {
	state, _ := testState()

	correct, err := HandleAnswer(state, "2.5")
	require.NoError(t, err)
	assert.False(t, correct)
	assert.Equal(t, Score{Incorrect: 1}, state.Score)
	assert.Equal(t, "2.5", state.LastAnswer)
}

func TestHandleAnswer_InvalidInputKeepsQuestion(t *testing.T) {
	state, gen := testState()
	before := state.CurrentQuestion

	_, err := HandleAnswer(state, "abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, problemgen.ErrInvalidNumericInput))

	assert.Same(t, before, state.CurrentQuestion)
	assert.Zero(t, state.Score.Total())
	assert.Equal(t, PhaseActive, state.Phase)
	assert.Error(t, state.InputError)
	assert.Len(t, gen.calls, 1)

	// A valid retry clears the error.
	_, err = HandleAnswer(state, "2")
	require.NoError(t, err)
	assert.NoError(t, state.InputError)
}

func TestHandleAnswer_DuringFeedback(t *testing.T) {
	state, _ := testState()
	_, err := HandleAnswer(state, "2")
	require.NoError(t, err)

	_, err = HandleAnswer(state, "2")
	assert.ErrorIs(t, err, ErrNoQuestion)
	assert.Equal(t, 1, state.Score.Total())
}

func TestNextQuestion(t *testing.T) {
	state, gen := testState()
	_, _ = HandleAnswer(state, "9")

	NextQuestion(state, gen)

	assert.Equal(t, PhaseActive, state.Phase)
	assert.Len(t, gen.calls, 2)
	// Score survives new questions.
	assert.Equal(t, 1, state.Score.Incorrect)
}

func TestSetOperator_Regenerates(t *testing.T) {
	state, gen := testState()

	require.NoError(t, SetOperator(state, gen, problemgen.OpModulo))
	assert.Equal(t, problemgen.OpModulo, state.Operator)
	assert.Equal(t, problemgen.OpModulo, state.CurrentQuestion.Operator)
	assert.Len(t, gen.calls, 2)
}

func TestSetOperator_RejectsUnknown(t *testing.T) {
	state, gen := testState()

	err := SetOperator(state, gen, problemgen.Operator("^"))
	assert.ErrorIs(t, err, problemgen.ErrUnknownOperator)
	assert.Equal(t, problemgen.OpDivide, state.Operator)
	assert.Len(t, gen.calls, 1)
}

func TestSetLevel_Regenerates(t *testing.T) {
	state, gen := testState()
	l3, _ := problemgen.LevelByNumber(3)

	require.NoError(t, SetLevel(state, gen, l3))
	assert.Equal(t, 3, state.Level.Number)
	assert.Equal(t, 3, state.CurrentQuestion.Level.Number)

	err := SetLevel(state, gen, problemgen.Level{Number: 7})
	assert.ErrorIs(t, err, problemgen.ErrUnknownLevel)
}

func TestEnd(t *testing.T) {
	state, _ := testState()
	End(state, state.StartTime.Add(90*time.Second))

	assert.Equal(t, PhaseSummary, state.Phase)
	assert.Equal(t, 90*time.Second, state.Elapsed)
}

func TestScore(t *testing.T) {
	var s Score
	assert.Zero(t, s.Accuracy())

	s.Record(true)
	s.Record(true)
	s.Record(false)
	s.Record(true)

	assert.Equal(t, 3, s.Correct)
	assert.Equal(t, 1, s.Incorrect)
	assert.Equal(t, 4, s.Total())
	assert.InDelta(t, 0.75, s.Accuracy(), 1e-9)
}

func TestBuildSummary(t *testing.T) {
	state, gen := testState()

	_, _ = HandleAnswer(state, "2")
	NextQuestion(state, gen)
	_, _ = HandleAnswer(state, "3")
	require.NoError(t, SetOperator(state, gen, problemgen.OpAdd))
	_, _ = HandleAnswer(state, "2")
	End(state, state.StartTime.Add(time.Minute))

	sum := BuildSummary(state)
	assert.Equal(t, 3, sum.TotalQuestions)
	assert.Equal(t, 2, sum.TotalCorrect)
	assert.Equal(t, 1, sum.TotalIncorrect)
	assert.InDelta(t, 2.0/3.0, sum.Accuracy, 1e-9)
	assert.Equal(t, time.Minute, sum.Duration)

	require.Len(t, sum.OperatorResults, 2)
	// Display order: add before divide.
	assert.Equal(t, OperatorResult{Operator: problemgen.OpAdd, Attempted: 1, Correct: 1}, sum.OperatorResults[0])
	assert.Equal(t, OperatorResult{Operator: problemgen.OpDivide, Attempted: 2, Correct: 1}, sum.OperatorResults[1])
}

func TestBuildSummary_Empty(t *testing.T) {
	state, _ := testState()
	sum := BuildSummary(state)
	assert.Zero(t, sum.TotalQuestions)
	assert.Empty(t, sum.OperatorResults)
}
