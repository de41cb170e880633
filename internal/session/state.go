package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/arithgame/internal/problemgen"
)

// QuestionGenerator produces questions for an operator and level.
// *problemgen.Generator satisfies it.
type QuestionGenerator interface {
	Generate(op problemgen.Operator, level problemgen.Level) problemgen.Question
}

// SessionPhase represents the current phase of the game.
type SessionPhase int

const (
	PhaseActive   SessionPhase = iota // Waiting for an answer
	PhaseFeedback                     // Showing answer feedback
	PhaseSummary                      // Game over, showing summary
)

// SessionState tracks the runtime state of one game.
type SessionState struct {
	// SessionID is the UUID for this game, used to correlate log lines.
	SessionID string

	// Operator and Level are the current selections.
	Operator problemgen.Operator
	Level    problemgen.Level

	// CurrentQuestion is the question on screen. Replaced, never kept.
	CurrentQuestion *problemgen.Question

	// Score holds the running correct/incorrect counters.
	Score Score

	// PerOperator tracks results per operator for the summary screen.
	PerOperator map[problemgen.Operator]*OperatorResult

	StartTime time.Time
	Elapsed   time.Duration

	Phase SessionPhase

	// LastAnswerCorrect records whether the most recent answer was correct.
	LastAnswerCorrect bool

	// LastAnswer is the raw text of the most recent scored answer.
	LastAnswer string

	// LastQuestion is the question the most recent answer was scored against.
	LastQuestion *problemgen.Question

	// InputError is set when the last submission could not be read as a
	// whole number. Cleared on the next successful submission.
	InputError error
}

// OperatorResult tracks per-operator performance within a single game.
type OperatorResult struct {
	Operator  problemgen.Operator
	Attempted int
	Correct   int
}

// NewSessionState creates a game with the given selections and generates
// the first question.
func NewSessionState(gen QuestionGenerator, op problemgen.Operator, level problemgen.Level) *SessionState {
	state := &SessionState{
		SessionID:   uuid.New().String(),
		Operator:    op,
		Level:       level,
		PerOperator: make(map[problemgen.Operator]*OperatorResult),
		StartTime:   time.Now(),
		Phase:       PhaseActive,
	}
	NextQuestion(state, gen)
	return state
}
