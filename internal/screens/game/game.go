package game

import (
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/golang/glog"

	"github.com/abhisek/arithgame/internal/problemgen"
	"github.com/abhisek/arithgame/internal/router"
	"github.com/abhisek/arithgame/internal/screen"
	"github.com/abhisek/arithgame/internal/screens/summary"
	sess "github.com/abhisek/arithgame/internal/session"
	"github.com/abhisek/arithgame/internal/ui/components"
	"github.com/abhisek/arithgame/internal/ui/layout"
)

const answerWidth = 12

// SelectFunc is told about operator and level changes made during a game.
type SelectFunc func(op problemgen.Operator, level problemgen.Level)

// GameScreen implements screen.Screen for a running game.
type GameScreen struct {
	state     *sess.SessionState
	generator sess.QuestionGenerator
	onSelect  SelectFunc
	input     components.TextInput

	showingQuitConfirm bool

	// now is swapped in tests.
	now func() time.Time
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)
var _ screen.StatusProvider = (*GameScreen)(nil)
var _ screen.EscapeHandler = (*GameScreen)(nil)

// New starts a game with the given selections. onSelect may be nil.
func New(generator sess.QuestionGenerator, op problemgen.Operator, level problemgen.Level, onSelect SelectFunc) *GameScreen {
	return &GameScreen{
		state:     sess.NewSessionState(generator, op, level),
		generator: generator,
		onSelect:  onSelect,
		input:     components.NewTextInput("?", answerWidth),
		now:       time.Now,
	}
}

func (g *GameScreen) Init() tea.Cmd {
	return tea.Batch(
		g.input.Init(),
		tickCmd(),
	)
}

func (g *GameScreen) Title() string {
	return "Game"
}

// HandlesEscape reports true: Esc opens the quit confirmation instead of
// popping the screen.
func (g *GameScreen) HandlesEscape() bool {
	return true
}

func (g *GameScreen) HeaderStatus() layout.HeaderStatus {
	return layout.HeaderStatus{
		Correct:   g.state.Score.Correct,
		Incorrect: g.state.Score.Incorrect,
		Show:      true,
	}
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	if g.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if g.state.Phase == sess.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Next question"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Tab", Description: "Operation"},
		{Key: "↑↓", Description: "Level"},
		{Key: "Esc", Description: "Quit"},
	}
}

// State exposes the running game, mainly for the app header and tests.
func (g *GameScreen) State() *sess.SessionState {
	return g.state
}

func (g *GameScreen) View(width, height int) string {
	if g.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	if g.state.Phase == sess.PhaseFeedback {
		return g.renderFeedback(width, height)
	}
	return g.renderQuestionView(width, height)
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return g.handleTimerTick(msg)

	case gameEndMsg:
		return g.handleGameEnd()

	case tea.KeyMsg:
		return g.handleKey(msg)
	}

	if g.state.Phase == sess.PhaseActive && !g.showingQuitConfirm {
		var cmd tea.Cmd
		g.input, cmd = g.input.Update(msg)
		return g, cmd
	}
	return g, nil
}

func (g *GameScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if g.state.Phase == sess.PhaseSummary {
		return g, nil
	}
	g.state.Elapsed = time.Time(msg).Sub(g.state.StartTime)
	return g, tickCmd()
}

func (g *GameScreen) handleGameEnd() (screen.Screen, tea.Cmd) {
	sess.End(g.state, g.now())
	sum := sess.BuildSummary(g.state)
	return g, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (g *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if g.state.Phase == sess.PhaseSummary {
		return g, nil
	}

	// Quit confirmation dialog.
	if g.showingQuitConfirm {
		switch key {
		case "y", "Y":
			g.showingQuitConfirm = false
			return g, func() tea.Msg { return gameEndMsg{} }
		case "n", "N", "esc":
			g.showingQuitConfirm = false
		}
		return g, nil
	}

	// Feedback view: Esc still offers to quit, any other key moves on.
	if g.state.Phase == sess.PhaseFeedback {
		if key == "esc" {
			g.showingQuitConfirm = true
			return g, nil
		}
		return g.nextQuestion()
	}

	switch key {
	case "esc":
		g.showingQuitConfirm = true
		return g, nil
	case "enter":
		return g.submitAnswer()
	case "tab":
		return g.changeOperator(g.state.Operator.Next())
	case "shift+tab":
		return g.changeOperator(g.state.Operator.Prev())
	case "up":
		return g.changeLevel(g.state.Level.Next())
	case "down":
		return g.changeLevel(g.state.Level.Prev())
	}

	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return g, cmd
}

// submitAnswer scores the typed answer. Blank input is ignored; input that
// is not a whole number keeps the question and shows a hint.
func (g *GameScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	raw := g.input.Value()
	if strings.TrimSpace(raw) == "" {
		return g, nil
	}

	correct, err := sess.HandleAnswer(g.state, raw)
	if err != nil {
		if !errors.Is(err, problemgen.ErrInvalidNumericInput) {
			glog.Warningf("game %s: submit: %v", g.state.SessionID, err)
		}
		g.input.Submit(false)
		return g, nil
	}

	g.input.Submit(correct)
	return g, nil
}

func (g *GameScreen) nextQuestion() (screen.Screen, tea.Cmd) {
	sess.NextQuestion(g.state, g.generator)
	g.input.Reset()
	return g, g.input.Init()
}

func (g *GameScreen) changeOperator(op problemgen.Operator) (screen.Screen, tea.Cmd) {
	if err := sess.SetOperator(g.state, g.generator, op); err != nil {
		glog.Warningf("game %s: %v", g.state.SessionID, err)
		return g, nil
	}
	g.selectionChanged()
	g.input.Reset()
	return g, nil
}

func (g *GameScreen) changeLevel(level problemgen.Level) (screen.Screen, tea.Cmd) {
	if err := sess.SetLevel(g.state, g.generator, level); err != nil {
		glog.Warningf("game %s: %v", g.state.SessionID, err)
		return g, nil
	}
	g.selectionChanged()
	g.input.Reset()
	return g, nil
}

func (g *GameScreen) selectionChanged() {
	glog.V(2).Infof("game %s: now %s at level %d", g.state.SessionID, g.state.Operator.Name(), g.state.Level.Number)
	if g.onSelect != nil {
		g.onSelect(g.state.Operator, g.state.Level)
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
