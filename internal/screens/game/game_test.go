package game

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/arithgame/internal/problemgen"
	"github.com/abhisek/arithgame/internal/router"
	"github.com/abhisek/arithgame/internal/screen"
	"github.com/abhisek/arithgame/internal/screens/summary"
	sess "github.com/abhisek/arithgame/internal/session"
)

// mockGenerator always asks 12 op 7 with answer 19, echoing the requested
// operator and level.
type mockGenerator struct {
	calls int
}

func (m *mockGenerator) Generate(op problemgen.Operator, level problemgen.Level) problemgen.Question {
	m.calls++
	return problemgen.Question{Operand1: 12, Operand2: 7, Operator: op, Answer: 19, Level: level}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testGameScreen() (*GameScreen, *mockGenerator) {
	gen := &mockGenerator{}
	g := New(gen, problemgen.OpAdd, problemgen.DefaultLevel(), nil)
	return g, gen
}

func typeAnswer(g *GameScreen, s string) {
	g.input.Model.SetValue(s)
}

func submit(g *GameScreen) (*GameScreen, tea.Cmd) {
	var scr screen.Screen = g
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	return scr.(*GameScreen), cmd
}

func TestGameScreen_Title(t *testing.T) {
	g, _ := testGameScreen()
	if g.Title() != "Game" {
		t.Errorf("Title = %q, want %q", g.Title(), "Game")
	}
}

func TestGameScreen_StartsWithQuestion(t *testing.T) {
	g, gen := testGameScreen()
	if g.State().CurrentQuestion == nil {
		t.Fatal("expected a question on start")
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
	view := g.View(100, 30)
	if !strings.Contains(view, "12") || !strings.Contains(view, "OPERATIONS") {
		t.Errorf("question view missing equation or panels:\n%s", view)
	}
}

func TestGameScreen_CorrectAnswer(t *testing.T) {
	g, _ := testGameScreen()
	typeAnswer(g, "19")

	g, _ = submit(g)

	if g.State().Phase != sess.PhaseFeedback {
		t.Fatalf("Phase = %v, want feedback", g.State().Phase)
	}
	if g.State().Score.Correct != 1 {
		t.Errorf("Correct = %d, want 1", g.State().Score.Correct)
	}
	if !strings.Contains(g.View(100, 30), correctMessage) {
		t.Error("expected correct feedback message")
	}
	if hs := g.HeaderStatus(); !hs.Show || hs.Correct != 1 {
		t.Errorf("HeaderStatus = %+v, want 1 correct shown", hs)
	}
}

func TestGameScreen_IncorrectAnswer(t *testing.T) {
	g, _ := testGameScreen()
	typeAnswer(g, "20")

	g, _ = submit(g)

	if g.State().Score.Incorrect != 1 {
		t.Errorf("Incorrect = %d, want 1", g.State().Score.Incorrect)
	}
	if !strings.Contains(g.View(100, 30), "Incorrect. The correct answer is 19.") {
		t.Error("expected incorrect feedback with the correct answer")
	}
}

func TestGameScreen_FractionalAnswerIsIncorrect(t *testing.T) {
	g, _ := testGameScreen()
	typeAnswer(g, "19.5")

	g, _ = submit(g)

	if g.State().Phase != sess.PhaseFeedback || g.State().Score.Incorrect != 1 {
		t.Errorf("expected 19.5 to be scored incorrect, got phase %v score %+v", g.State().Phase, g.State().Score)
	}
}

func TestGameScreen_InvalidInputKeepsQuestion(t *testing.T) {
	g, gen := testGameScreen()
	typeAnswer(g, "abc")

	g, _ = submit(g)

	if g.State().Phase != sess.PhaseActive {
		t.Errorf("Phase = %v, want active", g.State().Phase)
	}
	if g.State().Score.Total() != 0 {
		t.Errorf("score total = %d, want 0", g.State().Score.Total())
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
	if !strings.Contains(g.View(100, 30), invalidInputMessage) {
		t.Error("expected inline validation message")
	}
}

func TestGameScreen_EmptyInputIgnored(t *testing.T) {
	g, _ := testGameScreen()
	typeAnswer(g, "   ")

	g, _ = submit(g)

	if g.State().Phase != sess.PhaseActive || g.State().InputError != nil {
		t.Error("expected blank submission to be ignored")
	}
}

func TestGameScreen_FeedbackDismiss(t *testing.T) {
	g, gen := testGameScreen()
	typeAnswer(g, "19")
	g, _ = submit(g)

	var scr screen.Screen = g
	scr, _ = scr.Update(keyPress(' '))
	g = scr.(*GameScreen)

	if g.State().Phase != sess.PhaseActive {
		t.Errorf("Phase = %v, want active after dismiss", g.State().Phase)
	}
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want 2", gen.calls)
	}
	if g.input.Value() != "" {
		t.Errorf("input = %q, want cleared", g.input.Value())
	}
	if g.State().Score.Correct != 1 {
		t.Error("expected score to survive the next question")
	}
}

func TestGameScreen_TabCyclesOperator(t *testing.T) {
	var gotOp problemgen.Operator
	gen := &mockGenerator{}
	g := New(gen, problemgen.OpAdd, problemgen.DefaultLevel(), func(op problemgen.Operator, _ problemgen.Level) {
		gotOp = op
	})

	var scr screen.Screen = g
	scr, _ = scr.Update(specialKey(tea.KeyTab))
	g = scr.(*GameScreen)

	if g.State().Operator != problemgen.OpSubtract {
		t.Errorf("Operator = %q, want %q", g.State().Operator, problemgen.OpSubtract)
	}
	if g.State().CurrentQuestion.Operator != problemgen.OpSubtract {
		t.Error("expected a new question for the new operator")
	}
	if gotOp != problemgen.OpSubtract {
		t.Errorf("onSelect got %q, want %q", gotOp, problemgen.OpSubtract)
	}

	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	g = scr.(*GameScreen)
	if g.State().Operator != problemgen.OpModulo {
		t.Errorf("Operator after two shift+tab = %q, want %q", g.State().Operator, problemgen.OpModulo)
	}
}

func TestGameScreen_ArrowsCycleLevel(t *testing.T) {
	g, _ := testGameScreen()

	var scr screen.Screen = g
	scr, _ = scr.Update(specialKey(tea.KeyUp))
	g = scr.(*GameScreen)
	if g.State().Level.Number != 2 {
		t.Errorf("Level = %d, want 2", g.State().Level.Number)
	}

	scr, _ = scr.Update(specialKey(tea.KeyDown))
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	g = scr.(*GameScreen)
	if g.State().Level.Number != 3 {
		t.Errorf("Level after wrap = %d, want 3", g.State().Level.Number)
	}
	if g.State().CurrentQuestion.Level.Number != 3 {
		t.Error("expected a new question at the new level")
	}
}

func TestGameScreen_QuitConfirm(t *testing.T) {
	g, _ := testGameScreen()

	var scr screen.Screen = g
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	g = scr.(*GameScreen)
	if !g.showingQuitConfirm {
		t.Fatal("expected quit confirmation dialog")
	}
	if !strings.Contains(g.View(100, 30), "End game?") {
		t.Error("expected quit dialog in view")
	}

	scr, _ = scr.Update(keyPress('n'))
	g = scr.(*GameScreen)
	if g.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestGameScreen_QuitConfirm_YesShowsSummary(t *testing.T) {
	g, _ := testGameScreen()
	start := g.State().StartTime
	g.now = func() time.Time { return start.Add(75 * time.Second) }
	typeAnswer(g, "19")
	g, _ = submit(g)

	var scr screen.Screen = g
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	scr, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(gameEndMsg); !ok {
		t.Fatal("expected gameEndMsg")
	}

	_, cmd = scr.Update(gameEndMsg{})
	if cmd == nil {
		t.Fatal("expected navigation command after game end")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", msg.Screen)
	}
	if g.State().Phase != sess.PhaseSummary {
		t.Errorf("Phase = %v, want summary", g.State().Phase)
	}
	if g.State().Elapsed != 75*time.Second {
		t.Errorf("Elapsed = %v, want 75s", g.State().Elapsed)
	}
}

func TestGameScreen_TimerTick(t *testing.T) {
	g, _ := testGameScreen()
	tick := timerTickMsg(g.State().StartTime.Add(3 * time.Second))

	_, cmd := g.Update(tick)
	if cmd == nil {
		t.Error("expected the timer to re-arm")
	}
	if g.State().Elapsed != 3*time.Second {
		t.Errorf("Elapsed = %v, want 3s", g.State().Elapsed)
	}
}

func TestGameScreen_KeyHints(t *testing.T) {
	g, _ := testGameScreen()
	if len(g.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
	if !g.HandlesEscape() {
		t.Error("expected the game to handle Esc itself")
	}
}

func TestGameScreen_CompactView(t *testing.T) {
	g, _ := testGameScreen()
	view := g.View(80, 18)
	if view == "" {
		t.Error("expected non-empty compact view")
	}
	if strings.Contains(view, "OPERATIONS") {
		t.Error("expected panels to collapse in compact view")
	}
}
