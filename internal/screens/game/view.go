package game

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/arithgame/internal/problemgen"
	sess "github.com/abhisek/arithgame/internal/session"
	"github.com/abhisek/arithgame/internal/ui/components"
	"github.com/abhisek/arithgame/internal/ui/layout"
	"github.com/abhisek/arithgame/internal/ui/theme"
)

const (
	invalidInputMessage = "Please enter a valid whole number."
	correctMessage      = "Correct! Well done!"

	// Fits "1000" plus padding and border.
	operandBoxWidth = 8
)

// incorrectMessage is the feedback line for a wrong answer.
func incorrectMessage(answer int) string {
	return fmt.Sprintf("Incorrect. The correct answer is %d.", answer)
}

// renderQuestionView renders the equation row and the three side panels.
func (g *GameScreen) renderQuestionView(width, height int) string {
	state := g.state
	q := state.CurrentQuestion
	if q == nil {
		return layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim).Render("\n\n  Generating question..."), width)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(g.renderEquation(q), width))
	b.WriteString("\n")

	// Inline validation hint, kept one line tall so the layout doesn't jump.
	hint := " "
	if state.InputError != nil {
		hint = lipgloss.NewStyle().Foreground(theme.Error).Render(invalidInputMessage)
	}
	b.WriteString(layout.Centered(hint, width))
	b.WriteString("\n\n")

	if layout.IsCompact(width, height) {
		b.WriteString(layout.Centered(renderCompactStatus(state), width))
		return b.String()
	}

	pw := panelWidth(width)
	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		renderOperationsPanel(state.Operator, pw),
		" ",
		renderLevelPanel(state.Level, pw),
		" ",
		renderScorePanel(state, pw),
	)
	b.WriteString(layout.Centered(panels, width))
	return b.String()
}

// renderEquation draws [o1] op [o2] = [answer].
func (g *GameScreen) renderEquation(q *problemgen.Question) string {
	o1 := theme.OperandBox.Width(operandBoxWidth).Render(strconv.Itoa(q.Operand1))
	o2 := theme.OperandBox.Width(operandBoxWidth).Render(strconv.Itoa(q.Operand2))
	op := theme.OperatorGlyph.Render(" " + q.Operator.Symbol() + " ")
	eq := theme.OperatorGlyph.Render(" = ")
	answer := theme.AnswerBox.Render(g.input.View())

	return lipgloss.JoinHorizontal(lipgloss.Center, o1, op, o2, eq, answer)
}

func panelWidth(width int) int {
	w := (width - 8) / 3
	if w > 28 {
		w = 28
	}
	return w
}

func renderOperationsPanel(current problemgen.Operator, pw int) string {
	lines := make([]string, 0, len(problemgen.Operators()))
	for _, op := range problemgen.Operators() {
		if op == current {
			lines = append(lines, theme.Selected.Render("▸ "+op.DisplayName()))
		} else {
			lines = append(lines, theme.Unselected.Render("  "+op.DisplayName()))
		}
	}
	return components.ArcadePanel("OPERATIONS", leftAligned(lines), pw)
}

func renderLevelPanel(current problemgen.Level, pw int) string {
	lines := make([]string, 0, len(problemgen.Levels()))
	for _, l := range problemgen.Levels() {
		label := fmt.Sprintf("LEVEL %d  %s", l.Number, l.Display())
		if l.Number == current.Number {
			lines = append(lines, theme.Selected.Render("▸ "+label))
		} else {
			lines = append(lines, theme.Unselected.Render("  "+label))
		}
	}
	return components.ArcadePanel("LEVEL", leftAligned(lines), pw)
}

func renderScorePanel(state *sess.SessionState, pw int) string {
	lines := []string{
		theme.Correct.Render(fmt.Sprintf("CORRECT    %d", state.Score.Correct)),
		theme.Incorrect.Render(fmt.Sprintf("INCORRECT  %d", state.Score.Incorrect)),
		components.NewProgressBar("", state.Score.Accuracy(), true, pw-6).View(),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("TIME " + formatDuration(state.Elapsed.Seconds())),
	}
	return components.ArcadePanel("SCORE", leftAligned(lines), pw)
}

// renderCompactStatus is the one-line stand-in for the panels on small
// terminals.
func renderCompactStatus(state *sess.SessionState) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	return fmt.Sprintf("%s %s   %s %s   %s %s",
		dim.Render("OP"), theme.Selected.Render(state.Operator.DisplayName()),
		dim.Render("LVL"), theme.Selected.Render(state.Level.Label()),
		theme.Correct.Render(fmt.Sprintf("✓%d", state.Score.Correct)),
		theme.Incorrect.Render(fmt.Sprintf("✗%d", state.Score.Incorrect)),
	)
}

func leftAligned(lines []string) string {
	return lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.Join(lines, "\n"))
}

// renderFeedback renders the result of the last answer.
func (g *GameScreen) renderFeedback(width, height int) string {
	state := g.state
	q := state.LastQuestion

	var b strings.Builder
	b.WriteString("\n\n")

	if q != nil {
		b.WriteString(layout.Centered(lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(fmt.Sprintf("%s = %s", q.Text(), strings.TrimSpace(state.LastAnswer))), width))
		b.WriteString("\n\n")
	}

	if state.LastAnswerCorrect {
		b.WriteString(layout.Centered(theme.Correct.Render(correctMessage), width))
	} else if q != nil {
		b.WriteString(layout.Centered(theme.Incorrect.Render(incorrectMessage(q.Answer)), width))
	}
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Score: %d correct, %d incorrect", state.Score.Correct, state.Score.Incorrect)), width))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Press any key for the next question..."), width))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(layout.Centered(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("End game?"), width))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("You'll see a summary of this game."), width))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(lipgloss.NewStyle().
		Foreground(theme.Success).
		Render("[Y] Yes, end game"), width))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render("[N] No, keep going"), width))

	return b.String()
}

func formatDuration(seconds float64) string {
	s := int(seconds)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
