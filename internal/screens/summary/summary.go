package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/arithgame/internal/router"
	"github.com/abhisek/arithgame/internal/screen"
	"github.com/abhisek/arithgame/internal/session"
	"github.com/abhisek/arithgame/internal/ui/components"
	"github.com/abhisek/arithgame/internal/ui/layout"
	"github.com/abhisek/arithgame/internal/ui/theme"
)

// SummaryScreen displays the end-of-game summary.
type SummaryScreen struct {
	summary *session.SessionSummary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscapeHandler = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.SessionSummary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Game Summary"
}

func (s *SummaryScreen) HandlesEscape() bool {
	return true
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Game over!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d      Correct: %d      Incorrect: %d      Accuracy: %.0f%%",
		sum.TotalQuestions, sum.TotalCorrect, sum.TotalIncorrect, sum.Accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Operations"), width))
	b.WriteString("\n")
	b.WriteString(layout.Centered(divider, width))
	b.WriteString("\n\n")

	if len(sum.OperatorResults) == 0 {
		b.WriteString(layout.Centered(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("No questions answered."), width))
		b.WriteString("\n")
		return b.String()
	}

	barWidth := min(width-8, 60)
	for _, r := range sum.OperatorResults {
		accuracy := 0.0
		if r.Attempted > 0 {
			accuracy = float64(r.Correct) / float64(r.Attempted)
		}
		label := fmt.Sprintf("%-20s %3d/%-3d", r.Operator.DisplayName(), r.Correct, r.Attempted)
		bar := components.NewProgressBar(label, accuracy, true, barWidth)

		b.WriteString(layout.Centered(bar.View(), width))
		b.WriteString("\n")
	}

	return b.String()
}
