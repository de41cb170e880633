package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/arithgame/internal/problemgen"
	"github.com/abhisek/arithgame/internal/router"
	"github.com/abhisek/arithgame/internal/session"
)

func testSummary() *session.SessionSummary {
	return &session.SessionSummary{
		Duration:       3*time.Minute + 5*time.Second,
		TotalQuestions: 14,
		TotalCorrect:   11,
		TotalIncorrect: 3,
		Accuracy:       float64(11) / float64(14),
		OperatorResults: []session.OperatorResult{
			{Operator: problemgen.OpAdd, Attempted: 6, Correct: 5},
			{Operator: problemgen.OpModulo, Attempted: 8, Correct: 6},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Game Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Game Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(100, 24)
	for _, want := range []string{"3:05", "Questions: 14", "Incorrect: 3", "79%", "ADDITION (+)", "MODULO (%)"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary view missing %q", want)
		}
	}
}

func TestSummaryScreen_Empty(t *testing.T) {
	s := New(&session.SessionSummary{})
	view := s.View(80, 24)
	if !strings.Contains(view, "No questions answered.") {
		t.Error("expected empty-game message")
	}
}

func TestSummaryScreen_NilSummary(t *testing.T) {
	if New(nil).View(80, 24) != "" {
		t.Error("expected empty view for nil summary")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, code := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New(testSummary())
		_, cmd := s.Update(tea.KeyPressMsg{Code: code})
		if cmd == nil {
			t.Fatalf("expected a command on key %q", code)
		}
		if _, ok := cmd().(router.PopToRootMsg); !ok {
			t.Errorf("expected PopToRootMsg on key %q", code)
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
