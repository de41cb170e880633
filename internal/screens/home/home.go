package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/golang/glog"

	"github.com/abhisek/arithgame/internal/problemgen"
	"github.com/abhisek/arithgame/internal/router"
	"github.com/abhisek/arithgame/internal/screen"
	"github.com/abhisek/arithgame/internal/screens/game"
	"github.com/abhisek/arithgame/internal/session"
	"github.com/abhisek/arithgame/internal/ui/components"
	"github.com/abhisek/arithgame/internal/ui/layout"
)

const (
	itemStart = iota
	itemOperator
	itemLevel
	itemExit
)

// HomeScreen is the main menu: pick an operator and a level, then start.
type HomeScreen struct {
	generator session.QuestionGenerator
	operator  problemgen.Operator
	level     problemgen.Level
	menu      components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Reactivator = (*HomeScreen)(nil)

// New creates a HomeScreen with the given starting selections.
func New(generator session.QuestionGenerator, op problemgen.Operator, level problemgen.Level) *HomeScreen {
	h := &HomeScreen{
		generator: generator,
		operator:  op,
		level:     level,
	}

	items := []components.MenuItem{
		{Label: "START GAME", Action: h.startGame},
		{Label: operatorLabel(op), Adjust: h.adjustOperator},
		{Label: levelLabel(level), Adjust: h.adjustLevel},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
	}
	if h.menu.Selected == itemOperator || h.menu.Selected == itemLevel {
		hints = append(hints, layout.KeyHint{Key: "◂▸", Description: "Change"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Select"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

// Reactivate refreshes the selector labels, which the game screen may have
// changed through its selection callback.
func (h *HomeScreen) Reactivate() tea.Cmd {
	h.menu.Items[itemOperator].Label = operatorLabel(h.operator)
	h.menu.Items[itemLevel].Label = levelLabel(h.level)
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.operator, cw))
	}
	sections = append(sections, renderSelectionBar(h.operator, h.level, cw))
	if compact {
		sections = append(sections, components.ArcadeMenuCompact(h.menu.Labels(), h.menu.Selected, cw))
	} else {
		sections = append(sections, components.ArcadeMenu(h.menu.Labels(), h.menu.Selected, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

// Selection returns the operator and level a new game would start with.
func (h *HomeScreen) Selection() (problemgen.Operator, problemgen.Level) {
	return h.operator, h.level
}

func (h *HomeScreen) startGame() tea.Cmd {
	glog.V(1).Infof("starting game: %s, level %d", h.operator.Name(), h.level.Number)
	g := game.New(h.generator, h.operator, h.level, h.onSelect)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: g}
	}
}

// onSelect keeps the home selections in step with changes made in a game.
func (h *HomeScreen) onSelect(op problemgen.Operator, level problemgen.Level) {
	h.operator = op
	h.level = level
}

func (h *HomeScreen) adjustOperator(delta int) string {
	if delta < 0 {
		h.operator = h.operator.Prev()
	} else {
		h.operator = h.operator.Next()
	}
	return operatorLabel(h.operator)
}

func (h *HomeScreen) adjustLevel(delta int) string {
	if delta < 0 {
		h.level = h.level.Prev()
	} else {
		h.level = h.level.Next()
	}
	return levelLabel(h.level)
}

func operatorLabel(op problemgen.Operator) string {
	return "◂ " + op.DisplayName() + " ▸"
}

func levelLabel(l problemgen.Level) string {
	return "◂ " + l.Label() + " ▸"
}
