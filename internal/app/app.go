package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/golang/glog"

	"github.com/abhisek/arithgame/internal/problemgen"
	"github.com/abhisek/arithgame/internal/router"
	"github.com/abhisek/arithgame/internal/screen"
	"github.com/abhisek/arithgame/internal/screens/home"
	"github.com/abhisek/arithgame/internal/session"
	"github.com/abhisek/arithgame/internal/ui/layout"
)

// Options holds the dependencies and starting selections for the TUI.
type Options struct {
	Generator session.QuestionGenerator
	Operator  problemgen.Operator
	Level     problemgen.Level
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Generator, opts.Operator, opts.Level)
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		glog.V(3).Infof("window resized to %dx%d", msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var status layout.HeaderStatus
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.HeaderStatus()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	}
	if len(footerHints) == 0 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	if opts.Generator == nil {
		opts.Generator = problemgen.NewGenerator(0, problemgen.DefaultConfig())
	}
	if !opts.Operator.Valid() {
		opts.Operator = problemgen.OpAdd
	}
	if _, err := problemgen.LevelByNumber(opts.Level.Number); err != nil {
		opts.Level = problemgen.DefaultLevel()
	}

	glog.Infof("starting TUI: %s, level %d", opts.Operator.Name(), opts.Level.Number)
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	glog.Info("TUI exited")
	return nil
}
