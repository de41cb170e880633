package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/arithgame/internal/problemgen"
	"github.com/abhisek/arithgame/internal/ui/theme"
)

// The mascot's mouth is the selected operator.
const mascotArt = `┌─────┐
│ ◉ ◉ │
│  %s  │
└─────┘`

// RenderMascot returns the mascot art wearing the given operator.
func RenderMascot(op problemgen.Operator) string {
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(fmt.Sprintf(mascotArt, op.Symbol()))
}
