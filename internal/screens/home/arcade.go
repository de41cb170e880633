package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/arithgame/internal/problemgen"
	"github.com/abhisek/arithgame/internal/ui/theme"
)

const arcadeTitleFull = ` ▄▀█ █▀█ █ ▀█▀ █ █   █▀▀ ▄▀█ █▀▄▀█ █▀▀
 █▀█ █▀▄ █  █  █▀█   █▄█ █▀█ █ ▀ █ ██▄`

const arcadeTitleCompact = "A · R · I · T · H · G · A · M · E"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderSelectionBar shows what a new game would start with.
func renderSelectionBar(op problemgen.Operator, level problemgen.Level, cw int) string {
	opStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	levelStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	stats := fmt.Sprintf("%s %s  %s %s",
		dimStyle.Render("OP"),
		opStyle.Render(op.DisplayName()),
		dimStyle.Render("RANGE"),
		levelStyle.Render(level.Display()),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(op problemgen.Operator, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(op))
}
