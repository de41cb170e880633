package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/arithgame/internal/problemgen"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List difficulty levels and operators",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-7s  %6s  %6s\n", "Level", "Min", "Max")
		fmt.Fprintln(out, strings.Repeat("─", 23))
		for _, l := range problemgen.Levels() {
			fmt.Fprintf(out, "%-7d  %6d  %6d\n", l.Number, l.Min, l.Max)
		}

		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-6s  %-10s  %s\n", "Symbol", "Name", "Notes")
		fmt.Fprintln(out, strings.Repeat("─", 50))
		for _, op := range problemgen.Operators() {
			fmt.Fprintf(out, "%-6s  %-10s  %s\n", op.Symbol(), op.Name(), operatorNote(op))
		}
	},
}

func operatorNote(op problemgen.Operator) string {
	switch op {
	case problemgen.OpSubtract:
		return "larger operand first, never negative"
	case problemgen.OpDivide:
		return "always divides exactly"
	case problemgen.OpModulo:
		return "divisor drawn from 1 to the level max"
	default:
		return ""
	}
}
