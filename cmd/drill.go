package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/arithgame/internal/problemgen"
	"github.com/abhisek/arithgame/internal/session"
	"github.com/abhisek/arithgame/internal/ui/theme"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Answer a fixed number of questions in plain line mode",
	Long: `Ask questions one per line on stdin/stdout, without the full-screen UI.

Useful over pipes and for scripted practice. End input early (Ctrl+D) to stop
and see the score so far.`,
	RunE: runDrill,
}

func init() {
	drillCmd.Flags().Int("count", 5, "Number of questions to ask")
}

func runDrill(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	gen := problemgen.NewGenerator(cfg.Seed, cfg.GeneratorConfig())
	_, err = drill(cmd.InOrStdin(), cmd.OutOrStdout(), gen, cfg.Operator, cfg.Level, count)
	return err
}

// drill runs a line-mode game of count questions and prints the result.
// Invalid answers are re-asked and never scored. EOF ends the game early.
func drill(in io.Reader, out io.Writer, gen session.QuestionGenerator, op problemgen.Operator, level problemgen.Level, count int) (*session.SessionSummary, error) {
	scanner := bufio.NewScanner(in)
	state := session.NewSessionState(gen, op, level)

	fmt.Fprintf(out, "%s, %s\n\n", op.DisplayName(), level.Label())

	closed := false
questions:
	for i := 1; i <= count; i++ {
		if i > 1 {
			session.NextQuestion(state, gen)
		}
		q := state.CurrentQuestion
		fmt.Fprintf(out, "Question %d/%d: %s = ?\n", i, count, q.Text())

		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return nil, fmt.Errorf("read answer: %w", err)
				}
				fmt.Fprintln(out, "\n(input closed)")
				closed = true
				break questions
			}

			correct, err := session.HandleAnswer(state, scanner.Text())
			if errors.Is(err, problemgen.ErrInvalidNumericInput) {
				fmt.Fprintln(out, "Please enter a valid whole number.")
				continue
			}
			if err != nil {
				return nil, err
			}

			if correct {
				lipgloss.Fprintln(out, theme.Correct.Render("✓ Correct! Well done!"))
			} else {
				lipgloss.Fprintln(out, theme.Incorrect.Render(fmt.Sprintf("✗ Incorrect. The correct answer is %d.", q.Answer)))
			}
			fmt.Fprintln(out)
			break
		}
	}

	session.End(state, time.Now())
	sum := session.BuildSummary(state)

	total := count
	if closed {
		total = sum.TotalQuestions
	}
	fmt.Fprintf(out, "Score: %d/%d correct (%.0f%%)\n", sum.TotalCorrect, total, sum.Accuracy*100)
	return sum, nil
}
