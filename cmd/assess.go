package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/calmly/internal/assessment"
	"github.com/abhisek/calmly/internal/content"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Take the stress assessment without the full-screen UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, _, err := loadCatalog()
		if err != nil {
			return err
		}
		res, err := runAssessment(cmd.InOrStdin(), cmd.OutOrStdout(), lib)
		if err != nil {
			return err
		}
		logger.Info("assessment completed",
			zap.Int("score", res.NormalizedScore),
			zap.String("category", string(res.Category)))
		return nil
	},
}

// runAssessment asks each question on out, reading option numbers from in,
// then prints the score, category and advice.
func runAssessment(in io.Reader, out io.Writer, lib *content.Library) (assessment.Result, error) {
	engine, err := assessment.NewEngine(lib.Questions)
	if err != nil {
		return assessment.Result{}, err
	}
	scanner := bufio.NewScanner(in)

	for {
		i := engine.Index()
		q := engine.Current()
		fmt.Fprintf(out, "\n[%d/%d] %s\n", i+1, engine.Len(), q.Text)
		for n, o := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", n+1, o.Label)
		}

		value, err := readChoice(scanner, out, q)
		if err != nil {
			return assessment.Result{}, err
		}
		if err := engine.SelectAnswer(i, value); err != nil {
			return assessment.Result{}, err
		}
		res, err := engine.Advance()
		if err != nil {
			return assessment.Result{}, err
		}
		if res != nil {
			printResult(out, *res, lib)
			return *res, nil
		}
	}
}

// readChoice reads lines until one names a valid option number.
func readChoice(scanner *bufio.Scanner, out io.Writer, q assessment.Question) (string, error) {
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("read answer: %w", err)
			}
			return "", errors.New("assessment cancelled: input ended before every question was answered")
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && n >= 1 && n <= len(q.Options) {
			return q.Options[n-1].Value, nil
		}
		fmt.Fprintf(out, "Please enter a number from 1 to %d.\n", len(q.Options))
	}
}

func printResult(out io.Writer, res assessment.Result, lib *content.Library) {
	outcome := lib.Outcome(res.Category)
	fmt.Fprintf(out, "\nYour stress score: %d/10 (%s)\n", res.NormalizedScore, res.Category.DisplayName())
	if outcome.Encouragement != "" {
		fmt.Fprintf(out, "%s\n", outcome.Encouragement)
	}
	if advice := lib.AdviceFor(res.Category); len(advice) > 0 {
		fmt.Fprintln(out, "\nAdvice:")
		for _, a := range advice {
			fmt.Fprintf(out, "  - %s\n", a)
		}
	}
}
