package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2023/internal/ui"
)

// ErrMismatch indicates verify found at least one wrong answer.
var ErrMismatch = errors.New("cli: answers do not match")

func verifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Re-run days with recorded answers and compare",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if len(a.cfg.Answers) == 0 {
				fmt.Fprintf(w, "%s no answers recorded in %s\n", ui.IconSkip.Render(), a.configPath)
				return nil
			}

			days := make([]int, 0, len(a.cfg.Answers))
			for d := range a.cfg.Answers {
				days = append(days, d)
			}
			sort.Ints(days)

			results, err := a.runner.RunAll(cmd.Context(), days)
			if err != nil {
				return err
			}

			var checks []ui.Check
			for _, res := range results {
				want := a.cfg.Answers[res.Day]
				if want.Part1 != nil {
					checks = append(checks, ui.Check{Day: res.Day, Part: 1, Got: res.Part1, Want: *want.Part1})
				}
				if want.Part2 != nil {
					checks = append(checks, ui.Check{Day: res.Day, Part: 2, Got: res.Part2, Want: *want.Part2})
				}
			}

			failed, err := ui.WriteChecks(w, checks)
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrMismatch, failed, len(checks))
			}
			return nil
		},
	}
}
