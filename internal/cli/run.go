package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2023/internal/ui"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// ErrInvalidDay indicates a day argument that is not an integer.
var ErrInvalidDay = errors.New("cli: invalid day")

func runCmd(a *app) *cobra.Command {
	var all bool

	c := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the given days (or --all) from their input files",
		Args: func(_ *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return errors.New("cli: --all takes no day arguments")
			}
			if !all && len(args) == 0 {
				return errors.New("cli: give at least one day or --all")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			days := puzzle.Days()
			if !all {
				var err error
				if days, err = parseDays(args); err != nil {
					return err
				}
			}

			results, err := a.runner.RunAll(cmd.Context(), days)
			if err != nil {
				return err
			}

			return printResults(cmd.OutOrStdout(), results)
		},
	}

	c.Flags().BoolVar(&all, "all", false, "run every registered day")
	return c
}

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, s := range args {
		d, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDay, s)
		}
		days = append(days, d)
	}

	return days, nil
}

// printResults writes a single result bare; several results each get a
// "Day N" header.
func printResults(w io.Writer, results []puzzle.Result) error {
	if len(results) == 1 {
		_, err := results[0].WriteTo(w)
		return err
	}
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		title := ""
		if s, err := puzzle.Lookup(res.Day); err == nil {
			title = s.Title
		}
		fmt.Fprintln(w, ui.DayHeader(res.Day, title))
		if _, err := res.WriteTo(w); err != nil {
			return err
		}
	}

	return nil
}
