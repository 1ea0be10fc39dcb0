package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2023/puzzle"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the solved days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, d := range puzzle.Days() {
				s, err := puzzle.Lookup(d)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%2d  %s\n", d, s.Title)
			}
			return nil
		},
	}
}
