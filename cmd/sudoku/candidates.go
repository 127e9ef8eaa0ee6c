package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/engine"
)

func newCandidatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "candidates [grid]",
		Short: "Print per-cell candidate counts for diagnostics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readGrid(args)
			if err != nil {
				return err
			}
			counts, err := engine.CountCandidates(b)
			if err != nil {
				return err
			}
			total := 0
			var sb strings.Builder
			for r := 0; r < 9; r++ {
				if r > 0 && r%3 == 0 {
					sb.WriteString("------+-------+------\n")
				}
				for c := 0; c < 9; c++ {
					if c > 0 && c%3 == 0 {
						sb.WriteString("| ")
					}
					fmt.Fprintf(&sb, "%d ", counts[r][c])
					total += counts[r][c]
				}
				sb.WriteByte('\n')
			}
			fmt.Print(sb.String())
			fmt.Printf("total candidates: %d\n", total)
			return nil
		},
	}
}
