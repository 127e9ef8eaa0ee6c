package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/engine"
)

func newStepCommand() *cobra.Command {
	var strategies string
	cmd := &cobra.Command{
		Use:   "step [grid]",
		Short: "Apply the first available strategy action and print the result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readGrid(args)
			if err != nil {
				return err
			}
			out, act, progress, err := engine.ApplyStrategiesOnce(b, splitStrategies(strategies)...)
			if err != nil {
				return err
			}
			if !progress {
				fmt.Println("fixed point: no strategy makes progress")
				fmt.Print(b.Pretty())
				return nil
			}
			verb := "assigns"
			if act.Kind == engine.ActEliminate {
				verb = "eliminates"
			}
			fmt.Printf("%s %s %d at r%dc%d\n", act.Strategy, verb, act.Digit, act.Cell/9, act.Cell%9)
			fmt.Print(out.Pretty())
			return nil
		},
	}
	cmd.Flags().StringVar(&strategies, "strategies", "", "comma-separated strategy identifiers (default: all)")
	return cmd
}
