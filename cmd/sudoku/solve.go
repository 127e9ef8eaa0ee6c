package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/engine"
	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/solver"
)

// readGrid takes the puzzle from the argument, or stdin when absent.
func readGrid(args []string) (*domain.Board, error) {
	if len(args) > 0 {
		return domain.ParseBoard(args[0])
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	return domain.ParseBoard(string(data))
}

func splitStrategies(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	return strings.Split(csv, ",")
}

// pickSolver builds the requested ports.Solver.
func pickSolver(kind, strategies string, maxDepth int) (ports.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "dlx":
		return solver.NewDLXSolver(), nil
	case "", "engine":
		return solver.NewStrategySolver(engine.Config{
			Strategies: splitStrategies(strategies),
			MaxDepth:   maxDepth,
		}), nil
	default:
		return nil, fmt.Errorf("unknown solver %q", kind)
	}
}

func newSolveCommand() *cobra.Command {
	var (
		solverKind string
		strategies string
		maxDepth   int
		budget     time.Duration
		flat       bool
	)
	cmd := &cobra.Command{
		Use:   "solve [grid]",
		Short: "Solve one puzzle (81-digit grid argument, or stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readGrid(args)
			if err != nil {
				return err
			}
			s, err := pickSolver(solverKind, strategies, maxDepth)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if budget > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, budget)
				defer cancel()
			}
			out, st, err := s.Solve(ctx, b)
			if err != nil {
				return err
			}
			logger.Debug("solved",
				"solver", s.Name(),
				"nodes", st.Nodes,
				"guesses", st.Guesses,
				"depth", st.MaxDepth,
				"dur", st.Duration.Round(time.Microsecond),
			)
			if flat {
				fmt.Println(out.Flat())
			} else {
				fmt.Print(out.Pretty())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&solverKind, "solver", "engine", "solver to use: engine|dlx")
	cmd.Flags().StringVar(&strategies, "strategies", "", "comma-separated strategy identifiers (default: all)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "backtracking depth limit (0 = unbounded)")
	cmd.Flags().DurationVar(&budget, "budget", 0, "time budget per solve (0 = none)")
	cmd.Flags().BoolVar(&flat, "flat", false, "print the 81-digit grid instead of the pretty board")
	return cmd
}
