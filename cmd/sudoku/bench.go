package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"svw.info/sudoku-solver/internal/dataset"
	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/engine"
	"svw.info/sudoku-solver/internal/infrastructure/storage"
	"svw.info/sudoku-solver/internal/ports"
)

type benchResult struct {
	entry dataset.Entry
	stats ports.Stats
	err   error
}

func newBenchCommand() *cobra.Command {
	var (
		file       string
		solverKind string
		strategies string
		maxDepth   int
		timeout    time.Duration
		workers    int
		dbPath     string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Solve a dataset of puzzles in parallel and report totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 1 {
				return fmt.Errorf("--workers must be at least 1, got %d", workers)
			}
			entries, err := dataset.LoadFile(file)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return fmt.Errorf("dataset %s is empty", file)
			}
			s, err := pickSolver(solverKind, strategies, maxDepth)
			if err != nil {
				return err
			}
			var rec ports.RunRecorder
			if dbPath != "" {
				db, err := storage.NewSQLite(dbPath)
				if err != nil {
					return err
				}
				defer db.Close()
				rec = db
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			// Each puzzle owns its board and state, so the batch is
			// embarrassingly parallel.
			results := make([]benchResult, len(entries))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(workers)
			start := time.Now()
			for i, e := range entries {
				i, e := i, e
				g.Go(func() error {
					sctx := gctx
					if timeout > 0 {
						var cancel context.CancelFunc
						sctx, cancel = context.WithTimeout(gctx, timeout)
						defer cancel()
					}
					_, st, err := s.Solve(sctx, e.Board)
					results[i] = benchResult{entry: e, stats: st, err: err}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			elapsed := time.Since(start)

			solved, failed, nodes, guesses := 0, 0, 0, 0
			var slowest time.Duration
			for _, res := range results {
				nodes += res.stats.Nodes
				guesses += res.stats.Guesses
				if res.stats.Duration > slowest {
					slowest = res.stats.Duration
				}
				if res.err != nil {
					failed++
					level := logger.Warn
					if errors.Is(res.err, engine.ErrNoSolution) {
						level = logger.Info
					}
					level("puzzle failed", "line", res.entry.Line, "err", res.err)
				} else {
					solved++
				}
				if rec != nil {
					run := &domain.SolveRun{
						Grid:       res.entry.Raw,
						Solver:     s.Name(),
						Strategies: strategies,
						Solved:     res.err == nil,
						Nodes:      res.stats.Nodes,
						Guesses:    res.stats.Guesses,
						DurationUs: res.stats.Duration.Microseconds(),
					}
					if err := rec.RecordRun(ctx, run); err != nil {
						logger.Warn("record run", "err", err)
					}
				}
			}
			logger.Info("bench done",
				"puzzles", len(entries),
				"solved", solved,
				"failed", failed,
				"nodes", nodes,
				"guesses", guesses,
				"slowest", slowest.Round(time.Microsecond),
				"wall", elapsed.Round(time.Millisecond),
			)
			fmt.Printf("%d/%d solved in %v (nodes=%d guesses=%d)\n",
				solved, len(entries), elapsed.Round(time.Millisecond), nodes, guesses)
			if failed > 0 {
				return fmt.Errorf("%d puzzles failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "dataset", "", "path to puzzle list file (one 81-digit grid per line)")
	cmd.Flags().StringVar(&solverKind, "solver", "engine", "solver to use: engine|dlx")
	cmd.Flags().StringVar(&strategies, "strategies", "", "comma-separated strategy identifiers (default: all)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "backtracking depth limit (0 = unbounded)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-puzzle time budget (0 = none)")
	cmd.Flags().IntVar(&workers, "workers", 4, "parallel workers")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite file to record solve runs (optional)")
	_ = cmd.MarkFlagRequired("dataset")
	return cmd
}
