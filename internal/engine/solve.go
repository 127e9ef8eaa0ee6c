package engine

import (
	"context"
	"errors"
	"fmt"

	"svw.info/sudoku-solver/internal/domain"
)

// Config selects which strategies run and how deep the search may go.
// The zero value enables the full default pipeline with unbounded depth.
// A time budget is the caller's context deadline; the search checks it
// cooperatively at every recursion entry.
type Config struct {
	Strategies []string
	MaxDepth   int
}

// Solve runs the full pipeline-then-search flow of the solver: initialize
// state from the board, run strategies to a fixed point, fall back to
// backtracking for the rest, and confirm the result before returning it.
func Solve(ctx context.Context, b *domain.Board, cfg Config) (*domain.Board, Stats, error) {
	var stats Stats
	e, err := New(cfg.Strategies...)
	if err != nil {
		return nil, stats, err
	}
	s, err := NewState(b)
	if err != nil {
		// Clues pass the load-time unit check but propagate into a
		// dead end: the puzzle is well-formed yet unsolvable.
		return nil, stats, noSolutionIfContradiction(err)
	}
	if err := e.Run(s); err != nil {
		return nil, stats, noSolutionIfContradiction(err)
	}
	if !s.Solved() {
		if err := e.search(ctx, s, 0, cfg.MaxDepth, &stats); err != nil {
			return nil, stats, err
		}
	}
	if !s.consistent() {
		return nil, stats, fmt.Errorf("solver produced an inconsistent grid")
	}
	return s.Board(b.Fixed), stats, nil
}

// ApplyStrategiesOnce applies the first available strategy action to the
// board and reports whether any progress was made. Calling it repeatedly
// replays exactly the engine's deterministic action sequence, which is
// what makes it useful for observing strategies incrementally.
func ApplyStrategiesOnce(b *domain.Board, strategies ...string) (*domain.Board, Action, bool, error) {
	e, err := New(strategies...)
	if err != nil {
		return nil, Action{}, false, err
	}
	s, err := NewState(b)
	if err != nil {
		return nil, Action{}, false, noSolutionIfContradiction(err)
	}
	act, err := e.Step(s)
	if err != nil {
		return nil, act, false, noSolutionIfContradiction(err)
	}
	return s.Board(b.Fixed), act, act.Kind != ActNone, nil
}

// noSolutionIfContradiction keeps the internal sentinel internal: a dead
// end reached outside the search means the puzzle has no solution.
func noSolutionIfContradiction(err error) error {
	if errors.Is(err, ErrContradiction) {
		return ErrNoSolution
	}
	return err
}

// CountCandidates reports the per-cell candidate counts of the board;
// assigned cells count 1. Diagnostics only.
func CountCandidates(b *domain.Board) ([9][9]int, error) {
	var counts [9][9]int
	s, err := NewState(b)
	if err != nil {
		return counts, noSolutionIfContradiction(err)
	}
	for cell := 0; cell < 81; cell++ {
		counts[cell/9][cell%9] = candCount(s.cands[cell])
	}
	return counts, nil
}
