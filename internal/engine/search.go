package engine

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
)

// Stats counts search effort for benchmarking strategy combinations.
type Stats struct {
	Nodes    int // trial assignments made by the search
	Guesses  int // branch points (cells the search had to guess at)
	MaxDepth int // deepest recursion reached
}

// search is the depth-first fallback for states the pipeline cannot finish.
// Each frame checkpoints the whole state by value before a trial and
// restores it on any failure, so an abandoned branch can never leak
// mutations into its parent.
func (e *Engine) search(ctx context.Context, s *State, depth, maxDepth int, st *Stats) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	if s.Solved() {
		return nil
	}
	if maxDepth > 0 && depth >= maxDepth {
		return ErrDepthExceeded
	}
	cell := pickCell(s)
	st.Guesses++
	if depth+1 > st.MaxDepth {
		st.MaxDepth = depth + 1
	}
	for d := uint8(1); d <= 9; d++ {
		if s.cands[cell]&(1<<d) == 0 {
			continue
		}
		st.Nodes++
		snap := *s
		err := s.Assign(cell, d)
		if err == nil {
			err = e.Run(s)
		}
		if err == nil {
			if err = e.search(ctx, s, depth+1, maxDepth, st); err == nil {
				return nil
			}
		}
		*s = snap
		if !errors.Is(err, ErrContradiction) && !errors.Is(err, ErrNoSolution) {
			return err // cancellation and depth exhaustion abort the search
		}
	}
	return ErrNoSolution
}

// pickCell chooses the unassigned cell with the fewest candidates, ties
// broken by lowest row-major index for reproducible search traces.
func pickCell(s *State) int {
	best, bestCount := -1, 10
	for cell := 0; cell < 81; cell++ {
		if s.cells[cell] != 0 {
			continue
		}
		if n := bits.OnesCount16(s.cands[cell]); n < bestCount {
			best, bestCount = cell, n
		}
	}
	return best
}
