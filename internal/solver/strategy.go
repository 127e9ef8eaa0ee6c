package solver

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/engine"
	"svw.info/sudoku-solver/internal/ports"
)

// StrategySolver is the primary solver: the candidate-elimination engine
// with backtracking fallback.
type StrategySolver struct {
	cfg engine.Config
}

// NewStrategySolver builds a solver with the given engine config. The
// zero config enables every strategy with unbounded search depth.
func NewStrategySolver(cfg engine.Config) *StrategySolver {
	return &StrategySolver{cfg: cfg}
}

func (s *StrategySolver) Name() string { return "engine" }

func (s *StrategySolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	out, st, err := engine.Solve(ctx, b, s.cfg)
	stats := ports.Stats{
		Nodes:    st.Nodes,
		Guesses:  st.Guesses,
		MaxDepth: st.MaxDepth,
		Duration: time.Since(start),
	}
	return out, stats, err
}
