package ports

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
)

// Stats captures the effort one operation spent.
type Stats struct {
	Nodes    int
	Guesses  int
	MaxDepth int
	Duration time.Duration
}

// Solver solves a board.
type Solver interface {
	Name() string
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
}

// Validator performs constraint checks (row/col/box).
type Validator interface {
	// Validate flags conflicting cells on a possibly partial board.
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
	// Solved reports whether the board is fully assigned and conflict-free.
	Solved(ctx context.Context, b *domain.Board) (bool, error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}

// RunRecorder persists benchmark solve runs.
type RunRecorder interface {
	RecordRun(ctx context.Context, run *domain.SolveRun) error
}
