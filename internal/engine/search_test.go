package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
)

const (
	classicSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	// 17-clue minimal puzzle; far beyond the deterministic pipeline.
	minimalGrid = "000000010400000000020000000000050407008000300001090000300400200050100000000806000"
	emptyGrid   = "000000000000000000000000000000000000000000000000000000000000000000000000000000000"
)

func TestSolveClassic(t *testing.T) {
	out, stats, err := Solve(context.Background(), mustBoard(t, classicGrid), Config{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got := out.Flat(); got != classicSolution {
		t.Fatalf("got %s\nwant %s", got, classicSolution)
	}
	if stats.Guesses != 0 {
		t.Fatalf("classic puzzle needed %d guesses, want 0", stats.Guesses)
	}
}

func TestSolveMinimal17Clue(t *testing.T) {
	in := mustBoard(t, minimalGrid)
	out, _, err := Solve(context.Background(), in, Config{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	assertSolutionOf(t, in, out)
}

func TestSolveEmptyGrid(t *testing.T) {
	out, _, err := Solve(context.Background(), mustBoard(t, emptyGrid), Config{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	assertSolutionOf(t, mustBoard(t, emptyGrid), out)
}

func TestSolveIsDeterministic(t *testing.T) {
	first, st1, err := Solve(context.Background(), mustBoard(t, minimalGrid), Config{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	second, st2, err := Solve(context.Background(), mustBoard(t, minimalGrid), Config{})
	if err != nil {
		t.Fatalf("second Solve: %v", err)
	}
	if first.Flat() != second.Flat() {
		t.Fatal("same input produced different solutions")
	}
	if st1 != st2 {
		t.Fatalf("search traces differ: %+v vs %+v", st1, st2)
	}
}

func TestSolveNoSolution(t *testing.T) {
	// No two clues clash directly, but r0c8 needs 9 and its column
	// already holds one: the row fixes 1..8 and the 9 below rules out 9.
	grid := "123456780" + "000000009" + strings.Repeat("0", 63)
	_, _, err := Solve(context.Background(), mustBoard(t, grid), Config{})
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("want ErrNoSolution, got %v", err)
	}
}

func TestSolveInvalidPuzzle(t *testing.T) {
	grid := "55" + strings.Repeat("0", 79)
	_, _, err := Solve(context.Background(), mustBoard(t, grid), Config{})
	var invalid *domain.InvalidPuzzleError
	if !errors.As(err, &invalid) {
		t.Fatalf("want InvalidPuzzleError, got %v", err)
	}
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := Solve(ctx, mustBoard(t, emptyGrid), Config{})
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("want ErrCancelled, got %v", err)
	}
}

func TestSolveDepthBound(t *testing.T) {
	_, _, err := Solve(context.Background(), mustBoard(t, emptyGrid), Config{MaxDepth: 1})
	if !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("want ErrDepthExceeded, got %v", err)
	}
}

func TestApplyStrategiesOnce(t *testing.T) {
	b := mustBoard(t, classicGrid)
	out, act, progress, err := ApplyStrategiesOnce(b)
	if err != nil {
		t.Fatalf("ApplyStrategiesOnce: %v", err)
	}
	if !progress || act.Kind != ActAssign {
		t.Fatalf("expected an assignment on the classic grid, got %+v", act)
	}
	if out.Flat() == b.Flat() {
		t.Fatal("progress reported but the grid did not change")
	}
	// clues never move
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Fixed[r][c] && out.Values[r][c] != b.Values[r][c] {
				t.Fatalf("clue at r%dc%d changed", r, c)
			}
		}
	}
}

func TestSecondaryAPIsReportNoSolution(t *testing.T) {
	// Dead end already at load: r0c8 needs 9 but its column holds one.
	// The internal contradiction sentinel must not reach the caller.
	grid := "123456780" + "000000009" + strings.Repeat("0", 63)
	if _, _, _, err := ApplyStrategiesOnce(mustBoard(t, grid)); !errors.Is(err, ErrNoSolution) {
		t.Fatalf("ApplyStrategiesOnce: want ErrNoSolution, got %v", err)
	}
	if _, err := CountCandidates(mustBoard(t, grid)); !errors.Is(err, ErrNoSolution) {
		t.Fatalf("CountCandidates: want ErrNoSolution, got %v", err)
	}
}

func TestCountCandidates(t *testing.T) {
	counts, err := CountCandidates(mustBoard(t, classicGrid))
	if err != nil {
		t.Fatalf("CountCandidates: %v", err)
	}
	// assigned cells count exactly 1; open cells at least 1
	b := mustBoard(t, classicGrid)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 && counts[r][c] != 1 {
				t.Fatalf("clue cell r%dc%d counts %d, want 1", r, c, counts[r][c])
			}
			if counts[r][c] < 1 || counts[r][c] > 9 {
				t.Fatalf("cell r%dc%d counts %d, out of range", r, c, counts[r][c])
			}
		}
	}
	// r0c2 sees 5,3,7 in its row, 8 in its column, and 6,9,8 in its box,
	// leaving {1,2,4}
	if counts[0][2] != 3 {
		t.Fatalf("r0c2 counts %d, want 3", counts[0][2])
	}
}

// assertSolutionOf checks out is a valid completion of in.
func assertSolutionOf(t *testing.T, in, out *domain.Board) {
	t.Helper()
	s, err := NewState(out)
	if err != nil {
		t.Fatalf("solution does not load: %v", err)
	}
	if !s.consistent() {
		t.Fatalf("solution is not a valid grid:\n%s", out.Pretty())
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := in.Values[r][c]; v != 0 && out.Values[r][c] != v {
				t.Fatalf("clue at r%dc%d changed from %d to %d", r, c, v, out.Values[r][c])
			}
		}
	}
}
