package engine

import (
	"errors"
	"strings"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
)

const classicGrid = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func mustBoard(t *testing.T, grid string) *domain.Board {
	t.Helper()
	b, err := domain.ParseBoard(grid)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	return b
}

func TestNewStateCandidateInvariant(t *testing.T) {
	s, err := NewState(mustBoard(t, classicGrid))
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	for cell := 0; cell < 81; cell++ {
		if v := s.cells[cell]; v != 0 {
			// assigned: candidate set is exactly {v}, and v is absent
			// from every peer
			if s.cands[cell] != 1<<v {
				t.Fatalf("cell %d assigned %d but cands = %09b", cell, v, s.cands[cell]>>1)
			}
			for _, p := range peers[cell] {
				if s.cells[p] == 0 && s.cands[p]&(1<<v) != 0 {
					t.Fatalf("peer %d of cell %d still has candidate %d", p, cell, v)
				}
			}
			continue
		}
		// unassigned: candidates equal the digits not fixed in any of the
		// three units, recomputed independently
		want := fullMask
		for _, u := range cellUnits[cell] {
			for _, other := range units[u] {
				if d := s.cells[other]; d != 0 {
					want &^= 1 << d
				}
			}
		}
		if s.cands[cell] != want {
			t.Fatalf("cell %d cands = %09b, want %09b", cell, s.cands[cell]>>1, want>>1)
		}
	}
}

func TestNewStateRejectsDuplicateClue(t *testing.T) {
	grid := "55" + strings.Repeat("0", 79)
	_, err := NewState(mustBoard(t, grid))
	var invalid *domain.InvalidPuzzleError
	if !errors.As(err, &invalid) {
		t.Fatalf("want InvalidPuzzleError, got %v", err)
	}
}

func TestAssignRejectsExcludedDigit(t *testing.T) {
	s, err := NewState(mustBoard(t, classicGrid))
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	// r0c2 is a peer of the clue 5 at r0c0
	if err := s.Assign(2, 5); !errors.Is(err, ErrContradiction) {
		t.Fatalf("want ErrContradiction, got %v", err)
	}
}

func TestCheckpointRestore(t *testing.T) {
	s, err := NewState(mustBoard(t, classicGrid))
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	snap := *s
	cell := -1
	for i := 0; i < 81; i++ {
		if s.cells[i] == 0 {
			cell = i
			break
		}
	}
	if cell < 0 {
		t.Fatal("no unassigned cell in test grid")
	}
	// Try every candidate of the cell, right and wrong: a wrong digit
	// cascades into a contradiction and leaves the state partially
	// mutated, and restoring the checkpoint must erase every trace.
	for d := uint8(1); d <= 9; d++ {
		if snap.cands[cell]&(1<<d) == 0 {
			continue
		}
		if err := s.Assign(cell, d); err != nil && !errors.Is(err, ErrContradiction) {
			t.Fatalf("Assign %d: %v", d, err)
		}
		*s = snap
	}
	fresh, err := NewState(mustBoard(t, classicGrid))
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	if s.cells != fresh.cells || s.cands != fresh.cands || s.unsolved != fresh.unsolved {
		t.Fatal("restore did not reproduce the checkpoint exactly")
	}
}
