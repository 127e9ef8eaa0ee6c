package engine

import (
	"math/bits"

	"svw.info/sudoku-solver/internal/domain"
)

// fullMask has bits 1..9 set: all digits open.
const fullMask uint16 = 0x3FE

// State is one solve invocation's Board plus candidate sets. It is a plain
// value: a checkpoint is `snap := *s` and a rollback is `*s = snap`, which
// is what gives the search its strict LIFO discipline. Never share a State
// across concurrent solves.
type State struct {
	cells    [81]uint8  // 0 = unassigned
	cands    [81]uint16 // bit d set = digit d still possible
	unsolved int
}

// NewState builds the state from a board, rejecting clue sets that already
// violate a unit constraint. Loading derives candidate sets but performs
// no assignments of its own, so the initial state shows the puzzle exactly
// as given; a clue set that leaves some cell without candidates reports
// ErrContradiction.
func NewState(b *domain.Board) (*State, error) {
	s := &State{unsolved: 81}
	for i := range s.cands {
		s.cands[i] = fullMask
	}
	// Direct clue conflicts are load-time errors, checked before any
	// propagation so the caller can tell bad input from a hard puzzle.
	for u := 0; u < 27; u++ {
		var seen [10]int
		for _, cell := range units[u] {
			v := b.Values[cell/9][cell%9]
			if v > 9 {
				return nil, &domain.InvalidPuzzleError{
					Reason: "cell value out of range",
					Cell:   &domain.CellCoord{Row: cell / 9, Col: cell % 9},
				}
			}
			if v == 0 {
				continue
			}
			if seen[v] > 0 {
				return nil, &domain.InvalidPuzzleError{
					Reason: "duplicate clue in unit",
					Cell:   &domain.CellCoord{Row: cell / 9, Col: cell % 9},
				}
			}
			seen[v]++
		}
	}
	for cell := 0; cell < 81; cell++ {
		if v := b.Values[cell/9][cell%9]; v != 0 {
			s.cells[cell] = v
			s.cands[cell] = 1 << v
			s.unsolved--
		}
	}
	for cell := 0; cell < 81; cell++ {
		if s.cells[cell] != 0 {
			continue
		}
		mask := fullMask
		for _, p := range peers[cell] {
			if d := s.cells[p]; d != 0 {
				mask &^= 1 << d
			}
		}
		if mask == 0 {
			return nil, ErrContradiction
		}
		s.cands[cell] = mask
	}
	return s, nil
}

// Assign fixes digit d in cell and removes d from every peer's candidate
// set. A peer left with a single candidate is a discovered forced
// assignment; those cascade through an explicit queue rather than
// recursion, so propagation depth never grows the call stack.
func (s *State) Assign(cell int, d uint8) error {
	type forced struct {
		cell  int
		digit uint8
	}
	queue := []forced{{cell, d}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		bit := uint16(1) << f.digit
		if s.cells[f.cell] != 0 {
			if s.cells[f.cell] != f.digit {
				return ErrContradiction
			}
			continue // already settled by an earlier cascade step
		}
		if s.cands[f.cell]&bit == 0 {
			return ErrContradiction
		}
		s.cells[f.cell] = f.digit
		s.cands[f.cell] = bit
		s.unsolved--
		for _, p := range peers[f.cell] {
			if s.cells[p] != 0 {
				if s.cells[p] == f.digit {
					return ErrContradiction
				}
				continue
			}
			if s.cands[p]&bit == 0 {
				continue
			}
			s.cands[p] &^= bit
			switch bits.OnesCount16(s.cands[p]) {
			case 0:
				return ErrContradiction
			case 1:
				queue = append(queue, forced{p, soleDigit(s.cands[p])})
			}
		}
	}
	return nil
}

// Eliminate removes digit d as a candidate of an unassigned cell. Emptying
// the set is a contradiction; reducing it to one candidate is left for the
// naked-single strategy, which the engine rescans immediately after every
// applied action.
func (s *State) Eliminate(cell int, d uint8) error {
	bit := uint16(1) << d
	if s.cells[cell] != 0 {
		if s.cells[cell] == d {
			return ErrContradiction
		}
		return nil
	}
	if s.cands[cell]&bit == 0 {
		return nil
	}
	s.cands[cell] &^= bit
	if s.cands[cell] == 0 {
		return ErrContradiction
	}
	return nil
}

// Candidates returns the candidate bitmask of a cell (bit d = digit d).
func (s *State) Candidates(cell int) uint16 { return s.cands[cell] }

// Value returns the assigned digit of a cell, 0 if unassigned.
func (s *State) Value(cell int) uint8 { return s.cells[cell] }

// Solved reports whether every cell is assigned.
func (s *State) Solved() bool { return s.unsolved == 0 }

// Board materializes the current assignment, preserving the fixed mask of
// the input board the caller supplies.
func (s *State) Board(fixed [9][9]bool) *domain.Board {
	b := &domain.Board{Fixed: fixed}
	for i, v := range s.cells {
		b.Values[i/9][i%9] = v
	}
	return b
}

// consistent verifies the final acceptance invariant: fully assigned and
// every one of the 27 units a permutation of 1..9.
func (s *State) consistent() bool {
	if s.unsolved != 0 {
		return false
	}
	for u := 0; u < 27; u++ {
		var mask uint16
		for _, cell := range units[u] {
			mask |= 1 << s.cells[cell]
		}
		if mask != fullMask {
			return false
		}
	}
	return true
}

func soleDigit(mask uint16) uint8 {
	return uint8(bits.TrailingZeros16(mask))
}

func candCount(mask uint16) int {
	return bits.OnesCount16(mask)
}
