package engine

import (
	"testing"
)

// blankState is an empty board: every cell open with all nine candidates.
func blankState() *State {
	s := &State{unsolved: 81}
	for i := range s.cands {
		s.cands[i] = fullMask
	}
	return s
}

func digitsMask(digits ...uint8) uint16 {
	var m uint16
	for _, d := range digits {
		m |= 1 << d
	}
	return m
}

func TestNakedSingleFind(t *testing.T) {
	s := blankState()
	s.cands[5] = digitsMask(7)
	act := nakedSingle{}.Find(s)
	if act.Kind != ActAssign || act.Cell != 5 || act.Digit != 7 {
		t.Fatalf("got %+v, want assign 7 at cell 5", act)
	}
}

func TestHiddenSingleFind(t *testing.T) {
	s := blankState()
	// digit 3 has only one home left in row 0
	for c := 1; c < 9; c++ {
		s.cands[c] &^= digitsMask(3)
	}
	act := hiddenSingle{}.Find(s)
	if act.Kind != ActAssign || act.Cell != 0 || act.Digit != 3 {
		t.Fatalf("got %+v, want assign 3 at cell 0", act)
	}
}

func TestNakedPairFind(t *testing.T) {
	s := blankState()
	s.cands[0] = digitsMask(1, 2)
	s.cands[1] = digitsMask(1, 2)
	act := nakedSubset{n: 2, name: NameNakedPair}.Find(s)
	if act.Kind != ActEliminate || act.Cell != 2 || act.Digit != 1 {
		t.Fatalf("got %+v, want eliminate 1 at cell 2", act)
	}
}

func TestNakedTripleFind(t *testing.T) {
	s := blankState()
	// three cells sharing the union {4,5,6}, one holding only a pair
	s.cands[9] = digitsMask(4, 5)
	s.cands[10] = digitsMask(5, 6)
	s.cands[11] = digitsMask(4, 6)
	act := nakedSubset{n: 3, name: NameNakedTriple}.Find(s)
	if act.Kind != ActEliminate || act.Cell != 12 || act.Digit != 4 {
		t.Fatalf("got %+v, want eliminate 4 at cell 12", act)
	}
}

func TestHiddenPairFind(t *testing.T) {
	s := blankState()
	// digits 4 and 5 are confined to cells 3 and 4 of row 0
	for c := 0; c < 9; c++ {
		if c != 3 && c != 4 {
			s.cands[c] &^= digitsMask(4, 5)
		}
	}
	act := hiddenSubset{n: 2, name: NameHiddenPair}.Find(s)
	if act.Kind != ActEliminate || act.Cell != 3 || act.Digit != 1 {
		t.Fatalf("got %+v, want eliminate 1 at cell 3", act)
	}
}

func TestPointingPairFind(t *testing.T) {
	s := blankState()
	// in box 0, digit 9 survives only on row 0
	for _, cell := range []int{2, 9, 10, 11, 18, 19, 20} {
		s.cands[cell] &^= digitsMask(9)
	}
	act := pointingPair{}.Find(s)
	if act.Kind != ActEliminate || act.Cell != 3 || act.Digit != 9 {
		t.Fatalf("got %+v, want eliminate 9 at cell 3", act)
	}
}

func TestBoxLineFind(t *testing.T) {
	s := blankState()
	// in row 0, digit 8 survives only inside box 0
	for c := 3; c < 9; c++ {
		s.cands[c] &^= digitsMask(8)
	}
	act := boxLine{}.Find(s)
	if act.Kind != ActEliminate || act.Cell != 9 || act.Digit != 8 {
		t.Fatalf("got %+v, want eliminate 8 at cell 9", act)
	}
}

func TestXWingFind(t *testing.T) {
	s := blankState()
	// digit 9 survives only in columns 2 and 6 of rows 0 and 4
	for _, r := range []int{0, 4} {
		for c := 0; c < 9; c++ {
			if c != 2 && c != 6 {
				s.cands[r*9+c] &^= digitsMask(9)
			}
		}
	}
	act := xwing{}.Find(s)
	if act.Kind != ActEliminate || act.Cell != 11 || act.Digit != 9 {
		t.Fatalf("got %+v, want eliminate 9 at cell 11", act)
	}
}

func TestStrategiesAreReadOnly(t *testing.T) {
	s, err := NewState(mustBoard(t, classicGrid))
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	for _, st := range DefaultStrategies() {
		before := *s
		st.Find(s)
		if s.cells != before.cells || s.cands != before.cands {
			t.Fatalf("strategy %s mutated the state", st.Name())
		}
	}
}

func TestRunSolvesClassicWithoutSearch(t *testing.T) {
	s, err := NewState(mustBoard(t, classicGrid))
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	e, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Run(s); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !s.Solved() {
		t.Fatal("classic puzzle should fall to the deterministic pipeline alone")
	}
	if !s.consistent() {
		t.Fatal("pipeline produced an inconsistent grid")
	}
}

func TestRunFixedPointIsIdempotent(t *testing.T) {
	// 17-clue minimal puzzle: the pipeline stalls before solving it
	s, err := NewState(mustBoard(t, minimalGrid))
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	e, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Run(s); err != nil {
		t.Fatalf("Run: %v", err)
	}
	before := *s
	if err := e.Run(s); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if s.cells != before.cells || s.cands != before.cands {
		t.Fatal("second Run on a fixed point changed the state")
	}
}

func TestUnknownStrategyRejected(t *testing.T) {
	if _, err := New("swordfish"); err == nil {
		t.Fatal("want error for unknown strategy identifier")
	}
}
