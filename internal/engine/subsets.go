package engine

// nakedSubset finds n cells in a unit whose candidate union has exactly n
// digits; those digits can then be eliminated from every other cell in
// the unit. n=2 is the naked pair, n=3 the naked triple (which also
// covers pair-inside-triple shapes, since member cells may hold any
// subset of the union).
type nakedSubset struct {
	n    int
	name string
}

func (st nakedSubset) Name() string { return st.name }

func (st nakedSubset) Find(s *State) Action {
	for u := 0; u < 27; u++ {
		// Unassigned cells small enough to participate, in unit order.
		var open []int
		for _, cell := range units[u] {
			if s.cells[cell] == 0 && candCount(s.cands[cell]) <= st.n {
				open = append(open, cell)
			}
		}
		if len(open) < st.n {
			continue
		}
		var act Action
		forEachCombo(len(open), st.n, func(pick []int) bool {
			var union uint16
			for _, i := range pick {
				union |= s.cands[open[i]]
			}
			if candCount(union) != st.n {
				return false
			}
			inSubset := func(cell int) bool {
				for _, i := range pick {
					if open[i] == cell {
						return true
					}
				}
				return false
			}
			for _, cell := range units[u] {
				if s.cells[cell] != 0 || inSubset(cell) {
					continue
				}
				if extra := s.cands[cell] & union; extra != 0 {
					act = Action{Kind: ActEliminate, Cell: cell, Digit: soleDigit(extra & -extra), Strategy: st.name}
					return true
				}
			}
			return false
		})
		if act.Kind != ActNone {
			return act
		}
	}
	return Action{}
}

// hiddenSubset finds n digits confined to the same n cells of a unit;
// those cells can hold nothing else. n=2 is the hidden pair, n=3 the
// hidden triple.
type hiddenSubset struct {
	n    int
	name string
}

func (st hiddenSubset) Name() string { return st.name }

func (st hiddenSubset) Find(s *State) Action {
	for u := 0; u < 27; u++ {
		// spots[d] is a 9-bit mask of unit positions still open for d.
		var spots [10]uint16
		var digits []uint8
		for d := uint8(1); d <= 9; d++ {
			bit := uint16(1) << d
			placed := false
			for pos, cell := range units[u] {
				if s.cells[cell] == d {
					placed = true
					break
				}
				if s.cells[cell] == 0 && s.cands[cell]&bit != 0 {
					spots[d] |= 1 << pos
				}
			}
			if !placed && spots[d] != 0 && candCount(spots[d]) <= st.n {
				digits = append(digits, d)
			}
		}
		if len(digits) < st.n {
			continue
		}
		var act Action
		forEachCombo(len(digits), st.n, func(pick []int) bool {
			var posUnion uint16
			var keep uint16
			for _, i := range pick {
				posUnion |= spots[digits[i]]
				keep |= 1 << digits[i]
			}
			if candCount(posUnion) != st.n {
				return false
			}
			for pos, cell := range units[u] {
				if posUnion&(1<<pos) == 0 {
					continue
				}
				if extra := s.cands[cell] &^ keep; extra != 0 {
					act = Action{Kind: ActEliminate, Cell: cell, Digit: soleDigit(extra & -extra), Strategy: st.name}
					return true
				}
			}
			return false
		})
		if act.Kind != ActNone {
			return act
		}
	}
	return Action{}
}

// forEachCombo enumerates k-element index combinations of 0..n-1 in
// lexicographic order, stopping when fn returns true. Lexicographic order
// is what makes strategy output deterministic.
func forEachCombo(n, k int, fn func(pick []int) bool) {
	pick := make([]int, k)
	for i := range pick {
		pick[i] = i
	}
	for {
		if fn(pick) {
			return
		}
		// advance to the next combination
		i := k - 1
		for i >= 0 && pick[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		pick[i]++
		for j := i + 1; j < k; j++ {
			pick[j] = pick[j-1] + 1
		}
	}
}
