package engine

// nakedSingle assigns any cell whose candidate set has shrunk to one
// digit. Cheapest and by far the most common step.
type nakedSingle struct{}

func (nakedSingle) Name() string { return NameNakedSingle }

func (nakedSingle) Find(s *State) Action {
	for cell := 0; cell < 81; cell++ {
		if s.cells[cell] == 0 && candCount(s.cands[cell]) == 1 {
			return Action{Kind: ActAssign, Cell: cell, Digit: soleDigit(s.cands[cell]), Strategy: NameNakedSingle}
		}
	}
	return Action{}
}

// hiddenSingle assigns a digit that has exactly one home left within a
// unit, even if that cell still shows other candidates.
type hiddenSingle struct{}

func (hiddenSingle) Name() string { return NameHiddenSingle }

func (hiddenSingle) Find(s *State) Action {
	for u := 0; u < 27; u++ {
		for d := uint8(1); d <= 9; d++ {
			bit := uint16(1) << d
			spot, count, placed := -1, 0, false
			for _, cell := range units[u] {
				if s.cells[cell] == d {
					placed = true
					break
				}
				if s.cells[cell] == 0 && s.cands[cell]&bit != 0 {
					spot = cell
					count++
				}
			}
			if placed || count != 1 {
				continue
			}
			return Action{Kind: ActAssign, Cell: spot, Digit: d, Strategy: NameHiddenSingle}
		}
	}
	return Action{}
}
