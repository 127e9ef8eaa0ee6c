package engine

// pointingPair: when all of a box's remaining spots for a digit sit in one
// row or column, that digit is claimed by the box and can be eliminated
// from the rest of the line.
type pointingPair struct{}

func (pointingPair) Name() string { return NamePointingPair }

func (pointingPair) Find(s *State) Action {
	for b := 0; b < 9; b++ {
		for d := uint8(1); d <= 9; d++ {
			bit := uint16(1) << d
			row, col, count, placed := -1, -1, 0, false
			for _, cell := range units[18+b] {
				if s.cells[cell] == d {
					placed = true
					break
				}
				if s.cells[cell] == 0 && s.cands[cell]&bit != 0 {
					if count == 0 {
						row, col = cell/9, cell%9
					} else {
						if cell/9 != row {
							row = -1
						}
						if cell%9 != col {
							col = -1
						}
					}
					count++
				}
			}
			if placed || count < 2 {
				continue
			}
			var line int
			switch {
			case row >= 0:
				line = row // row unit index
			case col >= 0:
				line = 9 + col
			default:
				continue
			}
			for _, cell := range units[line] {
				if boxOf(cell) == b || s.cells[cell] != 0 {
					continue
				}
				if s.cands[cell]&bit != 0 {
					return Action{Kind: ActEliminate, Cell: cell, Digit: d, Strategy: NamePointingPair}
				}
			}
		}
	}
	return Action{}
}

// boxLine is the reverse reduction: when a row's or column's remaining
// spots for a digit all fall inside one box, the digit can be eliminated
// from that box's other cells.
type boxLine struct{}

func (boxLine) Name() string { return NameBoxLine }

func (boxLine) Find(s *State) Action {
	for line := 0; line < 18; line++ {
		for d := uint8(1); d <= 9; d++ {
			bit := uint16(1) << d
			box, count, placed := -1, 0, false
			for _, cell := range units[line] {
				if s.cells[cell] == d {
					placed = true
					break
				}
				if s.cells[cell] == 0 && s.cands[cell]&bit != 0 {
					if count == 0 {
						box = boxOf(cell)
					} else if boxOf(cell) != box {
						box = -1
					}
					count++
				}
			}
			if placed || count < 2 || box < 0 {
				continue
			}
			inLine := func(cell int) bool {
				if line < 9 {
					return cell/9 == line
				}
				return cell%9 == line-9
			}
			for _, cell := range units[18+box] {
				if inLine(cell) || s.cells[cell] != 0 {
					continue
				}
				if s.cands[cell]&bit != 0 {
					return Action{Kind: ActEliminate, Cell: cell, Digit: d, Strategy: NameBoxLine}
				}
			}
		}
	}
	return Action{}
}
