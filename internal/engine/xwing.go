package engine

// xwing: when a digit's remaining spots in two rows are exactly the same
// two columns, the digit is locked into those four corners, and can be
// eliminated from the rest of both columns. Scanned for row pairs first,
// then transposed for column pairs locking rows. The two-spots-per-line
// restriction is what makes the corner elimination sound.
type xwing struct{}

func (xwing) Name() string { return NameXWing }

func (xwing) Find(s *State) Action {
	if act := xwingScan(s, true); act.Kind != ActNone {
		return act
	}
	return xwingScan(s, false)
}

func xwingScan(s *State, byRow bool) Action {
	cellAt := func(line, pos int) int {
		if byRow {
			return line*9 + pos
		}
		return pos*9 + line
	}
	for d := uint8(1); d <= 9; d++ {
		bit := uint16(1) << d
		// spots[line] is a 9-bit mask of the positions still open for d.
		var spots [9]uint16
		for line := 0; line < 9; line++ {
			for pos := 0; pos < 9; pos++ {
				cell := cellAt(line, pos)
				if s.cells[cell] == d {
					spots[line] = 0
					break
				}
				if s.cells[cell] == 0 && s.cands[cell]&bit != 0 {
					spots[line] |= 1 << pos
				}
			}
		}
		for a := 0; a < 9; a++ {
			if candCount(spots[a]) != 2 {
				continue
			}
			for b := a + 1; b < 9; b++ {
				if spots[b] != spots[a] {
					continue
				}
				for pos := 0; pos < 9; pos++ {
					if spots[a]&(1<<pos) == 0 {
						continue
					}
					for line := 0; line < 9; line++ {
						if line == a || line == b {
							continue
						}
						cell := cellAt(line, pos)
						if s.cells[cell] == 0 && s.cands[cell]&bit != 0 {
							return Action{Kind: ActEliminate, Cell: cell, Digit: d, Strategy: NameXWing}
						}
					}
				}
			}
		}
	}
	return Action{}
}
