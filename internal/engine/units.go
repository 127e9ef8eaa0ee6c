// Package engine implements the candidate-elimination Sudoku solver:
// a constraint state over 81 cells, an ordered strategy pipeline run to a
// fixed point, and a backtracking search for whatever logic cannot finish.
package engine

// Static geometry, computed once at startup and shared read-only across
// concurrent solves. Units are indexed 0..26: rows 0..8, columns 9..17,
// boxes 18..26.
var (
	units     [27][9]int // unit -> its 9 member cells, in row-major order
	cellUnits [81][3]int // cell -> row unit, column unit, box unit
	peers     [81][20]int
)

func boxOf(cell int) int {
	r, c := cell/9, cell%9
	return (r/3)*3 + c/3
}

func init() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := r*9 + c
			units[r][c] = cell
			units[9+c][r] = cell
			cellUnits[cell] = [3]int{r, 9 + c, 18 + boxOf(cell)}
		}
	}
	for b := 0; b < 9; b++ {
		r0, c0 := (b/3)*3, (b%3)*3
		i := 0
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				units[18+b][i] = (r0+dr)*9 + (c0 + dc)
				i++
			}
		}
	}
	for cell := 0; cell < 81; cell++ {
		var seen [81]bool
		n := 0
		for _, u := range cellUnits[cell] {
			for _, other := range units[u] {
				if other != cell && !seen[other] {
					seen[other] = true
					peers[cell][n] = other
					n++
				}
			}
		}
	}
}
