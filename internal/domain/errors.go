package domain

import "fmt"

// InvalidPuzzleError reports input that can be rejected before solving
// starts: malformed grids, out-of-range digits, or clues that already
// violate a row/column/box constraint.
type InvalidPuzzleError struct {
	Reason string
	Cell   *CellCoord // set when the error is tied to one cell
}

func (e *InvalidPuzzleError) Error() string {
	if e.Cell != nil {
		return fmt.Sprintf("invalid puzzle at r%dc%d: %s", e.Cell.Row, e.Cell.Col, e.Reason)
	}
	return "invalid puzzle: " + e.Reason
}
