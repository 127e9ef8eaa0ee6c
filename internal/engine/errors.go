package engine

import "errors"

// Solve error taxonomy. ErrContradiction is internal to the search: it is
// raised when an assignment or elimination empties a candidate set, and is
// always absorbed by rolling back one backtracking frame. Only the other
// three reach callers.
var (
	ErrContradiction = errors.New("contradiction: cell has no remaining candidates")
	ErrNoSolution    = errors.New("puzzle has no solution")
	ErrCancelled     = errors.New("solve cancelled")
	ErrDepthExceeded = errors.New("backtracking depth limit exceeded")
)
