package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/engine"
	"svw.info/sudoku-solver/internal/ports"
)

// DLXSolver solves Sudoku as exact cover with Knuth's dancing links. It is
// the baseline the strategy engine is benchmarked and cross-checked
// against: an independent algorithm that should always agree on solutions
// and solvability.
//
// Exact-cover mapping: 324 constraint columns, 729 candidate rows (r,c,v).
// Columns 0..80 cell occupied, 81..161 row has v, 162..242 column has v,
// 243..323 box has v.
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

func (s *DLXSolver) Name() string { return "dlx" }

const (
	dlxCols = 324
	dlxRows = 729
)

type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxColumn
	row                   int // 0..728, encodes (r,c,v)
}

type dlxColumn struct {
	head    dlxNode
	size    int
	covered bool
}

type dlxMatrix struct {
	cols      [dlxCols]dlxColumn
	rowHead   [dlxRows]*dlxNode
	choice    [81]*dlxNode
	solDepth  int // depth of the last solution found; choice[:solDepth] is valid
	uncovered int
	nodes     int
}

func dlxRowIndex(r, c, v int) int { return (r*9+c)*9 + (v - 1) }

func dlxRowColumns(r, c, v int) [4]int {
	box := (r/3)*3 + c/3
	return [4]int{
		r*9 + c,
		81 + r*9 + (v - 1),
		162 + c*9 + (v - 1),
		243 + box*9 + (v - 1),
	}
}

func newDLXMatrix() *dlxMatrix {
	m := &dlxMatrix{uncovered: dlxCols}
	for i := range m.cols {
		h := &m.cols[i].head
		h.up, h.down = h, h
		h.col = &m.cols[i]
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for v := 1; v <= 9; v++ {
				row := dlxRowIndex(r, c, v)
				var first, prev *dlxNode
				for _, ci := range dlxRowColumns(r, c, v) {
					col := &m.cols[ci]
					n := &dlxNode{col: col, row: row}
					// append at the bottom of the column
					n.down = &col.head
					n.up = col.head.up
					col.head.up.down = n
					col.head.up = n
					col.size++
					if first == nil {
						first = n
						n.left, n.right = n, n
					} else {
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
				m.rowHead[row] = first
			}
		}
	}
	return m
}

func (m *dlxMatrix) cover(col *dlxColumn) {
	if !col.covered {
		col.covered = true
		m.uncovered--
	}
	for i := col.head.down; i != &col.head; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (m *dlxMatrix) uncover(col *dlxColumn) {
	for i := col.head.up; i != &col.head; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if col.covered {
		col.covered = false
		m.uncovered++
	}
}

// smallestColumn implements the usual S-heuristic: branch on the
// constraint with the fewest remaining candidates.
func (m *dlxMatrix) smallestColumn() *dlxColumn {
	var best *dlxColumn
	for i := range m.cols {
		c := &m.cols[i]
		if c.covered {
			continue
		}
		if best == nil || c.size < best.size {
			best = c
			if best.size == 0 {
				break
			}
		}
	}
	return best
}

// placeClue selects the (r,c,v) row for a clue at the top level.
func (m *dlxMatrix) placeClue(r, c, v int) {
	head := m.rowHead[dlxRowIndex(r, c, v)]
	for j := head; ; j = j.right {
		m.cover(j.col)
		if j.right == head {
			break
		}
	}
}

// search counts covers up to limit, keeping the chosen rows of the last
// solution found in m.choice. The bool result means "stop".
func (m *dlxMatrix) search(ctx context.Context, depth, limit int, found *int) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	if m.uncovered == 0 {
		(*found)++
		m.solDepth = depth
		return *found >= limit
	}
	col := m.smallestColumn()
	if col == nil || col.size == 0 {
		return false
	}
	m.cover(col)
	for r := col.head.down; r != &col.head; r = r.down {
		m.nodes++
		m.choice[depth] = r
		for j := r.right; j != r; j = j.right {
			m.cover(j.col)
		}
		stop := m.search(ctx, depth+1, limit, found)
		for j := r.left; j != r; j = j.left {
			m.uncover(j.col)
		}
		if stop {
			m.uncover(col)
			return true
		}
	}
	m.uncover(col)
	return false
}

func (m *dlxMatrix) load(b *domain.Board) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := int(b.Values[r][c])
			if v == 0 {
				continue
			}
			if v < 1 || v > 9 {
				return &domain.InvalidPuzzleError{
					Reason: "cell value out of range",
					Cell:   &domain.CellCoord{Row: r, Col: c},
				}
			}
			// A clue sharing a constraint column with an earlier clue is a
			// direct conflict; covering the column twice would corrupt the
			// matrix links.
			for _, ci := range dlxRowColumns(r, c, v) {
				if m.cols[ci].covered {
					return &domain.InvalidPuzzleError{
						Reason: "duplicate clue in unit",
						Cell:   &domain.CellCoord{Row: r, Col: c},
					}
				}
			}
			m.placeClue(r, c, v)
		}
	}
	return nil
}

func (s *DLXSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	m := newDLXMatrix()
	if err := m.load(b); err != nil {
		return nil, ports.Stats{}, err
	}
	found := 0
	m.search(ctx, 0, 1, &found)
	stats := ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, stats, fmt.Errorf("%w: %v", engine.ErrCancelled, err)
	}
	if found == 0 {
		return nil, stats, engine.ErrNoSolution
	}
	out := &domain.Board{Values: b.Values, Fixed: b.Fixed}
	for _, n := range m.choice[:m.solDepth] {
		cell := n.row / 9
		out.Values[cell/9][cell%9] = uint8(n.row%9) + 1
	}
	return out, stats, nil
}

// CountSolutions counts solutions up to limit; limit 2 answers the
// uniqueness question.
func (s *DLXSolver) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	start := time.Now()
	m := newDLXMatrix()
	if err := m.load(b); err != nil {
		return 0, ports.Stats{}, err
	}
	found := 0
	m.search(ctx, 0, limit, &found)
	stats := ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return found, stats, fmt.Errorf("%w: %v", engine.ErrCancelled, err)
	}
	return found, stats, nil
}
