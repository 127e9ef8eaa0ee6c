package domain

import (
	"fmt"
	"strings"
)

// ParseBoard reads the minimal grid exchange representation: 81 digits in
// row-major order, '0' or '.' for an empty cell. Whitespace (including
// newlines from 9x9 layouts) is ignored, so both single-line and 9-line
// inputs parse. Non-zero digits become fixed clues.
func ParseBoard(s string) (*Board, error) {
	var cells []uint8
	for _, r := range s {
		switch {
		case r == '.' || r == '0':
			cells = append(cells, 0)
		case r >= '1' && r <= '9':
			cells = append(cells, uint8(r-'0'))
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			continue
		default:
			return nil, &InvalidPuzzleError{Reason: fmt.Sprintf("unexpected character %q", r)}
		}
	}
	if len(cells) != 81 {
		return nil, &InvalidPuzzleError{Reason: fmt.Sprintf("grid has %d cells, want 81", len(cells))}
	}
	b := &Board{}
	for i, v := range cells {
		r, c := i/9, i%9
		b.Values[r][c] = v
		b.Fixed[r][c] = v != 0
	}
	return b, nil
}

// Flat serializes the board back to the 81-digit single-line form.
func (b *Board) Flat() string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			sb.WriteByte('0' + b.Values[r][c])
		}
	}
	return sb.String()
}

// Pretty renders the board with box dividers for terminal output.
func (b *Board) Pretty() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				sb.WriteString("| ")
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteString(". ")
			} else {
				sb.WriteByte('0' + v)
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
