package domain

import (
	"errors"
	"strings"
	"testing"
)

const classicGrid = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestParseBoardFlat(t *testing.T) {
	b, err := ParseBoard(classicGrid)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	if b.Values[0][0] != 5 || b.Values[8][8] != 9 {
		t.Fatal("corner values wrong")
	}
	if !b.Fixed[0][0] || b.Fixed[0][2] {
		t.Fatal("fixed flags wrong")
	}
	if got := b.Flat(); got != classicGrid {
		t.Fatalf("Flat round trip mismatch:\n%s\n%s", got, classicGrid)
	}
}

func TestParseBoardMultiline(t *testing.T) {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		sb.WriteString(classicGrid[r*9:(r+1)*9] + "\n")
	}
	b, err := ParseBoard(sb.String())
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	if b.Flat() != classicGrid {
		t.Fatal("multiline form parsed differently")
	}
}

func TestParseBoardDots(t *testing.T) {
	dotted := strings.ReplaceAll(classicGrid, "0", ".")
	b, err := ParseBoard(dotted)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	if b.Flat() != classicGrid {
		t.Fatal("dot blanks parsed differently")
	}
}

func TestParseBoardRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"too short", classicGrid[:80]},
		{"too long", classicGrid + "1"},
		{"bad character", "x" + classicGrid[1:]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseBoard(tc.in)
			var ipe *InvalidPuzzleError
			if !errors.As(err, &ipe) {
				t.Fatalf("want InvalidPuzzleError, got %v", err)
			}
		})
	}
}

func TestPrettyHasBoxDividers(t *testing.T) {
	b, err := ParseBoard(classicGrid)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	out := b.Pretty()
	if strings.Count(out, "------+-------+------") != 2 {
		t.Fatalf("expected two horizontal dividers:\n%s", out)
	}
	if !strings.Contains(out, "5 3 . ") {
		t.Fatalf("first row rendered wrong:\n%s", out)
	}
}
