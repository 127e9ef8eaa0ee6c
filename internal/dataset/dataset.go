// Package dataset loads puzzle list files for benchmarking: one 81-digit
// grid per line ('0' or '.' for blanks), '#' comment lines and blank
// lines skipped.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"svw.info/sudoku-solver/internal/domain"
)

// Entry is one puzzle from a dataset file.
type Entry struct {
	Line  int // 1-based source line, for error reporting
	Raw   string
	Board *domain.Board
}

// Load reads every puzzle from r. A malformed line fails the whole load
// with its line number; silently skipping bad data would make benchmark
// runs incomparable.
func Load(r io.Reader) ([]Entry, error) {
	var out []Entry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		b, err := domain.ParseBoard(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, Entry{Line: line, Raw: text, Board: b})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadFile reads a dataset from disk.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	entries, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}
