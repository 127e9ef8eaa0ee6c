package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"svw.info/sudoku-solver/internal/domain"
)

// SQLite stores puzzles and benchmark solve runs in a single database
// file. It implements both ports.Storage and ports.RunRecorder.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and migrates the
// schema.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		id TEXT PRIMARY KEY,
		name TEXT,
		notes TEXT,
		difficulty INTEGER NOT NULL DEFAULT 0,
		grid TEXT NOT NULL,
		fixed TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS solve_runs (
		id TEXT PRIMARY KEY,
		grid TEXT NOT NULL,
		solver TEXT NOT NULL,
		strategies TEXT,
		solved INTEGER NOT NULL DEFAULT 0,
		nodes INTEGER NOT NULL DEFAULT 0,
		guesses INTEGER NOT NULL DEFAULT 0,
		duration_us INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_solve_runs_grid ON solve_runs(grid);
	CREATE INDEX IF NOT EXISTS idx_solve_runs_solver ON solve_runs(solver);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil {
		return errors.New("invalid puzzle: nil")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO puzzles (id, name, notes, difficulty, grid, fixed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Notes, int(p.Difficulty), p.Board.Flat(), fixedMask(&p.Board), p.CreatedAt,
	)
	return err
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, notes, difficulty, grid, fixed, created_at
		 FROM puzzles WHERE id = ?`, id)
	var p domain.Puzzle
	var diff int
	var grid, fixed string
	if err := row.Scan(&p.ID, &p.Name, &p.Notes, &diff, &grid, &fixed, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Difficulty = domain.Difficulty(diff)
	b, err := domain.ParseBoard(grid)
	if err != nil {
		return nil, fmt.Errorf("stored grid %s: %w", p.ID, err)
	}
	applyFixedMask(b, fixed)
	p.Board = *b
	return &p, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, difficulty, created_at FROM puzzles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.PuzzleMeta
	for rows.Next() {
		var m domain.PuzzleMeta
		var diff int
		if err := rows.Scan(&m.ID, &m.Name, &diff, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Difficulty = domain.Difficulty(diff)
		out = append(out, m)
	}
	return out, rows.Err()
}

// RecordRun logs one benchmark solve.
func (s *SQLite) RecordRun(ctx context.Context, run *domain.SolveRun) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt == 0 {
		run.CreatedAt = time.Now().UnixNano()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO solve_runs (id, grid, solver, strategies, solved, nodes, guesses, duration_us, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Grid, run.Solver, run.Strategies, run.Solved,
		run.Nodes, run.Guesses, run.DurationUs, run.CreatedAt,
	)
	return err
}

// fixedMask flattens the clue mask to 81 characters of '0'/'1'.
func fixedMask(b *domain.Board) string {
	buf := make([]byte, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Fixed[r][c] {
				buf = append(buf, '1')
			} else {
				buf = append(buf, '0')
			}
		}
	}
	return string(buf)
}

func applyFixedMask(b *domain.Board, mask string) {
	if len(mask) != 81 {
		return
	}
	for i := 0; i < 81; i++ {
		b.Fixed[i/9][i%9] = mask[i] == '1'
	}
}
