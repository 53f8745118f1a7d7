package history

import (
	"database/sql"
	"errors"
	"fmt"

	"hyperbench/internal/benchmark"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the database at path and applies migrations
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		commit_sha TEXT NOT NULL DEFAULT '',
		results TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun stores a run and returns its new id
func (s *SQLiteStore) SaveRun(run benchmark.Run) (int64, error) {
	results, err := encodeResults(run.Results)
	if err != nil {
		return 0, err
	}

	res, err := s.db.Exec(`INSERT INTO runs (commit_sha, results, created_at) VALUES (?, ?, ?)`,
		run.Commit, results, run.Timestamp.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	return res.LastInsertId()
}

func (s *SQLiteStore) LatestRun() (*benchmark.Run, error) {
	row := s.db.QueryRow(`SELECT id, commit_sha, results, created_at FROM runs ORDER BY id DESC LIMIT 1`)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return run, err
}

func (s *SQLiteStore) GetRun(id int64) (*benchmark.Run, error) {
	row := s.db.QueryRow(`SELECT id, commit_sha, results, created_at FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d: %w", id, ErrRunNotFound)
	}
	return run, err
}

func (s *SQLiteStore) ListRuns(limit int) ([]benchmark.Run, error) {
	query := `SELECT id, commit_sha, results, created_at FROM runs ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []benchmark.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}
