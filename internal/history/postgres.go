package history

import (
	"database/sql"
	"errors"
	"fmt"

	"hyperbench/internal/benchmark"

	_ "github.com/lib/pq"
)

// PostgresStore implements Store using PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to dsn and applies migrations
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id BIGSERIAL PRIMARY KEY,
			commit_sha TEXT NOT NULL DEFAULT '',
			results JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC)`,
	}
	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) SaveRun(run benchmark.Run) (int64, error) {
	results, err := encodeResults(run.Results)
	if err != nil {
		return 0, err
	}

	var id int64
	query := `INSERT INTO runs (commit_sha, results, created_at) VALUES ($1, $2, $3) RETURNING id`
	if err := s.db.QueryRow(query, run.Commit, results, run.Timestamp).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) LatestRun() (*benchmark.Run, error) {
	row := s.db.QueryRow(`SELECT id, commit_sha, results::text, created_at FROM runs ORDER BY id DESC LIMIT 1`)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return run, err
}

func (s *PostgresStore) GetRun(id int64) (*benchmark.Run, error) {
	row := s.db.QueryRow(`SELECT id, commit_sha, results::text, created_at FROM runs WHERE id = $1`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d: %w", id, ErrRunNotFound)
	}
	return run, err
}

func (s *PostgresStore) ListRuns(limit int) ([]benchmark.Run, error) {
	query := `SELECT id, commit_sha, results::text, created_at FROM runs ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT $1`
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
