package history

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"

	// SQLite driver
	_ "modernc.org/sqlite"

	"github.com/peftcheck/peftcheck/pkg/checker"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store records check runs in a SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Config holds store configuration.
type Config struct {
	Path string
}

// NewStore creates a new store instance. Call Init before use.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	return &Store{path: cfg.Path}, nil
}

// Init opens the database connection and enables WAL mode.
func (s *Store) Init(ctx context.Context) error {
	dsn := fmt.Sprintf("%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", s.path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s.db = db
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Migrate runs database migrations from the embedded SQL files.
func (s *Store) Migrate(_ context.Context) error {
	if s.db == nil {
		return fmt.Errorf("database not initialized")
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	driver, err := sqlite3.WithInstance(s.db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create database driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// HealthCheck verifies the database connection is healthy.
func (s *Store) HealthCheck(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("database not initialized")
	}
	return s.db.PingContext(ctx)
}

// CreateRun inserts a new run record.
func (s *Store) CreateRun(ctx context.Context, run *CheckRun) error {
	query := `
		INSERT INTO runs (id, directory, status, error_count, started_at, completed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		run.ID,
		run.Directory,
		run.Status,
		run.ErrorCount,
		run.StartedAt,
		run.CompletedAt,
		run.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// RecordFile inserts a file result for a run.
func (s *Store) RecordFile(ctx context.Context, rec *FileRecord) error {
	query := `
		INSERT INTO file_results (run_id, file, found, status, errors)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		rec.RunID,
		rec.File,
		rec.Found,
		rec.Status,
		rec.Errors,
	)

	if err != nil {
		return fmt.Errorf("failed to record file result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get file result ID: %w", err)
	}

	rec.ID = id
	return nil
}

// RecordReport stores a checker report as one run plus its file results
// and returns the generated run ID.
func (s *Store) RecordReport(ctx context.Context, rep *checker.Report) (string, error) {
	status := RunStatusPassed
	if !rep.OK() {
		status = RunStatusFailed
	}

	run := &CheckRun{
		ID:          uuid.NewString(),
		Directory:   rep.Dir,
		Status:      status,
		ErrorCount:  rep.ErrorCount(),
		StartedAt:   rep.StartedAt.UTC(),
		CompletedAt: rep.CompletedAt.UTC(),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.CreateRun(ctx, run); err != nil {
		return "", err
	}

	for _, res := range rep.Results {
		msgs, err := json.Marshal(res.Errors)
		if err != nil {
			return "", fmt.Errorf("failed to encode error messages: %w", err)
		}
		rec := &FileRecord{
			RunID:  run.ID,
			File:   res.Name,
			Found:  res.Found,
			Status: res.Status(),
			Errors: string(msgs),
		}
		if err := s.RecordFile(ctx, rec); err != nil {
			return "", err
		}
	}

	return run.ID, nil
}

// GetRun retrieves a run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (*CheckRun, error) {
	query := `
		SELECT id, directory, status, error_count, started_at, completed_at, created_at
		FROM runs
		WHERE id = ?
	`

	run := &CheckRun{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&run.ID,
		&run.Directory,
		&run.Status,
		&run.ErrorCount,
		&run.StartedAt,
		&run.CompletedAt,
		&run.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return run, nil
}

// ListRuns lists runs with pagination, most recent first.
func (s *Store) ListRuns(ctx context.Context, limit, offset int) ([]*CheckRun, error) {
	query := `
		SELECT id, directory, status, error_count, started_at, completed_at, created_at
		FROM runs
		ORDER BY started_at DESC
		LIMIT ? OFFSET ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	runs := []*CheckRun{}
	for rows.Next() {
		run := &CheckRun{}
		err := rows.Scan(
			&run.ID,
			&run.Directory,
			&run.Status,
			&run.ErrorCount,
			&run.StartedAt,
			&run.CompletedAt,
			&run.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

// ListFilesByRun lists the file results recorded for a run.
func (s *Store) ListFilesByRun(ctx context.Context, runID string) ([]*FileRecord, error) {
	query := `
		SELECT id, run_id, file, found, status, errors
		FROM file_results
		WHERE run_id = ?
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list file results: %w", err)
	}
	defer rows.Close()

	records := []*FileRecord{}
	for rows.Next() {
		rec := &FileRecord{}
		err := rows.Scan(
			&rec.ID,
			&rec.RunID,
			&rec.File,
			&rec.Found,
			&rec.Status,
			&rec.Errors,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file result: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating file results: %w", err)
	}

	return records, nil
}
