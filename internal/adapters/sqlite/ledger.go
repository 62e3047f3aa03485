package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pagesync/internal/domain"
	"pagesync/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Ledger implements ports.RunLedger using SQLite
type Ledger struct {
	db     *sql.DB
	dbPath string
}

// Ensure Ledger implements RunLedger
var _ ports.RunLedger = (*Ledger)(nil)

// NewLedger creates a new SQLite ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Open opens (creating if needed) the ledger database at path
func (l *Ledger) Open(path string) error {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	l.dbPath = path

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	// WAL, busy timeout and foreign keys must hold on every pooled connection
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	l.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at INTEGER NOT NULL,
			finished_at INTEGER NOT NULL,
			created INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			errored INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS outcomes (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			parent_id TEXT NOT NULL,
			parent_name TEXT NOT NULL,
			parent_dir TEXT NOT NULL,
			title TEXT NOT NULL,
			path TEXT NOT NULL,
			kind TEXT NOT NULL,
			url TEXT NOT NULL,
			error TEXT NOT NULL,
			PRIMARY KEY (run_id, seq)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Path returns the database file path
func (l *Ledger) Path() string {
	return l.dbPath
}

// RecordRun stores a run and its outcomes in one transaction
func (l *Ledger) RecordRun(ctx context.Context, run *domain.RunRecord) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	t := &ledgerTx{tx: tx}

	if err := t.insertRun(ctx, run); err != nil {
		t.rollback()
		return fmt.Errorf("failed to insert run: %w", err)
	}
	for i, o := range run.Outcomes {
		if err := t.insertOutcome(ctx, run.ID, i, o); err != nil {
			t.rollback()
			return fmt.Errorf("failed to insert outcome %s: %w", o.Key(), err)
		}
	}

	return tx.Commit()
}

// ListRuns returns up to limit runs, newest first
func (l *Ledger) ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, created, skipped, errored
		FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	return runs, rows.Err()
}

// GetRun returns a run with its outcomes, or nil if no run has that ID
func (l *Ledger) GetRun(ctx context.Context, id string) (*domain.RunRecord, error) {
	row := l.db.QueryRowContext(ctx, `
		SELECT id, started_at, finished_at, created, skipped, errored
		FROM runs WHERE id = ?
	`, id)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := l.db.QueryContext(ctx, `
		SELECT parent_id, parent_name, parent_dir, title, path, kind, url, error
		FROM outcomes WHERE run_id = ? ORDER BY seq
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o domain.SyncOutcome
		var kind string
		if err := rows.Scan(&o.Parent.ID, &o.Parent.Name, &o.Parent.Dir,
			&o.File.Title, &o.File.Path, &kind, &o.URL, &o.Err); err != nil {
			return nil, err
		}
		k, ok := domain.ParseOutcomeKind(kind)
		if !ok {
			return nil, fmt.Errorf("unknown outcome kind %q in run %s", kind, id)
		}
		o.Kind = k
		run.Outcomes = append(run.Outcomes, o)
	}

	return run, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*domain.RunRecord, error) {
	var run domain.RunRecord
	var started, finished int64
	if err := s.Scan(&run.ID, &started, &finished, &run.Created, &run.Skipped, &run.Errored); err != nil {
		return nil, err
	}
	run.StartedAt = time.UnixMilli(started)
	run.FinishedAt = time.UnixMilli(finished)
	return &run, nil
}
