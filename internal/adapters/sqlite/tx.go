package sqlite

import (
	"context"
	"database/sql"

	"pagesync/internal/domain"
)

// ledgerTx wraps the inserts of a single RecordRun
type ledgerTx struct {
	tx *sql.Tx
}

// insertRun adds the run row
func (t *ledgerTx) insertRun(ctx context.Context, run *domain.RunRecord) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, created, skipped, errored)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt.UnixMilli(), run.FinishedAt.UnixMilli(), run.Created, run.Skipped, run.Errored)
	return err
}

// insertOutcome adds one outcome row at position seq
func (t *ledgerTx) insertOutcome(ctx context.Context, runID string, seq int, o domain.SyncOutcome) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO outcomes (run_id, seq, parent_id, parent_name, parent_dir, title, path, kind, url, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, seq, o.Parent.ID, o.Parent.Name, o.Parent.Dir, o.File.Title, o.File.Path, o.Kind.String(), o.URL, o.Err)
	return err
}

// rollback aborts the transaction
func (t *ledgerTx) rollback() {
	_ = t.tx.Rollback()
}
