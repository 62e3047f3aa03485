package ports

import (
	"context"

	"pagesync/internal/domain"
)

// RunLedger records completed sync runs
type RunLedger interface {
	// Lifecycle
	Open(path string) error
	Close() error

	// RecordRun stores the run and all of its outcomes atomically
	RecordRun(ctx context.Context, run *domain.RunRecord) error

	// ListRuns returns up to limit runs, newest first, without outcomes
	ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error)

	// GetRun returns a run with its outcomes, or nil if it does not exist
	GetRun(ctx context.Context, id string) (*domain.RunRecord, error)
}
