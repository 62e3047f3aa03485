package application

import "pagesync/internal/domain"

// Re-export domain types for use by adapters
type (
	ParentPageRef = domain.ParentPageRef
	SourceFile    = domain.SourceFile
	ChildPage     = domain.ChildPage
	SyncOutcome   = domain.SyncOutcome
	RunSummary    = domain.RunSummary
	RunRecord     = domain.RunRecord
	OutcomeKind   = domain.OutcomeKind
)

const (
	OutcomeCreated = domain.OutcomeCreated
	OutcomeSkipped = domain.OutcomeSkipped
	OutcomeErrored = domain.OutcomeErrored
)

// RenderReport returns the human-readable report for a summary
func RenderReport(s RunSummary) string {
	return domain.RenderReport(s)
}
