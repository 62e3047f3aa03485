package domain

import "time"

// RunRecord is a completed run as kept by the run ledger
type RunRecord struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Created    int
	Skipped    int
	Errored    int
	Outcomes   []SyncOutcome // Empty when listed without detail
}

// NewRunRecord builds a ledger record from a summary and its outcomes
func NewRunRecord(id string, s RunSummary, outcomes []SyncOutcome) *RunRecord {
	return &RunRecord{
		ID:         id,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
		Created:    s.Created,
		Skipped:    s.Skipped,
		Errored:    s.Errored,
		Outcomes:   outcomes,
	}
}
