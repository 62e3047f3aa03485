package commands

import (
	"context"
	"fmt"

	"pagesync/internal/application"
	"pagesync/internal/domain"
	"pagesync/internal/ports"
)

// DefaultHistoryLimit is the number of runs listed when no limit is given
const DefaultHistoryLimit = 10

// ListRunsCommand lists recorded runs, newest first
type ListRunsCommand struct {
	ledger ports.RunLedger
	Limit  int
}

// NewListRunsCommand creates a new ListRunsCommand
func NewListRunsCommand(ledger ports.RunLedger, limit int) *ListRunsCommand {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &ListRunsCommand{ledger: ledger, Limit: limit}
}

// Execute runs the list runs command
func (c *ListRunsCommand) Execute(ctx context.Context) ([]domain.RunRecord, error) {
	if c.ledger == nil {
		return nil, &application.ConfigurationError{Setting: "ledger", Reason: "is not configured"}
	}
	runs, err := c.ledger.ListRuns(ctx, c.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// ShowRunCommand returns one recorded run with its outcomes
type ShowRunCommand struct {
	ledger ports.RunLedger
	RunID  string
}

// NewShowRunCommand creates a new ShowRunCommand
func NewShowRunCommand(ledger ports.RunLedger, runID string) *ShowRunCommand {
	return &ShowRunCommand{ledger: ledger, RunID: runID}
}

// Validate checks if the show operation is valid
func (c *ShowRunCommand) Validate() error {
	return application.ValidateRequired("runID", c.RunID)
}

// Execute runs the show run command
func (c *ShowRunCommand) Execute(ctx context.Context) (*domain.RunRecord, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.ledger == nil {
		return nil, &application.ConfigurationError{Setting: "ledger", Reason: "is not configured"}
	}

	run, err := c.ledger.GetRun(ctx, c.RunID)
	if err != nil {
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	if run == nil {
		return nil, fmt.Errorf("run %s: %w", c.RunID, application.ErrNotFound)
	}
	return run, nil
}
