package commands

import "pagesync/internal/domain"

// ListParentsCommand returns the configured parent pages. It makes no service calls.
type ListParentsCommand struct {
	parents []domain.ParentPageRef
}

// NewListParentsCommand creates a new ListParentsCommand
func NewListParentsCommand(parents []domain.ParentPageRef) *ListParentsCommand {
	return &ListParentsCommand{parents: parents}
}

// Execute returns a copy of the configured parents in sync order
func (c *ListParentsCommand) Execute() []domain.ParentPageRef {
	out := make([]domain.ParentPageRef, len(c.parents))
	copy(out, c.parents)
	return out
}
