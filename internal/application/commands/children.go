package commands

import (
	"context"
	"fmt"

	"pagesync/internal/application"
	"pagesync/internal/domain"
	"pagesync/internal/ports"
)

// ListChildrenCommand lists the child pages of one parent
type ListChildrenCommand struct {
	service  ports.PageService
	ParentID string
}

// NewListChildrenCommand creates a new ListChildrenCommand
func NewListChildrenCommand(service ports.PageService, parentID string) *ListChildrenCommand {
	return &ListChildrenCommand{
		service:  service,
		ParentID: parentID,
	}
}

// Validate checks if the list operation is valid
func (c *ListChildrenCommand) Validate() error {
	return application.ValidatePageID("parentID", c.ParentID)
}

// Execute runs the list children command
func (c *ListChildrenCommand) Execute(ctx context.Context) ([]domain.ChildPage, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	children, err := c.service.ListChildren(ctx, c.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w",
			&application.ServiceCallError{Op: "list", ParentID: c.ParentID, Err: err})
	}
	return children, nil
}
