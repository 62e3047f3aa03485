package ports

import (
	"context"

	"pagesync/internal/domain"
)

// PageService defines the operations used against the hosted document service
type PageService interface {
	// ListChildren returns every child page beneath parentID, in service order
	ListChildren(ctx context.Context, parentID string) ([]domain.ChildPage, error)

	// CreateChildPage creates a page titled title under parentID whose body is
	// body inside a single preformatted block
	CreateChildPage(ctx context.Context, parentID, title, body string) (*domain.ChildPage, error)
}
