package repository

import (
	"context"

	"github.com/google/uuid"

	"aurexis-backend/internal/domains/portfolio/model"
)

// RepositoryInterface persists portfolio projects
type RepositoryInterface interface {
	// List returns projects ordered by display order, then creation time
	List(ctx context.Context, filter model.ListFilter) ([]model.Project, error)

	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)

	// Append runs fn with the collection locked against concurrent appends.
	// Nothing fn inserted is kept when it returns an error.
	Append(ctx context.Context, fn func(tx AppendTx) error) error

	// Update replaces every editable field including Order
	Update(ctx context.Context, project *model.Project) error

	// Delete removes exactly one project. Other orders are untouched.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AppendTx is the locked view of the collection handed to Append callbacks
type AppendTx interface {
	Count(ctx context.Context) (int, error)
	// Insert stores the project as given, Order included
	Insert(ctx context.Context, project *model.Project) error
}
