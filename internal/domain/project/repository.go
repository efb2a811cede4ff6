package project

import "context"

// Repository stores committed projects. List returns projects in creation
// order; GetByID returns a not found error from shared/errors for unknown
// identifiers.
type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, projectID string) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
}
