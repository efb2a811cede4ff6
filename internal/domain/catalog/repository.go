package catalog

import "context"

// Repository is the read API over the static reference catalog. Lookups for
// unknown identifiers return a not found error from shared/errors; callers
// treat that as recoverable.
type Repository interface {
	GetTemplate(ctx context.Context, templateID string) (*WorkflowTemplate, error)
	ListOrders(ctx context.Context) ([]*Order, error)
	GetOrder(ctx context.Context, orderID string) (*Order, error)
	ListUsers(ctx context.Context) ([]*User, error)
}
