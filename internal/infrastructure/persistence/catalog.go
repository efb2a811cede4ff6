// Package persistence provides the in-memory storage backing the service:
// the embedded reference catalog, the committed project store and the draft
// planning session store. Nothing survives a restart; durable storage is
// deliberately out of scope.
package persistence

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"loomflow/internal/domain/catalog"
	"loomflow/internal/shared/errors"
)

//go:embed fixtures/catalog.yaml
var catalogFixture []byte

type catalogData struct {
	Templates []*catalog.WorkflowTemplate `yaml:"templates"`
	Orders    []*catalog.Order            `yaml:"orders"`
	Users     []*catalog.User             `yaml:"users"`
}

// CatalogRepository serves the embedded reference catalog. The data is
// read-only after construction, so lookups need no locking.
type CatalogRepository struct {
	templates  map[string]*catalog.WorkflowTemplate
	orders     []*catalog.Order
	ordersByID map[string]*catalog.Order
	users      []*catalog.User
}

// NewCatalogRepository decodes the embedded fixture set.
func NewCatalogRepository() (*CatalogRepository, error) {
	var data catalogData
	if err := yaml.Unmarshal(catalogFixture, &data); err != nil {
		return nil, fmt.Errorf("failed to decode catalog fixtures: %w", err)
	}

	repo := &CatalogRepository{
		templates:  make(map[string]*catalog.WorkflowTemplate, len(data.Templates)),
		orders:     data.Orders,
		ordersByID: make(map[string]*catalog.Order, len(data.Orders)),
		users:      data.Users,
	}
	for _, t := range data.Templates {
		repo.templates[t.ID] = t
	}
	for _, o := range data.Orders {
		repo.ordersByID[o.ID] = o
	}
	return repo, nil
}

func (r *CatalogRepository) GetTemplate(ctx context.Context, templateID string) (*catalog.WorkflowTemplate, error) {
	t, ok := r.templates[templateID]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("template %s not found", templateID))
	}
	return t, nil
}

func (r *CatalogRepository) ListOrders(ctx context.Context) ([]*catalog.Order, error) {
	orders := make([]*catalog.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

func (r *CatalogRepository) GetOrder(ctx context.Context, orderID string) (*catalog.Order, error) {
	o, ok := r.ordersByID[orderID]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
	}
	return o, nil
}

func (r *CatalogRepository) ListUsers(ctx context.Context) ([]*catalog.User, error) {
	users := make([]*catalog.User, len(r.users))
	copy(users, r.users)
	return users, nil
}
