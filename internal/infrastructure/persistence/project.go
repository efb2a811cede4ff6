package persistence

import (
	"context"
	"fmt"
	"sync"

	"loomflow/internal/domain/project"
	"loomflow/internal/shared/errors"
)

// ProjectRepository is an in-memory project store. Projects are kept in
// creation order; the map indexes the same pointers for lookup. Aggregates
// are cloned on every read and write so callers never mutate stored state
// through a shared pointer.
type ProjectRepository struct {
	mu       sync.RWMutex
	projects []*project.Project
	byID     map[string]*project.Project
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{
		byID: make(map[string]*project.Project),
	}
}

func (r *ProjectRepository) Save(ctx context.Context, p *project.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID()]; exists {
		return errors.NewConflictError(fmt.Sprintf("project %s already exists", p.ID()))
	}
	stored, err := cloneProject(p)
	if err != nil {
		return err
	}
	r.projects = append(r.projects, stored)
	r.byID[stored.ID()] = stored
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID()]; !exists {
		return errors.NewNotFoundError(fmt.Sprintf("project %s not found", p.ID()))
	}
	stored, err := cloneProject(p)
	if err != nil {
		return err
	}
	for i := range r.projects {
		if r.projects[i].ID() == stored.ID() {
			r.projects[i] = stored
			break
		}
	}
	r.byID[stored.ID()] = stored
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID string) (*project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[projectID]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("project %s not found", projectID))
	}
	return cloneProject(p)
}

func (r *ProjectRepository) List(ctx context.Context) ([]*project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]*project.Project, 0, len(r.projects))
	for _, p := range r.projects {
		copied, err := cloneProject(p)
		if err != nil {
			return nil, err
		}
		projects = append(projects, copied)
	}
	return projects, nil
}

// cloneProject rebuilds an independent aggregate from another one's state.
func cloneProject(p *project.Project) (*project.Project, error) {
	return project.ReconstructProject(
		p.ID(), p.Name(), p.OrderID(), p.TemplateID(),
		p.Status(), p.CreatedAt(), p.Tickets(),
	)
}
