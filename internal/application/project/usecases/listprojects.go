// Package usecases implements queries and commands over committed projects
// and their tickets.
package usecases

import (
	"context"
	"time"

	"loomflow/internal/domain/project"
	"loomflow/internal/shared/errors"
	"loomflow/internal/shared/logger"
)

type ListProjectsQuery struct{}

type ProjectSummary struct {
	ID          string
	Name        string
	OrderID     string
	Status      string
	CreatedAt   time.Time
	TicketCount int
	Progress    int
}

type ListProjectsResult struct {
	Projects []ProjectSummary
}

// ListProjectsUseCase lists committed projects in creation order with
// completion stats.
type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListProjectsUseCase(
	projectRepo project.Repository,
	logger logger.Interface,
) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, _ ListProjectsQuery) (*ListProjectsResult, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err)
		return nil, errors.NewInternalError("failed to list projects")
	}

	summaries := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, ProjectSummary{
			ID:          p.ID(),
			Name:        p.Name(),
			OrderID:     p.OrderID(),
			Status:      p.Status().String(),
			CreatedAt:   p.CreatedAt(),
			TicketCount: p.TicketCount(),
			Progress:    p.Progress(),
		})
	}

	return &ListProjectsResult{Projects: summaries}, nil
}
