package usecases

import (
	"context"
	"time"

	"loomflow/internal/domain/project"
	"loomflow/internal/shared/errors"
	"loomflow/internal/shared/logger"
)

type GetProjectQuery struct {
	ProjectID string
}

type GetProjectResult struct {
	ID         string
	Name       string
	OrderID    string
	TemplateID string
	Status     string
	CreatedAt  time.Time
	Progress   int
	Tickets    []project.Ticket
}

// GetProjectUseCase returns one project with its full ticket board.
type GetProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewGetProjectUseCase(
	projectRepo project.Repository,
	logger logger.Interface,
) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, query GetProjectQuery) (*GetProjectResult, error) {
	if query.ProjectID == "" {
		return nil, errors.NewValidationError("project ID is required")
	}

	p, err := uc.projectRepo.GetByID(ctx, query.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to get project", "project_id", query.ProjectID, "error", err)
		return nil, err
	}

	return &GetProjectResult{
		ID:         p.ID(),
		Name:       p.Name(),
		OrderID:    p.OrderID(),
		TemplateID: p.TemplateID(),
		Status:     p.Status().String(),
		CreatedAt:  p.CreatedAt(),
		Progress:   p.Progress(),
		Tickets:    p.Tickets(),
	}, nil
}
