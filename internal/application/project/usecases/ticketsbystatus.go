package usecases

import (
	"context"

	"loomflow/internal/domain/project"
	vo "loomflow/internal/domain/project/valueobjects"
	"loomflow/internal/shared/errors"
	"loomflow/internal/shared/logger"
)

type TicketsByStatusQuery struct {
	ProjectID string
	Status    string
}

type TicketsByStatusResult struct {
	Status  string
	Tickets []project.Ticket
}

// TicketsByStatusUseCase returns one board column of a project.
type TicketsByStatusUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewTicketsByStatusUseCase(
	projectRepo project.Repository,
	logger logger.Interface,
) *TicketsByStatusUseCase {
	return &TicketsByStatusUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *TicketsByStatusUseCase) Execute(ctx context.Context, query TicketsByStatusQuery) (*TicketsByStatusResult, error) {
	if query.ProjectID == "" {
		return nil, errors.NewValidationError("project ID is required")
	}

	status, err := vo.NewTicketStatus(query.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	p, err := uc.projectRepo.GetByID(ctx, query.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to get project", "project_id", query.ProjectID, "error", err)
		return nil, err
	}

	return &TicketsByStatusResult{
		Status:  status.String(),
		Tickets: p.TicketsByStatus(status),
	}, nil
}
