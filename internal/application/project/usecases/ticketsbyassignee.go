package usecases

import (
	"context"

	"loomflow/internal/domain/project"
	"loomflow/internal/shared/errors"
	"loomflow/internal/shared/logger"
)

type TicketsByAssigneeQuery struct {
	Assignee string
}

// AssignedTicket is the cross-project projection of one assigned ticket.
type AssignedTicket struct {
	project.Ticket
	ProjectID   string
	ProjectName string
}

type TicketsByAssigneeResult struct {
	Assignee string
	Tickets  []AssignedTicket
}

// TicketsByAssigneeUseCase collects a user's tickets across all projects,
// in project creation order then generation order within each project.
type TicketsByAssigneeUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewTicketsByAssigneeUseCase(
	projectRepo project.Repository,
	logger logger.Interface,
) *TicketsByAssigneeUseCase {
	return &TicketsByAssigneeUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *TicketsByAssigneeUseCase) Execute(ctx context.Context, query TicketsByAssigneeQuery) (*TicketsByAssigneeResult, error) {
	if query.Assignee == "" {
		return nil, errors.NewValidationError("assignee is required")
	}

	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err)
		return nil, errors.NewInternalError("failed to list projects")
	}

	var assigned []AssignedTicket
	for _, p := range projects {
		for _, t := range p.TicketsByAssignee(query.Assignee) {
			assigned = append(assigned, AssignedTicket{
				Ticket:      t,
				ProjectID:   p.ID(),
				ProjectName: p.Name(),
			})
		}
	}

	return &TicketsByAssigneeResult{
		Assignee: query.Assignee,
		Tickets:  assigned,
	}, nil
}
