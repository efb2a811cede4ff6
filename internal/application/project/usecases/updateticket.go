package usecases

import (
	"context"
	"fmt"
	"time"

	"loomflow/internal/domain/project"
	vo "loomflow/internal/domain/project/valueobjects"
	"loomflow/internal/shared/errors"
	"loomflow/internal/shared/logger"
)

type UpdateTicketCommand struct {
	ProjectID   string
	TicketID    string
	Title       *string
	Description *string
	Status      *string
	Assignee    *string
	Deadline    *time.Time
	FieldValues map[string]*vo.FieldValue
}

type UpdateTicketResult struct {
	Ticket project.Ticket
}

// UpdateTicketUseCase applies a post-commit edit to one ticket and persists
// the aggregate.
type UpdateTicketUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	projectRepo project.Repository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "project_id", cmd.ProjectID, "ticket_id", cmd.TicketID)

	if cmd.ProjectID == "" {
		return nil, errors.NewValidationError("project ID is required")
	}
	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	patch := project.TicketPatch{
		Title:       cmd.Title,
		Description: cmd.Description,
		Assignee:    cmd.Assignee,
		Deadline:    cmd.Deadline,
		FieldValues: cmd.FieldValues,
	}
	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		patch.Status = &status
	}

	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to get project", "project_id", cmd.ProjectID, "error", err)
		return nil, err
	}

	found, err := p.UpdateTicket(cmd.TicketID, patch)
	if !found {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %s not found in project %s", cmd.TicketID, cmd.ProjectID))
	}
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update project", "project_id", cmd.ProjectID, "error", err)
		return nil, errors.NewInternalError("failed to update project")
	}

	ticket, _ := p.Ticket(cmd.TicketID)

	uc.logger.Infow("ticket updated", "project_id", cmd.ProjectID, "ticket_id", cmd.TicketID)

	return &UpdateTicketResult{Ticket: ticket}, nil
}
