package usecases

import (
	"context"
	"fmt"

	"loomflow/internal/domain/project"
	"loomflow/internal/shared/errors"
	"loomflow/internal/shared/logger"
	"loomflow/internal/shared/services/markdown"
)

type RenderTicketDescriptionQuery struct {
	ProjectID string
	TicketID  string
}

type RenderTicketDescriptionResult struct {
	TicketID string
	HTML     string
}

// RenderTicketDescriptionUseCase renders a ticket's markdown description to
// sanitized HTML for board display.
type RenderTicketDescriptionUseCase struct {
	projectRepo project.Repository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewRenderTicketDescriptionUseCase(
	projectRepo project.Repository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *RenderTicketDescriptionUseCase {
	return &RenderTicketDescriptionUseCase{
		projectRepo: projectRepo,
		markdown:    markdownSvc,
		logger:      logger,
	}
}

func (uc *RenderTicketDescriptionUseCase) Execute(ctx context.Context, query RenderTicketDescriptionQuery) (*RenderTicketDescriptionResult, error) {
	if query.ProjectID == "" {
		return nil, errors.NewValidationError("project ID is required")
	}
	if query.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	p, err := uc.projectRepo.GetByID(ctx, query.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to get project", "project_id", query.ProjectID, "error", err)
		return nil, err
	}

	ticket, ok := p.Ticket(query.TicketID)
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %s not found in project %s", query.TicketID, query.ProjectID))
	}

	html, err := uc.markdown.ToHTMLSanitized(ticket.Description)
	if err != nil {
		uc.logger.Errorw("failed to render ticket description", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to render ticket description")
	}

	return &RenderTicketDescriptionResult{
		TicketID: ticket.ID,
		HTML:     html,
	}, nil
}
