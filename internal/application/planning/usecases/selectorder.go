// Package usecases implements the planning flow: selecting an order, tuning
// milestone configs, registering custom tasks, previewing generation and
// committing the result as a project.
package usecases

import (
	"context"
	"fmt"

	"loomflow/internal/domain/catalog"
	"loomflow/internal/domain/planning"
	"loomflow/internal/shared/errors"
	"loomflow/internal/shared/logger"
)

type SelectOrderCommand struct {
	OrderID string
}

type SelectOrderResult struct {
	OrderID      string
	OrderName    string
	TemplateID   string
	TemplateName string
	Configs      []planning.MilestoneConfig
}

// SelectOrderUseCase seeds the draft session from a catalog order and its
// workflow template, replacing any prior draft.
type SelectOrderUseCase struct {
	catalogRepo catalog.Repository
	sessionRepo planning.SessionRepository
	logger      logger.Interface
}

func NewSelectOrderUseCase(
	catalogRepo catalog.Repository,
	sessionRepo planning.SessionRepository,
	logger logger.Interface,
) *SelectOrderUseCase {
	return &SelectOrderUseCase{
		catalogRepo: catalogRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *SelectOrderUseCase) Execute(ctx context.Context, cmd SelectOrderCommand) (*SelectOrderResult, error) {
	uc.logger.Infow("executing select order use case", "order_id", cmd.OrderID)

	if cmd.OrderID == "" {
		return nil, errors.NewValidationError("order ID is required")
	}

	order, err := uc.catalogRepo.GetOrder(ctx, cmd.OrderID)
	if err != nil {
		uc.logger.Errorw("failed to get order", "order_id", cmd.OrderID, "error", err)
		return nil, err
	}

	template, err := uc.catalogRepo.GetTemplate(ctx, order.TemplateID)
	if err != nil {
		uc.logger.Errorw("failed to get template", "template_id", order.TemplateID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("template %s not found", order.TemplateID))
	}

	session, err := uc.sessionRepo.Current(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load planning session", "error", err)
		return nil, errors.NewInternalError("failed to load planning session")
	}

	if err := session.SelectOrder(order, template); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		uc.logger.Errorw("failed to save planning session", "error", err)
		return nil, errors.NewInternalError("failed to save planning session")
	}

	uc.logger.Infow("order selected",
		"order_id", order.ID, "template_id", template.ID, "milestones", template.MilestoneCount())

	return &SelectOrderResult{
		OrderID:      order.ID,
		OrderName:    order.Name,
		TemplateID:   template.ID,
		TemplateName: template.Name,
		Configs:      session.Configs(),
	}, nil
}
