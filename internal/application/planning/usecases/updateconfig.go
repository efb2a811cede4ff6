package usecases

import (
	"context"
	"fmt"

	"loomflow/internal/domain/planning"
	"loomflow/internal/shared/errors"
	"loomflow/internal/shared/logger"
)

type UpdateMilestoneConfigCommand struct {
	MilestoneID   string
	IsOrderLevel  *bool
	GroupingField *string
	DeadlineDays  *int
}

type UpdateMilestoneConfigResult struct {
	Config planning.MilestoneConfig
}

// UpdateMilestoneConfigUseCase patches one milestone config on the draft
// session. Grouping fields must be declared on the selected order.
type UpdateMilestoneConfigUseCase struct {
	sessionRepo planning.SessionRepository
	logger      logger.Interface
}

func NewUpdateMilestoneConfigUseCase(
	sessionRepo planning.SessionRepository,
	logger logger.Interface,
) *UpdateMilestoneConfigUseCase {
	return &UpdateMilestoneConfigUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *UpdateMilestoneConfigUseCase) Execute(ctx context.Context, cmd UpdateMilestoneConfigCommand) (*UpdateMilestoneConfigResult, error) {
	uc.logger.Infow("executing update milestone config use case", "milestone_id", cmd.MilestoneID)

	if cmd.MilestoneID == "" {
		return nil, errors.NewValidationError("milestone ID is required")
	}
	if cmd.DeadlineDays != nil && *cmd.DeadlineDays < 0 {
		return nil, errors.NewValidationError("deadline days cannot be negative")
	}

	session, err := uc.sessionRepo.Current(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load planning session", "error", err)
		return nil, errors.NewInternalError("failed to load planning session")
	}

	order := session.Order()
	if order == nil {
		return nil, errors.NewValidationError("no order selected")
	}

	if cmd.GroupingField != nil && *cmd.GroupingField != "" && !order.HasGroupingField(*cmd.GroupingField) {
		return nil, errors.NewValidationError(
			fmt.Sprintf("grouping field %s is not declared on order %s", *cmd.GroupingField, order.ID))
	}

	patch := planning.ConfigPatch{
		IsOrderLevel:  cmd.IsOrderLevel,
		GroupingField: cmd.GroupingField,
		DeadlineDays:  cmd.DeadlineDays,
	}
	if !session.UpdateConfig(cmd.MilestoneID, patch) {
		return nil, errors.NewNotFoundError(fmt.Sprintf("milestone %s not found", cmd.MilestoneID))
	}

	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		uc.logger.Errorw("failed to save planning session", "error", err)
		return nil, errors.NewInternalError("failed to save planning session")
	}

	config, _ := planning.FindConfig(session.Configs(), cmd.MilestoneID)

	uc.logger.Infow("milestone config updated", "milestone_id", cmd.MilestoneID)

	return &UpdateMilestoneConfigResult{Config: config}, nil
}
