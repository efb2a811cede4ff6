package usecases

import (
	"context"
	"time"

	"loomflow/internal/domain/planning"
	"loomflow/internal/shared/errors"
	"loomflow/internal/shared/id"
	"loomflow/internal/shared/logger"
)

type AddCustomTaskCommand struct {
	Name              string
	Description       string
	Kind              planning.TaskKind
	Assignee          string
	Deadline          *time.Time
	LinkedMilestoneID string
	OffsetDays        int
	OffsetDirection   planning.OffsetDirection
}

type AddCustomTaskResult struct {
	Task planning.CustomTask
}

// AddCustomTaskUseCase appends a user-authored task to the draft session's
// registry. Task IDs are minted here, not supplied by the caller.
type AddCustomTaskUseCase struct {
	sessionRepo planning.SessionRepository
	logger      logger.Interface
	newTaskID   func() (string, error)
}

func NewAddCustomTaskUseCase(
	sessionRepo planning.SessionRepository,
	logger logger.Interface,
) *AddCustomTaskUseCase {
	return &AddCustomTaskUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
		newTaskID: func() (string, error) {
			return id.GenerateWithPrefix(id.PrefixTask, id.DefaultLength)
		},
	}
}

func (uc *AddCustomTaskUseCase) Execute(ctx context.Context, cmd AddCustomTaskCommand) (*AddCustomTaskResult, error) {
	uc.logger.Infow("executing add custom task use case", "name", cmd.Name, "kind", cmd.Kind)

	session, err := uc.sessionRepo.Current(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load planning session", "error", err)
		return nil, errors.NewInternalError("failed to load planning session")
	}

	if session.Order() == nil {
		return nil, errors.NewValidationError("no order selected")
	}

	taskID, err := uc.newTaskID()
	if err != nil {
		uc.logger.Errorw("failed to mint task ID", "error", err)
		return nil, errors.NewInternalError("failed to mint task ID")
	}

	task := planning.CustomTask{
		ID:                taskID,
		Name:              cmd.Name,
		Description:       cmd.Description,
		Kind:              cmd.Kind,
		Assignee:          cmd.Assignee,
		Deadline:          cmd.Deadline,
		LinkedMilestoneID: cmd.LinkedMilestoneID,
		OffsetDays:        cmd.OffsetDays,
		OffsetDirection:   cmd.OffsetDirection,
	}

	if err := session.AddTask(task); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		uc.logger.Errorw("failed to save planning session", "error", err)
		return nil, errors.NewInternalError("failed to save planning session")
	}

	uc.logger.Infow("custom task added", "task_id", task.ID, "kind", task.Kind)

	return &AddCustomTaskResult{Task: task}, nil
}
