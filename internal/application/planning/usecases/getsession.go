package usecases

import (
	"context"

	"loomflow/internal/domain/catalog"
	"loomflow/internal/domain/planning"
	"loomflow/internal/domain/project"
	"loomflow/internal/shared/errors"
	"loomflow/internal/shared/logger"
)

type GetSessionQuery struct{}

type GetSessionResult struct {
	Order    *catalog.Order
	Template *catalog.WorkflowTemplate
	Configs  []planning.MilestoneConfig
	Tasks    []planning.CustomTask
	Preview  []project.Ticket
}

// GetSessionUseCase returns a read-only snapshot of the current draft.
type GetSessionUseCase struct {
	sessionRepo planning.SessionRepository
	logger      logger.Interface
}

func NewGetSessionUseCase(
	sessionRepo planning.SessionRepository,
	logger logger.Interface,
) *GetSessionUseCase {
	return &GetSessionUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *GetSessionUseCase) Execute(ctx context.Context, _ GetSessionQuery) (*GetSessionResult, error) {
	session, err := uc.sessionRepo.Current(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load planning session", "error", err)
		return nil, errors.NewInternalError("failed to load planning session")
	}

	return &GetSessionResult{
		Order:    session.Order(),
		Template: session.Template(),
		Configs:  session.Configs(),
		Tasks:    session.Tasks(),
		Preview:  session.Preview(),
	}, nil
}
