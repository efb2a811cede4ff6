package usecases

import (
	"context"
	"time"

	"loomflow/internal/domain/planning"
	"loomflow/internal/domain/project"
	"loomflow/internal/shared/errors"
	"loomflow/internal/shared/logger"
)

type GeneratePreviewCommand struct{}

type GeneratePreviewResult struct {
	Tickets []project.Ticket
}

// GeneratePreviewUseCase runs the ticket generation engine over the current
// draft and stores the batch as the session preview. With no order selected
// the result is empty, not an error.
type GeneratePreviewUseCase struct {
	sessionRepo planning.SessionRepository
	logger      logger.Interface
	nowFn       func() time.Time
}

func NewGeneratePreviewUseCase(
	sessionRepo planning.SessionRepository,
	logger logger.Interface,
) *GeneratePreviewUseCase {
	return &GeneratePreviewUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
		nowFn:       time.Now,
	}
}

func (uc *GeneratePreviewUseCase) Execute(ctx context.Context, _ GeneratePreviewCommand) (*GeneratePreviewResult, error) {
	uc.logger.Infow("executing generate preview use case")

	session, err := uc.sessionRepo.Current(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load planning session", "error", err)
		return nil, errors.NewInternalError("failed to load planning session")
	}

	tickets := session.Generate(uc.nowFn())

	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		uc.logger.Errorw("failed to save planning session", "error", err)
		return nil, errors.NewInternalError("failed to save planning session")
	}

	uc.logger.Infow("preview generated", "ticket_count", len(tickets))

	return &GeneratePreviewResult{Tickets: tickets}, nil
}
