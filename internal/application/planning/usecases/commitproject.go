package usecases

import (
	"context"
	"time"

	"loomflow/internal/domain/planning"
	"loomflow/internal/domain/project"
	"loomflow/internal/shared/errors"
	"loomflow/internal/shared/id"
	"loomflow/internal/shared/logger"
)

type CommitProjectCommand struct {
	Name string
}

type CommitProjectResult struct {
	ProjectID   string
	Name        string
	OrderID     string
	TicketCount int
}

// CommitProjectUseCase snapshots the draft into a new stored project and
// resets the session. Tickets are generated fresh at commit time so the
// project always reflects the final configuration, not a stale preview.
type CommitProjectUseCase struct {
	sessionRepo  planning.SessionRepository
	projectRepo  project.Repository
	logger       logger.Interface
	nowFn        func() time.Time
	newProjectID func() (string, error)
}

func NewCommitProjectUseCase(
	sessionRepo planning.SessionRepository,
	projectRepo project.Repository,
	logger logger.Interface,
) *CommitProjectUseCase {
	return &CommitProjectUseCase{
		sessionRepo: sessionRepo,
		projectRepo: projectRepo,
		logger:      logger,
		nowFn:       time.Now,
		newProjectID: func() (string, error) {
			return id.GenerateWithPrefix(id.PrefixProject, id.DefaultLength)
		},
	}
}

func (uc *CommitProjectUseCase) Execute(ctx context.Context, cmd CommitProjectCommand) (*CommitProjectResult, error) {
	uc.logger.Infow("executing commit project use case", "name", cmd.Name)

	if cmd.Name == "" {
		return nil, errors.NewValidationError("project name is required")
	}

	session, err := uc.sessionRepo.Current(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load planning session", "error", err)
		return nil, errors.NewInternalError("failed to load planning session")
	}

	order := session.Order()
	template := session.Template()
	if order == nil || template == nil {
		return nil, errors.NewValidationError("no order selected")
	}

	now := uc.nowFn()
	tickets := session.Generate(now)

	projectID, err := uc.newProjectID()
	if err != nil {
		uc.logger.Errorw("failed to mint project ID", "error", err)
		return nil, errors.NewInternalError("failed to mint project ID")
	}

	p, err := project.NewProject(projectID, cmd.Name, order.ID, template.ID, tickets, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Save(ctx, p); err != nil {
		uc.logger.Errorw("failed to save project", "project_id", projectID, "error", err)
		return nil, err
	}

	// Commit consumes the draft: the next project starts from a clean session.
	session.Reset()
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		uc.logger.Errorw("failed to reset planning session", "error", err)
		return nil, errors.NewInternalError("failed to reset planning session")
	}

	uc.logger.Infow("project committed",
		"project_id", p.ID(), "order_id", p.OrderID(), "ticket_count", p.TicketCount())

	return &CommitProjectResult{
		ProjectID:   p.ID(),
		Name:        p.Name(),
		OrderID:     p.OrderID(),
		TicketCount: p.TicketCount(),
	}, nil
}
