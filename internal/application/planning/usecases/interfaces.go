package usecases

import "context"

type SelectOrderExecutor interface {
	Execute(ctx context.Context, cmd SelectOrderCommand) (*SelectOrderResult, error)
}

type UpdateMilestoneConfigExecutor interface {
	Execute(ctx context.Context, cmd UpdateMilestoneConfigCommand) (*UpdateMilestoneConfigResult, error)
}

type AddCustomTaskExecutor interface {
	Execute(ctx context.Context, cmd AddCustomTaskCommand) (*AddCustomTaskResult, error)
}

type GeneratePreviewExecutor interface {
	Execute(ctx context.Context, cmd GeneratePreviewCommand) (*GeneratePreviewResult, error)
}

type CommitProjectExecutor interface {
	Execute(ctx context.Context, cmd CommitProjectCommand) (*CommitProjectResult, error)
}

type GetSessionExecutor interface {
	Execute(ctx context.Context, query GetSessionQuery) (*GetSessionResult, error)
}
