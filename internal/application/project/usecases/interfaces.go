package usecases

import "context"

type ListProjectsExecutor interface {
	Execute(ctx context.Context, query ListProjectsQuery) (*ListProjectsResult, error)
}

type GetProjectExecutor interface {
	Execute(ctx context.Context, query GetProjectQuery) (*GetProjectResult, error)
}

type TicketsByStatusExecutor interface {
	Execute(ctx context.Context, query TicketsByStatusQuery) (*TicketsByStatusResult, error)
}

type TicketsByAssigneeExecutor interface {
	Execute(ctx context.Context, query TicketsByAssigneeQuery) (*TicketsByAssigneeResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type RenderTicketDescriptionExecutor interface {
	Execute(ctx context.Context, query RenderTicketDescriptionQuery) (*RenderTicketDescriptionResult, error)
}
