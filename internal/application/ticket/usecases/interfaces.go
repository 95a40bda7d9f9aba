package usecases

import (
	"context"

	"fieldserve/internal/application/ticket/dto"
)

// TransactionManager runs a function inside a single database transaction.
// The db package's manager satisfies it; tests substitute a passthrough.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type CreateHelpdeskTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateHelpdeskTicketCommand) (*CreateTicketResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type ResolveTicketExecutor interface {
	Execute(ctx context.Context, cmd ResolveTicketCommand) (*ResolveTicketResult, error)
}

type CloseTicketExecutor interface {
	Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type AttachPhotoExecutor interface {
	Execute(ctx context.Context, cmd AttachPhotoCommand) (*AttachPhotoResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}
