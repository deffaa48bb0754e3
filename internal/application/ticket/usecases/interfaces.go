package usecases

import "context"

// TransactionManager runs fn inside a database transaction. Repository
// calls made with the ctx passed to fn join that transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type AttachMechanicExecutor interface {
	Execute(ctx context.Context, cmd AttachMechanicCommand) error
}

type DetachMechanicExecutor interface {
	Execute(ctx context.Context, cmd DetachMechanicCommand) error
}

type AttachServiceExecutor interface {
	Execute(ctx context.Context, cmd AttachServiceCommand) error
}

type DetachServiceExecutor interface {
	Execute(ctx context.Context, cmd DetachServiceCommand) error
}

type AttachPartExecutor interface {
	Execute(ctx context.Context, cmd AttachPartCommand) error
}

type DetachPartExecutor interface {
	Execute(ctx context.Context, cmd DetachPartCommand) error
}
