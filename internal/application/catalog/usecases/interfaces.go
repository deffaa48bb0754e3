package usecases

import "context"

type CreateServiceExecutor interface {
	Execute(ctx context.Context, cmd CreateServiceCommand) (*CreateServiceResult, error)
}

type GetServiceExecutor interface {
	Execute(ctx context.Context, query GetServiceQuery) (*GetServiceResult, error)
}

type UpdateServiceExecutor interface {
	Execute(ctx context.Context, cmd UpdateServiceCommand) (*UpdateServiceResult, error)
}

type DeleteServiceExecutor interface {
	Execute(ctx context.Context, cmd DeleteServiceCommand) error
}

type ListServicesExecutor interface {
	Execute(ctx context.Context, query ListServicesQuery) (*ListServicesResult, error)
}
