package usecases

import "context"

type CreateItemExecutor interface {
	Execute(ctx context.Context, cmd CreateItemCommand) (*CreateItemResult, error)
}

type GetItemExecutor interface {
	Execute(ctx context.Context, query GetItemQuery) (*GetItemResult, error)
}

type UpdateItemExecutor interface {
	Execute(ctx context.Context, cmd UpdateItemCommand) (*UpdateItemResult, error)
}

type DeleteItemExecutor interface {
	Execute(ctx context.Context, cmd DeleteItemCommand) error
}

type ListItemsExecutor interface {
	Execute(ctx context.Context, query ListItemsQuery) (*ListItemsResult, error)
}

type CreatePartExecutor interface {
	Execute(ctx context.Context, cmd CreatePartCommand) (*CreatePartResult, error)
}

type GetPartExecutor interface {
	Execute(ctx context.Context, query GetPartQuery) (*GetPartResult, error)
}

type ListPartsExecutor interface {
	Execute(ctx context.Context, query ListPartsQuery) (*ListPartsResult, error)
}
