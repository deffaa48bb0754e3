package usecases

import (
	"context"

	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer mints access tokens for authenticated principals.
type TokenIssuer interface {
	Issue(principal authorization.Principal) (token string, expiresIn int64, err error)
}

type RegisterCustomerExecutor interface {
	Execute(ctx context.Context, cmd RegisterCustomerCommand) (*RegisterCustomerResult, error)
}

type LoginCustomerExecutor interface {
	Execute(ctx context.Context, cmd LoginCustomerCommand) (*LoginCustomerResult, error)
}

type GetCustomerExecutor interface {
	Execute(ctx context.Context, query GetCustomerQuery) (*GetCustomerResult, error)
}

type UpdateCustomerExecutor interface {
	Execute(ctx context.Context, cmd UpdateCustomerCommand) (*UpdateCustomerResult, error)
}

type DeleteCustomerExecutor interface {
	Execute(ctx context.Context, cmd DeleteCustomerCommand) error
}

type ListCustomersExecutor interface {
	Execute(ctx context.Context, query ListCustomersQuery) (*ListCustomersResult, error)
}
