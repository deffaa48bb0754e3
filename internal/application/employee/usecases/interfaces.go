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

type CreateEmployeeExecutor interface {
	Execute(ctx context.Context, cmd CreateEmployeeCommand) (*CreateEmployeeResult, error)
}

type LoginEmployeeExecutor interface {
	Execute(ctx context.Context, cmd LoginEmployeeCommand) (*LoginEmployeeResult, error)
}

type GetEmployeeExecutor interface {
	Execute(ctx context.Context, query GetEmployeeQuery) (*GetEmployeeResult, error)
}

type UpdateEmployeeExecutor interface {
	Execute(ctx context.Context, cmd UpdateEmployeeCommand) (*UpdateEmployeeResult, error)
}

type DeleteEmployeeExecutor interface {
	Execute(ctx context.Context, cmd DeleteEmployeeCommand) error
}

type ListEmployeesExecutor interface {
	Execute(ctx context.Context, query ListEmployeesQuery) (*ListEmployeesResult, error)
}
