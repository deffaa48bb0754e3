package usecases

import (
	"context"
	"strings"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/employee"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type LoginEmployeeCommand struct {
	Email    string
	Password string
}

type LoginEmployeeResult struct {
	Employee    *employee.Employee
	AccessToken string
	ExpiresIn   int64
}

type LoginEmployeeUseCase struct {
	employeeRepo employee.Repository
	hasher       PasswordHasher
	tokens       TokenIssuer
	logger       logger.Interface
}

func NewLoginEmployeeUseCase(
	employeeRepo employee.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginEmployeeUseCase {
	return &LoginEmployeeUseCase{
		employeeRepo: employeeRepo,
		hasher:       hasher,
		tokens:       tokens,
		logger:       logger,
	}
}

func (uc *LoginEmployeeUseCase) Execute(ctx context.Context, cmd LoginEmployeeCommand) (*LoginEmployeeResult, error) {
	if len(cmd.Email) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	existing, err := uc.employeeRepo.GetByEmail(ctx, email)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to get employee by email", "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}
	if existing == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Compare(existing.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresIn, err := uc.tokens.Issue(authorization.Principal{
		ID:   existing.ID(),
		Type: authorization.PrincipalEmployee,
		Role: existing.Role(),
	})
	if err != nil {
		uc.logger.Errorw("failed to issue token", "employee_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	uc.logger.Infow("employee logged in successfully", "employee_id", existing.ID(), "role", existing.Role())

	return &LoginEmployeeResult{
		Employee:    existing,
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
