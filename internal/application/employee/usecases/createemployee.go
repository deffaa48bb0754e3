package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/employee"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/utils"
)

type CreateEmployeeCommand struct {
	Name        string
	Email       string
	Phone       string
	Password    string
	Role        string
	SalaryCents int64
}

type CreateEmployeeResult struct {
	EmployeeID uint
	Name       string
	Email      string
	Role       string
	CreatedAt  time.Time
}

type CreateEmployeeUseCase struct {
	employeeRepo employee.Repository
	hasher       PasswordHasher
	logger       logger.Interface
}

func NewCreateEmployeeUseCase(
	employeeRepo employee.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateEmployeeUseCase {
	return &CreateEmployeeUseCase{
		employeeRepo: employeeRepo,
		hasher:       hasher,
		logger:       logger,
	}
}

func (uc *CreateEmployeeUseCase) Execute(ctx context.Context, cmd CreateEmployeeCommand) (*CreateEmployeeResult, error) {
	uc.logger.Infow("executing create employee use case", "email", cmd.Email, "role", cmd.Role)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create employee command", "error", err)
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	existing, err := uc.employeeRepo.GetByEmail(ctx, email)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to check existing employee", "error", err)
		return nil, errors.NewInternalError("failed to create employee")
	}
	if existing != nil {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create employee")
	}

	role := authorization.EmployeeRole(cmd.Role)
	newEmployee, err := employee.NewEmployee(cmd.Name, email, cmd.Phone, hash, role, cmd.SalaryCents)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.employeeRepo.Save(ctx, newEmployee); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to save employee", "error", err)
		return nil, errors.NewInternalError("failed to create employee")
	}

	uc.logger.Infow("employee created successfully", "employee_id", newEmployee.ID())

	return &CreateEmployeeResult{
		EmployeeID: newEmployee.ID(),
		Name:       newEmployee.Name(),
		Email:      newEmployee.Email(),
		Role:       newEmployee.Role().String(),
		CreatedAt:  newEmployee.CreatedAt(),
	}, nil
}

func (uc *CreateEmployeeUseCase) validateCommand(cmd CreateEmployeeCommand) error {
	if len(strings.TrimSpace(cmd.Name)) == 0 {
		return errors.NewValidationError("name is required")
	}
	if len(strings.TrimSpace(cmd.Email)) == 0 {
		return errors.NewValidationError("email is required")
	}
	if !authorization.EmployeeRole(cmd.Role).IsValid() {
		return errors.NewValidationError("invalid role")
	}
	if cmd.SalaryCents < 0 {
		return errors.NewValidationError("salary cannot be negative")
	}
	if err := utils.ValidatePasswordStrength(cmd.Password); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}
