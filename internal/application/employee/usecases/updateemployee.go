package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/employee"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/utils"
)

type UpdateEmployeeCommand struct {
	EmployeeID uint

	// nil fields are left unchanged
	Name        *string
	Email       *string
	Phone       *string
	Password    *string
	Role        *string
	SalaryCents *int64
}

type UpdateEmployeeResult struct {
	Employee *employee.Employee
}

type UpdateEmployeeUseCase struct {
	employeeRepo employee.Repository
	hasher       PasswordHasher
	logger       logger.Interface
}

func NewUpdateEmployeeUseCase(
	employeeRepo employee.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *UpdateEmployeeUseCase {
	return &UpdateEmployeeUseCase{
		employeeRepo: employeeRepo,
		hasher:       hasher,
		logger:       logger,
	}
}

func (uc *UpdateEmployeeUseCase) Execute(ctx context.Context, cmd UpdateEmployeeCommand) (*UpdateEmployeeResult, error) {
	if cmd.EmployeeID == 0 {
		return nil, errors.NewValidationError("employee ID is required")
	}

	e, err := uc.employeeRepo.GetByID(ctx, cmd.EmployeeID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("employee %d not found", cmd.EmployeeID))
		}
		uc.logger.Errorw("failed to get employee", "employee_id", cmd.EmployeeID, "error", err)
		return nil, errors.NewInternalError("failed to update employee")
	}

	name := e.Name()
	email := e.Email()
	phone := e.Phone()
	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*cmd.Email))
	}
	if cmd.Phone != nil {
		phone = *cmd.Phone
	}
	e.UpdateProfile(name, email, phone)

	if cmd.Role != nil {
		role := authorization.EmployeeRole(*cmd.Role)
		if err := e.ChangeRole(role); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.SalaryCents != nil {
		if err := e.ChangeSalary(*cmd.SalaryCents); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Password != nil {
		if err := utils.ValidatePasswordStrength(*cmd.Password); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to update employee")
		}
		if err := e.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.employeeRepo.Update(ctx, e); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to update employee", "employee_id", cmd.EmployeeID, "error", err)
		return nil, errors.NewInternalError("failed to update employee")
	}

	uc.logger.Infow("employee updated successfully", "employee_id", e.ID())

	return &UpdateEmployeeResult{Employee: e}, nil
}
