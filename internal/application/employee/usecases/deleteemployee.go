package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/employee"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type DeleteEmployeeCommand struct {
	EmployeeID uint
	Requester  authorization.Principal
}

// DeleteEmployeeUseCase removes an employee record. Deletion is restricted
// to employees holding at least the configured minimum role (admin unless
// overridden in config).
type DeleteEmployeeUseCase struct {
	employeeRepo employee.Repository
	requiredRole authorization.EmployeeRole
	logger       logger.Interface
}

func NewDeleteEmployeeUseCase(
	employeeRepo employee.Repository,
	requiredRole authorization.EmployeeRole,
	logger logger.Interface,
) *DeleteEmployeeUseCase {
	if !requiredRole.IsValid() {
		requiredRole = authorization.RoleAdmin
	}
	return &DeleteEmployeeUseCase{
		employeeRepo: employeeRepo,
		requiredRole: requiredRole,
		logger:       logger,
	}
}

func (uc *DeleteEmployeeUseCase) Execute(ctx context.Context, cmd DeleteEmployeeCommand) error {
	if cmd.EmployeeID == 0 {
		return errors.NewValidationError("employee ID is required")
	}

	allowed := cmd.Requester.Type.IsEmployee() &&
		(cmd.Requester.Role == uc.requiredRole || cmd.Requester.Role.IsAdmin())
	if !allowed {
		return errors.NewForbiddenError(fmt.Sprintf("deleting employees requires the %s role", uc.requiredRole))
	}

	if cmd.Requester.ID == cmd.EmployeeID {
		return errors.NewConflictError("employees cannot delete their own account")
	}

	if _, err := uc.employeeRepo.GetByID(ctx, cmd.EmployeeID); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("employee %d not found", cmd.EmployeeID))
		}
		uc.logger.Errorw("failed to get employee", "employee_id", cmd.EmployeeID, "error", err)
		return errors.NewInternalError("failed to delete employee")
	}

	if err := uc.employeeRepo.Delete(ctx, cmd.EmployeeID); err != nil {
		uc.logger.Errorw("failed to delete employee", "employee_id", cmd.EmployeeID, "error", err)
		return errors.NewInternalError("failed to delete employee")
	}

	uc.logger.Infow("employee deleted successfully", "employee_id", cmd.EmployeeID, "deleted_by", cmd.Requester.ID)
	return nil
}
