package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/employee"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type GetEmployeeQuery struct {
	EmployeeID uint
}

type GetEmployeeResult struct {
	Employee *employee.Employee
}

type GetEmployeeUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewGetEmployeeUseCase(employeeRepo employee.Repository, logger logger.Interface) *GetEmployeeUseCase {
	return &GetEmployeeUseCase{employeeRepo: employeeRepo, logger: logger}
}

func (uc *GetEmployeeUseCase) Execute(ctx context.Context, query GetEmployeeQuery) (*GetEmployeeResult, error) {
	if query.EmployeeID == 0 {
		return nil, errors.NewValidationError("employee ID is required")
	}

	e, err := uc.employeeRepo.GetByID(ctx, query.EmployeeID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("employee %d not found", query.EmployeeID))
		}
		uc.logger.Errorw("failed to get employee", "employee_id", query.EmployeeID, "error", err)
		return nil, errors.NewInternalError("failed to get employee")
	}

	return &GetEmployeeResult{Employee: e}, nil
}
