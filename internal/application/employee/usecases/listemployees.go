package usecases

import (
	"context"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/employee"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/query"
)

type ListEmployeesQuery struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
	Search    string
	Role      string
}

type ListEmployeesResult struct {
	Employees []*employee.Employee
	Total     int64
	Page      int
	PageSize  int
}

type ListEmployeesUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewListEmployeesUseCase(employeeRepo employee.Repository, logger logger.Interface) *ListEmployeesUseCase {
	return &ListEmployeesUseCase{employeeRepo: employeeRepo, logger: logger}
}

func (uc *ListEmployeesUseCase) Execute(ctx context.Context, q ListEmployeesQuery) (*ListEmployeesResult, error) {
	filter := employee.Filter{
		BaseFilter: query.NewBaseFilter(
			query.WithPage(q.Page, q.PageSize),
			query.WithSort(q.SortBy, q.SortOrder),
		),
		Search: q.Search,
	}

	if q.Role != "" {
		role := authorization.EmployeeRole(q.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError("invalid role filter")
		}
		filter.Role = &role
	}

	employees, total, err := uc.employeeRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list employees", "error", err)
		return nil, errors.NewInternalError("failed to list employees")
	}

	return &ListEmployeesResult{
		Employees: employees,
		Total:     total,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
	}, nil
}
