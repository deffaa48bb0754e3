package mappers

import (
	"github.com/VELIFZ/mechanicshop-api/internal/domain/employee"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/persistence/models"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
)

// EmployeeMapper handles the conversion between Employee domain entities and
// persistence models.
type EmployeeMapper struct{}

func NewEmployeeMapper() *EmployeeMapper {
	return &EmployeeMapper{}
}

func (m *EmployeeMapper) ToModel(e *employee.Employee) *models.EmployeeModel {
	return &models.EmployeeModel{
		ID:           e.ID(),
		Name:         e.Name(),
		Email:        e.Email(),
		Phone:        e.Phone(),
		PasswordHash: e.PasswordHash(),
		Role:         e.Role().String(),
		SalaryCents:  e.SalaryCents(),
		CreatedAt:    e.CreatedAt(),
		UpdatedAt:    e.UpdatedAt(),
	}
}

func (m *EmployeeMapper) ToDomain(model *models.EmployeeModel) (*employee.Employee, error) {
	return employee.ReconstructEmployee(
		model.ID,
		model.Name,
		model.Email,
		model.Phone,
		model.PasswordHash,
		authorization.EmployeeRole(model.Role),
		model.SalaryCents,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
