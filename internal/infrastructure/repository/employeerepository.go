package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/employee"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/persistence/mappers"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/persistence/models"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/db"
	apperrors "github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

var allowedEmployeeOrderByFields = map[string]bool{
	"id":           true,
	"name":         true,
	"email":        true,
	"role":         true,
	"salary_cents": true,
	"created_at":   true,
	"updated_at":   true,
}

type EmployeeRepository struct {
	db     *gorm.DB
	mapper *mappers.EmployeeMapper
	logger logger.Interface
}

func NewEmployeeRepository(database *gorm.DB, log logger.Interface) employee.Repository {
	return &EmployeeRepository{
		db:     database,
		mapper: mappers.NewEmployeeMapper(),
		logger: log,
	}
}

func (r *EmployeeRepository) Save(ctx context.Context, e *employee.Employee) error {
	model := r.mapper.ToModel(e)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create employee", "email", model.Email, "error", err)
		return fmt.Errorf("failed to create employee: %w", err)
	}

	if err := e.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set employee ID: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	model := r.mapper.ToModel(e)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.EmployeeModel{}).
		Where("id = ?", model.ID).
		Select("name", "email", "phone", "password_hash", "role", "salary_cents", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update employee", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("employee %d not found", model.ID))
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.EmployeeModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete employee", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("employee %d not found", id))
	}
	return nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id uint) (*employee.Employee, error) {
	var model models.EmployeeModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("employee %d not found", id))
		}
		r.logger.Errorw("failed to get employee", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	var model models.EmployeeModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("employee not found")
		}
		r.logger.Errorw("failed to get employee by email", "error", err)
		return nil, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EmployeeRepository) GetByIDs(ctx context.Context, ids []uint) ([]*employee.Employee, error) {
	if len(ids) == 0 {
		return []*employee.Employee{}, nil
	}

	var employeeModels []*models.EmployeeModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&employeeModels).Error; err != nil {
		r.logger.Errorw("failed to get employees by IDs", "ids", ids, "error", err)
		return nil, fmt.Errorf("failed to get employees by IDs: %w", err)
	}

	employees := make([]*employee.Employee, 0, len(employeeModels))
	for _, model := range employeeModels {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map employee model, skipping", "id", model.ID, "error", err)
			continue
		}
		employees = append(employees, entity)
	}

	return employees, nil
}

func (r *EmployeeRepository) List(ctx context.Context, filter employee.Filter) ([]*employee.Employee, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.EmployeeModel{})

	if filter.Role != nil {
		q = q.Where("role = ?", filter.Role.String())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	var employeeModels []*models.EmployeeModel
	q = applyOrder(q, filter.SortFilter, allowedEmployeeOrderByFields)
	if err := applyPage(q, filter.PageFilter).Find(&employeeModels).Error; err != nil {
		r.logger.Errorw("failed to list employees", "error", err)
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]*employee.Employee, 0, len(employeeModels))
	for _, model := range employeeModels {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map employee model, skipping", "id", model.ID, "error", err)
			continue
		}
		employees = append(employees, entity)
	}

	return employees, total, nil
}
