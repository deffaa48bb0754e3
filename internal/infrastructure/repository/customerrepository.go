package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/customer"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/persistence/mappers"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/persistence/models"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/db"
	apperrors "github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

var allowedCustomerOrderByFields = map[string]bool{
	"id":         true,
	"name":       true,
	"email":      true,
	"created_at": true,
	"updated_at": true,
}

type CustomerRepository struct {
	db     *gorm.DB
	mapper *mappers.CustomerMapper
	logger logger.Interface
}

func NewCustomerRepository(database *gorm.DB, log logger.Interface) customer.Repository {
	return &CustomerRepository{
		db:     database,
		mapper: mappers.NewCustomerMapper(),
		logger: log,
	}
}

func (r *CustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create customer", "email", model.Email, "error", err)
		return fmt.Errorf("failed to create customer: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set customer ID: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.CustomerModel{}).
		Where("id = ?", model.ID).
		Select("name", "email", "phone", "password_hash", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update customer", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("customer %d not found", model.ID))
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.CustomerModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete customer", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("customer %d not found", id))
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("customer %d not found", id))
		}
		r.logger.Errorw("failed to get customer", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	var model models.CustomerModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("customer not found")
		}
		r.logger.Errorw("failed to get customer by email", "error", err)
		return nil, fmt.Errorf("failed to get customer by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CustomerRepository) List(ctx context.Context, filter customer.Filter) ([]*customer.Customer, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.CustomerModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	var customerModels []*models.CustomerModel
	q = applyOrder(q, filter.SortFilter, allowedCustomerOrderByFields)
	if err := applyPage(q, filter.PageFilter).Find(&customerModels).Error; err != nil {
		r.logger.Errorw("failed to list customers", "error", err)
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]*customer.Customer, 0, len(customerModels))
	for _, model := range customerModels {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map customer model, skipping", "id", model.ID, "error", err)
			continue
		}
		customers = append(customers, entity)
	}

	return customers, total, nil
}
