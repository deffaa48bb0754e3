package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/catalog"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/persistence/mappers"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/persistence/models"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/db"
	apperrors "github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

var allowedServiceOrderByFields = map[string]bool{
	"id":               true,
	"name":             true,
	"base_price_cents": true,
	"created_at":       true,
	"updated_at":       true,
}

type ServiceRepository struct {
	db     *gorm.DB
	mapper *mappers.ServiceMapper
	logger logger.Interface
}

func NewServiceRepository(database *gorm.DB, log logger.Interface) catalog.Repository {
	return &ServiceRepository{
		db:     database,
		mapper: mappers.NewServiceMapper(),
		logger: log,
	}
}

func (r *ServiceRepository) Save(ctx context.Context, s *catalog.Service) error {
	model := r.mapper.ToModel(s)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create service", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create service: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set service ID: %w", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *catalog.Service) error {
	model := r.mapper.ToModel(s)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.ServiceModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "base_price_cents", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update service", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("service %d not found", model.ID))
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ServiceModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete service", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("service %d not found", id))
	}
	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id uint) (*catalog.Service, error) {
	var model models.ServiceModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("service %d not found", id))
		}
		r.logger.Errorw("failed to get service", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ServiceRepository) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Service, error) {
	if len(ids) == 0 {
		return []*catalog.Service{}, nil
	}

	var serviceModels []*models.ServiceModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&serviceModels).Error; err != nil {
		r.logger.Errorw("failed to get services by IDs", "ids", ids, "error", err)
		return nil, fmt.Errorf("failed to get services by IDs: %w", err)
	}

	services := make([]*catalog.Service, 0, len(serviceModels))
	for _, model := range serviceModels {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map service model, skipping", "id", model.ID, "error", err)
			continue
		}
		services = append(services, entity)
	}

	return services, nil
}

func (r *ServiceRepository) List(ctx context.Context, filter catalog.Filter) ([]*catalog.Service, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.ServiceModel{})

	if filter.Search != "" {
		q = q.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count services: %w", err)
	}

	var serviceModels []*models.ServiceModel
	q = applyOrder(q, filter.SortFilter, allowedServiceOrderByFields)
	if err := applyPage(q, filter.PageFilter).Find(&serviceModels).Error; err != nil {
		r.logger.Errorw("failed to list services", "error", err)
		return nil, 0, fmt.Errorf("failed to list services: %w", err)
	}

	services := make([]*catalog.Service, 0, len(serviceModels))
	for _, model := range serviceModels {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map service model, skipping", "id", model.ID, "error", err)
			continue
		}
		services = append(services, entity)
	}

	return services, total, nil
}
