package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/persistence/mappers"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/persistence/models"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/db"
	apperrors "github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

var allowedItemOrderByFields = map[string]bool{
	"id":                true,
	"name":              true,
	"inventory_number":  true,
	"unit_price_cents":  true,
	"quantity_in_stock": true,
	"created_at":        true,
	"updated_at":        true,
}

type InventoryItemRepository struct {
	db     *gorm.DB
	mapper *mappers.InventoryMapper
	logger logger.Interface
}

func NewInventoryItemRepository(database *gorm.DB, log logger.Interface) inventory.ItemRepository {
	return &InventoryItemRepository{
		db:     database,
		mapper: mappers.NewInventoryMapper(),
		logger: log,
	}
}

func (r *InventoryItemRepository) Save(ctx context.Context, i *inventory.Item) error {
	model := r.mapper.ItemToModel(i)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create inventory item", "inventory_number", model.InventoryNumber, "error", err)
		return fmt.Errorf("failed to create inventory item: %w", err)
	}

	if err := i.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set item ID: %w", err)
	}
	return nil
}

func (r *InventoryItemRepository) Update(ctx context.Context, i *inventory.Item) error {
	model := r.mapper.ItemToModel(i)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.InventoryItemModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "unit_price_cents", "quantity_in_stock", "is_deleted", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update inventory item", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update inventory item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("inventory item %d not found", model.ID))
	}
	return nil
}

func (r *InventoryItemRepository) GetByID(ctx context.Context, id uint, includeDeleted bool) (*inventory.Item, error) {
	var model models.InventoryItemModel

	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.InventoryItemModel{})
	if !includeDeleted {
		q = q.Scopes(db.NotDeleted())
	}
	if err := q.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("inventory item %d not found", id))
		}
		r.logger.Errorw("failed to get inventory item", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}

	return r.mapper.ItemToDomain(&model)
}

func (r *InventoryItemRepository) List(ctx context.Context, filter inventory.ItemFilter) ([]*inventory.Item, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.InventoryItemModel{})

	if !filter.IncludeDeleted {
		q = q.Scopes(db.NotDeleted())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR inventory_number LIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inventory items: %w", err)
	}

	var itemModels []*models.InventoryItemModel
	q = applyOrder(q, filter.SortFilter, allowedItemOrderByFields)
	if err := applyPage(q, filter.PageFilter).Find(&itemModels).Error; err != nil {
		r.logger.Errorw("failed to list inventory items", "error", err)
		return nil, 0, fmt.Errorf("failed to list inventory items: %w", err)
	}

	items := make([]*inventory.Item, 0, len(itemModels))
	for _, model := range itemModels {
		entity, err := r.mapper.ItemToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map inventory item model, skipping", "id", model.ID, "error", err)
			continue
		}
		items = append(items, entity)
	}

	return items, total, nil
}
