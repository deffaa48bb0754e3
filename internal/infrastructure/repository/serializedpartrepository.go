package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	vo "github.com/VELIFZ/mechanicshop-api/internal/domain/inventory/valueobjects"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/persistence/mappers"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/persistence/models"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/db"
	apperrors "github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

var allowedPartOrderByFields = map[string]bool{
	"id":            true,
	"serial_number": true,
	"status":        true,
	"created_at":    true,
	"updated_at":    true,
}

type SerializedPartRepository struct {
	db     *gorm.DB
	mapper *mappers.InventoryMapper
	logger logger.Interface
}

func NewSerializedPartRepository(database *gorm.DB, log logger.Interface) inventory.PartRepository {
	return &SerializedPartRepository{
		db:     database,
		mapper: mappers.NewInventoryMapper(),
		logger: log,
	}
}

func (r *SerializedPartRepository) Save(ctx context.Context, p *inventory.SerializedPart) error {
	model := r.mapper.PartToModel(p)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create serialized part", "serial_number", model.SerialNumber, "error", err)
		return fmt.Errorf("failed to create serialized part: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set part ID: %w", err)
	}
	return nil
}

func (r *SerializedPartRepository) Update(ctx context.Context, p *inventory.SerializedPart) error {
	model := r.mapper.PartToModel(p)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.SerializedPartModel{}).
		Where("id = ?", model.ID).
		Select("status", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update serialized part", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update serialized part: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("part %d not found", model.ID))
	}
	return nil
}

// TransitionStatus is a compare-and-set on the status column. The WHERE
// clause carries the expected current status, so when two transactions race
// over the same part the loser's update touches zero rows instead of
// silently overwriting the winner's reservation.
func (r *SerializedPartRepository) TransitionStatus(ctx context.Context, partID uint, from, to vo.PartStatus) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.SerializedPartModel{}).
		Where("id = ? AND status = ?", partID, from.String()).
		Updates(map[string]interface{}{
			"status":     to.String(),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to transition part status", "id", partID, "from", from, "to", to, "error", result.Error)
		return fmt.Errorf("failed to transition part status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError(
			fmt.Sprintf("part %d is no longer %s", partID, from))
	}
	return nil
}

func (r *SerializedPartRepository) GetByID(ctx context.Context, id uint) (*inventory.SerializedPart, error) {
	var model models.SerializedPartModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("part %d not found", id))
		}
		r.logger.Errorw("failed to get serialized part", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get serialized part: %w", err)
	}

	return r.mapper.PartToDomain(&model)
}

func (r *SerializedPartRepository) GetBySerialNumber(ctx context.Context, serial string) (*inventory.SerializedPart, error) {
	var model models.SerializedPartModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("serial_number = ?", serial).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("part not found")
		}
		r.logger.Errorw("failed to get serialized part by serial", "error", err)
		return nil, fmt.Errorf("failed to get serialized part by serial: %w", err)
	}

	return r.mapper.PartToDomain(&model)
}

func (r *SerializedPartRepository) GetByIDs(ctx context.Context, ids []uint) ([]*inventory.SerializedPart, error) {
	if len(ids) == 0 {
		return []*inventory.SerializedPart{}, nil
	}

	var partModels []*models.SerializedPartModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&partModels).Error; err != nil {
		r.logger.Errorw("failed to get parts by IDs", "ids", ids, "error", err)
		return nil, fmt.Errorf("failed to get parts by IDs: %w", err)
	}

	parts := make([]*inventory.SerializedPart, 0, len(partModels))
	for _, model := range partModels {
		entity, err := r.mapper.PartToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map part model, skipping", "id", model.ID, "error", err)
			continue
		}
		parts = append(parts, entity)
	}

	return parts, nil
}

// GetPrices joins parts to their items so billing charges the item's unit
// price. Soft-deleted items are included on purpose: a part already attached
// to a ticket still bills even if its item was retired afterwards.
func (r *SerializedPartRepository) GetPrices(ctx context.Context, partIDs []uint) ([]inventory.PartPrice, error) {
	if len(partIDs) == 0 {
		return []inventory.PartPrice{}, nil
	}

	var prices []inventory.PartPrice
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Table(constants.TableSerializedParts+" AS sp").
		Select("sp.id AS part_id, sp.item_id AS item_id, ii.unit_price_cents AS unit_price_cents").
		Joins(fmt.Sprintf("JOIN %s ii ON ii.id = sp.item_id", constants.TableInventoryItems)).
		Where("sp.id IN ?", partIDs).
		Scan(&prices).Error
	if err != nil {
		r.logger.Errorw("failed to get part prices", "part_ids", partIDs, "error", err)
		return nil, fmt.Errorf("failed to get part prices: %w", err)
	}

	return prices, nil
}

func (r *SerializedPartRepository) List(ctx context.Context, filter inventory.PartFilter) ([]*inventory.SerializedPart, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.SerializedPartModel{})

	if filter.ItemID != nil {
		q = q.Where("item_id = ?", *filter.ItemID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count serialized parts: %w", err)
	}

	var partModels []*models.SerializedPartModel
	q = applyOrder(q, filter.SortFilter, allowedPartOrderByFields)
	if err := applyPage(q, filter.PageFilter).Find(&partModels).Error; err != nil {
		r.logger.Errorw("failed to list serialized parts", "error", err)
		return nil, 0, fmt.Errorf("failed to list serialized parts: %w", err)
	}

	parts := make([]*inventory.SerializedPart, 0, len(partModels))
	for _, model := range partModels {
		entity, err := r.mapper.PartToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map part model, skipping", "id", model.ID, "error", err)
			continue
		}
		parts = append(parts, entity)
	}

	return parts, total, nil
}
