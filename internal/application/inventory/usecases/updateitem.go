package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type UpdateItemCommand struct {
	ItemID uint

	// nil fields are left unchanged
	Name            *string
	Description     *string
	UnitPriceCents  *int64
	QuantityInStock *int
}

type UpdateItemResult struct {
	Item *inventory.Item
}

type UpdateItemUseCase struct {
	itemRepo inventory.ItemRepository
	logger   logger.Interface
}

func NewUpdateItemUseCase(itemRepo inventory.ItemRepository, logger logger.Interface) *UpdateItemUseCase {
	return &UpdateItemUseCase{itemRepo: itemRepo, logger: logger}
}

func (uc *UpdateItemUseCase) Execute(ctx context.Context, cmd UpdateItemCommand) (*UpdateItemResult, error) {
	if cmd.ItemID == 0 {
		return nil, errors.NewValidationError("item ID is required")
	}

	item, err := uc.itemRepo.GetByID(ctx, cmd.ItemID, false)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("item %d not found", cmd.ItemID))
		}
		uc.logger.Errorw("failed to get item", "item_id", cmd.ItemID, "error", err)
		return nil, errors.NewInternalError("failed to update item")
	}

	name := ""
	description := ""
	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.Description != nil {
		description = *cmd.Description
	}

	if err := item.Update(name, description, cmd.UnitPriceCents, cmd.QuantityInStock); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		uc.logger.Errorw("failed to update item", "item_id", cmd.ItemID, "error", err)
		return nil, errors.NewInternalError("failed to update item")
	}

	uc.logger.Infow("item updated successfully", "item_id", item.ID())

	return &UpdateItemResult{Item: item}, nil
}
