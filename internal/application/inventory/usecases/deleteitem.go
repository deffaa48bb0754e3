package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type DeleteItemCommand struct {
	ItemID uint
}

// DeleteItemUseCase soft-deletes an inventory item. The row is kept so that
// closed tickets referencing its parts still resolve for audit reads.
type DeleteItemUseCase struct {
	itemRepo inventory.ItemRepository
	logger   logger.Interface
}

func NewDeleteItemUseCase(itemRepo inventory.ItemRepository, logger logger.Interface) *DeleteItemUseCase {
	return &DeleteItemUseCase{itemRepo: itemRepo, logger: logger}
}

func (uc *DeleteItemUseCase) Execute(ctx context.Context, cmd DeleteItemCommand) error {
	if cmd.ItemID == 0 {
		return errors.NewValidationError("item ID is required")
	}

	item, err := uc.itemRepo.GetByID(ctx, cmd.ItemID, false)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("item %d not found", cmd.ItemID))
		}
		uc.logger.Errorw("failed to get item", "item_id", cmd.ItemID, "error", err)
		return errors.NewInternalError("failed to delete item")
	}

	if err := item.SoftDelete(); err != nil {
		return errors.NewInvalidStateError(err.Error())
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		uc.logger.Errorw("failed to delete item", "item_id", cmd.ItemID, "error", err)
		return errors.NewInternalError("failed to delete item")
	}

	uc.logger.Infow("item deleted successfully", "item_id", cmd.ItemID)
	return nil
}
