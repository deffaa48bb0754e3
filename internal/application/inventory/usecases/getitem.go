package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type GetItemQuery struct {
	ItemID         uint
	IncludeDeleted bool
}

type GetItemResult struct {
	Item *inventory.Item
}

type GetItemUseCase struct {
	itemRepo inventory.ItemRepository
	logger   logger.Interface
}

func NewGetItemUseCase(itemRepo inventory.ItemRepository, logger logger.Interface) *GetItemUseCase {
	return &GetItemUseCase{itemRepo: itemRepo, logger: logger}
}

func (uc *GetItemUseCase) Execute(ctx context.Context, query GetItemQuery) (*GetItemResult, error) {
	if query.ItemID == 0 {
		return nil, errors.NewValidationError("item ID is required")
	}

	item, err := uc.itemRepo.GetByID(ctx, query.ItemID, query.IncludeDeleted)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("item %d not found", query.ItemID))
		}
		uc.logger.Errorw("failed to get item", "item_id", query.ItemID, "error", err)
		return nil, errors.NewInternalError("failed to get item")
	}

	return &GetItemResult{Item: item}, nil
}
