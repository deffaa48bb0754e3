package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type CreateItemCommand struct {
	Name            string
	InventoryNumber string
	Description     string
	UnitPriceCents  int64
	QuantityInStock int
}

type CreateItemResult struct {
	ItemID          uint
	Name            string
	InventoryNumber string
	UnitPriceCents  int64
	QuantityInStock int
	CreatedAt       time.Time
}

type CreateItemUseCase struct {
	itemRepo inventory.ItemRepository
	logger   logger.Interface
}

func NewCreateItemUseCase(itemRepo inventory.ItemRepository, logger logger.Interface) *CreateItemUseCase {
	return &CreateItemUseCase{itemRepo: itemRepo, logger: logger}
}

func (uc *CreateItemUseCase) Execute(ctx context.Context, cmd CreateItemCommand) (*CreateItemResult, error) {
	uc.logger.Infow("executing create item use case", "inventory_number", cmd.InventoryNumber)

	if len(strings.TrimSpace(cmd.Name)) == 0 {
		return nil, errors.NewValidationError("name is required")
	}
	if len(strings.TrimSpace(cmd.InventoryNumber)) == 0 {
		return nil, errors.NewValidationError("inventory number is required")
	}

	item, err := inventory.NewItem(cmd.Name, cmd.InventoryNumber, cmd.Description, cmd.UnitPriceCents, cmd.QuantityInStock)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.itemRepo.Save(ctx, item); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("inventory number is already in use")
		}
		uc.logger.Errorw("failed to save item", "error", err)
		return nil, errors.NewInternalError("failed to create item")
	}

	uc.logger.Infow("item created successfully", "item_id", item.ID())

	return &CreateItemResult{
		ItemID:          item.ID(),
		Name:            item.Name(),
		InventoryNumber: item.InventoryNumber(),
		UnitPriceCents:  item.UnitPriceCents(),
		QuantityInStock: item.QuantityInStock(),
		CreatedAt:       item.CreatedAt(),
	}, nil
}
