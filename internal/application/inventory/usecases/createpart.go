package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type CreatePartCommand struct {
	SerialNumber string
	ItemID       uint
}

type CreatePartResult struct {
	PartID       uint
	SerialNumber string
	ItemID       uint
	Status       string
	CreatedAt    time.Time
}

// CreatePartUseCase registers a serialized unit of an inventory item. The
// serial number is unique across all parts.
type CreatePartUseCase struct {
	partRepo inventory.PartRepository
	itemRepo inventory.ItemRepository
	logger   logger.Interface
}

func NewCreatePartUseCase(
	partRepo inventory.PartRepository,
	itemRepo inventory.ItemRepository,
	logger logger.Interface,
) *CreatePartUseCase {
	return &CreatePartUseCase{
		partRepo: partRepo,
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (uc *CreatePartUseCase) Execute(ctx context.Context, cmd CreatePartCommand) (*CreatePartResult, error) {
	uc.logger.Infow("executing create part use case", "serial_number", cmd.SerialNumber, "item_id", cmd.ItemID)

	if len(strings.TrimSpace(cmd.SerialNumber)) == 0 {
		return nil, errors.NewValidationError("serial number is required")
	}
	if cmd.ItemID == 0 {
		return nil, errors.NewValidationError("item ID is required")
	}

	if _, err := uc.itemRepo.GetByID(ctx, cmd.ItemID, false); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("item %d not found", cmd.ItemID))
		}
		uc.logger.Errorw("failed to get item", "item_id", cmd.ItemID, "error", err)
		return nil, errors.NewInternalError("failed to create part")
	}

	part, err := inventory.NewSerializedPart(cmd.SerialNumber, cmd.ItemID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.partRepo.Save(ctx, part); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("serial number is already registered")
		}
		uc.logger.Errorw("failed to save part", "error", err)
		return nil, errors.NewInternalError("failed to create part")
	}

	uc.logger.Infow("part created successfully", "part_id", part.ID())

	return &CreatePartResult{
		PartID:       part.ID(),
		SerialNumber: part.SerialNumber(),
		ItemID:       part.ItemID(),
		Status:       part.Status().String(),
		CreatedAt:    part.CreatedAt(),
	}, nil
}
