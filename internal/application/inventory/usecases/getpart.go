package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type GetPartQuery struct {
	PartID       uint
	SerialNumber string // used when PartID is zero
}

type GetPartResult struct {
	Part *inventory.SerializedPart
}

type GetPartUseCase struct {
	partRepo inventory.PartRepository
	logger   logger.Interface
}

func NewGetPartUseCase(partRepo inventory.PartRepository, logger logger.Interface) *GetPartUseCase {
	return &GetPartUseCase{partRepo: partRepo, logger: logger}
}

func (uc *GetPartUseCase) Execute(ctx context.Context, query GetPartQuery) (*GetPartResult, error) {
	if query.PartID == 0 && query.SerialNumber == "" {
		return nil, errors.NewValidationError("part ID or serial number is required")
	}

	var (
		part *inventory.SerializedPart
		err  error
	)
	if query.PartID != 0 {
		part, err = uc.partRepo.GetByID(ctx, query.PartID)
	} else {
		part, err = uc.partRepo.GetBySerialNumber(ctx, query.SerialNumber)
	}
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("part %d not found", query.PartID))
		}
		uc.logger.Errorw("failed to get part", "part_id", query.PartID, "error", err)
		return nil, errors.NewInternalError("failed to get part")
	}

	return &GetPartResult{Part: part}, nil
}
