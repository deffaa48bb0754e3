package usecases

import (
	"context"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	vo "github.com/VELIFZ/mechanicshop-api/internal/domain/inventory/valueobjects"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/query"
)

type ListPartsQuery struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
	ItemID    uint
	Status    string
}

type ListPartsResult struct {
	Parts    []*inventory.SerializedPart
	Total    int64
	Page     int
	PageSize int
}

type ListPartsUseCase struct {
	partRepo inventory.PartRepository
	logger   logger.Interface
}

func NewListPartsUseCase(partRepo inventory.PartRepository, logger logger.Interface) *ListPartsUseCase {
	return &ListPartsUseCase{partRepo: partRepo, logger: logger}
}

func (uc *ListPartsUseCase) Execute(ctx context.Context, q ListPartsQuery) (*ListPartsResult, error) {
	filter := inventory.PartFilter{
		BaseFilter: query.NewBaseFilter(
			query.WithPage(q.Page, q.PageSize),
			query.WithSort(q.SortBy, q.SortOrder),
		),
	}

	if q.ItemID != 0 {
		itemID := q.ItemID
		filter.ItemID = &itemID
	}
	if q.Status != "" {
		status, err := vo.NewPartStatus(q.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid part status filter")
		}
		s := status.String()
		filter.Status = &s
	}

	parts, total, err := uc.partRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list parts", "error", err)
		return nil, errors.NewInternalError("failed to list parts")
	}

	return &ListPartsResult{
		Parts:    parts,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
