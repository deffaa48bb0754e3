package usecases

import (
	"context"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/query"
)

type ListItemsQuery struct {
	Page           int
	PageSize       int
	SortBy         string
	SortOrder      string
	Search         string
	IncludeDeleted bool
}

type ListItemsResult struct {
	Items    []*inventory.Item
	Total    int64
	Page     int
	PageSize int
}

type ListItemsUseCase struct {
	itemRepo inventory.ItemRepository
	logger   logger.Interface
}

func NewListItemsUseCase(itemRepo inventory.ItemRepository, logger logger.Interface) *ListItemsUseCase {
	return &ListItemsUseCase{itemRepo: itemRepo, logger: logger}
}

func (uc *ListItemsUseCase) Execute(ctx context.Context, q ListItemsQuery) (*ListItemsResult, error) {
	filter := inventory.ItemFilter{
		BaseFilter: query.NewBaseFilter(
			query.WithPage(q.Page, q.PageSize),
			query.WithSort(q.SortBy, q.SortOrder),
		),
		Search:         q.Search,
		IncludeDeleted: q.IncludeDeleted,
	}

	items, total, err := uc.itemRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list items", "error", err)
		return nil, errors.NewInternalError("failed to list items")
	}

	return &ListItemsResult{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
