package usecases

import (
	"context"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/customer"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/query"
)

type ListCustomersQuery struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
	Search    string
}

type ListCustomersResult struct {
	Customers []*customer.Customer
	Total     int64
	Page      int
	PageSize  int
}

type ListCustomersUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewListCustomersUseCase(customerRepo customer.Repository, logger logger.Interface) *ListCustomersUseCase {
	return &ListCustomersUseCase{customerRepo: customerRepo, logger: logger}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, q ListCustomersQuery) (*ListCustomersResult, error) {
	filter := customer.Filter{
		BaseFilter: query.NewBaseFilter(
			query.WithPage(q.Page, q.PageSize),
			query.WithSort(q.SortBy, q.SortOrder),
		),
		Search: q.Search,
	}

	customers, total, err := uc.customerRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, errors.NewInternalError("failed to list customers")
	}

	return &ListCustomersResult{
		Customers: customers,
		Total:     total,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
	}, nil
}
