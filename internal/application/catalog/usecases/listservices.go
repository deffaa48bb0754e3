package usecases

import (
	"context"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/catalog"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/query"
)

type ListServicesQuery struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
	Search    string
}

type ListServicesResult struct {
	Services []*catalog.Service
	Total    int64
	Page     int
	PageSize int
}

type ListServicesUseCase struct {
	serviceRepo catalog.Repository
	logger      logger.Interface
}

func NewListServicesUseCase(serviceRepo catalog.Repository, logger logger.Interface) *ListServicesUseCase {
	return &ListServicesUseCase{serviceRepo: serviceRepo, logger: logger}
}

func (uc *ListServicesUseCase) Execute(ctx context.Context, q ListServicesQuery) (*ListServicesResult, error) {
	filter := catalog.Filter{
		BaseFilter: query.NewBaseFilter(
			query.WithPage(q.Page, q.PageSize),
			query.WithSort(q.SortBy, q.SortOrder),
		),
		Search: q.Search,
	}

	services, total, err := uc.serviceRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list services", "error", err)
		return nil, errors.NewInternalError("failed to list services")
	}

	return &ListServicesResult{
		Services: services,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
