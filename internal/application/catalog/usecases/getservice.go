package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/catalog"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type GetServiceQuery struct {
	ServiceID uint
}

type GetServiceResult struct {
	Service *catalog.Service
}

type GetServiceUseCase struct {
	serviceRepo catalog.Repository
	logger      logger.Interface
}

func NewGetServiceUseCase(serviceRepo catalog.Repository, logger logger.Interface) *GetServiceUseCase {
	return &GetServiceUseCase{serviceRepo: serviceRepo, logger: logger}
}

func (uc *GetServiceUseCase) Execute(ctx context.Context, query GetServiceQuery) (*GetServiceResult, error) {
	if query.ServiceID == 0 {
		return nil, errors.NewValidationError("service ID is required")
	}

	svc, err := uc.serviceRepo.GetByID(ctx, query.ServiceID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("service %d not found", query.ServiceID))
		}
		uc.logger.Errorw("failed to get service", "service_id", query.ServiceID, "error", err)
		return nil, errors.NewInternalError("failed to get service")
	}

	return &GetServiceResult{Service: svc}, nil
}
