package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/catalog"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type DeleteServiceCommand struct {
	ServiceID uint
}

type DeleteServiceUseCase struct {
	serviceRepo catalog.Repository
	logger      logger.Interface
}

func NewDeleteServiceUseCase(serviceRepo catalog.Repository, logger logger.Interface) *DeleteServiceUseCase {
	return &DeleteServiceUseCase{serviceRepo: serviceRepo, logger: logger}
}

func (uc *DeleteServiceUseCase) Execute(ctx context.Context, cmd DeleteServiceCommand) error {
	if cmd.ServiceID == 0 {
		return errors.NewValidationError("service ID is required")
	}

	if _, err := uc.serviceRepo.GetByID(ctx, cmd.ServiceID); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("service %d not found", cmd.ServiceID))
		}
		uc.logger.Errorw("failed to get service", "service_id", cmd.ServiceID, "error", err)
		return errors.NewInternalError("failed to delete service")
	}

	if err := uc.serviceRepo.Delete(ctx, cmd.ServiceID); err != nil {
		uc.logger.Errorw("failed to delete service", "service_id", cmd.ServiceID, "error", err)
		return errors.NewInternalError("failed to delete service")
	}

	uc.logger.Infow("service deleted successfully", "service_id", cmd.ServiceID)
	return nil
}
