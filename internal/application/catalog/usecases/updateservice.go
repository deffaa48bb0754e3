package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/catalog"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type UpdateServiceCommand struct {
	ServiceID uint

	// nil fields are left unchanged
	Name           *string
	Description    *string
	BasePriceCents *int64
}

type UpdateServiceResult struct {
	Service *catalog.Service
}

type UpdateServiceUseCase struct {
	serviceRepo catalog.Repository
	logger      logger.Interface
}

func NewUpdateServiceUseCase(serviceRepo catalog.Repository, logger logger.Interface) *UpdateServiceUseCase {
	return &UpdateServiceUseCase{serviceRepo: serviceRepo, logger: logger}
}

func (uc *UpdateServiceUseCase) Execute(ctx context.Context, cmd UpdateServiceCommand) (*UpdateServiceResult, error) {
	if cmd.ServiceID == 0 {
		return nil, errors.NewValidationError("service ID is required")
	}

	svc, err := uc.serviceRepo.GetByID(ctx, cmd.ServiceID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("service %d not found", cmd.ServiceID))
		}
		uc.logger.Errorw("failed to get service", "service_id", cmd.ServiceID, "error", err)
		return nil, errors.NewInternalError("failed to update service")
	}

	name := ""
	description := ""
	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.Description != nil {
		description = *cmd.Description
	}

	if err := svc.Update(name, description, cmd.BasePriceCents); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.serviceRepo.Update(ctx, svc); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a service with this name already exists")
		}
		uc.logger.Errorw("failed to update service", "service_id", cmd.ServiceID, "error", err)
		return nil, errors.NewInternalError("failed to update service")
	}

	uc.logger.Infow("service updated successfully", "service_id", svc.ID())

	return &UpdateServiceResult{Service: svc}, nil
}
