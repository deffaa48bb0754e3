package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/catalog"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type CreateServiceCommand struct {
	Name           string
	Description    string
	BasePriceCents int64
}

type CreateServiceResult struct {
	ServiceID      uint
	Name           string
	BasePriceCents int64
	CreatedAt      time.Time
}

type CreateServiceUseCase struct {
	serviceRepo catalog.Repository
	logger      logger.Interface
}

func NewCreateServiceUseCase(serviceRepo catalog.Repository, logger logger.Interface) *CreateServiceUseCase {
	return &CreateServiceUseCase{serviceRepo: serviceRepo, logger: logger}
}

func (uc *CreateServiceUseCase) Execute(ctx context.Context, cmd CreateServiceCommand) (*CreateServiceResult, error) {
	uc.logger.Infow("executing create service use case", "name", cmd.Name)

	if len(strings.TrimSpace(cmd.Name)) == 0 {
		return nil, errors.NewValidationError("name is required")
	}
	if cmd.BasePriceCents < 0 {
		return nil, errors.NewValidationError("base price cannot be negative")
	}

	svc, err := catalog.NewService(cmd.Name, cmd.Description, cmd.BasePriceCents)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.serviceRepo.Save(ctx, svc); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a service with this name already exists")
		}
		uc.logger.Errorw("failed to save service", "error", err)
		return nil, errors.NewInternalError("failed to create service")
	}

	uc.logger.Infow("service created successfully", "service_id", svc.ID())

	return &CreateServiceResult{
		ServiceID:      svc.ID(),
		Name:           svc.Name(),
		BasePriceCents: svc.BasePriceCents(),
		CreatedAt:      svc.CreatedAt(),
	}, nil
}
