package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/customer"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type DeleteCustomerCommand struct {
	CustomerID uint
	Requester  authorization.Principal
}

type DeleteCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewDeleteCustomerUseCase(customerRepo customer.Repository, logger logger.Interface) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{customerRepo: customerRepo, logger: logger}
}

func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, cmd DeleteCustomerCommand) error {
	if cmd.CustomerID == 0 {
		return errors.NewValidationError("customer ID is required")
	}
	if !cmd.Requester.CanAccessOwnedResource(cmd.CustomerID) {
		return errors.NewForbiddenError("access denied")
	}

	if _, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("customer %d not found", cmd.CustomerID))
		}
		uc.logger.Errorw("failed to get customer", "customer_id", cmd.CustomerID, "error", err)
		return errors.NewInternalError("failed to delete customer")
	}

	if err := uc.customerRepo.Delete(ctx, cmd.CustomerID); err != nil {
		uc.logger.Errorw("failed to delete customer", "customer_id", cmd.CustomerID, "error", err)
		return errors.NewInternalError("failed to delete customer")
	}

	uc.logger.Infow("customer deleted successfully", "customer_id", cmd.CustomerID)
	return nil
}
