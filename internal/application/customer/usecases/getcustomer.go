package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/customer"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type GetCustomerQuery struct {
	CustomerID uint
	Requester  authorization.Principal
}

type GetCustomerResult struct {
	Customer *customer.Customer
}

type GetCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewGetCustomerUseCase(customerRepo customer.Repository, logger logger.Interface) *GetCustomerUseCase {
	return &GetCustomerUseCase{customerRepo: customerRepo, logger: logger}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, query GetCustomerQuery) (*GetCustomerResult, error) {
	if query.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}

	// Customers may only read their own record; employees may read any.
	if !query.Requester.CanAccessOwnedResource(query.CustomerID) {
		return nil, errors.NewForbiddenError("access denied")
	}

	c, err := uc.customerRepo.GetByID(ctx, query.CustomerID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("customer %d not found", query.CustomerID))
		}
		uc.logger.Errorw("failed to get customer", "customer_id", query.CustomerID, "error", err)
		return nil, errors.NewInternalError("failed to get customer")
	}

	return &GetCustomerResult{Customer: c}, nil
}
