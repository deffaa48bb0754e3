package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/customer"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/utils"
)

type UpdateCustomerCommand struct {
	CustomerID uint
	Requester  authorization.Principal

	// nil fields are left unchanged
	Name     *string
	Email    *string
	Phone    *string
	Password *string
}

type UpdateCustomerResult struct {
	Customer *customer.Customer
}

type UpdateCustomerUseCase struct {
	customerRepo customer.Repository
	hasher       PasswordHasher
	logger       logger.Interface
}

func NewUpdateCustomerUseCase(
	customerRepo customer.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		customerRepo: customerRepo,
		hasher:       hasher,
		logger:       logger,
	}
}

func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, cmd UpdateCustomerCommand) (*UpdateCustomerResult, error) {
	if cmd.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}
	if !cmd.Requester.CanAccessOwnedResource(cmd.CustomerID) {
		return nil, errors.NewForbiddenError("access denied")
	}

	c, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("customer %d not found", cmd.CustomerID))
		}
		uc.logger.Errorw("failed to get customer", "customer_id", cmd.CustomerID, "error", err)
		return nil, errors.NewInternalError("failed to update customer")
	}

	name := c.Name()
	email := c.Email()
	phone := c.Phone()
	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*cmd.Email))
	}
	if cmd.Phone != nil {
		phone = *cmd.Phone
	}

	if err := c.UpdateProfile(name, email, phone); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Password != nil {
		if err := utils.ValidatePasswordStrength(*cmd.Password); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to update customer")
		}
		if err := c.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.customerRepo.Update(ctx, c); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to update customer", "customer_id", cmd.CustomerID, "error", err)
		return nil, errors.NewInternalError("failed to update customer")
	}

	uc.logger.Infow("customer updated successfully", "customer_id", c.ID())

	return &UpdateCustomerResult{Customer: c}, nil
}
