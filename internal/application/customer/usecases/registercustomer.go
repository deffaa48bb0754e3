package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/customer"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/utils"
)

type RegisterCustomerCommand struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type RegisterCustomerResult struct {
	CustomerID uint
	Name       string
	Email      string
	CreatedAt  time.Time
}

type RegisterCustomerUseCase struct {
	customerRepo customer.Repository
	hasher       PasswordHasher
	logger       logger.Interface
}

func NewRegisterCustomerUseCase(
	customerRepo customer.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{
		customerRepo: customerRepo,
		hasher:       hasher,
		logger:       logger,
	}
}

func (uc *RegisterCustomerUseCase) Execute(ctx context.Context, cmd RegisterCustomerCommand) (*RegisterCustomerResult, error) {
	uc.logger.Infow("executing register customer use case", "email", cmd.Email)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid register customer command", "error", err)
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	existing, err := uc.customerRepo.GetByEmail(ctx, email)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to check existing customer", "error", err)
		return nil, errors.NewInternalError("failed to register customer")
	}
	if existing != nil {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to register customer")
	}

	newCustomer, err := customer.NewCustomer(cmd.Name, email, cmd.Phone, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.customerRepo.Save(ctx, newCustomer); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to save customer", "error", err)
		return nil, errors.NewInternalError("failed to register customer")
	}

	uc.logger.Infow("customer registered successfully", "customer_id", newCustomer.ID())

	return &RegisterCustomerResult{
		CustomerID: newCustomer.ID(),
		Name:       newCustomer.Name(),
		Email:      newCustomer.Email(),
		CreatedAt:  newCustomer.CreatedAt(),
	}, nil
}

func (uc *RegisterCustomerUseCase) validateCommand(cmd RegisterCustomerCommand) error {
	if len(strings.TrimSpace(cmd.Name)) == 0 {
		return errors.NewValidationError("name is required")
	}
	if len(strings.TrimSpace(cmd.Email)) == 0 {
		return errors.NewValidationError("email is required")
	}
	if err := utils.ValidatePasswordStrength(cmd.Password); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}
