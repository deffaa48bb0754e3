package usecases

import (
	"context"
	"strings"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/customer"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type LoginCustomerCommand struct {
	Email    string
	Password string
}

type LoginCustomerResult struct {
	Customer    *customer.Customer
	AccessToken string
	ExpiresIn   int64
}

type LoginCustomerUseCase struct {
	customerRepo customer.Repository
	hasher       PasswordHasher
	tokens       TokenIssuer
	logger       logger.Interface
}

func NewLoginCustomerUseCase(
	customerRepo customer.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginCustomerUseCase {
	return &LoginCustomerUseCase{
		customerRepo: customerRepo,
		hasher:       hasher,
		tokens:       tokens,
		logger:       logger,
	}
}

func (uc *LoginCustomerUseCase) Execute(ctx context.Context, cmd LoginCustomerCommand) (*LoginCustomerResult, error) {
	if len(cmd.Email) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	existing, err := uc.customerRepo.GetByEmail(ctx, email)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to get customer by email", "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	// Generic error so the response does not reveal whether the email exists.
	if existing == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Compare(existing.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresIn, err := uc.tokens.Issue(authorization.Principal{
		ID:   existing.ID(),
		Type: authorization.PrincipalCustomer,
	})
	if err != nil {
		uc.logger.Errorw("failed to issue token", "customer_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	uc.logger.Infow("customer logged in successfully", "customer_id", existing.ID())

	return &LoginCustomerResult{
		Customer:    existing,
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
