package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID       uint
	Requester      authorization.Principal
	IncludeDeleted bool
}

type GetTicketResult struct {
	Ticket *ticket.Ticket
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	// Only employees may see soft-deleted tickets.
	includeDeleted := query.IncludeDeleted && query.Requester.Type.IsEmployee()

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID, includeDeleted)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
		}
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to get ticket")
	}

	// Customers may only read their own tickets.
	if !query.Requester.CanAccessOwnedResource(t.CustomerID()) {
		return nil, errors.NewForbiddenError("you may only view your own tickets")
	}

	return &GetTicketResult{Ticket: t}, nil
}
