package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type DetachServiceCommand struct {
	TicketID  uint
	ServiceID uint
}

type DetachServiceUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDetachServiceUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DetachServiceUseCase {
	return &DetachServiceUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *DetachServiceUseCase) Execute(ctx context.Context, cmd DetachServiceCommand) error {
	uc.logger.Infow("executing detach service use case", "ticket_id", cmd.TicketID, "service_id", cmd.ServiceID)

	if cmd.TicketID == 0 || cmd.ServiceID == 0 {
		return errors.NewValidationError("ticket ID and service ID are required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID, false)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewInternalError("failed to detach service")
	}

	if err := t.DetachService(cmd.ServiceID); err != nil {
		return mapTicketError(err)
	}

	if err := uc.ticketRepo.RemoveService(ctx, cmd.TicketID, cmd.ServiceID); err != nil {
		uc.logger.Errorw("failed to detach service", "ticket_id", cmd.TicketID, "service_id", cmd.ServiceID, "error", err)
		return errors.NewInternalError("failed to detach service")
	}

	uc.logger.Infow("service detached successfully", "ticket_id", cmd.TicketID, "service_id", cmd.ServiceID)
	return nil
}
