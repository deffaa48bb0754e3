package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type DetachMechanicCommand struct {
	TicketID   uint
	EmployeeID uint
}

type DetachMechanicUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDetachMechanicUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DetachMechanicUseCase {
	return &DetachMechanicUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *DetachMechanicUseCase) Execute(ctx context.Context, cmd DetachMechanicCommand) error {
	uc.logger.Infow("executing detach mechanic use case", "ticket_id", cmd.TicketID, "employee_id", cmd.EmployeeID)

	if cmd.TicketID == 0 || cmd.EmployeeID == 0 {
		return errors.NewValidationError("ticket ID and employee ID are required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID, false)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewInternalError("failed to detach mechanic")
	}

	if err := t.DetachMechanic(cmd.EmployeeID); err != nil {
		return mapTicketError(err)
	}

	if err := uc.ticketRepo.RemoveMechanic(ctx, cmd.TicketID, cmd.EmployeeID); err != nil {
		uc.logger.Errorw("failed to detach mechanic", "ticket_id", cmd.TicketID, "employee_id", cmd.EmployeeID, "error", err)
		return errors.NewInternalError("failed to detach mechanic")
	}

	uc.logger.Infow("mechanic detached successfully", "ticket_id", cmd.TicketID, "employee_id", cmd.EmployeeID)
	return nil
}
