package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/employee"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type AttachMechanicCommand struct {
	TicketID   uint
	EmployeeID uint
}

type AttachMechanicUseCase struct {
	ticketRepo   ticket.Repository
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewAttachMechanicUseCase(
	ticketRepo ticket.Repository,
	employeeRepo employee.Repository,
	logger logger.Interface,
) *AttachMechanicUseCase {
	return &AttachMechanicUseCase{
		ticketRepo:   ticketRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (uc *AttachMechanicUseCase) Execute(ctx context.Context, cmd AttachMechanicCommand) error {
	uc.logger.Infow("executing attach mechanic use case", "ticket_id", cmd.TicketID, "employee_id", cmd.EmployeeID)

	if cmd.TicketID == 0 || cmd.EmployeeID == 0 {
		return errors.NewValidationError("ticket ID and employee ID are required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID, false)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewInternalError("failed to attach mechanic")
	}

	if _, err := uc.employeeRepo.GetByID(ctx, cmd.EmployeeID); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("employee %d not found", cmd.EmployeeID))
		}
		uc.logger.Errorw("failed to get employee", "employee_id", cmd.EmployeeID, "error", err)
		return errors.NewInternalError("failed to attach mechanic")
	}

	if err := t.AttachMechanic(cmd.EmployeeID); err != nil {
		// Re-attaching an assigned mechanic is a no-op.
		if stderrors.Is(err, ticket.ErrAlreadyAttached) {
			return nil
		}
		return mapTicketError(err)
	}

	if err := uc.ticketRepo.AddMechanic(ctx, cmd.TicketID, cmd.EmployeeID); err != nil {
		uc.logger.Errorw("failed to attach mechanic", "ticket_id", cmd.TicketID, "employee_id", cmd.EmployeeID, "error", err)
		return errors.NewInternalError("failed to attach mechanic")
	}

	uc.logger.Infow("mechanic attached successfully", "ticket_id", cmd.TicketID, "employee_id", cmd.EmployeeID)
	return nil
}
