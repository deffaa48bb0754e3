package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type AttachPartCommand struct {
	TicketID uint
	PartID   uint
}

// AttachPartUseCase reserves a serialized part for a ticket. The exclusivity
// check, the reservation, and the association insert run in one transaction.
type AttachPartUseCase struct {
	ticketRepo ticket.Repository
	partRepo   inventory.PartRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewAttachPartUseCase(
	ticketRepo ticket.Repository,
	partRepo inventory.PartRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *AttachPartUseCase {
	return &AttachPartUseCase{
		ticketRepo: ticketRepo,
		partRepo:   partRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *AttachPartUseCase) Execute(ctx context.Context, cmd AttachPartCommand) error {
	uc.logger.Infow("executing attach part use case", "ticket_id", cmd.TicketID, "part_id", cmd.PartID)

	if cmd.TicketID == 0 || cmd.PartID == 0 {
		return errors.NewValidationError("ticket ID and part ID are required")
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID, false)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
			}
			return err
		}

		if err := t.AttachPart(cmd.PartID); err != nil {
			return mapTicketError(err)
		}

		if err := reservePartForTicket(txCtx, uc.partRepo, uc.ticketRepo, cmd.PartID); err != nil {
			return err
		}

		return uc.ticketRepo.AddPart(txCtx, cmd.TicketID, cmd.PartID)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to attach part", "ticket_id", cmd.TicketID, "part_id", cmd.PartID, "error", err)
		return errors.NewInternalError("failed to attach part")
	}

	uc.logger.Infow("part attached successfully", "ticket_id", cmd.TicketID, "part_id", cmd.PartID)
	return nil
}
