package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type DetachPartCommand struct {
	TicketID uint
	PartID   uint
}

// DetachPartUseCase removes a part from a non-closed ticket and returns it
// to stock. Detaching a part that is not attached fails with NotFound.
type DetachPartUseCase struct {
	ticketRepo ticket.Repository
	partRepo   inventory.PartRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewDetachPartUseCase(
	ticketRepo ticket.Repository,
	partRepo inventory.PartRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DetachPartUseCase {
	return &DetachPartUseCase{
		ticketRepo: ticketRepo,
		partRepo:   partRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *DetachPartUseCase) Execute(ctx context.Context, cmd DetachPartCommand) error {
	uc.logger.Infow("executing detach part use case", "ticket_id", cmd.TicketID, "part_id", cmd.PartID)

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

		if err := t.DetachPart(cmd.PartID); err != nil {
			return mapTicketError(err)
		}

		if err := releasePartFromTicket(txCtx, uc.partRepo, cmd.PartID); err != nil {
			return err
		}

		return uc.ticketRepo.RemovePart(txCtx, cmd.TicketID, cmd.PartID)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to detach part", "ticket_id", cmd.TicketID, "part_id", cmd.PartID, "error", err)
		return errors.NewInternalError("failed to detach part")
	}

	uc.logger.Infow("part detached successfully", "ticket_id", cmd.TicketID, "part_id", cmd.PartID)
	return nil
}
