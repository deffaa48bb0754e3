package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/billing"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/catalog"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	vo "github.com/VELIFZ/mechanicshop-api/internal/domain/inventory/valueobjects"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
}

type ChangeStatusResult struct {
	TicketID       uint
	OldStatus      string
	NewStatus      string
	TotalCostCents *int64
}

// ChangeStatusUseCase advances a ticket through its lifecycle. Closing
// computes the final bill from the attached services and parts, installs
// the parts, and decrements item stock, all in one transaction.
type ChangeStatusUseCase struct {
	ticketRepo     ticket.Repository
	serviceRepo    catalog.Repository
	partRepo       inventory.PartRepository
	itemRepo       inventory.ItemRepository
	txManager      TransactionManager
	taxRatePercent int64
	logger         logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	serviceRepo catalog.Repository,
	partRepo inventory.PartRepository,
	itemRepo inventory.ItemRepository,
	txManager TransactionManager,
	taxRatePercent int64,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:     ticketRepo,
		serviceRepo:    serviceRepo,
		partRepo:       partRepo,
		itemRepo:       itemRepo,
		txManager:      txManager,
		taxRatePercent: taxRatePercent,
		logger:         logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "new_status", cmd.NewStatus)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	target, err := ticket.NewStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError("invalid status")
	}

	var result *ChangeStatusResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID, false)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
			}
			return err
		}

		oldStatus := t.Status()

		if target.IsClosed() {
			if err := uc.closeTicket(txCtx, t); err != nil {
				return err
			}
		} else {
			if err := t.TransitionTo(target); err != nil {
				return mapTicketError(err)
			}
			if err := uc.ticketRepo.Update(txCtx, t); err != nil {
				return err
			}
		}

		result = &ChangeStatusResult{
			TicketID:       t.ID(),
			OldStatus:      oldStatus.String(),
			NewStatus:      t.Status().String(),
			TotalCostCents: t.TotalCostCents(),
		}
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to change ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to change ticket status")
	}

	uc.logger.Infow("ticket status changed successfully",
		"ticket_id", cmd.TicketID, "old_status", result.OldStatus, "new_status", result.NewStatus)

	return result, nil
}

// closeTicket prices the ticket's current associations, finalizes the cost,
// and consumes the attached parts.
func (uc *ChangeStatusUseCase) closeTicket(ctx context.Context, t *ticket.Ticket) error {
	servicePrices, err := uc.servicePrices(ctx, t.ServiceIDs())
	if err != nil {
		return err
	}

	partPrices, err := uc.partPrices(ctx, t.PartIDs())
	if err != nil {
		return err
	}

	quote := billing.Calculate(servicePrices, partPrices, uc.taxRatePercent)

	if err := t.Close(quote.TotalCents); err != nil {
		return mapTicketError(err)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return err
	}

	return uc.installParts(ctx, t.PartIDs())
}

func (uc *ChangeStatusUseCase) servicePrices(ctx context.Context, serviceIDs []uint) ([]int64, error) {
	if len(serviceIDs) == 0 {
		return nil, nil
	}
	services, err := uc.serviceRepo.GetByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(serviceIDs) {
		return nil, errors.NewInternalError("ticket references unknown services")
	}
	prices := make([]int64, 0, len(services))
	for _, svc := range services {
		prices = append(prices, svc.BasePriceCents())
	}
	return prices, nil
}

func (uc *ChangeStatusUseCase) partPrices(ctx context.Context, partIDs []uint) ([]int64, error) {
	if len(partIDs) == 0 {
		return nil, nil
	}
	partPrices, err := uc.partRepo.GetPrices(ctx, partIDs)
	if err != nil {
		return nil, err
	}
	if len(partPrices) != len(partIDs) {
		return nil, errors.NewInternalError("ticket references unknown parts")
	}
	prices := make([]int64, 0, len(partPrices))
	for _, pp := range partPrices {
		prices = append(prices, pp.UnitPriceCents)
	}
	return prices, nil
}

func (uc *ChangeStatusUseCase) installParts(ctx context.Context, partIDs []uint) error {
	for _, partID := range partIDs {
		part, err := uc.partRepo.GetByID(ctx, partID)
		if err != nil {
			return err
		}
		if err := part.Install(); err != nil {
			return errors.NewInvalidStateError(err.Error())
		}
		if err := uc.partRepo.TransitionStatus(ctx, partID, vo.StatusReserved, vo.StatusInstalled); err != nil {
			return err
		}

		item, err := uc.itemRepo.GetByID(ctx, part.ItemID(), true)
		if err != nil {
			return err
		}
		item.ConsumeStock()
		if err := uc.itemRepo.Update(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
