package usecases

import (
	"context"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	vo "github.com/VELIFZ/mechanicshop-api/internal/domain/inventory/valueobjects"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
)

// reservePartForTicket enforces the part exclusivity rule and marks the
// part reserved. Must run inside the same transaction as the association
// insert so a concurrent attach cannot double-assign the part.
func reservePartForTicket(
	ctx context.Context,
	partRepo inventory.PartRepository,
	ticketRepo ticket.Repository,
	partID uint,
) error {
	part, err := partRepo.GetByID(ctx, partID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("part %d not found", partID))
		}
		return err
	}

	holderID, held, err := ticketRepo.ActiveTicketIDForPart(ctx, partID)
	if err != nil {
		return err
	}
	if held {
		return errors.NewConflictError(
			fmt.Sprintf("part %d is already attached to ticket %d", partID, holderID))
	}

	if err := part.Reserve(); err != nil {
		return errors.NewConflictError(err.Error())
	}

	// Guarded write: of two transactions racing over the same part, only
	// the one that still sees it in stock lands the reservation.
	return partRepo.TransitionStatus(ctx, partID, vo.StatusInStock, vo.StatusReserved)
}

// releasePartFromTicket returns a reserved part to stock after a detach.
func releasePartFromTicket(
	ctx context.Context,
	partRepo inventory.PartRepository,
	partID uint,
) error {
	part, err := partRepo.GetByID(ctx, partID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("part %d not found", partID))
		}
		return err
	}

	if err := part.Release(); err != nil {
		return errors.NewInvalidStateError(err.Error())
	}

	return partRepo.TransitionStatus(ctx, partID, vo.StatusReserved, vo.StatusInStock)
}
