package usecases

import (
	stderrors "errors"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
)

// mapTicketError translates ticket domain errors into the application
// error taxonomy.
func mapTicketError(err error) error {
	switch {
	case stderrors.Is(err, ticket.ErrTicketClosed):
		return errors.NewInvalidStateError("ticket is closed and can no longer be modified")
	case stderrors.Is(err, ticket.ErrTicketDeleted):
		return errors.NewInvalidStateError("ticket has been deleted")
	case stderrors.Is(err, ticket.ErrCostFinalized):
		return errors.NewInvalidStateError("ticket is already closed with a finalized cost")
	case stderrors.Is(err, ticket.ErrBadTransition):
		return errors.NewInvalidStateError(err.Error())
	case stderrors.Is(err, ticket.ErrAlreadyAttached):
		return errors.NewConflictError(err.Error())
	case stderrors.Is(err, ticket.ErrNotAttached):
		return errors.NewNotFoundError(err.Error())
	default:
		return errors.NewValidationError(err.Error())
	}
}
