package ticket

import (
	"context"

	"github.com/VELIFZ/mechanicshop-api/internal/shared/query"
)

type Filter struct {
	query.BaseFilter
	Status         *Status
	CustomerID     *uint
	IncludeDeleted bool
}

type Repository interface {
	// Save persists a new ticket together with its association rows.
	Save(ctx context.Context, t *Ticket) error
	// Update persists the ticket's scalar fields (status, cost, summary,
	// soft-delete flag).
	Update(ctx context.Context, t *Ticket) error
	// GetByID loads the ticket and its association ID sets. Soft-deleted
	// tickets are only returned when includeDeleted is set.
	GetByID(ctx context.Context, id uint, includeDeleted bool) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)

	AddMechanic(ctx context.Context, ticketID, employeeID uint) error
	RemoveMechanic(ctx context.Context, ticketID, employeeID uint) error
	AddService(ctx context.Context, ticketID, serviceID uint) error
	RemoveService(ctx context.Context, ticketID, serviceID uint) error
	AddPart(ctx context.Context, ticketID, partID uint) error
	RemovePart(ctx context.Context, ticketID, partID uint) error

	// ActiveTicketIDForPart returns the non-closed, non-deleted ticket
	// currently holding the part, if any. Called inside the same
	// transaction as the association write to enforce part exclusivity.
	ActiveTicketIDForPart(ctx context.Context, partID uint) (uint, bool, error)
}
