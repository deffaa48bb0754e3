package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	vo "github.com/VELIFZ/mechanicshop-api/internal/domain/inventory/valueobjects"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
)

func reconstructInStockPart(t *testing.T, id uint) *inventory.SerializedPart {
	t.Helper()
	now := time.Now().UTC()
	p, err := inventory.ReconstructSerializedPart(id, "SN-1001", vo.StatusInStock, 4, now, now)
	require.NoError(t, err)
	return p
}

func TestAttachPartUseCase_Execute(t *testing.T) {
	tk := reconstructTicket(t, ticket.StatusOpen, nil, nil)
	part := reconstructInStockPart(t, 9)

	var addedPartID uint
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
			return tk, nil
		},
		AddPartFunc: func(ctx context.Context, ticketID, partID uint) error {
			addedPartID = partID
			return nil
		},
	}
	partRepo := &mockPartRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*inventory.SerializedPart, error) {
			return part, nil
		},
	}
	uc := NewAttachPartUseCase(ticketRepo, partRepo, passthroughTxManager{}, noopLogger{})

	err := uc.Execute(context.Background(), AttachPartCommand{TicketID: 1, PartID: 9})

	require.NoError(t, err)
	assert.Equal(t, uint(9), addedPartID)
	assert.True(t, part.Status().IsReserved())
}

func TestAttachPartUseCase_PartHeldElsewhere(t *testing.T) {
	tk := reconstructTicket(t, ticket.StatusOpen, nil, nil)
	part := reconstructInStockPart(t, 9)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
			return tk, nil
		},
		ActiveTicketIDForPartFunc: func(ctx context.Context, partID uint) (uint, bool, error) {
			return 33, true, nil
		},
	}
	partRepo := &mockPartRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*inventory.SerializedPart, error) {
			return part, nil
		},
	}
	uc := NewAttachPartUseCase(ticketRepo, partRepo, passthroughTxManager{}, noopLogger{})

	err := uc.Execute(context.Background(), AttachPartCommand{TicketID: 1, PartID: 9})

	assert.True(t, errors.IsConflictError(err))
	assert.True(t, part.Status().IsInStock())
}

func TestAttachPartUseCase_LosesReservationRace(t *testing.T) {
	// Both racing transactions read the part as in_stock with no active
	// holder; the guarded status write decides the winner. The loser's
	// write touches no rows and must surface as a conflict.
	tk := reconstructTicket(t, ticket.StatusOpen, nil, nil)
	part := reconstructInStockPart(t, 9)

	addCalled := false
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
			return tk, nil
		},
		AddPartFunc: func(ctx context.Context, ticketID, partID uint) error {
			addCalled = true
			return nil
		},
	}
	partRepo := &mockPartRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*inventory.SerializedPart, error) {
			return part, nil
		},
		TransitionStatusFunc: func(ctx context.Context, partID uint, from, to vo.PartStatus) error {
			assert.Equal(t, vo.StatusInStock, from)
			assert.Equal(t, vo.StatusReserved, to)
			return errors.NewConflictError("part 9 is no longer in_stock")
		},
	}
	uc := NewAttachPartUseCase(ticketRepo, partRepo, passthroughTxManager{}, noopLogger{})

	err := uc.Execute(context.Background(), AttachPartCommand{TicketID: 1, PartID: 9})

	assert.True(t, errors.IsConflictError(err))
	assert.False(t, addCalled)
}

func TestAttachPartUseCase_ClosedTicket(t *testing.T) {
	cost := int64(100)
	now := time.Now().UTC()
	tk, err := ticket.ReconstructTicket(
		1, 7, "1HGBH41JXMN109186", "done",
		ticket.StatusClosed, &cost, false, now, now, &now,
		nil, nil, nil,
	)
	require.NoError(t, err)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	uc := NewAttachPartUseCase(ticketRepo, &mockPartRepository{}, passthroughTxManager{}, noopLogger{})

	err = uc.Execute(context.Background(), AttachPartCommand{TicketID: 1, PartID: 9})
	assert.True(t, errors.IsInvalidStateError(err))
}

func TestDetachPartUseCase_Execute(t *testing.T) {
	tk := reconstructTicket(t, ticket.StatusOpen, nil, []uint{9})
	part := reconstructReservedPart(t, 9, 4)

	var removedPartID uint
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
			return tk, nil
		},
		RemovePartFunc: func(ctx context.Context, ticketID, partID uint) error {
			removedPartID = partID
			return nil
		},
	}
	partRepo := &mockPartRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*inventory.SerializedPart, error) {
			return part, nil
		},
	}
	uc := NewDetachPartUseCase(ticketRepo, partRepo, passthroughTxManager{}, noopLogger{})

	err := uc.Execute(context.Background(), DetachPartCommand{TicketID: 1, PartID: 9})

	require.NoError(t, err)
	assert.Equal(t, uint(9), removedPartID)
	assert.True(t, part.Status().IsInStock())
}

func TestDetachPartUseCase_NotAttached(t *testing.T) {
	tk := reconstructTicket(t, ticket.StatusOpen, nil, nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	uc := NewDetachPartUseCase(ticketRepo, &mockPartRepository{}, passthroughTxManager{}, noopLogger{})

	err := uc.Execute(context.Background(), DetachPartCommand{TicketID: 1, PartID: 9})
	assert.True(t, errors.IsNotFoundError(err))
}
