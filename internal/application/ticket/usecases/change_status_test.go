package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/catalog"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	vo "github.com/VELIFZ/mechanicshop-api/internal/domain/inventory/valueobjects"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
)

func reconstructTicket(t *testing.T, status ticket.Status, serviceIDs, partIDs []uint) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ticket.ReconstructTicket(
		1, 7, "1HGBH41JXMN109186", "brake job",
		status, nil, false, now, now, nil,
		nil, serviceIDs, partIDs,
	)
	require.NoError(t, err)
	return tk
}

func reconstructReservedPart(t *testing.T, id, itemID uint) *inventory.SerializedPart {
	t.Helper()
	now := time.Now().UTC()
	p, err := inventory.ReconstructSerializedPart(id, "SN-1001", vo.StatusReserved, itemID, now, now)
	require.NoError(t, err)
	return p
}

func newChangeStatusUseCase(
	ticketRepo *mockTicketRepository,
	serviceRepo *mockServiceRepository,
	partRepo *mockPartRepository,
	itemRepo *mockItemRepository,
) *ChangeStatusUseCase {
	return NewChangeStatusUseCase(ticketRepo, serviceRepo, partRepo, itemRepo, passthroughTxManager{}, 8, noopLogger{})
}

func TestChangeStatusUseCase_OpenToInProgress(t *testing.T) {
	tk := reconstructTicket(t, ticket.StatusOpen, nil, nil)
	var updated *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
			return tk, nil
		},
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			updated = t
			return nil
		},
	}
	uc := newChangeStatusUseCase(ticketRepo, &mockServiceRepository{}, &mockPartRepository{}, &mockItemRepository{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 1, NewStatus: "in_progress"})

	require.NoError(t, err)
	assert.Equal(t, "open", result.OldStatus)
	assert.Equal(t, "in_progress", result.NewStatus)
	assert.Nil(t, result.TotalCostCents)
	require.NotNil(t, updated)
}

func TestChangeStatusUseCase_CloseComputesBill(t *testing.T) {
	// services 20.00 + 35.00, part 10.00, 8% tax -> 70.20
	tk := reconstructTicket(t, ticket.StatusInProgress, []uint{1, 2}, []uint{9})

	oil, err := catalog.ReconstructService(1, "Oil Change", "", 2000, time.Now(), time.Now())
	require.NoError(t, err)
	brakes, err := catalog.ReconstructService(2, "Brake Check", "", 3500, time.Now(), time.Now())
	require.NoError(t, err)

	part := reconstructReservedPart(t, 9, 4)
	item, err := inventory.NewItem("Brake Pad", "INV-001", "", 1000, 3)
	require.NoError(t, err)
	require.NoError(t, item.SetID(4))

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	serviceRepo := &mockServiceRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*catalog.Service, error) {
			return []*catalog.Service{oil, brakes}, nil
		},
	}
	partRepo := &mockPartRepository{
		GetPricesFunc: func(ctx context.Context, partIDs []uint) ([]inventory.PartPrice, error) {
			return []inventory.PartPrice{{PartID: 9, ItemID: 4, UnitPriceCents: 1000}}, nil
		},
		GetByIDFunc: func(ctx context.Context, id uint) (*inventory.SerializedPart, error) {
			return part, nil
		},
	}
	itemRepo := &mockItemRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*inventory.Item, error) {
			return item, nil
		},
	}
	uc := newChangeStatusUseCase(ticketRepo, serviceRepo, partRepo, itemRepo)

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 1, NewStatus: "closed"})

	require.NoError(t, err)
	require.NotNil(t, result.TotalCostCents)
	assert.Equal(t, int64(7020), *result.TotalCostCents)
	assert.Equal(t, "closed", result.NewStatus)

	// part installed, stock decremented
	assert.True(t, part.Status().IsInstalled())
	assert.Equal(t, 2, item.QuantityInStock())
}

func TestChangeStatusUseCase_CannotSkipToClosed(t *testing.T) {
	tk := reconstructTicket(t, ticket.StatusOpen, nil, nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	uc := newChangeStatusUseCase(ticketRepo, &mockServiceRepository{}, &mockPartRepository{}, &mockItemRepository{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 1, NewStatus: "closed"})

	assert.True(t, errors.IsInvalidStateError(err))
	assert.Equal(t, ticket.StatusOpen, tk.Status())
}

func TestChangeStatusUseCase_ClosedIsTerminal(t *testing.T) {
	cost := int64(7020)
	now := time.Now().UTC()
	tk, err := ticket.ReconstructTicket(
		1, 7, "1HGBH41JXMN109186", "brake job",
		ticket.StatusClosed, &cost, false, now, now, &now,
		nil, nil, nil,
	)
	require.NoError(t, err)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	uc := newChangeStatusUseCase(ticketRepo, &mockServiceRepository{}, &mockPartRepository{}, &mockItemRepository{})

	_, err = uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 1, NewStatus: "in_progress"})
	assert.True(t, errors.IsInvalidStateError(err))

	_, err = uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 1, NewStatus: "closed"})
	assert.True(t, errors.IsInvalidStateError(err))
}

func TestChangeStatusUseCase_InvalidStatus(t *testing.T) {
	uc := newChangeStatusUseCase(&mockTicketRepository{}, &mockServiceRepository{}, &mockPartRepository{}, &mockItemRepository{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 1, NewStatus: "reopened"})
	assert.True(t, errors.IsValidationError(err))
}
