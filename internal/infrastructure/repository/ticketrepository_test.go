package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/customer"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/query"
)

type ticketFixture struct {
	db         *gorm.DB
	tickets    ticket.Repository
	customerID uint
	partID     uint
}

func newTicketFixture(t *testing.T) *ticketFixture {
	t.Helper()
	db := setupTestDB(t)
	ctx := context.Background()

	customers := NewCustomerRepository(db, noopLogger{})
	c, err := customer.NewCustomer("Dana Reeve", "dana@example.com", "555-0101", "hash")
	require.NoError(t, err)
	require.NoError(t, customers.Save(ctx, c))

	items := NewInventoryItemRepository(db, noopLogger{})
	item, err := inventory.NewItem("Brake pad set", "INV-100", "", 4500, 4)
	require.NoError(t, err)
	require.NoError(t, items.Save(ctx, item))

	parts := NewSerializedPartRepository(db, noopLogger{})
	part, err := inventory.NewSerializedPart("SN-0001", item.ID())
	require.NoError(t, err)
	require.NoError(t, parts.Save(ctx, part))

	return &ticketFixture{
		db:         db,
		tickets:    NewTicketRepository(db, noopLogger{}),
		customerID: c.ID(),
		partID:     part.ID(),
	}
}

func (f *ticketFixture) newTicket(t *testing.T, vin string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(f.customerID, vin, "diagnose noise")
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_SaveWithAssociations(t *testing.T) {
	f := newTicketFixture(t)
	ctx := context.Background()

	tk := f.newTicket(t, "1HGBH41JXMN109186")
	require.NoError(t, tk.AttachPart(f.partID))

	require.NoError(t, f.tickets.Save(ctx, tk))
	assert.NotZero(t, tk.ID())

	found, err := f.tickets.GetByID(ctx, tk.ID(), false)
	require.NoError(t, err)
	assert.Equal(t, f.customerID, found.CustomerID())
	assert.Equal(t, []uint{f.partID}, found.PartIDs())
	assert.Empty(t, found.MechanicIDs())
	assert.Empty(t, found.ServiceIDs())
}

func TestTicketRepository_ActiveTicketIDForPart(t *testing.T) {
	f := newTicketFixture(t)
	ctx := context.Background()

	t.Run("unattached part is free", func(t *testing.T) {
		_, held, err := f.tickets.ActiveTicketIDForPart(ctx, f.partID)
		require.NoError(t, err)
		assert.False(t, held)
	})

	tk := f.newTicket(t, "1HGBH41JXMN109186")
	require.NoError(t, tk.AttachPart(f.partID))
	require.NoError(t, f.tickets.Save(ctx, tk))

	t.Run("part held by open ticket", func(t *testing.T) {
		holderID, held, err := f.tickets.ActiveTicketIDForPart(ctx, f.partID)
		require.NoError(t, err)
		assert.True(t, held)
		assert.Equal(t, tk.ID(), holderID)
	})

	t.Run("closed ticket releases the hold", func(t *testing.T) {
		require.NoError(t, tk.TransitionTo(ticket.StatusInProgress))
		require.NoError(t, f.tickets.Update(ctx, tk))
		require.NoError(t, tk.Close(4500))
		require.NoError(t, f.tickets.Update(ctx, tk))

		_, held, err := f.tickets.ActiveTicketIDForPart(ctx, f.partID)
		require.NoError(t, err)
		assert.False(t, held)
	})
}

func TestTicketRepository_UpdatePersistsClose(t *testing.T) {
	f := newTicketFixture(t)
	ctx := context.Background()

	tk := f.newTicket(t, "2T1BURHE0JC014906")
	require.NoError(t, f.tickets.Save(ctx, tk))

	require.NoError(t, tk.TransitionTo(ticket.StatusInProgress))
	require.NoError(t, f.tickets.Update(ctx, tk))
	require.NoError(t, tk.Close(7020))
	require.NoError(t, f.tickets.Update(ctx, tk))

	found, err := f.tickets.GetByID(ctx, tk.ID(), false)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusClosed, found.Status())
	require.NotNil(t, found.TotalCostCents())
	assert.EqualValues(t, 7020, *found.TotalCostCents())
	assert.NotNil(t, found.ClosedAt())
}

func TestTicketRepository_SoftDeleteVisibility(t *testing.T) {
	f := newTicketFixture(t)
	ctx := context.Background()

	tk := f.newTicket(t, "3VWFE21C04M000001")
	require.NoError(t, f.tickets.Save(ctx, tk))

	require.NoError(t, tk.SoftDelete())
	require.NoError(t, f.tickets.Update(ctx, tk))

	_, err := f.tickets.GetByID(ctx, tk.ID(), false)
	assert.True(t, errors.IsNotFoundError(err))

	found, err := f.tickets.GetByID(ctx, tk.ID(), true)
	require.NoError(t, err)
	assert.True(t, found.IsDeleted())
}

func TestTicketRepository_List(t *testing.T) {
	f := newTicketFixture(t)
	ctx := context.Background()

	open := f.newTicket(t, "1HGBH41JXMN109186")
	require.NoError(t, f.tickets.Save(ctx, open))

	working := f.newTicket(t, "2T1BURHE0JC014906")
	require.NoError(t, f.tickets.Save(ctx, working))
	require.NoError(t, working.TransitionTo(ticket.StatusInProgress))
	require.NoError(t, f.tickets.Update(ctx, working))

	deleted := f.newTicket(t, "3VWFE21C04M000001")
	require.NoError(t, f.tickets.Save(ctx, deleted))
	require.NoError(t, deleted.SoftDelete())
	require.NoError(t, f.tickets.Update(ctx, deleted))

	t.Run("default list hides deleted", func(t *testing.T) {
		results, total, err := f.tickets.List(ctx, ticket.Filter{BaseFilter: query.NewBaseFilter()})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, results, 2)
	})

	t.Run("status filter", func(t *testing.T) {
		status := ticket.StatusInProgress
		results, total, err := f.tickets.List(ctx, ticket.Filter{
			BaseFilter: query.NewBaseFilter(),
			Status:     &status,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, results, 1)
		assert.Equal(t, working.ID(), results[0].ID())
	})

	t.Run("include deleted", func(t *testing.T) {
		_, total, err := f.tickets.List(ctx, ticket.Filter{
			BaseFilter:     query.NewBaseFilter(),
			IncludeDeleted: true,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
	})

	t.Run("customer filter", func(t *testing.T) {
		other := uint(9999)
		_, total, err := f.tickets.List(ctx, ticket.Filter{
			BaseFilter: query.NewBaseFilter(),
			CustomerID: &other,
		})
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestTicketRepository_AssociationOps(t *testing.T) {
	f := newTicketFixture(t)
	ctx := context.Background()

	tk := f.newTicket(t, "1HGBH41JXMN109186")
	require.NoError(t, f.tickets.Save(ctx, tk))

	require.NoError(t, f.tickets.AddPart(ctx, tk.ID(), f.partID))

	found, err := f.tickets.GetByID(ctx, tk.ID(), false)
	require.NoError(t, err)
	assert.Equal(t, []uint{f.partID}, found.PartIDs())

	require.NoError(t, f.tickets.RemovePart(ctx, tk.ID(), f.partID))

	found, err = f.tickets.GetByID(ctx, tk.ID(), false)
	require.NoError(t, err)
	assert.Empty(t, found.PartIDs())
}
