package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/employee"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
)

func reconstructMechanic(t *testing.T, id uint) *employee.Employee {
	t.Helper()
	now := time.Now().UTC()
	e, err := employee.ReconstructEmployee(
		id, "Sam Ortiz", "sam@shop.test", "555-0199", "hash",
		authorization.RoleMechanic, 5200000, now, now,
	)
	require.NoError(t, err)
	return e
}

func reconstructTicketWithMechanics(t *testing.T, mechanicIDs []uint) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ticket.ReconstructTicket(
		1, 7, "1HGBH41JXMN109186", "brake inspection",
		ticket.StatusOpen, nil, false, now, now, nil,
		mechanicIDs, nil, nil,
	)
	require.NoError(t, err)
	return tk
}

func TestAttachMechanicUseCase_Execute(t *testing.T) {
	tk := reconstructTicketWithMechanics(t, nil)

	var addedEmployeeID uint
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
			return tk, nil
		},
		AddMechanicFunc: func(ctx context.Context, ticketID, employeeID uint) error {
			addedEmployeeID = employeeID
			return nil
		},
	}
	employeeRepo := &mockEmployeeRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*employee.Employee, error) {
			return reconstructMechanic(t, id), nil
		},
	}
	uc := NewAttachMechanicUseCase(ticketRepo, employeeRepo, noopLogger{})

	err := uc.Execute(context.Background(), AttachMechanicCommand{TicketID: 1, EmployeeID: 5})

	require.NoError(t, err)
	assert.Equal(t, uint(5), addedEmployeeID)
}

func TestAttachMechanicUseCase_AlreadyAssignedIsNoop(t *testing.T) {
	tk := reconstructTicketWithMechanics(t, []uint{5})

	addCalled := false
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
			return tk, nil
		},
		AddMechanicFunc: func(ctx context.Context, ticketID, employeeID uint) error {
			addCalled = true
			return nil
		},
	}
	employeeRepo := &mockEmployeeRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*employee.Employee, error) {
			return reconstructMechanic(t, id), nil
		},
	}
	uc := NewAttachMechanicUseCase(ticketRepo, employeeRepo, noopLogger{})

	err := uc.Execute(context.Background(), AttachMechanicCommand{TicketID: 1, EmployeeID: 5})

	require.NoError(t, err)
	assert.False(t, addCalled)
}

func TestAttachMechanicUseCase_UnknownEmployee(t *testing.T) {
	tk := reconstructTicketWithMechanics(t, nil)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	employeeRepo := &mockEmployeeRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*employee.Employee, error) {
			return nil, errors.NewNotFoundError("employee not found")
		},
	}
	uc := NewAttachMechanicUseCase(ticketRepo, employeeRepo, noopLogger{})

	err := uc.Execute(context.Background(), AttachMechanicCommand{TicketID: 1, EmployeeID: 99})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDetachMechanicUseCase_NotAssigned(t *testing.T) {
	tk := reconstructTicketWithMechanics(t, nil)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	uc := NewDetachMechanicUseCase(ticketRepo, noopLogger{})

	err := uc.Execute(context.Background(), DetachMechanicCommand{TicketID: 1, EmployeeID: 5})
	assert.True(t, errors.IsNotFoundError(err))
}
