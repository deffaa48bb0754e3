package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
)

func TestGetTicketUseCase_Execute(t *testing.T) {
	tk := reconstructTicket(t, ticket.StatusOpen, nil, nil) // owned by customer 7

	var requestedIncludeDeleted bool
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
			requestedIncludeDeleted = includeDeleted
			return tk, nil
		},
	}
	uc := NewGetTicketUseCase(ticketRepo, noopLogger{})

	t.Run("owner reads own ticket", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetTicketQuery{
			TicketID:  1,
			Requester: authorization.Principal{ID: 7, Type: authorization.PrincipalCustomer},
		})

		require.NoError(t, err)
		assert.Equal(t, uint(7), result.Ticket.CustomerID())
	})

	t.Run("another customer is forbidden", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetTicketQuery{
			TicketID:  1,
			Requester: authorization.Principal{ID: 8, Type: authorization.PrincipalCustomer},
		})

		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("any employee may read it", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetTicketQuery{
			TicketID: 1,
			Requester: authorization.Principal{
				ID:   2,
				Type: authorization.PrincipalEmployee,
				Role: authorization.RoleMechanic,
			},
		})

		require.NoError(t, err)
		assert.NotNil(t, result.Ticket)
	})

	t.Run("include deleted is dropped for customers", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetTicketQuery{
			TicketID:       1,
			Requester:      authorization.Principal{ID: 7, Type: authorization.PrincipalCustomer},
			IncludeDeleted: true,
		})

		require.NoError(t, err)
		assert.False(t, requestedIncludeDeleted)
	})
}

func TestGetTicketUseCase_NotFound(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}
	uc := NewGetTicketUseCase(ticketRepo, noopLogger{})

	_, err := uc.Execute(context.Background(), GetTicketQuery{
		TicketID:  5,
		Requester: authorization.Principal{ID: 2, Type: authorization.PrincipalEmployee, Role: authorization.RoleManager},
	})
	assert.True(t, errors.IsNotFoundError(err))
}
