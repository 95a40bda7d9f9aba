package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/errors"
)

func newResolvedTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	tk := newInProgressTicket(t)
	require.NoError(t, tk.Resolve("Replaced heating element"))
	return tk
}

func TestCloseTicketUseCase_Execute(t *testing.T) {
	tk := newResolvedTicket(t)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	dispatcher := &mockDispatcher{}

	uc := NewCloseTicketUseCase(ticketRepo, &mockHistoryRepository{}, dispatcher, noopLogger{})

	result, err := uc.Execute(context.Background(), CloseTicketCommand{
		TicketID: 100,
		Notes:    "confirmed working by site manager",
		ClosedBy: 10,
		Role:     authorization.RoleRestaurantStaff,
	})

	require.NoError(t, err)
	assert.Equal(t, "closed", result.Status)
	assert.NotNil(t, tk.ClosedAt())
	require.Len(t, dispatcher.Published, 1)
}

func TestCloseTicketUseCase_Execute_AlreadyClosed(t *testing.T) {
	tk := newResolvedTicket(t)
	require.NoError(t, tk.Close())

	var updateCalled bool
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			updateCalled = true
			return nil
		},
	}

	uc := NewCloseTicketUseCase(ticketRepo, &mockHistoryRepository{}, nil, noopLogger{})

	result, err := uc.Execute(context.Background(), CloseTicketCommand{
		TicketID: 100,
		ClosedBy: 10,
		Role:     authorization.RoleRestaurantStaff,
	})

	require.NoError(t, err)
	assert.Equal(t, "closed", result.Status)
	assert.False(t, updateCalled, "closing a closed ticket must be a no-op")
}

func TestCloseTicketUseCase_Execute_NotResolved(t *testing.T) {
	tk := newPersistedTicket(t)
	require.NoError(t, tk.AssignTo(42))

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewCloseTicketUseCase(ticketRepo, &mockHistoryRepository{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), CloseTicketCommand{
		TicketID: 100,
		ClosedBy: 10,
		Role:     authorization.RoleRestaurantStaff,
	})

	assert.True(t, errors.IsConflictError(err))
}
