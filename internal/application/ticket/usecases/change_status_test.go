package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/errors"
)

func TestChangeStatusUseCase_Execute_Schedule(t *testing.T) {
	tk := newPersistedTicket(t)
	require.NoError(t, tk.AssignTo(42))

	var savedEntry *ticket.HistoryEntry
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	historyRepo := &mockHistoryRepository{
		SaveFunc: func(ctx context.Context, entry *ticket.HistoryEntry) error {
			savedEntry = entry
			return nil
		},
	}
	dispatcher := &mockDispatcher{}

	uc := NewChangeStatusUseCase(ticketRepo, historyRepo, dispatcher, noopLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  100,
		NewStatus: "scheduled",
		Notes:     "visit planned for Tuesday morning",
		ChangedBy: 42,
		Role:      authorization.RoleTechnician,
	})

	require.NoError(t, err)
	assert.Equal(t, "assigned", result.OldStatus)
	assert.Equal(t, "scheduled", result.NewStatus)

	// The scheduling note lands in the audit trail.
	require.NotNil(t, savedEntry)
	assert.Equal(t, "visit planned for Tuesday morning", savedEntry.Notes())

	require.Len(t, dispatcher.Published, 1)
	assert.Equal(t, ticket.EventTicketStatusChanged, dispatcher.Published[0].GetEventType())
}

func TestChangeStatusUseCase_Execute_StartProgressStampsFirstResponse(t *testing.T) {
	tk := newPersistedTicket(t)
	require.NoError(t, tk.AssignTo(42))

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewChangeStatusUseCase(ticketRepo, &mockHistoryRepository{}, nil, noopLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  100,
		NewStatus: "in_progress",
		ChangedBy: 42,
		Role:      authorization.RoleTechnician,
	})

	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.NewStatus)
	assert.NotNil(t, tk.FirstResponseAt())
}

func TestChangeStatusUseCase_Execute_NonAssigneeForbidden(t *testing.T) {
	tk := newPersistedTicket(t)
	require.NoError(t, tk.AssignTo(42))

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewChangeStatusUseCase(ticketRepo, &mockHistoryRepository{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  100,
		NewStatus: "in_progress",
		ChangedBy: 7,
		Role:      authorization.RoleTechnician,
	})

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestChangeStatusUseCase_Execute_DedicatedStatusesRejected(t *testing.T) {
	uc := NewChangeStatusUseCase(&mockTicketRepository{}, &mockHistoryRepository{}, nil, noopLogger{})

	for _, status := range []string{"resolved", "closed", "new", "assigned"} {
		_, err := uc.Execute(context.Background(), ChangeStatusCommand{
			TicketID:  100,
			NewStatus: status,
			ChangedBy: 42,
			Role:      authorization.RoleTechnician,
		})
		assert.True(t, errors.IsValidationError(err), "status %s must be rejected", status)
	}
}

func TestChangeStatusUseCase_Execute_OverlongNotes(t *testing.T) {
	tk := newPersistedTicket(t)
	require.NoError(t, tk.AssignTo(42))

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewChangeStatusUseCase(ticketRepo, &mockHistoryRepository{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  100,
		NewStatus: "in_progress",
		Notes:     strings.Repeat("x", 2500),
		ChangedBy: 42,
		Role:      authorization.RoleTechnician,
	})

	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, "assigned", tk.Status().String(), "overlong notes must not advance the ticket")
}

func TestChangeStatusUseCase_Execute_InvalidStatus(t *testing.T) {
	uc := NewChangeStatusUseCase(&mockTicketRepository{}, &mockHistoryRepository{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  100,
		NewStatus: "reopened",
		ChangedBy: 42,
	})

	assert.True(t, errors.IsValidationError(err))
}
