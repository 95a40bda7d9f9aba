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

func TestAddCommentUseCase_Execute(t *testing.T) {
	tk := newPersistedTicket(t)
	require.NoError(t, tk.AssignTo(42))

	var saved *ticket.Comment
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	commentRepo := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
			saved = c
			return c.SetID(500)
		},
	}
	dispatcher := &mockDispatcher{}

	uc := NewAddCommentUseCase(ticketRepo, commentRepo, dispatcher, noopLogger{})

	result, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketID: 100,
		UserID:   42,
		Role:     authorization.RoleTechnician,
		Content:  "On my way, ETA 30 minutes",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(500), result.CommentID)
	require.NotNil(t, saved)
	assert.Equal(t, "On my way, ETA 30 minutes", saved.Content())

	// The technician's first comment stamps first response.
	assert.NotNil(t, tk.FirstResponseAt())

	require.Len(t, dispatcher.Published, 1)
	assert.Equal(t, ticket.EventCommentAdded, dispatcher.Published[0].GetEventType())
}

func TestAddCommentUseCase_Execute_CreatorCommentNoFirstResponse(t *testing.T) {
	tk := newPersistedTicket(t)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	commentRepo := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, c *ticket.Comment) error { return c.SetID(500) },
	}

	uc := NewAddCommentUseCase(ticketRepo, commentRepo, nil, noopLogger{})

	// Creator of newPersistedTicket is user 10.
	_, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketID: 100,
		UserID:   10,
		Role:     authorization.RoleRestaurantStaff,
		Content:  "Any update?",
	})

	require.NoError(t, err)
	assert.Nil(t, tk.FirstResponseAt())
}

func TestAddCommentUseCase_Execute_NoAccess(t *testing.T) {
	tk := newPersistedTicket(t)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewAddCommentUseCase(ticketRepo, &mockCommentRepository{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketID: 100,
		UserID:   99,
		Role:     authorization.RoleRestaurantStaff,
		Content:  "hello",
	})

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestAddCommentUseCase_Execute_EmptyContent(t *testing.T) {
	uc := NewAddCommentUseCase(&mockTicketRepository{}, &mockCommentRepository{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketID: 100,
		UserID:   42,
		Content:  "",
	})

	assert.True(t, errors.IsValidationError(err))
}
