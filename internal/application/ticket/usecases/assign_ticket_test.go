package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/internal/domain/ticket"
	vo "fieldserve/internal/domain/ticket/valueobjects"
	"fieldserve/internal/domain/user"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/errors"
)

func newTestUser(t *testing.T, id uint, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.NewUser("tech@example.com", "hashed", "Alex Tech", "", role, nil)
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func newPersistedTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("Fryer not heating", "Left fryer stays cold", vo.PriorityHigh, 1, 7, 10)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(100))
	require.NoError(t, tk.SetNumber("FS-20260101-0001"))
	return tk
}

func TestAssignTicketUseCase_Execute(t *testing.T) {
	tk := newPersistedTicket(t)
	technician := newTestUser(t, 42, authorization.RoleTechnician)

	var updated *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			updated = t
			return nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return technician, nil },
	}
	dispatcher := &mockDispatcher{}

	uc := NewAssignTicketUseCase(ticketRepo, &mockHistoryRepository{}, userRepo, dispatcher, noopLogger{})

	result, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID:     100,
		AssigneeID:   42,
		AssignedBy:   1,
		AssignerRole: authorization.RoleManager,
	})

	require.NoError(t, err)
	assert.Equal(t, "assigned", result.Status)
	require.NotNil(t, updated)
	assert.Equal(t, uint(42), *updated.AssigneeID())

	require.Len(t, dispatcher.Published, 1)
	assert.Equal(t, ticket.EventTicketAssigned, dispatcher.Published[0].GetEventType())
}

func TestAssignTicketUseCase_Execute_SelfAssign(t *testing.T) {
	tk := newPersistedTicket(t)
	technician := newTestUser(t, 42, authorization.RoleTechnician)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return technician, nil },
	}

	uc := NewAssignTicketUseCase(ticketRepo, &mockHistoryRepository{}, userRepo, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID:     100,
		AssigneeID:   42,
		AssignedBy:   42,
		AssignerRole: authorization.RoleTechnician,
	})

	assert.NoError(t, err)
}

func TestAssignTicketUseCase_Execute_ManagerSelfAssign(t *testing.T) {
	tk := newPersistedTicket(t)
	manager := newTestUser(t, 8, authorization.RoleManager)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return manager, nil },
	}

	uc := NewAssignTicketUseCase(ticketRepo, &mockHistoryRepository{}, userRepo, nil, noopLogger{})

	result, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID:     100,
		AssigneeID:   8,
		AssignedBy:   8,
		AssignerRole: authorization.RoleManager,
	})

	require.NoError(t, err)
	assert.Equal(t, "assigned", result.Status)
}

func TestAssignTicketUseCase_Execute_NonManagerAssigningOther(t *testing.T) {
	uc := NewAssignTicketUseCase(&mockTicketRepository{}, &mockHistoryRepository{}, &mockUserRepository{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID:     100,
		AssigneeID:   42,
		AssignedBy:   7,
		AssignerRole: authorization.RoleTechnician,
	})

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestAssignTicketUseCase_Execute_InactiveAssignee(t *testing.T) {
	technician := newTestUser(t, 42, authorization.RoleTechnician)
	technician.Deactivate()

	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return technician, nil },
	}

	uc := NewAssignTicketUseCase(&mockTicketRepository{}, &mockHistoryRepository{}, userRepo, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID:     100,
		AssigneeID:   42,
		AssignedBy:   1,
		AssignerRole: authorization.RoleAdmin,
	})

	assert.True(t, errors.IsValidationError(err))
}

func TestAssignTicketUseCase_Execute_NonFieldAssignee(t *testing.T) {
	staff := newTestUser(t, 42, authorization.RoleWarehouse)

	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return staff, nil },
	}

	uc := NewAssignTicketUseCase(&mockTicketRepository{}, &mockHistoryRepository{}, userRepo, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID:     100,
		AssigneeID:   42,
		AssignedBy:   1,
		AssignerRole: authorization.RoleAdmin,
	})

	assert.True(t, errors.IsValidationError(err))
}
