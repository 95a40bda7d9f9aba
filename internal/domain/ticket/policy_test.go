package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "fieldserve/internal/domain/ticket/valueobjects"
	"fieldserve/internal/shared/authorization"
)

func TestCanTransition(t *testing.T) {
	assigned := newTestTicket(t, vo.PriorityMedium)
	require.NoError(t, assigned.AssignTo(42))

	unassigned := newTestTicket(t, vo.PriorityMedium)

	tests := []struct {
		name    string
		actor   Actor
		ticket  *Ticket
		target  vo.TicketStatus
		wantErr bool
	}{
		{
			name:   "anyone may move to assigned",
			actor:  Actor{ID: 99, Role: authorization.RoleRestaurantStaff},
			ticket: unassigned,
			target: vo.StatusAssigned,
		},
		{
			name:   "assignee starts progress",
			actor:  Actor{ID: 42, Role: authorization.RoleTechnician},
			ticket: assigned,
			target: vo.StatusInProgress,
		},
		{
			name:   "admin advances any ticket",
			actor:  Actor{ID: 1, Role: authorization.RoleAdmin},
			ticket: assigned,
			target: vo.StatusResolved,
		},
		{
			name:    "non-assignee technician rejected",
			actor:   Actor{ID: 7, Role: authorization.RoleTechnician},
			ticket:  assigned,
			target:  vo.StatusInProgress,
			wantErr: true,
		},
		{
			name:    "unassigned ticket cannot advance",
			actor:   Actor{ID: 42, Role: authorization.RoleTechnician},
			ticket:  unassigned,
			target:  vo.StatusInProgress,
			wantErr: true,
		},
		{
			name:   "anyone may close",
			actor:  Actor{ID: 10, Role: authorization.RoleRestaurantStaff},
			ticket: assigned,
			target: vo.StatusClosed,
		},
		{
			name:    "zero actor rejected",
			actor:   Actor{ID: 0, Role: authorization.RoleAdmin},
			ticket:  assigned,
			target:  vo.StatusInProgress,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.actor, tt.ticket, tt.target)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanTransition_UnassignedReturnsErrNotAssigned(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityMedium)
	err := CanTransition(Actor{ID: 42, Role: authorization.RoleTechnician}, tk, vo.StatusInProgress)
	assert.ErrorIs(t, err, ErrNotAssigned)
}

func TestCanAssignOther(t *testing.T) {
	assert.True(t, CanAssignOther(Actor{ID: 1, Role: authorization.RoleAdmin}))
	assert.True(t, CanAssignOther(Actor{ID: 2, Role: authorization.RoleManager}))
	assert.False(t, CanAssignOther(Actor{ID: 3, Role: authorization.RoleTechnician}))
	assert.False(t, CanAssignOther(Actor{ID: 4, Role: authorization.RoleRestaurantStaff}))
}

func TestTicket_CanBeViewedBy(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityMedium)
	require.NoError(t, tk.AssignTo(42))

	// Creator is user 10 (newTestTicket).
	assert.True(t, tk.CanBeViewedBy(10, authorization.RoleRestaurantStaff))
	assert.True(t, tk.CanBeViewedBy(42, authorization.RoleRestaurantStaff))
	assert.True(t, tk.CanBeViewedBy(1, authorization.RoleAdmin))
	assert.True(t, tk.CanBeViewedBy(5, authorization.RoleTechnician))
	assert.False(t, tk.CanBeViewedBy(99, authorization.RoleRestaurantStaff))
}
