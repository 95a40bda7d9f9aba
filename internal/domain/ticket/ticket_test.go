package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "fieldserve/internal/domain/ticket/valueobjects"
)

func newTestTicket(t *testing.T, priority vo.Priority) *Ticket {
	t.Helper()
	tk, err := NewTicket("Fryer not heating", "Left fryer stays cold after power on", priority, 1, 1, 10)
	require.NoError(t, err)
	return tk
}

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		priority    vo.Priority
		deviceID    uint
		creatorID   uint
		wantErr     bool
		errContains string
	}{
		{
			name:        "valid ticket",
			title:       "Fryer not heating",
			description: "Left fryer stays cold",
			priority:    vo.PriorityHigh,
			deviceID:    1,
			creatorID:   10,
			wantErr:     false,
		},
		{
			name:        "empty title",
			title:       "",
			description: "Left fryer stays cold",
			priority:    vo.PriorityHigh,
			deviceID:    1,
			creatorID:   10,
			wantErr:     true,
			errContains: "title is required",
		},
		{
			name:        "empty description",
			title:       "Fryer not heating",
			description: "",
			priority:    vo.PriorityHigh,
			deviceID:    1,
			creatorID:   10,
			wantErr:     true,
			errContains: "description is required",
		},
		{
			name:        "invalid priority",
			title:       "Fryer not heating",
			description: "Left fryer stays cold",
			priority:    vo.Priority("urgent"),
			deviceID:    1,
			creatorID:   10,
			wantErr:     true,
			errContains: "invalid priority",
		},
		{
			name:        "missing device",
			title:       "Fryer not heating",
			description: "Left fryer stays cold",
			priority:    vo.PriorityHigh,
			deviceID:    0,
			creatorID:   10,
			wantErr:     true,
			errContains: "device ID is required",
		},
		{
			name:        "missing creator",
			title:       "Fryer not heating",
			description: "Left fryer stays cold",
			priority:    vo.PriorityHigh,
			deviceID:    1,
			creatorID:   0,
			wantErr:     true,
			errContains: "creator ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.title, tt.description, tt.priority, tt.deviceID, 1, tt.creatorID)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, tk)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusNew, tk.Status())
			assert.Equal(t, 1, tk.Version())
			assert.Nil(t, tk.AssigneeID())
			assert.Empty(t, tk.Photos())
		})
	}
}

func TestNewTicket_SLADueTimeOrdering(t *testing.T) {
	// Higher priority must always produce an earlier due time when tickets
	// are created at effectively the same instant.
	critical := newTestTicket(t, vo.PriorityCritical)
	high := newTestTicket(t, vo.PriorityHigh)
	medium := newTestTicket(t, vo.PriorityMedium)
	low := newTestTicket(t, vo.PriorityLow)

	assert.True(t, critical.SLADueTime().Before(high.SLADueTime()))
	assert.True(t, high.SLADueTime().Before(medium.SLADueTime()))
	assert.True(t, medium.SLADueTime().Before(low.SLADueTime()))
}

func TestNewTicket_SLAOffsets(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityCritical)
	assert.WithinDuration(t, tk.CreatedAt().Add(2*time.Hour), tk.SLADueTime(), time.Second)

	hd, err := NewHelpdeskTicket("POS frozen", "Register 2 unresponsive", vo.PriorityCritical, 1, 1, 10)
	require.NoError(t, err)
	assert.WithinDuration(t, hd.CreatedAt().Add(time.Hour), hd.SLADueTime(), time.Second)
}

func TestTicket_AssignTo(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityMedium)

	err := tk.AssignTo(42)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusAssigned, tk.Status())
	require.NotNil(t, tk.AssigneeID())
	assert.Equal(t, uint(42), *tk.AssigneeID())
	assert.NotNil(t, tk.AssignedAt())

	// Reassignment while still assigned keeps the status.
	err = tk.AssignTo(43)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusAssigned, tk.Status())
	assert.Equal(t, uint(43), *tk.AssigneeID())
}

func TestTicket_AssignTo_RejectedPastAssignment(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityMedium)
	require.NoError(t, tk.AssignTo(42))
	require.NoError(t, tk.StartProgress())

	err := tk.AssignTo(43)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot reassign")
}

func TestTicket_Lifecycle(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityMedium)

	require.NoError(t, tk.AssignTo(42))
	require.NoError(t, tk.Schedule())
	assert.Equal(t, vo.StatusScheduled, tk.Status())

	require.NoError(t, tk.StartProgress())
	assert.Equal(t, vo.StatusInProgress, tk.Status())

	require.NoError(t, tk.Resolve("Replaced heating element"))
	assert.Equal(t, vo.StatusResolved, tk.Status())
	assert.Equal(t, "Replaced heating element", tk.Resolution())
	assert.NotNil(t, tk.ResolvedAt())

	require.NoError(t, tk.Close())
	assert.Equal(t, vo.StatusClosed, tk.Status())
	assert.NotNil(t, tk.ClosedAt())
}

func TestTicket_SkipSchedule(t *testing.T) {
	// Scheduling is optional; assigned may go straight to in_progress.
	tk := newTestTicket(t, vo.PriorityMedium)
	require.NoError(t, tk.AssignTo(42))
	require.NoError(t, tk.StartProgress())
	assert.Equal(t, vo.StatusInProgress, tk.Status())
}

func TestTicket_TransitionRequiresAssignee(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityMedium)

	err := tk.StartProgress()
	assert.ErrorIs(t, err, ErrNotAssigned)

	err = tk.Resolve("done")
	assert.ErrorIs(t, err, ErrNotAssigned)
}

func TestTicket_NoBackwardTransitions(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityMedium)
	require.NoError(t, tk.AssignTo(42))
	require.NoError(t, tk.StartProgress())

	err := tk.Schedule()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot transition")
}

func TestTicket_Resolve_Replay(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityMedium)
	require.NoError(t, tk.AssignTo(42))
	require.NoError(t, tk.StartProgress())
	require.NoError(t, tk.Resolve("Replaced heating element"))

	versionAfterResolve := tk.Version()

	// A replayed resolve must not change state.
	err := tk.Resolve("Replaced heating element")
	assert.ErrorIs(t, err, ErrAlreadyResolved)
	assert.Equal(t, "Replaced heating element", tk.Resolution())
	assert.Equal(t, versionAfterResolve, tk.Version())
}

func TestTicket_Resolve_RequiresResolution(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityMedium)
	require.NoError(t, tk.AssignTo(42))
	require.NoError(t, tk.StartProgress())

	err := tk.Resolve("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resolution is required")
}

func TestTicket_Close_Idempotent(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityMedium)
	require.NoError(t, tk.AssignTo(42))
	require.NoError(t, tk.StartProgress())
	require.NoError(t, tk.Resolve("done"))
	require.NoError(t, tk.Close())

	closedAt := tk.ClosedAt()
	require.NoError(t, tk.Close())
	assert.Equal(t, closedAt, tk.ClosedAt())
}

func TestTicket_Close_RequiresResolved(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityMedium)
	require.NoError(t, tk.AssignTo(42))

	err := tk.Close()
	assert.Error(t, err)
}

func TestTicket_AddPhoto(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityMedium)

	require.NoError(t, tk.AddPhoto("tickets/1/a.jpg"))
	require.NoError(t, tk.AddPhoto("tickets/1/b.jpg"))
	assert.Equal(t, []string{"tickets/1/a.jpg", "tickets/1/b.jpg"}, tk.Photos())

	err := tk.AddPhoto("")
	assert.Error(t, err)
}

func TestTicket_MarkFirstResponse_Once(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityMedium)

	tk.MarkFirstResponse()
	first := tk.FirstResponseAt()
	require.NotNil(t, first)

	tk.MarkFirstResponse()
	assert.Equal(t, first, tk.FirstResponseAt())
}

func TestTicket_IsOverdue(t *testing.T) {
	past := time.Now().UTC().Add(-time.Hour)
	tk, err := ReconstructTicket(
		1, "FS-20260101-0001", "Fryer not heating", "desc",
		vo.PriorityHigh, vo.StatusNew,
		1, 1, 10, nil, nil, "",
		past, nil, nil, nil, nil,
		1, past.Add(-4*time.Hour), past,
	)
	require.NoError(t, err)
	assert.True(t, tk.IsOverdue())

	// Resolved tickets are never overdue.
	resolvedAt := past
	resolved, err := ReconstructTicket(
		2, "FS-20260101-0002", "Fryer not heating", "desc",
		vo.PriorityHigh, vo.StatusResolved,
		1, 1, 10, ptrUint(42), nil, "fixed",
		past, nil, &past, &resolvedAt, nil,
		3, past.Add(-4*time.Hour), past,
	)
	require.NoError(t, err)
	assert.False(t, resolved.IsOverdue())
}

func ptrUint(v uint) *uint {
	return &v
}
