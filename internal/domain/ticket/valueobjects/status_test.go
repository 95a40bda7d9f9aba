package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from TicketStatus
		to   TicketStatus
		want bool
	}{
		{"new to assigned", StatusNew, StatusAssigned, true},
		{"new to in_progress", StatusNew, StatusInProgress, false},
		{"assigned to scheduled", StatusAssigned, StatusScheduled, true},
		{"assigned to in_progress", StatusAssigned, StatusInProgress, true},
		{"assigned to resolved", StatusAssigned, StatusResolved, false},
		{"scheduled to in_progress", StatusScheduled, StatusInProgress, true},
		{"scheduled back to assigned", StatusScheduled, StatusAssigned, false},
		{"in_progress to resolved", StatusInProgress, StatusResolved, true},
		{"in_progress back to scheduled", StatusInProgress, StatusScheduled, false},
		{"resolved to closed", StatusResolved, StatusClosed, true},
		{"resolved back to in_progress", StatusResolved, StatusInProgress, false},
		{"closed is terminal", StatusClosed, StatusNew, false},
		{"closed to closed", StatusClosed, StatusClosed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTicketStatus_IsPastAssignment(t *testing.T) {
	assert.False(t, StatusNew.IsPastAssignment())
	assert.False(t, StatusAssigned.IsPastAssignment())
	assert.True(t, StatusScheduled.IsPastAssignment())
	assert.True(t, StatusInProgress.IsPastAssignment())
	assert.True(t, StatusResolved.IsPastAssignment())
	assert.True(t, StatusClosed.IsPastAssignment())
}

func TestNewTicketStatus(t *testing.T) {
	status, err := NewTicketStatus("in_progress")
	assert.NoError(t, err)
	assert.Equal(t, StatusInProgress, status)

	_, err = NewTicketStatus("reopened")
	assert.Error(t, err)
}
