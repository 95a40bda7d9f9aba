package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/internal/domain/device"
	"fieldserve/internal/domain/inventory"
	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/shared/logger"
)

type capturingHub struct {
	broadcasts []ChangeEvent
}

func (h *capturingHub) Broadcast(event ChangeEvent) {
	h.broadcasts = append(h.broadcasts, event)
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func TestBridge_TranslatesTicketEvents(t *testing.T) {
	hub := &capturingHub{}
	bridge := NewBridge(hub, noopLogger{})
	now := time.Now().UTC()

	tests := []struct {
		name      string
		event     events.DomainEvent
		table     string
		rowID     uint
		operation string
	}{
		{
			name:      "status change maps to ticket update",
			event:     ticket.NewTicketStatusChangedEvent(12, "assigned", "in_progress", 3, now),
			table:     "tickets",
			rowID:     12,
			operation: OperationUpdate,
		},
		{
			name:      "assignment maps to ticket update",
			event:     ticket.NewTicketAssignedEvent(12, 7, 1, now),
			table:     "tickets",
			rowID:     12,
			operation: OperationUpdate,
		},
		{
			name:      "resolution maps to ticket update",
			event:     ticket.NewTicketResolvedEvent(12, 5, 7, now),
			table:     "tickets",
			rowID:     12,
			operation: OperationUpdate,
		},
		{
			name:      "comment maps to comment insert",
			event:     ticket.NewCommentAddedEvent(12, 44, 7, now),
			table:     "ticket_comments",
			rowID:     44,
			operation: OperationInsert,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub.broadcasts = nil

			require.NoError(t, bridge.handle(tt.event))

			require.Len(t, hub.broadcasts, 1)
			change := hub.broadcasts[0]
			assert.Equal(t, tt.table, change.Table)
			assert.Equal(t, tt.rowID, change.RowID)
			assert.Equal(t, tt.operation, change.Operation)
			assert.Equal(t, now.UnixMilli(), change.At)
		})
	}
}

func TestBridge_TranslatesDeviceAndInventoryEvents(t *testing.T) {
	hub := &capturingHub{}
	bridge := NewBridge(hub, noopLogger{})
	now := time.Now().UTC()

	require.NoError(t, bridge.handle(inventory.NewStockChangedEvent(9, "COMP-001", 3, now)))

	require.Len(t, hub.broadcasts, 1)
	assert.Equal(t, "equipment_inventory", hub.broadcasts[0].Table)
	assert.Equal(t, uint(9), hub.broadcasts[0].RowID)
	assert.Equal(t, OperationUpdate, hub.broadcasts[0].Operation)
}

func TestBridge_IgnoresUnknownEvents(t *testing.T) {
	hub := &capturingHub{}
	bridge := NewBridge(hub, noopLogger{})

	unknown := events.BaseEvent{AggregateID: "1", EventType: "something.else", OccurredAt: time.Now()}
	require.NoError(t, bridge.handle(unknown))

	assert.Empty(t, hub.broadcasts)
}

func TestBridge_AttachSubscribesAllTypes(t *testing.T) {
	hub := &capturingHub{}
	bridge := NewBridge(hub, noopLogger{})

	dispatcher := events.NewInMemoryEventDispatcher(16)
	require.NoError(t, bridge.Attach(dispatcher))
	require.NoError(t, dispatcher.Start())
	defer dispatcher.Stop()

	now := time.Now().UTC()
	dev := reconstructDevice(t)
	require.NoError(t, dispatcher.Publish(device.NewDeviceStatusChangedEvent(dev, now)))

	require.Eventually(t, func() bool {
		return len(hub.broadcasts) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "devices", hub.broadcasts[0].Table)
}

func reconstructDevice(t *testing.T) *device.Device {
	t.Helper()
	dev, err := device.ReconstructDevice(
		5, "Fryer", "fryer", "SN-100", "F-2000",
		device.StatusMaintenance, 2, nil,
		time.Now().UTC(), time.Now().UTC(),
	)
	require.NoError(t, err)
	return dev
}
