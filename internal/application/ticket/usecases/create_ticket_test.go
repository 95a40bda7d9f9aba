package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/internal/domain/device"
	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/shared/errors"
)

func newTestDevice(t *testing.T) *device.Device {
	t.Helper()
	dev, err := device.NewDevice("Fryer 1", "fryer", "SN-1001", "FryMaster X", 7)
	require.NoError(t, err)
	require.NoError(t, dev.SetID(1))
	return dev
}

func TestCreateTicketUseCase_Execute(t *testing.T) {
	dev := newTestDevice(t)

	var savedTicket *ticket.Ticket
	var updatedDevice *device.Device

	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			savedTicket = tk
			return tk.SetID(100)
		},
	}
	deviceRepo := &mockDeviceRepository{
		GetByIDFunc: func(ctx context.Context, deviceID uint) (*device.Device, error) {
			return dev, nil
		},
		UpdateFunc: func(ctx context.Context, d *device.Device) error {
			updatedDevice = d
			return nil
		},
	}
	dispatcher := &mockDispatcher{}

	uc := NewCreateTicketUseCase(ticketRepo, &mockHistoryRepository{}, deviceRepo, &mockNumberGenerator{}, dispatcher, noopLogger{})

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "Fryer not heating",
		Description: "Left fryer stays cold after power on",
		Priority:    "high",
		DeviceID:    1,
		CreatorID:   10,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(100), result.TicketID)
	assert.Equal(t, "FS-20260101-0001", result.Number)
	assert.Equal(t, "new", result.Status)
	assert.WithinDuration(t, result.CreatedAt.Add(4*time.Hour), result.SLADueTime, time.Second)

	// Restaurant ID comes from the device, not the client.
	assert.Equal(t, uint(7), savedTicket.RestaurantID())

	require.NotNil(t, updatedDevice)
	assert.Equal(t, device.StatusMaintenance, updatedDevice.Status())

	require.Len(t, dispatcher.Published, 1)
	assert.Equal(t, ticket.EventTicketCreated, dispatcher.Published[0].GetEventType())
}

func TestCreateTicketUseCase_Execute_DeviceNotFound(t *testing.T) {
	deviceRepo := &mockDeviceRepository{
		GetByIDFunc: func(ctx context.Context, deviceID uint) (*device.Device, error) {
			return nil, errors.NewNotFoundError("device not found")
		},
	}

	uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockHistoryRepository{}, deviceRepo, &mockNumberGenerator{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "Fryer not heating",
		Description: "desc",
		Priority:    "high",
		DeviceID:    99,
		CreatorID:   10,
	})

	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateTicketUseCase_Execute_InvalidCommand(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockHistoryRepository{}, &mockDeviceRepository{}, &mockNumberGenerator{}, nil, noopLogger{})

	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{"missing title", CreateTicketCommand{Description: "d", Priority: "high", DeviceID: 1, CreatorID: 10}},
		{"missing description", CreateTicketCommand{Title: "t", Priority: "high", DeviceID: 1, CreatorID: 10}},
		{"invalid priority", CreateTicketCommand{Title: "t", Description: "d", Priority: "urgent", DeviceID: 1, CreatorID: 10}},
		{"missing device", CreateTicketCommand{Title: "t", Description: "d", Priority: "high", CreatorID: 10}},
		{"missing creator", CreateTicketCommand{Title: "t", Description: "d", Priority: "high", DeviceID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestCreateTicketUseCase_Execute_RestaurantMismatch(t *testing.T) {
	dev := newTestDevice(t) // belongs to restaurant 7

	deviceRepo := &mockDeviceRepository{
		GetByIDFunc: func(ctx context.Context, deviceID uint) (*device.Device, error) {
			return dev, nil
		},
	}
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			t.Fatal("a mismatched restaurant must not create a ticket")
			return nil
		},
	}

	uc := NewCreateTicketUseCase(ticketRepo, &mockHistoryRepository{}, deviceRepo, &mockNumberGenerator{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:        "Fryer not heating",
		Description:  "desc",
		Priority:     "high",
		DeviceID:     1,
		RestaurantID: 3,
		CreatorID:    10,
	})

	assert.True(t, errors.IsValidationError(err))
}

func TestCreateHelpdeskTicketUseCase_Execute_UsesHelpdeskSLA(t *testing.T) {
	dev := newTestDevice(t)
	deviceRepo := &mockDeviceRepository{
		GetByIDFunc: func(ctx context.Context, deviceID uint) (*device.Device, error) {
			return dev, nil
		},
	}
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return tk.SetID(101)
		},
	}
	dispatcher := &mockDispatcher{}

	uc := NewCreateHelpdeskTicketUseCase(ticketRepo, &mockHistoryRepository{}, deviceRepo, &mockNumberGenerator{}, dispatcher, noopLogger{})

	result, err := uc.Execute(context.Background(), CreateHelpdeskTicketCommand{
		Title:       "POS frozen",
		Description: "Register 2 unresponsive",
		Priority:    "critical",
		DeviceID:    1,
		CreatorID:   10,
	})

	require.NoError(t, err)
	// Helpdesk critical window is one hour, not two.
	assert.WithinDuration(t, result.CreatedAt.Add(time.Hour), result.SLADueTime, time.Second)

	require.Len(t, dispatcher.Published, 1)
	created, ok := dispatcher.Published[0].(ticket.TicketCreatedEvent)
	require.True(t, ok)
	assert.True(t, created.Helpdesk)
}
