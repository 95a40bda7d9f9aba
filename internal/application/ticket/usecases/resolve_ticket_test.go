package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/internal/domain/device"
	"fieldserve/internal/domain/inventory"
	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/errors"
)

func newTestItem(t *testing.T, id uint, stock int) *inventory.Item {
	t.Helper()
	item, err := inventory.NewItem("Heating element", "HE-230V", "fryer_parts", stock, 1, 20, "A-03", "Acme Parts", 45.50)
	require.NoError(t, err)
	require.NoError(t, item.SetID(id))
	return item
}

func newInProgressTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	tk := newPersistedTicket(t)
	require.NoError(t, tk.AssignTo(42))
	require.NoError(t, tk.StartProgress())
	return tk
}

func newResolveUseCase(
	ticketRepo *mockTicketRepository,
	interventionRepo *mockInterventionRepository,
	itemRepo *mockItemRepository,
	usageRepo *mockUsageRepository,
	deviceRepo *mockDeviceRepository,
	dispatcher *mockDispatcher,
) *ResolveTicketUseCase {
	return NewResolveTicketUseCase(
		ticketRepo,
		&mockHistoryRepository{},
		interventionRepo,
		itemRepo,
		usageRepo,
		deviceRepo,
		passthroughTxManager{},
		dispatcher,
		noopLogger{},
	)
}

func TestResolveTicketUseCase_Execute(t *testing.T) {
	tk := newInProgressTicket(t)
	item := newTestItem(t, 5, 4)
	dev, err := device.NewDevice("Fryer 1", "fryer", "SN-1001", "FryMaster X", 7)
	require.NoError(t, err)
	require.NoError(t, dev.SetID(1))
	dev.EnterMaintenance()

	var savedUsage *inventory.UsageRecord
	var savedIntervention *ticket.Intervention

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	interventionRepo := &mockInterventionRepository{
		SaveFunc: func(ctx context.Context, iv *ticket.Intervention) error {
			savedIntervention = iv
			return iv.SetID(200)
		},
	}
	itemRepo := &mockItemRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*inventory.Item, error) { return item, nil },
	}
	usageRepo := &mockUsageRepository{
		SaveFunc: func(ctx context.Context, record *inventory.UsageRecord) error {
			savedUsage = record
			return record.SetID(300)
		},
	}
	deviceRepo := &mockDeviceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*device.Device, error) { return dev, nil },
	}
	dispatcher := &mockDispatcher{}

	uc := newResolveUseCase(ticketRepo, interventionRepo, itemRepo, usageRepo, deviceRepo, dispatcher)

	result, err := uc.Execute(context.Background(), ResolveTicketCommand{
		TicketID:      100,
		Resolution:    "Replaced heating element",
		WorkPerformed: "Swapped failed element, verified temperature",
		RootCause:     "Burned out element",
		MinutesSpent:  45,
		Parts:         []PartUsage{{ItemID: 5, Quantity: 2}},
		ResolvedBy:    42,
		Role:          authorization.RoleTechnician,
	})

	require.NoError(t, err)
	assert.Equal(t, "resolved", result.Status)
	assert.Equal(t, uint(200), result.InterventionID)
	assert.Equal(t, 91.0, result.TotalCost)
	assert.False(t, result.Replayed)

	// Stock dropped inside the transaction.
	assert.Equal(t, 2, item.Stock())

	require.NotNil(t, savedUsage)
	assert.Equal(t, 2, savedUsage.Quantity())
	assert.Equal(t, uint(100), savedUsage.TicketID())

	require.NotNil(t, savedIntervention)
	assert.Equal(t, 91.0, savedIntervention.TotalCost())

	// Device returned to operational with a maintenance stamp.
	assert.Equal(t, device.StatusOperational, dev.Status())
	assert.NotNil(t, dev.LastMaintenanceAt())

	require.Len(t, dispatcher.Published, 1)
	assert.Equal(t, ticket.EventTicketResolved, dispatcher.Published[0].GetEventType())
}

func TestResolveTicketUseCase_Execute_InsufficientStock(t *testing.T) {
	tk := newInProgressTicket(t)
	item := newTestItem(t, 5, 1)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	itemRepo := &mockItemRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*inventory.Item, error) { return item, nil },
	}

	uc := newResolveUseCase(ticketRepo, &mockInterventionRepository{}, itemRepo, &mockUsageRepository{}, &mockDeviceRepository{}, &mockDispatcher{})

	_, err := uc.Execute(context.Background(), ResolveTicketCommand{
		TicketID:      100,
		Resolution:    "Replaced heating element",
		WorkPerformed: "work",
		Parts:         []PartUsage{{ItemID: 5, Quantity: 2}},
		ResolvedBy:    42,
		Role:          authorization.RoleTechnician,
	})

	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, 1, item.Stock(), "stock must be untouched after a failed resolve")
	assert.Equal(t, "in_progress", tk.Status().String(), "ticket must stay in progress")
}

func TestResolveTicketUseCase_Execute_Replay(t *testing.T) {
	tk := newInProgressTicket(t)
	require.NoError(t, tk.Resolve("Replaced heating element"))

	stored, err := ticket.NewIntervention(100, 42, "work", "cause", 45, nil)
	require.NoError(t, err)
	require.NoError(t, stored.SetID(200))

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	interventionRepo := &mockInterventionRepository{
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Intervention, error) { return stored, nil },
	}
	usageRepo := &mockUsageRepository{
		SaveFunc: func(ctx context.Context, record *inventory.UsageRecord) error {
			t.Fatal("replay must not write usage records")
			return nil
		},
	}

	uc := newResolveUseCase(ticketRepo, interventionRepo, &mockItemRepository{}, usageRepo, &mockDeviceRepository{}, &mockDispatcher{})

	result, err := uc.Execute(context.Background(), ResolveTicketCommand{
		TicketID:      100,
		Resolution:    "Replaced heating element",
		WorkPerformed: "work",
		Parts:         []PartUsage{{ItemID: 5, Quantity: 2}},
		ResolvedBy:    42,
		Role:          authorization.RoleTechnician,
	})

	require.NoError(t, err)
	assert.True(t, result.Replayed)
	assert.Equal(t, uint(200), result.InterventionID)
}

func TestResolveTicketUseCase_Execute_NotAssignee(t *testing.T) {
	tk := newInProgressTicket(t)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := newResolveUseCase(ticketRepo, &mockInterventionRepository{}, &mockItemRepository{}, &mockUsageRepository{}, &mockDeviceRepository{}, &mockDispatcher{})

	_, err := uc.Execute(context.Background(), ResolveTicketCommand{
		TicketID:      100,
		Resolution:    "done",
		WorkPerformed: "work",
		ResolvedBy:    7,
		Role:          authorization.RoleTechnician,
	})

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestResolveTicketUseCase_Execute_OverlongResolution(t *testing.T) {
	tk := newInProgressTicket(t)

	historySaves := 0
	historyRepo := &mockHistoryRepository{
		SaveFunc: func(ctx context.Context, entry *ticket.HistoryEntry) error {
			historySaves++
			return nil
		},
	}
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewResolveTicketUseCase(
		ticketRepo,
		historyRepo,
		&mockInterventionRepository{},
		&mockItemRepository{},
		&mockUsageRepository{},
		&mockDeviceRepository{},
		passthroughTxManager{},
		&mockDispatcher{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), ResolveTicketCommand{
		TicketID:      100,
		Resolution:    strings.Repeat("x", 2500),
		WorkPerformed: "work",
		MinutesSpent:  10,
		ResolvedBy:    42,
		Role:          authorization.RoleTechnician,
	})

	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, "in_progress", tk.Status().String(), "overlong resolution must not advance the ticket")
	assert.Equal(t, 0, historySaves, "no partial history may be written")
}

func TestResolveTicketUseCase_Execute_MissingResolution(t *testing.T) {
	uc := newResolveUseCase(&mockTicketRepository{}, &mockInterventionRepository{}, &mockItemRepository{}, &mockUsageRepository{}, &mockDeviceRepository{}, &mockDispatcher{})

	_, err := uc.Execute(context.Background(), ResolveTicketCommand{
		TicketID:      100,
		WorkPerformed: "work",
		ResolvedBy:    42,
	})

	assert.True(t, errors.IsValidationError(err))
}
