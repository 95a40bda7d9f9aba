package realtime

import (
	"fieldserve/internal/domain/device"
	"fieldserve/internal/domain/inventory"
	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/shared/constants"
	"fieldserve/internal/shared/logger"
)

// Broadcaster is the hub surface the bridge needs.
type Broadcaster interface {
	Broadcast(event ChangeEvent)
}

// Bridge translates domain events into row-level change events and
// pushes them to the hub. SLA violations are left to the notifier; they
// change no row by themselves.
type Bridge struct {
	hub    Broadcaster
	logger logger.Interface
}

func NewBridge(hub Broadcaster, log logger.Interface) *Bridge {
	return &Bridge{
		hub:    hub,
		logger: log.Named("realtime-bridge"),
	}
}

// Attach subscribes the bridge to every event type it translates.
func (b *Bridge) Attach(subscriber events.EventSubscriber) error {
	for _, eventType := range []string{
		ticket.EventTicketCreated,
		ticket.EventTicketAssigned,
		ticket.EventTicketStatusChanged,
		ticket.EventTicketResolved,
		ticket.EventCommentAdded,
		device.EventDeviceStatusChanged,
		inventory.EventStockChanged,
	} {
		handler := events.NewSimpleEventHandler(eventType, b.handle)
		if err := subscriber.Subscribe(eventType, handler); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bridge) handle(event events.DomainEvent) error {
	change, ok := b.translate(event)
	if !ok {
		return nil
	}

	b.hub.Broadcast(change)
	b.logger.Debugw("change broadcast",
		"table", change.Table,
		"row_id", change.RowID,
		"operation", change.Operation,
	)
	return nil
}

func (b *Bridge) translate(event events.DomainEvent) (ChangeEvent, bool) {
	at := event.GetOccurredAt().UnixMilli()

	switch e := event.(type) {
	case ticket.TicketCreatedEvent:
		return ChangeEvent{Table: constants.TableTickets, RowID: e.TicketID, Operation: OperationInsert, At: at}, true
	case ticket.TicketAssignedEvent:
		return ChangeEvent{Table: constants.TableTickets, RowID: e.TicketID, Operation: OperationUpdate, At: at}, true
	case ticket.TicketStatusChangedEvent:
		return ChangeEvent{Table: constants.TableTickets, RowID: e.TicketID, Operation: OperationUpdate, At: at}, true
	case ticket.TicketResolvedEvent:
		return ChangeEvent{Table: constants.TableTickets, RowID: e.TicketID, Operation: OperationUpdate, At: at}, true
	case ticket.CommentAddedEvent:
		return ChangeEvent{Table: constants.TableTicketComments, RowID: e.CommentID, Operation: OperationInsert, At: at}, true
	case device.DeviceStatusChangedEvent:
		return ChangeEvent{Table: constants.TableDevices, RowID: e.DeviceID, Operation: OperationUpdate, At: at}, true
	case inventory.StockChangedEvent:
		return ChangeEvent{Table: constants.TableEquipmentInventory, RowID: e.ItemID, Operation: OperationUpdate, At: at}, true
	default:
		return ChangeEvent{}, false
	}
}
