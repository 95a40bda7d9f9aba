package device

import (
	"strconv"
	"time"

	"fieldserve/internal/domain/shared/events"
)

const EventDeviceStatusChanged = "device.status_changed"

type DeviceStatusChangedEvent struct {
	events.BaseEvent
	DeviceID     uint
	RestaurantID uint
	Status       string
}

func NewDeviceStatusChangedEvent(d *Device, at time.Time) DeviceStatusChangedEvent {
	return DeviceStatusChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(d.ID()), 10),
			EventType:   EventDeviceStatusChanged,
			OccurredAt:  at,
		},
		DeviceID:     d.ID(),
		RestaurantID: d.RestaurantID(),
		Status:       d.Status().String(),
	}
}
