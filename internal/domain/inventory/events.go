package inventory

import (
	"strconv"
	"time"

	"fieldserve/internal/domain/shared/events"
)

const (
	EventStockChanged = "inventory.stock_changed"
	EventLowStock     = "inventory.low_stock"
)

type StockChangedEvent struct {
	events.BaseEvent
	ItemID uint
	SKU    string
	Stock  int
}

func NewStockChangedEvent(itemID uint, sku string, stock int, at time.Time) StockChangedEvent {
	return StockChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(itemID), 10),
			EventType:   EventStockChanged,
			OccurredAt:  at,
		},
		ItemID: itemID,
		SKU:    sku,
		Stock:  stock,
	}
}

type LowStockEvent struct {
	events.BaseEvent
	ItemID   uint
	SKU      string
	Name     string
	Stock    int
	MinStock int
}

func NewLowStockEvent(item *Item, at time.Time) LowStockEvent {
	return LowStockEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(item.ID()), 10),
			EventType:   EventLowStock,
			OccurredAt:  at,
		},
		ItemID:   item.ID(),
		SKU:      item.SKU(),
		Name:     item.Name(),
		Stock:    item.Stock(),
		MinStock: item.MinStock(),
	}
}
