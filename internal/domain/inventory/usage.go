package inventory

import (
	"fmt"
	"time"

	"fieldserve/internal/shared/biztime"
)

// UsageRecord links an inventory consumption to the ticket it served.
// Written in the same transaction as the stock decrement.
type UsageRecord struct {
	id           uint
	itemID       uint
	ticketID     uint
	technicianID uint
	quantity     int
	unitCost     float64
	createdAt    time.Time
}

func NewUsageRecord(itemID, ticketID, technicianID uint, quantity int, unitCost float64) (*UsageRecord, error) {
	if itemID == 0 {
		return nil, fmt.Errorf("item ID is required")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if technicianID == 0 {
		return nil, fmt.Errorf("technician ID is required")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	return &UsageRecord{
		itemID:       itemID,
		ticketID:     ticketID,
		technicianID: technicianID,
		quantity:     quantity,
		unitCost:     unitCost,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructUsageRecord(
	id uint,
	itemID, ticketID, technicianID uint,
	quantity int,
	unitCost float64,
	createdAt time.Time,
) (*UsageRecord, error) {
	if id == 0 {
		return nil, fmt.Errorf("usage record ID cannot be zero")
	}

	return &UsageRecord{
		id:           id,
		itemID:       itemID,
		ticketID:     ticketID,
		technicianID: technicianID,
		quantity:     quantity,
		unitCost:     unitCost,
		createdAt:    createdAt,
	}, nil
}

func (u *UsageRecord) ID() uint {
	return u.id
}

func (u *UsageRecord) ItemID() uint {
	return u.itemID
}

func (u *UsageRecord) TicketID() uint {
	return u.ticketID
}

func (u *UsageRecord) TechnicianID() uint {
	return u.technicianID
}

func (u *UsageRecord) Quantity() int {
	return u.quantity
}

func (u *UsageRecord) UnitCost() float64 {
	return u.unitCost
}

func (u *UsageRecord) TotalCost() float64 {
	return float64(u.quantity) * u.unitCost
}

func (u *UsageRecord) CreatedAt() time.Time {
	return u.createdAt
}

func (u *UsageRecord) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("usage record ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("usage record ID cannot be zero")
	}
	u.id = id
	return nil
}
