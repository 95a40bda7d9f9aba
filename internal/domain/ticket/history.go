package ticket

import (
	"fmt"
	"time"

	"fieldserve/internal/shared/biztime"

	vo "fieldserve/internal/domain/ticket/valueobjects"
)

// HistoryEntry is an append-only audit row recorded once per status change
// or assignment. Entries are never mutated or deleted.
type HistoryEntry struct {
	id        uint
	ticketID  uint
	status    vo.TicketStatus
	notes     string
	actorID   uint
	createdAt time.Time
}

func NewHistoryEntry(
	ticketID uint,
	status vo.TicketStatus,
	notes string,
	actorID uint,
) (*HistoryEntry, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}
	if len(notes) > 2000 {
		return nil, fmt.Errorf("notes exceed maximum length of 2000 characters")
	}

	return &HistoryEntry{
		ticketID:  ticketID,
		status:    status,
		notes:     notes,
		actorID:   actorID,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructHistoryEntry(
	id uint,
	ticketID uint,
	status vo.TicketStatus,
	notes string,
	actorID uint,
	createdAt time.Time,
) (*HistoryEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("history entry ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &HistoryEntry{
		id:        id,
		ticketID:  ticketID,
		status:    status,
		notes:     notes,
		actorID:   actorID,
		createdAt: createdAt,
	}, nil
}

func (h *HistoryEntry) ID() uint {
	return h.id
}

func (h *HistoryEntry) TicketID() uint {
	return h.ticketID
}

func (h *HistoryEntry) Status() vo.TicketStatus {
	return h.status
}

func (h *HistoryEntry) Notes() string {
	return h.notes
}

func (h *HistoryEntry) ActorID() uint {
	return h.actorID
}

func (h *HistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}

func (h *HistoryEntry) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("history entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("history entry ID cannot be zero")
	}
	h.id = id
	return nil
}
