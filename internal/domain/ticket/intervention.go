package ticket

import (
	"fmt"
	"time"

	"fieldserve/internal/shared/biztime"
)

// PartLine is one inventory line item consumed by an intervention.
type PartLine struct {
	ItemID   uint
	Quantity int
	UnitCost float64
}

// Intervention is a field technician's completed-work record attached to a
// resolved ticket: work performed, root cause, time spent and the parts
// consumed with their cost.
type Intervention struct {
	id            uint
	ticketID      uint
	technicianID  uint
	workPerformed string
	rootCause     string
	minutesSpent  int
	parts         []PartLine
	totalCost     float64
	createdAt     time.Time
}

func NewIntervention(
	ticketID uint,
	technicianID uint,
	workPerformed string,
	rootCause string,
	minutesSpent int,
	parts []PartLine,
) (*Intervention, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if technicianID == 0 {
		return nil, fmt.Errorf("technician ID is required")
	}
	if len(workPerformed) == 0 {
		return nil, fmt.Errorf("work performed is required")
	}
	if minutesSpent < 0 {
		return nil, fmt.Errorf("minutes spent cannot be negative")
	}

	for _, p := range parts {
		if p.ItemID == 0 {
			return nil, fmt.Errorf("part line item ID is required")
		}
		if p.Quantity <= 0 {
			return nil, fmt.Errorf("part line quantity must be positive")
		}
	}

	var total float64
	for _, p := range parts {
		total += float64(p.Quantity) * p.UnitCost
	}

	partsCopy := make([]PartLine, len(parts))
	copy(partsCopy, parts)

	return &Intervention{
		ticketID:      ticketID,
		technicianID:  technicianID,
		workPerformed: workPerformed,
		rootCause:     rootCause,
		minutesSpent:  minutesSpent,
		parts:         partsCopy,
		totalCost:     total,
		createdAt:     biztime.NowUTC(),
	}, nil
}

func ReconstructIntervention(
	id uint,
	ticketID uint,
	technicianID uint,
	workPerformed string,
	rootCause string,
	minutesSpent int,
	parts []PartLine,
	totalCost float64,
	createdAt time.Time,
) (*Intervention, error) {
	if id == 0 {
		return nil, fmt.Errorf("intervention ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	if parts == nil {
		parts = []PartLine{}
	}

	return &Intervention{
		id:            id,
		ticketID:      ticketID,
		technicianID:  technicianID,
		workPerformed: workPerformed,
		rootCause:     rootCause,
		minutesSpent:  minutesSpent,
		parts:         parts,
		totalCost:     totalCost,
		createdAt:     createdAt,
	}, nil
}

func (i *Intervention) ID() uint {
	return i.id
}

func (i *Intervention) TicketID() uint {
	return i.ticketID
}

func (i *Intervention) TechnicianID() uint {
	return i.technicianID
}

func (i *Intervention) WorkPerformed() string {
	return i.workPerformed
}

func (i *Intervention) RootCause() string {
	return i.rootCause
}

func (i *Intervention) MinutesSpent() int {
	return i.minutesSpent
}

func (i *Intervention) Parts() []PartLine {
	partsCopy := make([]PartLine, len(i.parts))
	copy(partsCopy, i.parts)
	return partsCopy
}

func (i *Intervention) TotalCost() float64 {
	return i.totalCost
}

func (i *Intervention) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Intervention) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("intervention ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("intervention ID cannot be zero")
	}
	i.id = id
	return nil
}
