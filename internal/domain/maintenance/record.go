package maintenance

import (
	"fmt"
	"time"

	"fieldserve/internal/shared/biztime"
)

// Record is a scheduled or completed preventive maintenance visit for a
// device. Distinct from tickets, which cover unplanned failures.
type Record struct {
	id           uint
	deviceID     uint
	technicianID *uint
	description  string
	dueDate      time.Time
	completedAt  *time.Time
	notes        string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRecord(deviceID uint, technicianID *uint, description string, dueDate time.Time) (*Record, error) {
	if deviceID == 0 {
		return nil, fmt.Errorf("device ID is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if dueDate.IsZero() {
		return nil, fmt.Errorf("due date is required")
	}

	now := biztime.NowUTC()
	return &Record{
		deviceID:     deviceID,
		technicianID: technicianID,
		description:  description,
		dueDate:      dueDate.UTC(),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructRecord(
	id uint,
	deviceID uint,
	technicianID *uint,
	description string,
	dueDate time.Time,
	completedAt *time.Time,
	notes string,
	createdAt, updatedAt time.Time,
) (*Record, error) {
	if id == 0 {
		return nil, fmt.Errorf("maintenance record ID cannot be zero")
	}

	return &Record{
		id:           id,
		deviceID:     deviceID,
		technicianID: technicianID,
		description:  description,
		dueDate:      dueDate,
		completedAt:  completedAt,
		notes:        notes,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (r *Record) ID() uint {
	return r.id
}

func (r *Record) DeviceID() uint {
	return r.deviceID
}

func (r *Record) TechnicianID() *uint {
	return r.technicianID
}

func (r *Record) Description() string {
	return r.description
}

func (r *Record) DueDate() time.Time {
	return r.dueDate
}

func (r *Record) CompletedAt() *time.Time {
	return r.completedAt
}

func (r *Record) Notes() string {
	return r.notes
}

func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Record) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Record) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("maintenance record ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("maintenance record ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Record) IsCompleted() bool {
	return r.completedAt != nil
}

// IsOverdue reports whether the visit is past due and still open.
func (r *Record) IsOverdue(now time.Time) bool {
	return !r.IsCompleted() && now.After(r.dueDate)
}

func (r *Record) Assign(technicianID uint) error {
	if technicianID == 0 {
		return fmt.Errorf("technician ID is required")
	}
	if r.IsCompleted() {
		return fmt.Errorf("maintenance record is already completed")
	}
	r.technicianID = &technicianID
	r.updatedAt = biztime.NowUTC()
	return nil
}

// Complete stamps the completion time. Completing twice is rejected.
func (r *Record) Complete(notes string) error {
	if r.IsCompleted() {
		return fmt.Errorf("maintenance record is already completed")
	}
	if r.technicianID == nil {
		return fmt.Errorf("maintenance record is not assigned")
	}
	now := biztime.NowUTC()
	r.completedAt = &now
	r.notes = notes
	r.updatedAt = now
	return nil
}
