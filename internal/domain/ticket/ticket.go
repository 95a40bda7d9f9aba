package ticket

import (
	"errors"
	"fmt"
	"time"

	"fieldserve/internal/shared/biztime"

	vo "fieldserve/internal/domain/ticket/valueobjects"
)

var (
	// ErrNotAssigned is returned when a transition past "assigned" is
	// attempted on a ticket without an assignee.
	ErrNotAssigned = errors.New("ticket not assigned")

	// ErrAlreadyResolved is returned when a resolve is replayed against a
	// ticket that already carries a resolution.
	ErrAlreadyResolved = errors.New("ticket already resolved")
)

type Ticket struct {
	id              uint
	number          string
	title           string
	description     string
	priority        vo.Priority
	status          vo.TicketStatus
	deviceID        uint
	restaurantID    uint
	creatorID       uint
	assigneeID      *uint
	photos          []string
	resolution      string
	slaDueTime      time.Time
	firstResponseAt *time.Time
	assignedAt      *time.Time
	resolvedAt      *time.Time
	closedAt        *time.Time
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

// NewTicket creates a ticket through the standard creation path. The SLA
// due time is computed once, from the standard priority table, and never
// recomputed afterwards.
func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	deviceID uint,
	restaurantID uint,
	creatorID uint,
) (*Ticket, error) {
	return newTicket(title, description, priority, deviceID, restaurantID, creatorID, priority.SLAOffset())
}

// NewHelpdeskTicket creates a ticket through the helpdesk flow, which uses
// its own SLA offset table.
func NewHelpdeskTicket(
	title string,
	description string,
	priority vo.Priority,
	deviceID uint,
	restaurantID uint,
	creatorID uint,
) (*Ticket, error) {
	return newTicket(title, description, priority, deviceID, restaurantID, creatorID, priority.HelpdeskSLAOffset())
}

func newTicket(
	title string,
	description string,
	priority vo.Priority,
	deviceID uint,
	restaurantID uint,
	creatorID uint,
	slaOffset time.Duration,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if deviceID == 0 {
		return nil, fmt.Errorf("device ID is required")
	}
	if restaurantID == 0 {
		return nil, fmt.Errorf("restaurant ID is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := biztime.NowUTC()

	return &Ticket{
		title:        title,
		description:  description,
		priority:     priority,
		status:       vo.StatusNew,
		deviceID:     deviceID,
		restaurantID: restaurantID,
		creatorID:    creatorID,
		photos:       []string{},
		slaDueTime:   now.Add(slaOffset),
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	title string,
	description string,
	priority vo.Priority,
	status vo.TicketStatus,
	deviceID uint,
	restaurantID uint,
	creatorID uint,
	assigneeID *uint,
	photos []string,
	resolution string,
	slaDueTime time.Time,
	firstResponseAt *time.Time,
	assignedAt *time.Time,
	resolvedAt *time.Time,
	closedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if photos == nil {
		photos = []string{}
	}

	return &Ticket{
		id:              id,
		number:          number,
		title:           title,
		description:     description,
		priority:        priority,
		status:          status,
		deviceID:        deviceID,
		restaurantID:    restaurantID,
		creatorID:       creatorID,
		assigneeID:      assigneeID,
		photos:          photos,
		resolution:      resolution,
		slaDueTime:      slaDueTime,
		firstResponseAt: firstResponseAt,
		assignedAt:      assignedAt,
		resolvedAt:      resolvedAt,
		closedAt:        closedAt,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Number() string {
	return t.number
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) DeviceID() uint {
	return t.deviceID
}

func (t *Ticket) RestaurantID() uint {
	return t.restaurantID
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) Photos() []string {
	photosCopy := make([]string, len(t.photos))
	copy(photosCopy, t.photos)
	return photosCopy
}

func (t *Ticket) Resolution() string {
	return t.resolution
}

func (t *Ticket) SLADueTime() time.Time {
	return t.slaDueTime
}

func (t *Ticket) FirstResponseAt() *time.Time {
	return t.firstResponseAt
}

func (t *Ticket) AssignedAt() *time.Time {
	return t.assignedAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) Version() int {
	return t.version
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// AssignTo sets the assignee and advances the ticket from "new" to
// "assigned". Reassignment of an already-assigned ticket keeps the status.
func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	if t.status.IsPastAssignment() {
		return fmt.Errorf("cannot reassign ticket in status %s", t.status)
	}

	now := biztime.NowUTC()
	t.assigneeID = &assigneeID
	t.assignedAt = &now
	t.updatedAt = now
	t.version++

	if t.status.IsNew() {
		t.status = vo.StatusAssigned
	}

	return nil
}

// Schedule moves an assigned ticket into the scheduled state. The
// free-text "when" note travels with the history entry, not the entity.
func (t *Ticket) Schedule() error {
	return t.transition(vo.StatusScheduled)
}

// StartProgress moves the ticket into in_progress from either assigned or
// scheduled.
func (t *Ticket) StartProgress() error {
	return t.transition(vo.StatusInProgress)
}

// Resolve records the resolution text and advances to resolved. A ticket
// that is already resolved returns ErrAlreadyResolved so callers can treat
// a replayed resolve as a no-op instead of a failure.
func (t *Ticket) Resolve(resolution string) error {
	if t.status.IsResolved() || t.status.IsClosed() {
		return ErrAlreadyResolved
	}
	if len(resolution) == 0 {
		return fmt.Errorf("resolution is required")
	}

	if err := t.transition(vo.StatusResolved); err != nil {
		return err
	}

	now := biztime.NowUTC()
	t.resolution = resolution
	t.resolvedAt = &now
	return nil
}

// Close advances a resolved ticket to closed. This is a manual,
// unguarded forward step; there is no automatic timeout-based closure.
func (t *Ticket) Close() error {
	if t.status.IsClosed() {
		return nil
	}

	if err := t.transition(vo.StatusClosed); err != nil {
		return err
	}

	now := biztime.NowUTC()
	t.closedAt = &now
	return nil
}

func (t *Ticket) transition(target vo.TicketStatus) error {
	if !target.IsValid() {
		return fmt.Errorf("invalid status: %s", target)
	}
	if target.IsPastAssignment() && t.assigneeID == nil {
		return ErrNotAssigned
	}
	if !t.status.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, target)
	}

	t.status = target
	t.updatedAt = biztime.NowUTC()
	t.version++
	return nil
}

// AddPhoto appends a photo reference. Order is preserved.
func (t *Ticket) AddPhoto(ref string) error {
	if len(ref) == 0 {
		return fmt.Errorf("photo reference cannot be empty")
	}
	t.photos = append(t.photos, ref)
	t.updatedAt = biztime.NowUTC()
	return nil
}

// MarkFirstResponse stamps the first-response time once. Subsequent calls
// are no-ops.
func (t *Ticket) MarkFirstResponse() {
	if t.firstResponseAt != nil {
		return
	}
	now := biztime.NowUTC()
	t.firstResponseAt = &now
	t.updatedAt = now
}

// IsOverdue reports whether the SLA commitment has expired for a ticket
// that is still open.
func (t *Ticket) IsOverdue() bool {
	if t.status.IsResolved() || t.status.IsClosed() {
		return false
	}
	return biztime.NowUTC().After(t.slaDueTime)
}

func (t *Ticket) Validate() error {
	if len(t.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(t.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if t.creatorID == 0 {
		return fmt.Errorf("creator ID is required")
	}
	return nil
}
