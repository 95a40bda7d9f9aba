package notification

import (
	"fmt"
	"time"

	"fieldserve/internal/shared/biztime"
)

type NotificationType string

const (
	TypeTicketAssigned NotificationType = "ticket_assigned"
	TypeTicketResolved NotificationType = "ticket_resolved"
	TypeCommentAdded   NotificationType = "comment_added"
	TypeSLAViolated    NotificationType = "sla_violated"
	TypeLowStock       NotificationType = "low_stock"
	TypeMaintenanceDue NotificationType = "maintenance_due"
)

var validNotificationTypes = map[NotificationType]bool{
	TypeTicketAssigned: true,
	TypeTicketResolved: true,
	TypeCommentAdded:   true,
	TypeSLAViolated:    true,
	TypeLowStock:       true,
	TypeMaintenanceDue: true,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

// Notification is an in-app message for one user. TicketID is optional so
// stock and maintenance alerts can reuse the same channel.
type Notification struct {
	id        uint
	userID    uint
	ticketID  *uint
	ntype     NotificationType
	title     string
	body      string
	isRead    bool
	createdAt time.Time
}

func NewNotification(userID uint, ticketID *uint, ntype NotificationType, title, body string) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !ntype.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", ntype)
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}

	return &Notification{
		userID:    userID,
		ticketID:  ticketID,
		ntype:     ntype,
		title:     title,
		body:      body,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	ticketID *uint,
	ntype NotificationType,
	title string,
	body string,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}

	return &Notification{
		id:        id,
		userID:    userID,
		ticketID:  ticketID,
		ntype:     ntype,
		title:     title,
		body:      body,
		isRead:    isRead,
		createdAt: createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) UserID() uint {
	return n.userID
}

func (n *Notification) TicketID() *uint {
	return n.ticketID
}

func (n *Notification) Type() NotificationType {
	return n.ntype
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Body() string {
	return n.body
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkRead is idempotent.
func (n *Notification) MarkRead() {
	n.isRead = true
}
