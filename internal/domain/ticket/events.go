package ticket

import (
	"strconv"
	"time"

	"fieldserve/internal/domain/shared/events"
)

const (
	EventTicketCreated       = "ticket.created"
	EventTicketAssigned      = "ticket.assigned"
	EventTicketStatusChanged = "ticket.status_changed"
	EventTicketResolved      = "ticket.resolved"
	EventCommentAdded        = "ticket.comment_added"
	EventSLAViolated         = "ticket.sla_violated"
)

type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID  uint
	Number    string
	Title     string
	CreatorID uint
	Priority  string
	Helpdesk  bool
}

func NewTicketCreatedEvent(t *Ticket, helpdesk bool, at time.Time) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(t.ID()), 10),
			EventType:   EventTicketCreated,
			OccurredAt:  at,
		},
		TicketID:  t.ID(),
		Number:    t.Number(),
		Title:     t.Title(),
		CreatorID: t.CreatorID(),
		Priority:  t.Priority().String(),
		Helpdesk:  helpdesk,
	}
}

type TicketAssignedEvent struct {
	events.BaseEvent
	TicketID   uint
	AssigneeID uint
	AssignedBy uint
}

func NewTicketAssignedEvent(ticketID, assigneeID, assignedBy uint, at time.Time) TicketAssignedEvent {
	return TicketAssignedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTicketAssigned,
			OccurredAt:  at,
		},
		TicketID:   ticketID,
		AssigneeID: assigneeID,
		AssignedBy: assignedBy,
	}
}

type TicketStatusChangedEvent struct {
	events.BaseEvent
	TicketID  uint
	OldStatus string
	NewStatus string
	ChangedBy uint
}

func NewTicketStatusChangedEvent(ticketID uint, oldStatus, newStatus string, changedBy uint, at time.Time) TicketStatusChangedEvent {
	return TicketStatusChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTicketStatusChanged,
			OccurredAt:  at,
		},
		TicketID:  ticketID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ChangedBy: changedBy,
	}
}

type TicketResolvedEvent struct {
	events.BaseEvent
	TicketID   uint
	CreatorID  uint
	ResolvedBy uint
}

func NewTicketResolvedEvent(ticketID, creatorID, resolvedBy uint, at time.Time) TicketResolvedEvent {
	return TicketResolvedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTicketResolved,
			OccurredAt:  at,
		},
		TicketID:   ticketID,
		CreatorID:  creatorID,
		ResolvedBy: resolvedBy,
	}
}

type CommentAddedEvent struct {
	events.BaseEvent
	TicketID  uint
	CommentID uint
	UserID    uint
}

func NewCommentAddedEvent(ticketID, commentID, userID uint, at time.Time) CommentAddedEvent {
	return CommentAddedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventCommentAdded,
			OccurredAt:  at,
		},
		TicketID:  ticketID,
		CommentID: commentID,
		UserID:    userID,
	}
}

type SLAViolatedEvent struct {
	events.BaseEvent
	TicketID   uint
	AssigneeID *uint
	DueTime    time.Time
}

func NewSLAViolatedEvent(ticketID uint, assigneeID *uint, dueTime time.Time, at time.Time) SLAViolatedEvent {
	return SLAViolatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventSLAViolated,
			OccurredAt:  at,
		},
		TicketID:   ticketID,
		AssigneeID: assigneeID,
		DueTime:    dueTime,
	}
}
