package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusNew        TicketStatus = "new"
	StatusAssigned   TicketStatus = "assigned"
	StatusScheduled  TicketStatus = "scheduled"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusNew:        true,
	StatusAssigned:   true,
	StatusScheduled:  true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

// ticketStatusTransitions is the forward-only lifecycle. There are no
// backward transitions; closed is terminal.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusNew: {
		StatusAssigned,
	},
	StatusAssigned: {
		StatusScheduled,
		StatusInProgress,
	},
	StatusScheduled: {
		StatusInProgress,
	},
	StatusInProgress: {
		StatusResolved,
	},
	StatusResolved: {
		StatusClosed,
	},
	StatusClosed: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsNew() bool {
	return ts == StatusNew
}

func (ts TicketStatus) IsAssigned() bool {
	return ts == StatusAssigned
}

func (ts TicketStatus) IsScheduled() bool {
	return ts == StatusScheduled
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// IsPastAssignment reports whether the status is beyond "assigned" in the
// lifecycle. Advancing to any such status is restricted to the assignee
// or an admin.
func (ts TicketStatus) IsPastAssignment() bool {
	switch ts {
	case StatusScheduled, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
