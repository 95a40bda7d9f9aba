package ticket

import (
	"fmt"

	"fieldserve/internal/shared/authorization"

	vo "fieldserve/internal/domain/ticket/valueobjects"
)

// Actor identifies the user attempting a lifecycle action.
type Actor struct {
	ID   uint
	Role authorization.UserRole
}

// CanTransition is the single authorization policy for ticket lifecycle
// actions. Every status-changing use case consults it; there are no
// per-handler role conditionals.
//
// Rules:
//   - new → assigned: anyone may self-assign; assigning another user
//     requires admin or manager.
//   - past assigned (scheduled, in_progress, resolved): only the assignee
//     or an admin.
//   - resolved → closed: any authenticated user; manual forward step.
func CanTransition(actor Actor, t *Ticket, target vo.TicketStatus) error {
	if actor.ID == 0 {
		return fmt.Errorf("acting user is required")
	}
	if !target.IsValid() {
		return fmt.Errorf("invalid target status: %s", target)
	}

	switch target {
	case vo.StatusAssigned:
		return nil

	case vo.StatusScheduled, vo.StatusInProgress, vo.StatusResolved:
		if t.AssigneeID() == nil {
			return ErrNotAssigned
		}
		if actor.Role.IsAdmin() || *t.AssigneeID() == actor.ID {
			return nil
		}
		return fmt.Errorf("only the assignee or an admin may advance this ticket")

	case vo.StatusClosed:
		return nil
	}

	return fmt.Errorf("unsupported target status: %s", target)
}

// CanAssignOther reports whether the actor may assign a ticket to a user
// other than themselves.
func CanAssignOther(actor Actor) bool {
	return actor.Role.CanManage()
}

// CanBeViewedBy reports whether a user may view the ticket. Admins,
// managers and field roles see everything; restaurant staff only their
// own tickets.
func (t *Ticket) CanBeViewedBy(userID uint, role authorization.UserRole) bool {
	if role.CanManage() || role.IsFieldRole() || role == authorization.RoleWarehouse {
		return true
	}
	if t.creatorID == userID {
		return true
	}
	if t.assigneeID != nil && *t.assigneeID == userID {
		return true
	}
	return false
}
