// Package notifier turns domain events into in-app notifications and,
// when configured, email. Delivery failures are logged and swallowed;
// the originating operation has already committed.
package notifier

import (
	"context"
	"fmt"

	"fieldserve/internal/domain/inventory"
	"fieldserve/internal/domain/notification"
	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/domain/user"
	"fieldserve/internal/infrastructure/email"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/logger"
)

// UnreadInvalidator drops a user's cached unread count after a new
// notification lands.
type UnreadInvalidator interface {
	Invalidate(ctx context.Context, userID uint)
}

type Notifier struct {
	notificationRepo notification.Repository
	userRepo         user.Repository
	ticketRepo       ticket.TicketRepository
	sender           email.Sender // nil when email is disabled
	invalidator      UnreadInvalidator
	logger           logger.Interface
}

func NewNotifier(
	notificationRepo notification.Repository,
	userRepo user.Repository,
	ticketRepo ticket.TicketRepository,
	sender email.Sender,
	invalidator UnreadInvalidator,
	log logger.Interface,
) *Notifier {
	return &Notifier{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		ticketRepo:       ticketRepo,
		sender:           sender,
		invalidator:      invalidator,
		logger:           log.Named("notifier"),
	}
}

// Attach subscribes the notifier to the events it delivers.
func (n *Notifier) Attach(subscriber events.EventSubscriber) error {
	for _, eventType := range []string{
		ticket.EventTicketCreated,
		ticket.EventTicketAssigned,
		ticket.EventTicketResolved,
		ticket.EventSLAViolated,
		inventory.EventLowStock,
	} {
		handler := events.NewSimpleEventHandler(eventType, n.handle)
		if err := subscriber.Subscribe(eventType, handler); err != nil {
			return err
		}
	}
	return nil
}

func (n *Notifier) handle(event events.DomainEvent) error {
	ctx := context.Background()

	switch e := event.(type) {
	case ticket.TicketAssignedEvent:
		n.onAssigned(ctx, e)
	case ticket.TicketResolvedEvent:
		n.onResolved(ctx, e)
	case ticket.TicketCreatedEvent:
		n.onCreated(ctx, e)
	case ticket.SLAViolatedEvent:
		n.onSLAViolated(ctx, e)
	case inventory.LowStockEvent:
		n.onLowStock(ctx, e)
	}
	return nil
}

func (n *Notifier) onAssigned(ctx context.Context, e ticket.TicketAssignedEvent) {
	t, err := n.ticketRepo.GetByID(ctx, e.TicketID)
	if err != nil {
		n.logger.Warnw("failed to load ticket for assignment notification", "error", err, "ticket_id", e.TicketID)
		return
	}

	title := fmt.Sprintf("Ticket %s assigned to you", t.Number())
	n.deliver(ctx, e.AssigneeID, &e.TicketID, notification.TypeTicketAssigned, title, t.Title())

	if n.sender != nil {
		if assignee, err := n.userRepo.GetByID(ctx, e.AssigneeID); err == nil {
			if err := n.sender.SendTicketAssignedEmail(assignee.Email(), t.Number(), t.Title()); err != nil {
				n.logger.Warnw("failed to send assignment email", "error", err, "user_id", e.AssigneeID)
			}
		}
	}
}

func (n *Notifier) onResolved(ctx context.Context, e ticket.TicketResolvedEvent) {
	t, err := n.ticketRepo.GetByID(ctx, e.TicketID)
	if err != nil {
		n.logger.Warnw("failed to load ticket for resolution notification", "error", err, "ticket_id", e.TicketID)
		return
	}

	title := fmt.Sprintf("Ticket %s resolved", t.Number())
	n.deliver(ctx, e.CreatorID, &e.TicketID, notification.TypeTicketResolved, title, t.Resolution())

	if n.sender != nil {
		if creator, err := n.userRepo.GetByID(ctx, e.CreatorID); err == nil {
			if err := n.sender.SendTicketResolvedEmail(creator.Email(), t.Number(), t.Resolution()); err != nil {
				n.logger.Warnw("failed to send resolution email", "error", err, "user_id", e.CreatorID)
			}
		}
	}
}

// onCreated fans helpdesk tickets out to the whole technician pool,
// field and software roles alike. Regular equipment tickets wait for
// explicit assignment instead.
func (n *Notifier) onCreated(ctx context.Context, e ticket.TicketCreatedEvent) {
	if !e.Helpdesk {
		return
	}

	title := fmt.Sprintf("New helpdesk ticket %s", e.Number)
	for _, role := range []authorization.UserRole{authorization.RoleTechnician, authorization.RoleSoftwareTech} {
		techs, err := n.userRepo.ListByRole(ctx, role)
		if err != nil {
			n.logger.Warnw("failed to list technicians", "error", err, "role", role.String())
			continue
		}

		for _, tech := range techs {
			n.deliver(ctx, tech.ID(), &e.TicketID, notification.TypeTicketAssigned, title, e.Title)

			if n.sender != nil {
				if err := n.sender.SendHelpdeskTicketEmail(tech.Email(), e.Number, e.Title); err != nil {
					n.logger.Warnw("failed to send helpdesk email", "error", err, "user_id", tech.ID())
				}
			}
		}
	}
}

func (n *Notifier) onSLAViolated(ctx context.Context, e ticket.SLAViolatedEvent) {
	if e.AssigneeID == nil {
		return
	}

	title := "Ticket past its SLA"
	body := fmt.Sprintf("Ticket #%d was due %s", e.TicketID, e.DueTime.Format("2006-01-02 15:04"))
	n.deliver(ctx, *e.AssigneeID, &e.TicketID, notification.TypeSLAViolated, title, body)
}

func (n *Notifier) onLowStock(ctx context.Context, e inventory.LowStockEvent) {
	warehouse, err := n.userRepo.ListByRole(ctx, authorization.RoleWarehouse)
	if err != nil {
		n.logger.Warnw("failed to list warehouse users", "error", err)
		return
	}

	title := fmt.Sprintf("Low stock: %s", e.SKU)
	body := fmt.Sprintf("%s is down to %d (minimum %d)", e.Name, e.Stock, e.MinStock)

	for _, u := range warehouse {
		n.deliver(ctx, u.ID(), nil, notification.TypeLowStock, title, body)

		if n.sender != nil {
			if err := n.sender.SendLowStockEmail(u.Email(), e.SKU, e.Name, e.Stock, e.MinStock); err != nil {
				n.logger.Warnw("failed to send low stock email", "error", err, "user_id", u.ID())
			}
		}
	}
}

func (n *Notifier) deliver(ctx context.Context, userID uint, ticketID *uint, ntype notification.NotificationType, title, body string) {
	msg, err := notification.NewNotification(userID, ticketID, ntype, title, body)
	if err != nil {
		n.logger.Warnw("failed to build notification", "error", err, "user_id", userID)
		return
	}

	if err := n.notificationRepo.Save(ctx, msg); err != nil {
		n.logger.Warnw("failed to save notification", "error", err, "user_id", userID)
		return
	}

	if n.invalidator != nil {
		n.invalidator.Invalidate(ctx, userID)
	}
}
