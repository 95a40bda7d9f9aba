package usecases

import (
	"context"

	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/domain/user"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/biztime"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID     uint
	AssigneeID   uint
	AssignedBy   uint
	AssignerRole authorization.UserRole
}

type AssignTicketResult struct {
	TicketID   uint   `json:"ticket_id"`
	AssigneeID uint   `json:"assignee_id"`
	Status     string `json:"status"`
}

type AssignTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	userRepo    user.Repository
	dispatcher  events.EventDispatcher
	logger      logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	userRepo user.Repository,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID,
		"assignee_id", cmd.AssigneeID,
		"assigned_by", cmd.AssignedBy)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid assign ticket command", "error", err)
		return nil, err
	}

	actor := ticket.Actor{ID: cmd.AssignedBy, Role: cmd.AssignerRole}
	if cmd.AssigneeID != cmd.AssignedBy && !ticket.CanAssignOther(actor) {
		return nil, errors.NewForbiddenError("only managers may assign tickets to other users")
	}

	assignee, err := uc.userRepo.GetByID(ctx, cmd.AssigneeID)
	if err != nil {
		uc.logger.Errorw("failed to find assignee", "error", err, "assignee_id", cmd.AssigneeID)
		return nil, errors.NewNotFoundError("assignee not found")
	}

	if !assignee.IsActive() {
		return nil, errors.NewValidationError("assignee is not active and cannot be assigned tickets")
	}
	// Anyone may pick up a ticket for themselves. The field-technician
	// constraint applies only when handing a ticket to someone else.
	if cmd.AssigneeID != cmd.AssignedBy && !assignee.IsFieldTechnician() {
		return nil, errors.NewValidationError("assignee must be a field technician")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := t.AssignTo(cmd.AssigneeID); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	entry, err := ticket.NewHistoryEntry(t.ID(), t.Status(), "assigned to "+assignee.Name(), cmd.AssignedBy)
	if err != nil {
		uc.logger.Errorw("failed to build history entry", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError(err.Error())
	}
	if err := uc.historyRepo.Save(ctx, entry); err != nil {
		uc.logger.Warnw("failed to save history entry", "error", err, "ticket_id", t.ID())
	}

	if uc.dispatcher != nil {
		event := ticket.NewTicketAssignedEvent(t.ID(), cmd.AssigneeID, cmd.AssignedBy, biztime.NowUTC())
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish ticket assigned event", "error", err)
		}
	}

	uc.logger.Infow("ticket assigned successfully", "ticket_id", t.ID(), "assignee_id", cmd.AssigneeID)

	return &AssignTicketResult{
		TicketID:   t.ID(),
		AssigneeID: cmd.AssigneeID,
		Status:     t.Status().String(),
	}, nil
}

func (uc *AssignTicketUseCase) validateCommand(cmd AssignTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.AssigneeID == 0 {
		return errors.NewValidationError("assignee ID is required")
	}
	if cmd.AssignedBy == 0 {
		return errors.NewValidationError("assigning user ID is required")
	}
	return nil
}
