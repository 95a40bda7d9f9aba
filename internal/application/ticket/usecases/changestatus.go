package usecases

import (
	"context"

	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/domain/ticket"
	vo "fieldserve/internal/domain/ticket/valueobjects"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/biztime"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
	Notes     string
	ChangedBy uint
	Role      authorization.UserRole
}

type ChangeStatusResult struct {
	TicketID  uint   `json:"ticket_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// ChangeStatusUseCase advances a ticket to scheduled or in_progress.
// Resolution and closing have dedicated use cases because they carry
// additional payloads.
type ChangeStatusUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	dispatcher  events.EventDispatcher
	logger      logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case",
		"ticket_id", cmd.TicketID,
		"new_status", cmd.NewStatus,
		"changed_by", cmd.ChangedBy)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.ChangedBy == 0 {
		return nil, errors.NewValidationError("acting user ID is required")
	}
	if len(cmd.Notes) > 2000 {
		return nil, errors.NewValidationError("notes exceed maximum length of 2000 characters")
	}

	target, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if target != vo.StatusScheduled && target != vo.StatusInProgress {
		return nil, errors.NewValidationError("status changes to " + cmd.NewStatus + " use the dedicated endpoint")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	actor := ticket.Actor{ID: cmd.ChangedBy, Role: cmd.Role}
	if err := ticket.CanTransition(actor, t, target); err != nil {
		return nil, errors.NewForbiddenError(err.Error())
	}

	oldStatus := t.Status()

	switch target {
	case vo.StatusScheduled:
		err = t.Schedule()
	case vo.StatusInProgress:
		err = t.StartProgress()
	}
	if err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	// The first technician action on a ticket counts as its first response.
	if target == vo.StatusInProgress {
		t.MarkFirstResponse()
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	entry, err := ticket.NewHistoryEntry(t.ID(), t.Status(), cmd.Notes, cmd.ChangedBy)
	if err != nil {
		uc.logger.Errorw("failed to build history entry", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError(err.Error())
	}
	if err := uc.historyRepo.Save(ctx, entry); err != nil {
		uc.logger.Warnw("failed to save history entry", "error", err, "ticket_id", t.ID())
	}

	if uc.dispatcher != nil {
		event := ticket.NewTicketStatusChangedEvent(t.ID(), oldStatus.String(), t.Status().String(), cmd.ChangedBy, biztime.NowUTC())
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish status changed event", "error", err)
		}
	}

	uc.logger.Infow("ticket status changed", "ticket_id", t.ID(), "old_status", oldStatus.String(), "new_status", t.Status().String())

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: t.Status().String(),
	}, nil
}
