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

type CloseTicketCommand struct {
	TicketID uint
	Notes    string
	ClosedBy uint
	Role     authorization.UserRole
}

type CloseTicketResult struct {
	TicketID uint   `json:"ticket_id"`
	Status   string `json:"status"`
}

type CloseTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	dispatcher  events.EventDispatcher
	logger      logger.Interface
}

func NewCloseTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error) {
	uc.logger.Infow("executing close ticket use case", "ticket_id", cmd.TicketID, "closed_by", cmd.ClosedBy)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.ClosedBy == 0 {
		return nil, errors.NewValidationError("acting user ID is required")
	}
	if len(cmd.Notes) > 2000 {
		return nil, errors.NewValidationError("notes exceed maximum length of 2000 characters")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if t.Status().IsClosed() {
		return &CloseTicketResult{TicketID: t.ID(), Status: t.Status().String()}, nil
	}

	actor := ticket.Actor{ID: cmd.ClosedBy, Role: cmd.Role}
	if err := ticket.CanTransition(actor, t, vo.StatusClosed); err != nil {
		return nil, errors.NewForbiddenError(err.Error())
	}

	oldStatus := t.Status()
	if err := t.Close(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	entry, err := ticket.NewHistoryEntry(t.ID(), t.Status(), cmd.Notes, cmd.ClosedBy)
	if err != nil {
		uc.logger.Errorw("failed to build history entry", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError(err.Error())
	}
	if err := uc.historyRepo.Save(ctx, entry); err != nil {
		uc.logger.Warnw("failed to save history entry", "error", err, "ticket_id", t.ID())
	}

	if uc.dispatcher != nil {
		event := ticket.NewTicketStatusChangedEvent(t.ID(), oldStatus.String(), t.Status().String(), cmd.ClosedBy, biztime.NowUTC())
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish status changed event", "error", err)
		}
	}

	uc.logger.Infow("ticket closed", "ticket_id", t.ID())

	return &CloseTicketResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
	}, nil
}
