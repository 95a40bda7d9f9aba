package usecases

import (
	"context"

	"fieldserve/internal/application/ticket/dto"
	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	UserID   uint
	Role     authorization.UserRole
}

type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	historyRepo ticket.HistoryRepository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	historyRepo ticket.HistoryRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", query.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(query.UserID, query.Role) {
		return nil, errors.NewForbiddenError("no access to this ticket")
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Warnw("failed to load comments", "error", err, "ticket_id", query.TicketID)
	}
	history, err := uc.historyRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Warnw("failed to load history", "error", err, "ticket_id", query.TicketID)
	}

	return dto.ToTicketDTO(t, comments, history), nil
}
