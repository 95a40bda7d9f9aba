package usecases

import (
	"context"
	"time"

	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/biztime"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	UserID   uint
	Role     authorization.UserRole
	Content  string
}

type AddCommentResult struct {
	CommentID uint      `json:"comment_id"`
	TicketID  uint      `json:"ticket_id"`
	CreatedAt time.Time `json:"created_at"`
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	dispatcher  events.EventDispatcher
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if len(cmd.Content) == 0 {
		return nil, errors.NewValidationError("content cannot be empty")
	}
	if len(cmd.Content) > 5000 {
		return nil, errors.NewValidationError("content exceeds maximum length of 5000 characters")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(cmd.UserID, cmd.Role) {
		return nil, errors.NewForbiddenError("no access to this ticket")
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.UserID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	// A comment from anyone but the creator counts as the first response.
	if cmd.UserID != t.CreatorID() && t.FirstResponseAt() == nil {
		t.MarkFirstResponse()
		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			uc.logger.Warnw("failed to stamp first response", "error", err, "ticket_id", t.ID())
		}
	}

	if uc.dispatcher != nil {
		event := ticket.NewCommentAddedEvent(t.ID(), comment.ID(), cmd.UserID, biztime.NowUTC())
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish comment added event", "error", err)
		}
	}

	uc.logger.Infow("comment added", "ticket_id", t.ID(), "comment_id", comment.ID())

	return &AddCommentResult{
		CommentID: comment.ID(),
		TicketID:  t.ID(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}
