package usecases

import (
	"context"

	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type AttachPhotoCommand struct {
	TicketID uint
	UserID   uint
	Role     authorization.UserRole
	PhotoRef string
}

type AttachPhotoResult struct {
	TicketID uint     `json:"ticket_id"`
	Photos   []string `json:"photos"`
}

type AttachPhotoUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewAttachPhotoUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *AttachPhotoUseCase {
	return &AttachPhotoUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *AttachPhotoUseCase) Execute(ctx context.Context, cmd AttachPhotoCommand) (*AttachPhotoResult, error) {
	uc.logger.Infow("executing attach photo use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if len(cmd.PhotoRef) == 0 {
		return nil, errors.NewValidationError("photo reference is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(cmd.UserID, cmd.Role) {
		return nil, errors.NewForbiddenError("no access to this ticket")
	}

	if err := t.AddPhoto(cmd.PhotoRef); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	return &AttachPhotoResult{
		TicketID: t.ID(),
		Photos:   t.Photos(),
	}, nil
}
