package usecases

import (
	"context"

	"fieldserve/internal/domain/ticket"
	vo "fieldserve/internal/domain/ticket/valueobjects"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type VerifyWritePathCommand struct {
	RequestedBy  uint
	Role         authorization.UserRole
	DeviceID     uint
	RestaurantID uint
}

type VerifyWritePathResult struct {
	TicketID uint   `json:"ticket_id"`
	Number   string `json:"number"`
	Deleted  bool   `json:"deleted"`
}

// VerifyWritePathUseCase is the admin diagnostic that proves the ticket
// write path end to end: it inserts a probe ticket and deletes it
// again. This is the only place a ticket is ever hard-deleted.
type VerifyWritePathUseCase struct {
	ticketRepo ticket.TicketRepository
	numberGen  ticket.NumberGenerator
	logger     logger.Interface
}

func NewVerifyWritePathUseCase(ticketRepo ticket.TicketRepository, numberGen ticket.NumberGenerator, logger logger.Interface) *VerifyWritePathUseCase {
	return &VerifyWritePathUseCase{
		ticketRepo: ticketRepo,
		numberGen:  numberGen,
		logger:     logger,
	}
}

func (uc *VerifyWritePathUseCase) Execute(ctx context.Context, cmd VerifyWritePathCommand) (*VerifyWritePathResult, error) {
	if cmd.Role != authorization.RoleAdmin {
		return nil, errors.NewForbiddenError("write path verification is admin only")
	}
	if cmd.RequestedBy == 0 {
		return nil, errors.NewValidationError("requesting user ID is required")
	}
	if cmd.DeviceID == 0 || cmd.RestaurantID == 0 {
		return nil, errors.NewValidationError("device ID and restaurant ID are required")
	}

	probe, err := ticket.NewTicket(
		"write path verification",
		"diagnostic probe, deleted immediately after creation",
		vo.PriorityLow,
		cmd.DeviceID,
		cmd.RestaurantID,
		cmd.RequestedBy,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numberGen.Generate(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to generate ticket number")
	}
	if err := probe.SetNumber(number); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, probe); err != nil {
		uc.logger.Errorw("write path verification insert failed", "error", err)
		return nil, errors.NewUnavailableError("ticket insert failed")
	}

	result := &VerifyWritePathResult{
		TicketID: probe.ID(),
		Number:   probe.Number(),
	}

	if err := uc.ticketRepo.Delete(ctx, probe.ID()); err != nil {
		// probe row left behind; report it so an operator can clean up
		uc.logger.Errorw("write path verification delete failed",
			"error", err,
			"ticket_id", probe.ID(),
		)
		return result, errors.NewInternalError("ticket delete failed, probe row remains")
	}

	result.Deleted = true
	uc.logger.Infow("write path verified", "ticket_id", probe.ID(), "requested_by", cmd.RequestedBy)
	return result, nil
}
