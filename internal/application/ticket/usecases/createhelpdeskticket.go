package usecases

import (
	"context"

	"fieldserve/internal/domain/device"
	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/domain/ticket"
	vo "fieldserve/internal/domain/ticket/valueobjects"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type CreateHelpdeskTicketCommand struct {
	Title        string
	Description  string
	Priority     string
	DeviceID     uint
	RestaurantID uint
	CreatorID    uint
}

// CreateHelpdeskTicketUseCase is the software-support intake path. It
// differs from the standard path only in the SLA table applied at
// creation; the lifecycle afterwards is identical.
type CreateHelpdeskTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	deviceRepo  device.Repository
	numberGen   ticket.NumberGenerator
	dispatcher  events.EventDispatcher
	logger      logger.Interface
}

func NewCreateHelpdeskTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	deviceRepo device.Repository,
	numberGen ticket.NumberGenerator,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *CreateHelpdeskTicketUseCase {
	return &CreateHelpdeskTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		deviceRepo:  deviceRepo,
		numberGen:   numberGen,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *CreateHelpdeskTicketUseCase) Execute(ctx context.Context, cmd CreateHelpdeskTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create helpdesk ticket use case", "title", cmd.Title, "creator_id", cmd.CreatorID)

	if err := validateCreateCommand(cmd.Title, cmd.Description, cmd.Priority, cmd.DeviceID, cmd.CreatorID); err != nil {
		uc.logger.Errorw("invalid create helpdesk ticket command", "error", err)
		return nil, err
	}

	dev, err := uc.deviceRepo.GetByID(ctx, cmd.DeviceID)
	if err != nil {
		uc.logger.Errorw("failed to find device", "error", err, "device_id", cmd.DeviceID)
		return nil, errors.NewNotFoundError("device not found")
	}
	if cmd.RestaurantID != 0 && cmd.RestaurantID != dev.RestaurantID() {
		return nil, errors.NewValidationError("device does not belong to the given restaurant")
	}

	priority := vo.Priority(cmd.Priority)
	newTicket, err := ticket.NewHelpdeskTicket(
		cmd.Title,
		cmd.Description,
		priority,
		cmd.DeviceID,
		dev.RestaurantID(),
		cmd.CreatorID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numberGen.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, errors.NewInternalError("failed to generate ticket number")
	}
	if err := newTicket.SetNumber(number); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	if entry, err := ticket.NewHistoryEntry(newTicket.ID(), newTicket.Status(), "helpdesk ticket created", cmd.CreatorID); err == nil {
		if err := uc.historyRepo.Save(ctx, entry); err != nil {
			uc.logger.Warnw("failed to save history entry", "error", err, "ticket_id", newTicket.ID())
		}
	}

	if uc.dispatcher != nil {
		event := ticket.NewTicketCreatedEvent(newTicket, true, newTicket.CreatedAt())
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish ticket created event", "error", err)
		}
	}

	uc.logger.Infow("helpdesk ticket created successfully", "ticket_id", newTicket.ID(), "number", newTicket.Number())

	return &CreateTicketResult{
		TicketID:   newTicket.ID(),
		Number:     newTicket.Number(),
		Status:     newTicket.Status().String(),
		SLADueTime: newTicket.SLADueTime(),
		CreatedAt:  newTicket.CreatedAt(),
	}, nil
}
