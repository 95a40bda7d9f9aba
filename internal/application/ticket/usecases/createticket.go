package usecases

import (
	"context"
	"time"

	"fieldserve/internal/domain/device"
	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/domain/ticket"
	vo "fieldserve/internal/domain/ticket/valueobjects"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title        string
	Description  string
	Priority     string
	DeviceID     uint
	RestaurantID uint
	CreatorID    uint
	Photos       []string
}

type CreateTicketResult struct {
	TicketID   uint      `json:"ticket_id"`
	Number     string    `json:"number"`
	Status     string    `json:"status"`
	SLADueTime time.Time `json:"sla_due_time"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	deviceRepo  device.Repository
	numberGen   ticket.NumberGenerator
	dispatcher  events.EventDispatcher
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	deviceRepo device.Repository,
	numberGen ticket.NumberGenerator,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		deviceRepo:  deviceRepo,
		numberGen:   numberGen,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "creator_id", cmd.CreatorID)

	if err := validateCreateCommand(cmd.Title, cmd.Description, cmd.Priority, cmd.DeviceID, cmd.CreatorID); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
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
	newTicket, err := ticket.NewTicket(
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

	for _, photo := range cmd.Photos {
		if err := newTicket.AddPhoto(photo); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.recordCreation(ctx, newTicket, cmd.CreatorID)

	dev.EnterMaintenance()
	if err := uc.deviceRepo.Update(ctx, dev); err != nil {
		uc.logger.Warnw("failed to mark device under maintenance", "error", err, "device_id", dev.ID())
	} else if uc.dispatcher != nil {
		if err := uc.dispatcher.Publish(device.NewDeviceStatusChangedEvent(dev, newTicket.CreatedAt())); err != nil {
			uc.logger.Warnw("failed to publish device status event", "error", err)
		}
	}

	if uc.dispatcher != nil {
		event := ticket.NewTicketCreatedEvent(newTicket, false, newTicket.CreatedAt())
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish ticket created event", "error", err)
		}
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "number", newTicket.Number())

	return &CreateTicketResult{
		TicketID:   newTicket.ID(),
		Number:     newTicket.Number(),
		Status:     newTicket.Status().String(),
		SLADueTime: newTicket.SLADueTime(),
		CreatedAt:  newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) recordCreation(ctx context.Context, t *ticket.Ticket, actorID uint) {
	entry, err := ticket.NewHistoryEntry(t.ID(), t.Status(), "ticket created", actorID)
	if err != nil {
		uc.logger.Warnw("failed to build history entry", "error", err, "ticket_id", t.ID())
		return
	}
	if err := uc.historyRepo.Save(ctx, entry); err != nil {
		uc.logger.Warnw("failed to save history entry", "error", err, "ticket_id", t.ID())
	}
}

func validateCreateCommand(title, description, priority string, deviceID, creatorID uint) error {
	if len(title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if len(description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}
	if !vo.Priority(priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	if deviceID == 0 {
		return errors.NewValidationError("device ID is required")
	}
	if creatorID == 0 {
		return errors.NewValidationError("creator ID is required")
	}
	return nil
}
