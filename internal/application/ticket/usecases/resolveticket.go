package usecases

import (
	"context"
	stderrors "errors"

	"fieldserve/internal/domain/device"
	"fieldserve/internal/domain/inventory"
	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/domain/ticket"
	vo "fieldserve/internal/domain/ticket/valueobjects"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/biztime"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type PartUsage struct {
	ItemID   uint
	Quantity int
}

type ResolveTicketCommand struct {
	TicketID      uint
	Resolution    string
	WorkPerformed string
	RootCause     string
	MinutesSpent  int
	Parts         []PartUsage
	ResolvedBy    uint
	Role          authorization.UserRole
}

type ResolveTicketResult struct {
	TicketID       uint    `json:"ticket_id"`
	Status         string  `json:"status"`
	InterventionID uint    `json:"intervention_id,omitempty"`
	TotalCost      float64 `json:"total_cost"`
	Replayed       bool    `json:"replayed,omitempty"`
}

// ResolveTicketUseCase records the intervention, consumes the parts it
// used and advances the ticket to resolved, all in one database
// transaction. Stock decrements and usage records therefore commit or
// roll back together with the status change.
type ResolveTicketUseCase struct {
	ticketRepo       ticket.TicketRepository
	historyRepo      ticket.HistoryRepository
	interventionRepo ticket.InterventionRepository
	itemRepo         inventory.ItemRepository
	usageRepo        inventory.UsageRepository
	deviceRepo       device.Repository
	txManager        TransactionManager
	dispatcher       events.EventDispatcher
	logger           logger.Interface
}

func NewResolveTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	interventionRepo ticket.InterventionRepository,
	itemRepo inventory.ItemRepository,
	usageRepo inventory.UsageRepository,
	deviceRepo device.Repository,
	txManager TransactionManager,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *ResolveTicketUseCase {
	return &ResolveTicketUseCase{
		ticketRepo:       ticketRepo,
		historyRepo:      historyRepo,
		interventionRepo: interventionRepo,
		itemRepo:         itemRepo,
		usageRepo:        usageRepo,
		deviceRepo:       deviceRepo,
		txManager:        txManager,
		dispatcher:       dispatcher,
		logger:           logger,
	}
}

func (uc *ResolveTicketUseCase) Execute(ctx context.Context, cmd ResolveTicketCommand) (*ResolveTicketResult, error) {
	uc.logger.Infow("executing resolve ticket use case",
		"ticket_id", cmd.TicketID,
		"resolved_by", cmd.ResolvedBy,
		"parts", len(cmd.Parts))

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid resolve ticket command", "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	// A replayed resolve, typically from the offline queue, is answered
	// with the stored outcome instead of double-consuming inventory.
	if t.Status().IsResolved() || t.Status().IsClosed() {
		return uc.replayedResult(ctx, t)
	}

	actor := ticket.Actor{ID: cmd.ResolvedBy, Role: cmd.Role}
	if err := ticket.CanTransition(actor, t, vo.StatusResolved); err != nil {
		if stderrors.Is(err, ticket.ErrNotAssigned) {
			return nil, errors.NewConflictError(err.Error())
		}
		return nil, errors.NewForbiddenError(err.Error())
	}

	var intervention *ticket.Intervention
	var consumed []*inventory.Item

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		partLines := make([]ticket.PartLine, 0, len(cmd.Parts))
		for _, part := range cmd.Parts {
			item, err := uc.itemRepo.GetByIDForUpdate(txCtx, part.ItemID)
			if err != nil {
				return errors.NewNotFoundError("inventory item not found")
			}
			if err := item.Consume(part.Quantity); err != nil {
				if stderrors.Is(err, inventory.ErrInsufficientStock) {
					return errors.NewConflictError("insufficient stock for item " + item.SKU())
				}
				return errors.NewValidationError(err.Error())
			}
			if err := uc.itemRepo.Update(txCtx, item); err != nil {
				return err
			}

			record, err := inventory.NewUsageRecord(part.ItemID, t.ID(), cmd.ResolvedBy, part.Quantity, item.UnitCost())
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.usageRepo.Save(txCtx, record); err != nil {
				return err
			}

			partLines = append(partLines, ticket.PartLine{
				ItemID:   part.ItemID,
				Quantity: part.Quantity,
				UnitCost: item.UnitCost(),
			})
			consumed = append(consumed, item)
		}

		intervention, err = ticket.NewIntervention(
			t.ID(),
			cmd.ResolvedBy,
			cmd.WorkPerformed,
			cmd.RootCause,
			cmd.MinutesSpent,
			partLines,
		)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.interventionRepo.Save(txCtx, intervention); err != nil {
			return err
		}

		if err := t.Resolve(cmd.Resolution); err != nil {
			return errors.NewConflictError(err.Error())
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		// The transition is only durable together with its history row;
		// a failed entry rolls the whole resolve back.
		entry, err := ticket.NewHistoryEntry(t.ID(), t.Status(), cmd.Resolution, cmd.ResolvedBy)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.historyRepo.Save(txCtx, entry); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("resolve transaction failed", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.completeDeviceMaintenance(ctx, t.DeviceID())

	if uc.dispatcher != nil {
		now := biztime.NowUTC()
		event := ticket.NewTicketResolvedEvent(t.ID(), t.CreatorID(), cmd.ResolvedBy, now)
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish ticket resolved event", "error", err)
		}
		for _, item := range consumed {
			if err := uc.dispatcher.Publish(inventory.NewStockChangedEvent(item.ID(), item.SKU(), item.Stock(), now)); err != nil {
				uc.logger.Warnw("failed to publish stock changed event", "error", err)
			}
			if item.IsBelowMinimum() {
				if err := uc.dispatcher.Publish(inventory.NewLowStockEvent(item, now)); err != nil {
					uc.logger.Warnw("failed to publish low stock event", "error", err)
				}
			}
		}
	}

	uc.logger.Infow("ticket resolved successfully",
		"ticket_id", t.ID(),
		"intervention_id", intervention.ID(),
		"total_cost", intervention.TotalCost())

	return &ResolveTicketResult{
		TicketID:       t.ID(),
		Status:         t.Status().String(),
		InterventionID: intervention.ID(),
		TotalCost:      intervention.TotalCost(),
	}, nil
}

// replayedResult answers a duplicate resolve with the already-committed
// outcome so offline clients replaying their queue see success.
func (uc *ResolveTicketUseCase) replayedResult(ctx context.Context, t *ticket.Ticket) (*ResolveTicketResult, error) {
	result := &ResolveTicketResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
		Replayed: true,
	}
	if intervention, err := uc.interventionRepo.GetByTicketID(ctx, t.ID()); err == nil && intervention != nil {
		result.InterventionID = intervention.ID()
		result.TotalCost = intervention.TotalCost()
	}
	uc.logger.Infow("resolve replay detected, returning stored outcome", "ticket_id", t.ID())
	return result, nil
}

func (uc *ResolveTicketUseCase) completeDeviceMaintenance(ctx context.Context, deviceID uint) {
	dev, err := uc.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		uc.logger.Warnw("failed to load device after resolve", "error", err, "device_id", deviceID)
		return
	}
	dev.CompleteMaintenance()
	if err := uc.deviceRepo.Update(ctx, dev); err != nil {
		uc.logger.Warnw("failed to restore device to operational", "error", err, "device_id", deviceID)
		return
	}
	if uc.dispatcher != nil {
		if err := uc.dispatcher.Publish(device.NewDeviceStatusChangedEvent(dev, biztime.NowUTC())); err != nil {
			uc.logger.Warnw("failed to publish device status event", "error", err)
		}
	}
}

func (uc *ResolveTicketUseCase) validateCommand(cmd ResolveTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if len(cmd.Resolution) == 0 {
		return errors.NewValidationError("resolution is required")
	}
	// The resolution doubles as the history note, which caps at 2000.
	if len(cmd.Resolution) > 2000 {
		return errors.NewValidationError("resolution exceeds maximum length of 2000 characters")
	}
	if len(cmd.WorkPerformed) == 0 {
		return errors.NewValidationError("work performed is required")
	}
	if cmd.MinutesSpent < 0 {
		return errors.NewValidationError("minutes spent cannot be negative")
	}
	if cmd.ResolvedBy == 0 {
		return errors.NewValidationError("resolving user ID is required")
	}
	for _, part := range cmd.Parts {
		if part.ItemID == 0 {
			return errors.NewValidationError("part item ID is required")
		}
		if part.Quantity <= 0 {
			return errors.NewValidationError("part quantity must be positive")
		}
	}
	return nil
}
