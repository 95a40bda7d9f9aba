package usecases

import (
	"context"
	stderrors "errors"

	"fieldserve/internal/domain/inventory"
	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/shared/biztime"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type AdjustStockCommand struct {
	ItemID     uint
	Quantity   int
	AdjustedBy uint
}

type AdjustStockResult struct {
	ItemID       uint `json:"item_id"`
	Stock        int  `json:"stock"`
	BelowMinimum bool `json:"below_minimum"`
}

// AdjustStockUseCase handles manual warehouse corrections. Positive
// quantities restock, negative quantities remove stock. Ticket-driven
// consumption goes through ticket resolution instead, where it is tied
// to a usage record.
type AdjustStockUseCase struct {
	itemRepo   inventory.ItemRepository
	txManager  TransactionManager
	dispatcher events.EventDispatcher
	logger     logger.Interface
}

func NewAdjustStockUseCase(itemRepo inventory.ItemRepository, txManager TransactionManager, dispatcher events.EventDispatcher, logger logger.Interface) *AdjustStockUseCase {
	return &AdjustStockUseCase{
		itemRepo:   itemRepo,
		txManager:  txManager,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *AdjustStockUseCase) Execute(ctx context.Context, cmd AdjustStockCommand) (*AdjustStockResult, error) {
	uc.logger.Infow("executing adjust stock use case", "item_id", cmd.ItemID, "quantity", cmd.Quantity)

	if cmd.ItemID == 0 {
		return nil, errors.NewValidationError("item ID is required")
	}
	if cmd.Quantity == 0 {
		return nil, errors.NewValidationError("quantity cannot be zero")
	}

	var result *AdjustStockResult
	var adjusted *inventory.Item
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		item, err := uc.itemRepo.GetByIDForUpdate(txCtx, cmd.ItemID)
		if err != nil {
			return errors.NewNotFoundError("inventory item not found")
		}

		if cmd.Quantity > 0 {
			err = item.Restock(cmd.Quantity)
		} else {
			err = item.Consume(-cmd.Quantity)
		}
		if err != nil {
			if stderrors.Is(err, inventory.ErrInsufficientStock) {
				return errors.NewConflictError("insufficient stock")
			}
			return errors.NewValidationError(err.Error())
		}

		if err := uc.itemRepo.Update(txCtx, item); err != nil {
			return err
		}

		result = &AdjustStockResult{
			ItemID:       item.ID(),
			Stock:        item.Stock(),
			BelowMinimum: item.IsBelowMinimum(),
		}
		adjusted = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.dispatcher != nil {
		now := biztime.NowUTC()
		if err := uc.dispatcher.Publish(inventory.NewStockChangedEvent(adjusted.ID(), adjusted.SKU(), adjusted.Stock(), now)); err != nil {
			uc.logger.Warnw("failed to publish stock changed event", "error", err)
		}
		if adjusted.IsBelowMinimum() {
			if err := uc.dispatcher.Publish(inventory.NewLowStockEvent(adjusted, now)); err != nil {
				uc.logger.Warnw("failed to publish low stock event", "error", err)
			}
		}
	}

	uc.logger.Infow("stock adjusted", "item_id", cmd.ItemID, "new_stock", result.Stock)
	return result, nil
}
