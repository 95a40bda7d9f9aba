package usecases

import (
	"context"

	"fieldserve/internal/domain/inventory"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

// TransactionManager matches the db package's transaction manager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type UpdateItemCommand struct {
	ItemID   uint
	Name     string
	Category string
	Location string
	Supplier string
	MinStock int
	MaxStock int
	UnitCost float64
}

type UpdateItemUseCase struct {
	itemRepo inventory.ItemRepository
	logger   logger.Interface
}

func NewUpdateItemUseCase(itemRepo inventory.ItemRepository, logger logger.Interface) *UpdateItemUseCase {
	return &UpdateItemUseCase{itemRepo: itemRepo, logger: logger}
}

func (uc *UpdateItemUseCase) Execute(ctx context.Context, cmd UpdateItemCommand) (*ItemResult, error) {
	if cmd.ItemID == 0 {
		return nil, errors.NewValidationError("item ID is required")
	}

	item, err := uc.itemRepo.GetByID(ctx, cmd.ItemID)
	if err != nil {
		return nil, errors.NewNotFoundError("inventory item not found")
	}

	if err := item.UpdateDetails(cmd.Name, cmd.Category, cmd.Location, cmd.Supplier, cmd.MinStock, cmd.MaxStock, cmd.UnitCost); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		uc.logger.Errorw("failed to update item", "error", err, "item_id", cmd.ItemID)
		return nil, err
	}

	result := toItemResult(item)
	return &result, nil
}
