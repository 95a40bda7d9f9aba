package usecases

import (
	"context"

	"fieldserve/internal/domain/inventory"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type CreateItemCommand struct {
	Name     string
	SKU      string
	Category string
	Stock    int
	MinStock int
	MaxStock int
	Location string
	Supplier string
	UnitCost float64
}

type CreateItemResult struct {
	ItemID uint   `json:"item_id"`
	SKU    string `json:"sku"`
}

type CreateItemUseCase struct {
	itemRepo inventory.ItemRepository
	logger   logger.Interface
}

func NewCreateItemUseCase(itemRepo inventory.ItemRepository, logger logger.Interface) *CreateItemUseCase {
	return &CreateItemUseCase{itemRepo: itemRepo, logger: logger}
}

func (uc *CreateItemUseCase) Execute(ctx context.Context, cmd CreateItemCommand) (*CreateItemResult, error) {
	uc.logger.Infow("executing create item use case", "sku", cmd.SKU)

	item, err := inventory.NewItem(
		cmd.Name,
		cmd.SKU,
		cmd.Category,
		cmd.Stock,
		cmd.MinStock,
		cmd.MaxStock,
		cmd.Location,
		cmd.Supplier,
		cmd.UnitCost,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.itemRepo.Save(ctx, item); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("SKU already exists")
		}
		uc.logger.Errorw("failed to save item", "error", err)
		return nil, err
	}

	uc.logger.Infow("inventory item created", "item_id", item.ID(), "sku", item.SKU())

	return &CreateItemResult{
		ItemID: item.ID(),
		SKU:    item.SKU(),
	}, nil
}
