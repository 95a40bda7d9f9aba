package usecases

import (
	"context"
	"time"

	"fieldserve/internal/domain/inventory"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type GetItemQuery struct {
	ItemID uint
}

type UsageResult struct {
	TicketID     uint      `json:"ticket_id"`
	TechnicianID uint      `json:"technician_id"`
	Quantity     int       `json:"quantity"`
	UnitCost     float64   `json:"unit_cost"`
	TotalCost    float64   `json:"total_cost"`
	UsedAt       time.Time `json:"used_at"`
}

type GetItemResult struct {
	ItemResult
	Usage []UsageResult `json:"usage"`
}

type GetItemUseCase struct {
	itemRepo  inventory.ItemRepository
	usageRepo inventory.UsageRepository
	logger    logger.Interface
}

func NewGetItemUseCase(itemRepo inventory.ItemRepository, usageRepo inventory.UsageRepository, logger logger.Interface) *GetItemUseCase {
	return &GetItemUseCase{
		itemRepo:  itemRepo,
		usageRepo: usageRepo,
		logger:    logger,
	}
}

func (uc *GetItemUseCase) Execute(ctx context.Context, query GetItemQuery) (*GetItemResult, error) {
	if query.ItemID == 0 {
		return nil, errors.NewValidationError("item ID is required")
	}

	item, err := uc.itemRepo.GetByID(ctx, query.ItemID)
	if err != nil {
		return nil, errors.NewNotFoundError("inventory item not found")
	}

	records, err := uc.usageRepo.GetByItemID(ctx, query.ItemID)
	if err != nil {
		uc.logger.Warnw("failed to load usage records", "error", err, "item_id", query.ItemID)
	}

	usage := make([]UsageResult, 0, len(records))
	for _, r := range records {
		usage = append(usage, UsageResult{
			TicketID:     r.TicketID(),
			TechnicianID: r.TechnicianID(),
			Quantity:     r.Quantity(),
			UnitCost:     r.UnitCost(),
			TotalCost:    r.TotalCost(),
			UsedAt:       r.CreatedAt(),
		})
	}

	return &GetItemResult{
		ItemResult: toItemResult(item),
		Usage:      usage,
	}, nil
}
