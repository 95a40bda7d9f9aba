package usecases

import (
	"context"
	"time"

	"fieldserve/internal/domain/inventory"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

type ListItemsQuery struct {
	Category     string
	BelowMinimum bool
	Search       string
	Page         int
	PageSize     int
}

type ItemResult struct {
	ItemID       uint      `json:"item_id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Category     string    `json:"category"`
	Stock        int       `json:"stock"`
	MinStock     int       `json:"min_stock"`
	MaxStock     int       `json:"max_stock"`
	Location     string    `json:"location"`
	Supplier     string    `json:"supplier"`
	UnitCost     float64   `json:"unit_cost"`
	BelowMinimum bool      `json:"below_minimum"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toItemResult(item *inventory.Item) ItemResult {
	return ItemResult{
		ItemID:       item.ID(),
		Name:         item.Name(),
		SKU:          item.SKU(),
		Category:     item.Category(),
		Stock:        item.Stock(),
		MinStock:     item.MinStock(),
		MaxStock:     item.MaxStock(),
		Location:     item.Location(),
		Supplier:     item.Supplier(),
		UnitCost:     item.UnitCost(),
		BelowMinimum: item.IsBelowMinimum(),
		UpdatedAt:    item.UpdatedAt(),
	}
}

type ListItemsResult struct {
	Items    []ItemResult `json:"items"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

type ListItemsUseCase struct {
	itemRepo inventory.ItemRepository
	logger   logger.Interface
}

func NewListItemsUseCase(itemRepo inventory.ItemRepository, logger logger.Interface) *ListItemsUseCase {
	return &ListItemsUseCase{itemRepo: itemRepo, logger: logger}
}

func (uc *ListItemsUseCase) Execute(ctx context.Context, query ListItemsQuery) (*ListItemsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := inventory.ItemFilter{
		BelowMinimum: query.BelowMinimum,
		Search:       query.Search,
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	}
	if len(query.Category) > 0 {
		filter.Category = &query.Category
	}

	items, total, err := uc.itemRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list items", "error", err)
		return nil, err
	}

	results := make([]ItemResult, 0, len(items))
	for _, item := range items {
		results = append(results, toItemResult(item))
	}

	return &ListItemsResult{
		Items:    results,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
