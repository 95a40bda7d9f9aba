package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fieldserve/internal/domain/inventory"
	"fieldserve/internal/infrastructure/persistence/mappers"
	"fieldserve/internal/infrastructure/persistence/models"
	"fieldserve/internal/shared/db"
)

type InventoryItemRepository struct {
	db     *gorm.DB
	mapper mappers.InventoryMapper
}

func NewInventoryItemRepository(database *gorm.DB) *InventoryItemRepository {
	return &InventoryItemRepository{
		db:     database,
		mapper: mappers.NewInventoryMapper(),
	}
}

func (r *InventoryItemRepository) Save(ctx context.Context, item *inventory.Item) error {
	model := r.mapper.ItemToModel(item)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save inventory item: %w", err)
	}

	return item.SetID(model.ID)
}

func (r *InventoryItemRepository) Update(ctx context.Context, item *inventory.Item) error {
	model := r.mapper.ItemToModel(item)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.InventoryItemModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update inventory item: %w", result.Error)
	}

	return nil
}

func (r *InventoryItemRepository) Delete(ctx context.Context, itemID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.InventoryItemModel{}, itemID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete inventory item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("inventory item not found")
	}
	return nil
}

func (r *InventoryItemRepository) GetByID(ctx context.Context, itemID uint) (*inventory.Item, error) {
	var model models.InventoryItemModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, itemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("inventory item not found")
		}
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}

	return r.mapper.ItemToDomain(&model)
}

// GetByIDForUpdate reads the item under SELECT ... FOR UPDATE so the row
// stays locked until the enclosing transaction commits. Consumption reads
// through this to rule out lost updates between concurrent resolutions.
func (r *InventoryItemRepository) GetByIDForUpdate(ctx context.Context, itemID uint) (*inventory.Item, error) {
	var model models.InventoryItemModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, itemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("inventory item not found")
		}
		return nil, fmt.Errorf("failed to lock inventory item: %w", err)
	}

	return r.mapper.ItemToDomain(&model)
}

func (r *InventoryItemRepository) GetBySKU(ctx context.Context, sku string) (*inventory.Item, error) {
	var model models.InventoryItemModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sku = ?", sku).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("inventory item not found")
		}
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}

	return r.mapper.ItemToDomain(&model)
}

func (r *InventoryItemRepository) List(ctx context.Context, filter inventory.ItemFilter) ([]*inventory.Item, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.InventoryItemModel{})

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.BelowMinimum {
		query = query.Where("stock < min_stock")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR sku LIKE ? OR supplier LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inventory items: %w", err)
	}

	query = query.Order("name ASC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var itemModels []models.InventoryItemModel
	if err := query.Find(&itemModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list inventory items: %w", err)
	}

	items := make([]*inventory.Item, len(itemModels))
	for i := range itemModels {
		item, err := r.mapper.ItemToDomain(&itemModels[i])
		if err != nil {
			return nil, 0, err
		}
		items[i] = item
	}

	return items, total, nil
}

func (r *InventoryItemRepository) ListBelowMinimum(ctx context.Context) ([]*inventory.Item, error) {
	var itemModels []models.InventoryItemModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("stock < min_stock").
		Order("stock ASC").
		Find(&itemModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list low-stock items: %w", err)
	}

	items := make([]*inventory.Item, len(itemModels))
	for i := range itemModels {
		item, err := r.mapper.ItemToDomain(&itemModels[i])
		if err != nil {
			return nil, err
		}
		items[i] = item
	}

	return items, nil
}

type InventoryUsageRepository struct {
	db     *gorm.DB
	mapper mappers.InventoryMapper
}

func NewInventoryUsageRepository(database *gorm.DB) *InventoryUsageRepository {
	return &InventoryUsageRepository{
		db:     database,
		mapper: mappers.NewInventoryMapper(),
	}
}

func (r *InventoryUsageRepository) Save(ctx context.Context, record *inventory.UsageRecord) error {
	model := r.mapper.UsageToModel(record)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save usage record: %w", err)
	}

	return record.SetID(model.ID)
}

func (r *InventoryUsageRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*inventory.UsageRecord, error) {
	return r.listWhere(ctx, "ticket_id = ?", ticketID)
}

func (r *InventoryUsageRepository) GetByItemID(ctx context.Context, itemID uint) ([]*inventory.UsageRecord, error) {
	return r.listWhere(ctx, "item_id = ?", itemID)
}

func (r *InventoryUsageRepository) listWhere(ctx context.Context, cond string, arg any) ([]*inventory.UsageRecord, error) {
	var usageModels []models.InventoryUsageModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where(cond, arg).
		Order("created_at ASC").
		Find(&usageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list usage records: %w", err)
	}

	records := make([]*inventory.UsageRecord, len(usageModels))
	for i := range usageModels {
		record, err := r.mapper.UsageToDomain(&usageModels[i])
		if err != nil {
			return nil, err
		}
		records[i] = record
	}

	return records, nil
}
