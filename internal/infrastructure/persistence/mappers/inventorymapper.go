package mappers

import (
	"fieldserve/internal/domain/inventory"
	"fieldserve/internal/infrastructure/persistence/models"
)

type InventoryMapper interface {
	ItemToModel(i *inventory.Item) *models.InventoryItemModel
	ItemToDomain(model *models.InventoryItemModel) (*inventory.Item, error)
	UsageToModel(u *inventory.UsageRecord) *models.InventoryUsageModel
	UsageToDomain(model *models.InventoryUsageModel) (*inventory.UsageRecord, error)
}

type InventoryMapperImpl struct{}

func NewInventoryMapper() InventoryMapper {
	return &InventoryMapperImpl{}
}

func (m *InventoryMapperImpl) ItemToModel(i *inventory.Item) *models.InventoryItemModel {
	return &models.InventoryItemModel{
		ID:        i.ID(),
		Name:      i.Name(),
		SKU:       i.SKU(),
		Category:  i.Category(),
		Stock:     i.Stock(),
		MinStock:  i.MinStock(),
		MaxStock:  i.MaxStock(),
		Location:  i.Location(),
		Supplier:  i.Supplier(),
		UnitCost:  i.UnitCost(),
		Version:   i.Version(),
		CreatedAt: i.CreatedAt().UnixMilli(),
		UpdatedAt: i.UpdatedAt().UnixMilli(),
	}
}

func (m *InventoryMapperImpl) ItemToDomain(model *models.InventoryItemModel) (*inventory.Item, error) {
	return inventory.ReconstructItem(
		model.ID,
		model.Name,
		model.SKU,
		model.Category,
		model.Stock,
		model.MinStock,
		model.MaxStock,
		model.Location,
		model.Supplier,
		model.UnitCost,
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *InventoryMapperImpl) UsageToModel(u *inventory.UsageRecord) *models.InventoryUsageModel {
	return &models.InventoryUsageModel{
		ID:           u.ID(),
		ItemID:       u.ItemID(),
		TicketID:     u.TicketID(),
		TechnicianID: u.TechnicianID(),
		Quantity:     u.Quantity(),
		UnitCost:     u.UnitCost(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
	}
}

func (m *InventoryMapperImpl) UsageToDomain(model *models.InventoryUsageModel) (*inventory.UsageRecord, error) {
	return inventory.ReconstructUsageRecord(
		model.ID,
		model.ItemID,
		model.TicketID,
		model.TechnicianID,
		model.Quantity,
		model.UnitCost,
		millisToTime(model.CreatedAt),
	)
}
