package models

type InventoryItemModel struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:200;not null"`
	SKU       string  `gorm:"column:sku;uniqueIndex;size:100;not null"`
	Category  string  `gorm:"size:50;index"`
	Stock     int     `gorm:"not null;default:0"`
	MinStock  int     `gorm:"not null;default:0"`
	MaxStock  int     `gorm:"not null;default:0"`
	Location  string  `gorm:"size:100"`
	Supplier  string  `gorm:"size:200"`
	UnitCost  float64 `gorm:"type:decimal(10,2);not null;default:0"`
	Version   int     `gorm:"not null;default:1"`
	CreatedAt int64   `gorm:"not null"`
	UpdatedAt int64   `gorm:"not null"`
}

func (InventoryItemModel) TableName() string {
	return "equipment_inventory"
}

type InventoryUsageModel struct {
	ID           uint    `gorm:"primaryKey"`
	ItemID       uint    `gorm:"not null;index"`
	TicketID     uint    `gorm:"not null;index"`
	TechnicianID uint    `gorm:"not null"`
	Quantity     int     `gorm:"not null"`
	UnitCost     float64 `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt    int64   `gorm:"not null"`
}

func (InventoryUsageModel) TableName() string {
	return "inventory_usage"
}
