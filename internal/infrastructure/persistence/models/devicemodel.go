package models

type DeviceModel struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"size:200;not null"`
	Category          string `gorm:"size:50"`
	SerialNumber      string `gorm:"uniqueIndex;size:100;not null"`
	Model             string `gorm:"size:100"`
	Status            string `gorm:"size:20;not null;index"`
	RestaurantID      uint   `gorm:"not null;index"`
	LastMaintenanceAt *int64
	CreatedAt         int64 `gorm:"not null"`
	UpdatedAt         int64 `gorm:"not null"`
}

func (DeviceModel) TableName() string {
	return "devices"
}
