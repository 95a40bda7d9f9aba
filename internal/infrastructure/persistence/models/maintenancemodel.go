package models

type MaintenanceRecordModel struct {
	ID           uint   `gorm:"primaryKey"`
	DeviceID     uint   `gorm:"not null;index"`
	TechnicianID *uint  `gorm:"index"`
	Description  string `gorm:"size:500;not null"`
	DueDate      int64  `gorm:"not null;index"`
	CompletedAt  *int64
	Notes        string `gorm:"size:2000"`
	CreatedAt    int64  `gorm:"not null"`
	UpdatedAt    int64  `gorm:"not null"`
}

func (MaintenanceRecordModel) TableName() string {
	return "maintenance_records"
}
