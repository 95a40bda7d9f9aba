package models

type RestaurantModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	Address   string `gorm:"size:500"`
	Phone     string `gorm:"size:30"`
	CreatedAt int64  `gorm:"not null"`
	UpdatedAt int64  `gorm:"not null"`
}

func (RestaurantModel) TableName() string {
	return "restaurants"
}
