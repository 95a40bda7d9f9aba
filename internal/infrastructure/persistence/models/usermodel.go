package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Name         string `gorm:"size:100;not null"`
	Phone        string `gorm:"size:30"`
	Role         string `gorm:"size:30;not null;index"`
	RestaurantID *uint  `gorm:"index"`
	IsActive     bool   `gorm:"not null;default:true"`
	LastLoginAt  *int64
	Version      int   `gorm:"not null;default:1"`
	CreatedAt    int64 `gorm:"not null"`
	UpdatedAt    int64 `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
