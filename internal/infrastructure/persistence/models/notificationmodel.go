package models

type NotificationModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index:idx_notifications_user_unread,priority:1;index"`
	TicketID  *uint  `gorm:"index"`
	Type      string `gorm:"size:30;not null"`
	Title     string `gorm:"size:200;not null"`
	Body      string `gorm:"type:text"`
	IsRead    bool   `gorm:"not null;default:false;index:idx_notifications_user_unread,priority:2"`
	CreatedAt int64  `gorm:"not null"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
