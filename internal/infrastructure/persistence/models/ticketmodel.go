package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID              uint           `gorm:"primaryKey"`
	Number          string         `gorm:"uniqueIndex;size:50;not null"`
	Title           string         `gorm:"size:200;not null"`
	Description     string         `gorm:"type:text;not null"`
	Priority        string         `gorm:"size:20;not null;index"`
	Status          string         `gorm:"size:20;not null;index"`
	DeviceID        uint           `gorm:"not null;index"`
	RestaurantID    uint           `gorm:"not null;index"`
	CreatorID       uint           `gorm:"not null;index"`
	AssigneeID      *uint          `gorm:"index"`
	Photos          datatypes.JSON `gorm:"type:json"`
	Resolution      string         `gorm:"type:text"`
	SLADueTime      int64          `gorm:"not null;index"`
	FirstResponseAt *int64
	AssignedAt      *int64
	ResolvedAt      *int64
	ClosedAt        *int64
	Version         int   `gorm:"not null;default:1"`
	CreatedAt       int64 `gorm:"not null"`
	UpdatedAt       int64 `gorm:"not null"`

	// No foreign key constraints or associations. Relationships are
	// managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type HistoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	Status    string `gorm:"size:20;not null"`
	Notes     string `gorm:"size:2000;not null"`
	ActorID   uint   `gorm:"not null"`
	CreatedAt int64  `gorm:"not null;index"`
}

func (HistoryModel) TableName() string {
	return "ticket_history"
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}

type InterventionModel struct {
	ID            uint           `gorm:"primaryKey"`
	TicketID      uint           `gorm:"uniqueIndex;not null"`
	TechnicianID  uint           `gorm:"not null;index"`
	WorkPerformed string         `gorm:"type:text;not null"`
	RootCause     string         `gorm:"type:text"`
	MinutesSpent  int            `gorm:"not null;default:0"`
	Parts         datatypes.JSON `gorm:"type:json"`
	TotalCost     float64        `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt     int64          `gorm:"not null"`
}

func (InterventionModel) TableName() string {
	return "interventions"
}
