package models

import "gorm.io/datatypes"

type ArticleModel struct {
	ID        uint           `gorm:"primaryKey"`
	Title     string         `gorm:"size:200;not null"`
	Slug      string         `gorm:"uniqueIndex;size:220;not null"`
	Body      string         `gorm:"type:mediumtext;not null"`
	Category  string         `gorm:"size:50;index"`
	Tags      datatypes.JSON `gorm:"type:json"`
	AuthorID  uint           `gorm:"not null;index"`
	ViewCount int            `gorm:"not null;default:0"`
	Version   int            `gorm:"not null;default:1"`
	CreatedAt int64          `gorm:"not null"`
	UpdatedAt int64          `gorm:"not null"`
}

func (ArticleModel) TableName() string {
	return "knowledge_articles"
}
