package model

import (
	"time"
)

type Category struct {
	ID          uint64    `gorm:"primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Slug        string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_slug" json:"slug"`
	IsPublished bool      `gorm:"type:tinyint(1);not null;default:1" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}
