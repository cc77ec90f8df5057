package model

import (
	"time"
)

// Location 地点仅作为帖子的元数据，is_published 不参与可见性过滤
type Location struct {
	ID          uint64    `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	IsPublished bool      `gorm:"type:tinyint(1);not null;default:1" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Location) TableName() string {
	return "locations"
}
