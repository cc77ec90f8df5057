package model

import (
	"time"
)

type Post struct {
	ID          uint64    `gorm:"primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Text        string    `gorm:"not null" json:"text"`
	PubDate     time.Time `gorm:"not null;index:idx_pub_date" json:"pub_date"`
	AuthorID    uint64    `gorm:"not null;index:idx_author_id" json:"author_id"`
	CategoryID  *uint64   `json:"category_id"`
	LocationID  *uint64   `json:"location_id"`
	ImageURL    *string   `gorm:"type:varchar(512)" json:"image_url"`
	IsPublished bool      `gorm:"type:tinyint(1);not null;default:1" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// CommentCount 由列表查询的子查询聚合填充，不落库
	CommentCount int64 `gorm:"->;-:migration" json:"comment_count"`

	// 关联关系
	Author   User      `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	Category *Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
	Location *Location `gorm:"foreignKey:LocationID;references:ID;constraint:OnDelete:SET NULL"`
}

func (Post) TableName() string {
	return "posts"
}
