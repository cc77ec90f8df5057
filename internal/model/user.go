package model

import (
	"time"
)

type User struct {
	ID          uint64 `gorm:"primaryKey"`
	Username    string `gorm:"type:varchar(150);not null;uniqueIndex:idx_username"`
	Password    string `gorm:"type:varchar(255);not null"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(254);not null;uniqueIndex:idx_email"`
	IsSuperuser bool   `gorm:"type:tinyint(1);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (User) TableName() string {
	return "users"
}
