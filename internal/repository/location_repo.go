package repository

import (
	"Blogicum/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type LocationRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.Location, error)
}

type LocationRepoImpl struct {
	db *gorm.DB
}

func NewLocationRepo(db *gorm.DB) LocationRepo {
	return &LocationRepoImpl{db: db}
}

func (s *LocationRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Location, error) {
	var location model.Location
	err := s.db.WithContext(ctx).First(&location, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}
