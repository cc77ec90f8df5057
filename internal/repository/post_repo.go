package repository

import (
	"Blogicum/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// commentCountSelect 用关联子查询聚合评论数，避免逐行查询
const commentCountSelect = "posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count"

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id uint64) error
	ListVisible(ctx context.Context, now time.Time, categoryID *uint64, limit, offset int) ([]*model.Post, error)
	CountVisible(ctx context.Context, now time.Time, categoryID *uint64) (int64, error)
	ListByAuthor(ctx context.Context, authorID uint64, now time.Time, includeHidden bool, limit, offset int) ([]*model.Post, error)
	CountByAuthor(ctx context.Context, authorID uint64, now time.Time, includeHidden bool) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", post.ID).
		Select("title", "text", "pub_date", "category_id", "location_id", "image_url", "is_published").
		Updates(map[string]interface{}{
			"title":        post.Title,
			"text":         post.Text,
			"pub_date":     post.PubDate,
			"category_id":  post.CategoryID,
			"location_id":  post.LocationID,
			"image_url":    post.ImageURL,
			"is_published": post.IsPublished,
		}).Error
}

// DeletePost 删除帖子并级联删除其评论
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Comment{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

// visibleScope 公共可见性谓词：已发布、发布时间不晚于 now、分类为空或分类已发布
func visibleScope(db *gorm.DB, now time.Time) *gorm.DB {
	return db.
		Joins("LEFT JOIN categories ON categories.id = posts.category_id").
		Where("posts.is_published = ? AND posts.pub_date <= ? AND (posts.category_id IS NULL OR categories.is_published = ?)",
			true, now, true)
}

func (s *PostRepoImpl) ListVisible(ctx context.Context, now time.Time, categoryID *uint64, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	q := visibleScope(s.db.WithContext(ctx).Model(&model.Post{}), now).
		Select(commentCountSelect).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Order("posts.pub_date DESC, posts.id DESC").
		Limit(limit).Offset(offset)
	if categoryID != nil {
		q = q.Where("posts.category_id = ?", *categoryID)
	}
	err := q.Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) CountVisible(ctx context.Context, now time.Time, categoryID *uint64) (int64, error) {
	var count int64
	q := visibleScope(s.db.WithContext(ctx).Model(&model.Post{}), now)
	if categoryID != nil {
		q = q.Where("posts.category_id = ?", *categoryID)
	}
	err := q.Count(&count).Error
	return count, err
}

func (s *PostRepoImpl) ListByAuthor(ctx context.Context, authorID uint64, now time.Time, includeHidden bool, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	q := s.db.WithContext(ctx).Model(&model.Post{})
	if !includeHidden {
		q = visibleScope(q, now)
	}
	err := q.
		Select(commentCountSelect).
		Where("posts.author_id = ?", authorID).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Order("posts.pub_date DESC, posts.id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) CountByAuthor(ctx context.Context, authorID uint64, now time.Time, includeHidden bool) (int64, error) {
	var count int64
	q := s.db.WithContext(ctx).Model(&model.Post{})
	if !includeHidden {
		q = visibleScope(q, now)
	}
	err := q.Where("posts.author_id = ?", authorID).Count(&count).Error
	return count, err
}
