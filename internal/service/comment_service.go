package service

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/model"
	"Blogicum/internal/repository"
	"context"
)

type CommentService interface {
	CreateComment(ctx context.Context, viewer Viewer, postID uint64, commentDTO *dto.CommentBaseDTO) error
	UpdateComment(ctx context.Context, viewer Viewer, commentID uint64, commentDTO *dto.CommentBaseDTO) (Decision, uint64, error)
	DeleteComment(ctx context.Context, viewer Viewer, commentID uint64) (Decision, uint64, error)
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo) CommentService {
	return &commentServiceImpl{commentRepo: commentRepo, postRepo: postRepo}
}

// CreateComment 发表评论。帖子存在即可，不要求帖子处于公开状态。
func (s *commentServiceImpl) CreateComment(ctx context.Context, viewer Viewer, postID uint64, commentDTO *dto.CommentBaseDTO) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:   postID,
		AuthorID: viewer.ID,
		Message:  commentDTO.Message,
	}
	return s.commentRepo.CreateComment(ctx, comment)
}

// UpdateComment 编辑评论，仅作者本人。返回所属帖子 ID 供跳转使用。
func (s *commentServiceImpl) UpdateComment(ctx context.Context, viewer Viewer, commentID uint64, commentDTO *dto.CommentBaseDTO) (Decision, uint64, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return DecisionForbidden, 0, err
	}
	if comment == nil {
		return DecisionForbidden, 0, ErrCommentNotFound
	}

	decision := CanMutateComment(viewer, comment, false)
	if decision != DecisionAllow {
		return decision, comment.PostID, nil
	}

	if err = s.commentRepo.UpdateComment(ctx, commentID, commentDTO.Message); err != nil {
		return DecisionAllow, comment.PostID, err
	}
	return DecisionAllow, comment.PostID, nil
}

// DeleteComment 删除评论，作者本人或超级管理员
func (s *commentServiceImpl) DeleteComment(ctx context.Context, viewer Viewer, commentID uint64) (Decision, uint64, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return DecisionForbidden, 0, err
	}
	if comment == nil {
		return DecisionForbidden, 0, ErrCommentNotFound
	}

	decision := CanMutateComment(viewer, comment, true)
	if decision != DecisionAllow {
		return decision, comment.PostID, nil
	}

	if err = s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		return DecisionAllow, comment.PostID, err
	}
	return DecisionAllow, comment.PostID, nil
}
