package handler

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/pkg/response"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

// Create 发表评论，成功后跳转回帖子详情页
func (s *CommentHandler) Create(c *gin.Context) {
	postID, ok := parseUintParam(c, "post_id")
	if !ok {
		return
	}

	var commentDTO dto.CommentBaseDTO
	if err := c.ShouldBind(&commentDTO); err != nil {
		response.Error(c, err)
		return
	}

	err := s.commentSvc.CreateComment(c.Request.Context(), currentViewer(c), postID, &commentDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, postDetailPath(postID))
}

// Update 编辑评论。非作者不报错，跳转回所属帖子详情页。
func (s *CommentHandler) Update(c *gin.Context) {
	commentID, ok := parseUintParam(c, "comment_id")
	if !ok {
		return
	}

	var commentDTO dto.CommentBaseDTO
	if err := c.ShouldBind(&commentDTO); err != nil {
		response.Error(c, err)
		return
	}

	decision, postID, err := s.commentSvc.UpdateComment(c.Request.Context(), currentViewer(c), commentID, &commentDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	switch decision {
	case service.DecisionAllow, service.DecisionRedirect:
		response.Redirect(c, postDetailPath(postID))
	default:
		response.Error(c, service.UnauthorizedError)
	}
}

// Delete 删除评论，作者本人或超级管理员
func (s *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := parseUintParam(c, "comment_id")
	if !ok {
		return
	}

	decision, postID, err := s.commentSvc.DeleteComment(c.Request.Context(), currentViewer(c), commentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	switch decision {
	case service.DecisionAllow, service.DecisionRedirect:
		response.Redirect(c, postDetailPath(postID))
	default:
		response.Error(c, service.UnauthorizedError)
	}
}
