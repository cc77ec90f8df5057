package handler

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/pkg/response"
	"Blogicum/internal/service"
	"fmt"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// Index 首页列表
func (s *PostHandler) Index(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}

	result, err := s.postSvc.GetIndexPage(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Detail 帖子详情
func (s *PostHandler) Detail(c *gin.Context) {
	postID, ok := parseUintParam(c, "post_id")
	if !ok {
		return
	}

	result, err := s.postSvc.GetPostDetail(c.Request.Context(), currentViewer(c), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Create 创建帖子，成功后跳转到作者个人主页
func (s *PostHandler) Create(c *gin.Context) {
	var postDTO dto.PostBaseDTO
	if err := c.ShouldBind(&postDTO); err != nil {
		response.Error(c, err)
		return
	}

	viewer := currentViewer(c)
	if _, err := s.postSvc.CreatePost(c.Request.Context(), viewer, &postDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, "/profile/"+viewer.Username+"/")
}

// Update 编辑帖子。非作者不报错，跳转回帖子详情页。
func (s *PostHandler) Update(c *gin.Context) {
	postID, ok := parseUintParam(c, "post_id")
	if !ok {
		return
	}

	var postDTO dto.PostBaseDTO
	if err := c.ShouldBind(&postDTO); err != nil {
		response.Error(c, err)
		return
	}

	decision, err := s.postSvc.UpdatePost(c.Request.Context(), currentViewer(c), postID, &postDTO)
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

// Delete 删除帖子。作者删除后跳转个人主页，非作者跳转回详情页。
func (s *PostHandler) Delete(c *gin.Context) {
	postID, ok := parseUintParam(c, "post_id")
	if !ok {
		return
	}

	viewer := currentViewer(c)
	decision, err := s.postSvc.DeletePost(c.Request.Context(), viewer, postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	switch decision {
	case service.DecisionAllow:
		response.Redirect(c, "/profile/"+viewer.Username+"/")
	case service.DecisionRedirect:
		response.Redirect(c, postDetailPath(postID))
	default:
		response.Error(c, service.UnauthorizedError)
	}
}

func postDetailPath(postID uint64) string {
	return fmt.Sprintf("/posts/%d/", postID)
}
