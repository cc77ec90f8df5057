package handler

import (
	"Blogicum/internal/pkg/response"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	postSvc service.PostService
}

func NewCategoryHandler(postSvc service.PostService) *CategoryHandler {
	return &CategoryHandler{postSvc: postSvc}
}

// Posts 分类下的公开帖子列表，分类不存在或未发布返回 404
func (s *CategoryHandler) Posts(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}

	result, err := s.postSvc.GetCategoryPage(c.Request.Context(), c.Param("slug"), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
