package handler

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/pkg/response"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	postSvc service.PostService
	userSvc service.UserService
}

func NewProfileHandler(postSvc service.PostService, userSvc service.UserService) *ProfileHandler {
	return &ProfileHandler{postSvc: postSvc, userSvc: userSvc}
}

// Show 个人主页：本人能看到自己的全部帖子，他人只见公开部分
func (s *ProfileHandler) Show(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}

	result, err := s.postSvc.GetProfilePage(c.Request.Context(), currentViewer(c), c.Param("username"), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Edit 修改个人资料，仅限本人，成功后跳转回个人主页
func (s *ProfileHandler) Edit(c *gin.Context) {
	username := c.Param("username")

	var editDTO dto.EditProfileDTO
	if err := c.ShouldBind(&editDTO); err != nil {
		response.Error(c, err)
		return
	}

	decision, err := s.userSvc.UpdateProfile(c.Request.Context(), currentViewer(c), username, &editDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	switch decision {
	case service.DecisionAllow, service.DecisionRedirect:
		response.Redirect(c, "/profile/"+username+"/")
	default:
		response.Error(c, service.UnauthorizedError)
	}
}
