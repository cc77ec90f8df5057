package handler

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/pkg/response"
	"Blogicum/internal/pkg/security"
	"Blogicum/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

const authCookieName = "auth_token"

func setAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, int(security.JWTExpirationTime.Seconds()), "/", "", false, true)
}

// Register 注册新用户，成功即视为已登录并跳转首页
func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	if err := c.ShouldBind(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}

	token, err := s.userSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	setAuthCookie(c, token)
	response.Redirect(c, "/")
}

// Login 登录，支持 next 参数回跳
func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	if err := c.ShouldBind(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}

	token, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	setAuthCookie(c, token)

	if next := c.Query("next"); strings.HasPrefix(next, "/") {
		response.Redirect(c, next)
		return
	}
	response.Success(c, map[string]string{
		"token": token,
	})
}

// Logout 注销当前 Token 并清除登录 Cookie
func (s *UserHandler) Logout(c *gin.Context) {
	tokenString := ""
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	} else if cookie, err := c.Cookie(authCookieName); err == nil {
		tokenString = cookie
	}

	if tokenString != "" {
		if err := s.userSvc.Logout(c.Request.Context(), tokenString); err != nil {
			response.Error(c, err)
			return
		}
	}

	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
	response.Redirect(c, "/")
}
