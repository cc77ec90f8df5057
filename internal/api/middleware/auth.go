package middleware

import (
	"Blogicum/internal/pkg/consts"
	"Blogicum/internal/pkg/redis"
	"Blogicum/internal/pkg/response"
	"Blogicum/internal/pkg/security"
	"context"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const authCookieName = "auth_token"

// extractToken 依次尝试 Authorization 头与登录 Cookie
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// redirectToLogin 匿名访问受保护地址时跳转登录页，带上原始地址
func redirectToLogin(c *gin.Context) {
	next := c.Request.URL.Path
	response.Redirect(c, consts.LoginPath+"?next="+url.QueryEscape(next))
	c.Abort()
}

// LoginRequiredMiddleware 验证 JWT 并注入访问者身份，未登录则跳转登录页
func LoginRequiredMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			redirectToLogin(c)
			return
		}

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			redirectToLogin(c)
			return
		}

		value, err := redis.GetValue(c.Request.Context(), consts.TokenBlacklistKey+signature)
		if err != nil {
			response.Fail(c, response.InternalServerError, "未知错误")
			c.Abort()
			return
		}
		if value != "" {
			redirectToLogin(c)
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			redirectToLogin(c)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("is_superuser", claims.IsSuperuser)

		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
