package middleware

import (
	"Blogicum/internal/pkg/security"
	"context"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入访问者身份，失败或缺失视为匿名
func AuthOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Set("user_id", uint64(0))
			c.Next()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			c.Set("user_id", uint64(0))
		} else {
			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)
			c.Set("is_superuser", claims.IsSuperuser)

			newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
			c.Request = c.Request.WithContext(newCtx)
		}

		c.Next()
	}
}
