package api

import (
	"Blogicum/internal/api/middleware"
	"Blogicum/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"Code":    200,
			"Message": "pong",
			"Data":    nil,
		})
	})

	// 公开页面，登录与否只影响可见范围
	publicGroup := r.Group("")
	publicGroup.Use(middleware.AuthOptionalMiddleware())
	{
		publicGroup.GET("/", group.PostHandler.Index)
		publicGroup.GET("/category/:slug/", group.CategoryHandler.Posts)
		publicGroup.GET("/profile/:username/", group.ProfileHandler.Show)
		publicGroup.GET("/posts/:post_id/", group.PostHandler.Detail)
	}

	// 变更操作必须登录，匿名访问跳转登录页
	authGroup := r.Group("")
	authGroup.Use(middleware.LoginRequiredMiddleware())
	{
		authGroup.POST("/posts/create/", group.PostHandler.Create)
		authGroup.POST("/posts/:post_id/edit/", group.PostHandler.Update)
		authGroup.POST("/posts/:post_id/delete/", group.PostHandler.Delete)

		authGroup.POST("/posts/:post_id/comment/", group.CommentHandler.Create)
		authGroup.POST("/posts/:post_id/edit_comment/:comment_id/", group.CommentHandler.Update)
		authGroup.POST("/posts/:post_id/delete_comment/:comment_id/", group.CommentHandler.Delete)

		authGroup.POST("/profile/:username/edit/", group.ProfileHandler.Edit)
		authGroup.POST("/media/upload", group.MediaHandler.Upload)
	}

	authg := r.Group("/auth")
	{
		authg.POST("/registration/", group.UserHandler.Register)
		authg.POST("/login/", group.UserHandler.Login)
		authg.POST("/logout/", group.UserHandler.Logout)
	}

	return r
}
