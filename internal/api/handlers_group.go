package api

import "Blogicum/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	PostHandler     *handler.PostHandler
	CommentHandler  *handler.CommentHandler
	CategoryHandler *handler.CategoryHandler
	ProfileHandler  *handler.ProfileHandler
	UserHandler     *handler.UserHandler
	MediaHandler    *handler.MediaHandler
}
