package handler

import (
	"Blogicum/internal/pkg/response"
	"Blogicum/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// currentViewer 从中间件注入的上下文里取出访问者身份
func currentViewer(c *gin.Context) service.Viewer {
	return service.Viewer{
		ID:          c.GetUint64("user_id"),
		Username:    c.GetString("username"),
		IsSuperuser: c.GetBool("is_superuser"),
	}
}

// parsePage 解析 page 查询参数，缺省为 1，非法值直接报参数错误
func parsePage(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		response.Error(c, service.ErrParamInvalid)
		return 0, false
	}
	return page, true
}

// parseUintParam 解析路径中的数字 ID
func parseUintParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return 0, false
	}
	return id, true
}
