package handler

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/pkg/consts"
	"Blogicum/internal/pkg/minio"
	"Blogicum/internal/pkg/redis"
	"Blogicum/internal/pkg/response"
	"Blogicum/internal/pkg/util"
	"Blogicum/internal/service"
	log "log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

// Upload 上传帖子配图。图片先入对象存储并登记为待挂载状态，
// 在帖子创建或编辑时引用后才算正式使用。
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil || !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	buf, width, height, err := util.NormalizeImage(reader)
	if err != nil {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ".jpg"
	fileKey, err := minio.UploadFile(c.Request.Context(), objectName, buf, int64(buf.Len()), "image/jpeg")
	if err != nil {
		log.ErrorContext(c.Request.Context(), "MinIO upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	meta := dto.ImageTempMetadata{
		MimeType:  "image/jpeg",
		Width:     width,
		Height:    height,
		CreatedAt: time.Now().Unix(),
	}
	metaBytes, _ := json.Marshal(meta)
	_ = redis.HSet(c.Request.Context(), consts.ImageTempKey, fileKey, string(metaBytes))

	response.Success(c, map[string]interface{}{
		"url":    fileKey,
		"mime":   "image/jpeg",
		"width":  width,
		"height": height,
	})
}
