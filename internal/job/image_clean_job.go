package job

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/pkg/consts"
	"Blogicum/internal/pkg/minio"
	"Blogicum/internal/pkg/redis"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

// ImageCleanupJob 清理上传后超过 24 小时仍未挂到帖子上的图片
type ImageCleanupJob struct{}

func NewImageCleanupJob() *ImageCleanupJob {
	return &ImageCleanupJob{}
}

func (s *ImageCleanupJob) Run() {
	ctx := context.Background()
	log.Info("start image cleanup job")

	allImages, err := redis.HGetAll(ctx, consts.ImageTempKey)
	if err != nil {
		log.Error("failed to get image temp hash", "err", err)
		return
	}

	now := time.Now().Unix()
	expiration := int64(24 * 60 * 60)
	count := 0

	for fileKey, val := range allImages {
		var meta dto.ImageTempMetadata
		if err := json.Unmarshal([]byte(val), &meta); err != nil {
			log.Warn("invalid image meta format", "fileKey", fileKey)
			continue
		}

		if now-meta.CreatedAt > expiration {
			if err = minio.DeleteFile(ctx, fileKey); err != nil {
				log.Error("failed to delete expired file from minio", "fileKey", fileKey, "err", err)
				continue
			}

			if err = redis.HDel(ctx, consts.ImageTempKey, fileKey); err != nil {
				log.Error("failed to remove image token from redis", "fileKey", fileKey, "err", err)
			}

			count++
			log.Info("cleanup expired image resource", "fileKey", fileKey, "mime", meta.MimeType)
		}
	}

	if count > 0 {
		log.Info("image cleanup job finished", "cleaned_count", count)
	}
}
