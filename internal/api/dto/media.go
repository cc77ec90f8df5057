package dto

// ImageTempMetadata 已上传但尚未挂到帖子上的图片元数据
type ImageTempMetadata struct {
	MimeType  string `json:"mime_type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	CreatedAt int64  `json:"created_at"`
}
