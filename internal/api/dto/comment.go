package dto

// CommentDTO 评论
type CommentDTO struct {
	ID             uint64 `json:"id"`
	PostID         uint64 `json:"post_id"`
	Message        string `json:"message"`
	AuthorID       uint64 `json:"author_id"`
	AuthorUsername string `json:"author_username"`
	CreatedAt      string `json:"created_at"`
}

// CommentBaseDTO 评论 - 新增或修改
type CommentBaseDTO struct {
	Message string `form:"message" json:"message" binding:"required"`
}
