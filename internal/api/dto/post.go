package dto

// PostDTO 帖子
type PostDTO struct {
	ID           uint64 `json:"id"`
	Title        string `json:"title"`
	Text         string `json:"text"`
	PubDate      string `json:"pub_date"`
	CommentCount int64  `json:"comment_count"`
	ImageURL     *string `json:"image_url,omitempty"`
	CreatedAt    string `json:"created_at"`

	// 仅作者视角返回
	IsPublished *bool `json:"is_published,omitempty"`

	// 关联元数据
	AuthorID       uint64  `json:"author_id"`
	AuthorUsername string  `json:"author_username"`
	CategoryTitle  *string `json:"category_title,omitempty"`
	CategorySlug   *string `json:"category_slug,omitempty"`
	LocationName   *string `json:"location_name,omitempty"`
}

// PostBaseDTO 帖子 - 新增或修改
type PostBaseDTO struct {
	Title      string  `form:"title" json:"title" binding:"required,max=255"`
	Text       string  `form:"text" json:"text" binding:"required"`
	PubDate    string  `form:"pub_date" json:"pub_date" binding:"required"`
	CategoryID *uint64 `form:"category_id" json:"category_id"`
	LocationID *uint64 `form:"location_id" json:"location_id"`
	ImageURL   *string `form:"image_url" json:"image_url" binding:"omitempty,max=512"`
	IsPublished *bool  `form:"is_published" json:"is_published"`
}

// PostDetailDTO 帖子详情，附带全部评论
type PostDetailDTO struct {
	Post     *PostDTO      `json:"post"`
	Comments []*CommentDTO `json:"comments"`
}

// PostPageDTO 固定条数的列表页
type PostPageDTO struct {
	List       []*PostDTO `json:"list"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	Total      int64      `json:"total"`
	TotalPages int        `json:"total_pages"`
}

// CategoryPageDTO 分类页，列表附带分类信息
type CategoryPageDTO struct {
	Category *CategoryDTO `json:"category"`
	PostPageDTO
}

// ProfilePageDTO 个人主页，列表附带用户信息
type ProfilePageDTO struct {
	Profile *ProfileDTO `json:"profile"`
	PostPageDTO
}
