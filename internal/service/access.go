package service

import (
	"Blogicum/internal/model"
	"time"
)

// Viewer 当前请求的访问者身份，ID 为 0 表示匿名
type Viewer struct {
	ID          uint64
	Username    string
	IsSuperuser bool
}

// IsAnonymous 是否匿名访问者
func (v Viewer) IsAnonymous() bool {
	return v.ID == 0
}

// Decision 变更操作的裁决结果
type Decision int

const (
	// DecisionAllow 允许操作
	DecisionAllow Decision = iota
	// DecisionRedirect 非作者，跳转到资源的详情页而非报错
	DecisionRedirect
	// DecisionForbidden 拒绝操作
	DecisionForbidden
)

// CanViewPost 判断访问者能否看到帖子。
// 作者永远可见自己的帖子（含草稿与未来发布）；其他人要求帖子已发布、
// 所属分类（如有）已发布且发布时间不晚于 now。
func CanViewPost(viewer Viewer, post *model.Post, now time.Time) bool {
	if post == nil {
		return false
	}
	if !viewer.IsAnonymous() && viewer.ID == post.AuthorID {
		return true
	}
	if !post.IsPublished {
		return false
	}
	if post.Category != nil && !post.Category.IsPublished {
		return false
	}
	return !post.PubDate.After(now)
}

// CanMutatePost 判断访问者能否编辑/删除帖子
func CanMutatePost(viewer Viewer, post *model.Post) Decision {
	if viewer.IsAnonymous() {
		return DecisionForbidden
	}
	if viewer.ID == post.AuthorID {
		return DecisionAllow
	}
	return DecisionRedirect
}

// CanMutateComment 判断访问者能否编辑/删除评论，删除时超级用户放行
func CanMutateComment(viewer Viewer, comment *model.Comment, deleting bool) Decision {
	if viewer.IsAnonymous() {
		return DecisionForbidden
	}
	if viewer.ID == comment.AuthorID {
		return DecisionAllow
	}
	if deleting && viewer.IsSuperuser {
		return DecisionAllow
	}
	return DecisionRedirect
}
