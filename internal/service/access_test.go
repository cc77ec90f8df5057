package service

import (
	"Blogicum/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func publishedCategory() *model.Category {
	return &model.Category{ID: 1, Title: "旅行", Slug: "travel", IsPublished: true}
}

func hiddenCategory() *model.Category {
	return &model.Category{ID: 2, Title: "草稿分类", Slug: "draft", IsPublished: false}
}

func TestCanViewPost(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	author := Viewer{ID: 10, Username: "author"}
	stranger := Viewer{ID: 20, Username: "stranger"}
	anonymous := Viewer{}

	tests := []struct {
		name   string
		viewer Viewer
		post   *model.Post
		want   bool
	}{
		{
			name:   "公开帖子对匿名可见",
			viewer: anonymous,
			post:   &model.Post{AuthorID: 10, IsPublished: true, PubDate: past, Category: publishedCategory()},
			want:   true,
		},
		{
			name:   "未发布帖子对他人不可见",
			viewer: stranger,
			post:   &model.Post{AuthorID: 10, IsPublished: false, PubDate: past, Category: publishedCategory()},
			want:   false,
		},
		{
			name:   "未发布帖子作者本人可见",
			viewer: author,
			post:   &model.Post{AuthorID: 10, IsPublished: false, PubDate: past, Category: publishedCategory()},
			want:   true,
		},
		{
			name:   "定时发布的帖子在发布前对他人不可见",
			viewer: stranger,
			post:   &model.Post{AuthorID: 10, IsPublished: true, PubDate: future, Category: publishedCategory()},
			want:   false,
		},
		{
			name:   "定时发布的帖子作者本人可见",
			viewer: author,
			post:   &model.Post{AuthorID: 10, IsPublished: true, PubDate: future, Category: publishedCategory()},
			want:   true,
		},
		{
			name:   "分类未发布时帖子对他人不可见",
			viewer: stranger,
			post:   &model.Post{AuthorID: 10, IsPublished: true, PubDate: past, Category: hiddenCategory()},
			want:   false,
		},
		{
			name:   "分类未发布时作者本人可见",
			viewer: author,
			post:   &model.Post{AuthorID: 10, IsPublished: true, PubDate: past, Category: hiddenCategory()},
			want:   true,
		},
		{
			name:   "无分类的公开帖子可见",
			viewer: anonymous,
			post:   &model.Post{AuthorID: 10, IsPublished: true, PubDate: past, Category: nil},
			want:   true,
		},
		{
			name:   "发布时间等于当前时刻可见",
			viewer: anonymous,
			post:   &model.Post{AuthorID: 10, IsPublished: true, PubDate: now, Category: nil},
			want:   true,
		},
		{
			name:   "帖子为空不可见",
			viewer: author,
			post:   nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanViewPost(tt.viewer, tt.post, now))
		})
	}
}

func TestCanMutatePost(t *testing.T) {
	post := &model.Post{ID: 1, AuthorID: 10}

	assert.Equal(t, DecisionAllow, CanMutatePost(Viewer{ID: 10}, post))
	assert.Equal(t, DecisionRedirect, CanMutatePost(Viewer{ID: 20}, post))
	assert.Equal(t, DecisionForbidden, CanMutatePost(Viewer{}, post))

	// 超级管理员也无权编辑他人帖子
	assert.Equal(t, DecisionRedirect, CanMutatePost(Viewer{ID: 30, IsSuperuser: true}, post))
}

func TestCanMutateComment(t *testing.T) {
	comment := &model.Comment{ID: 1, PostID: 1, AuthorID: 10}

	assert.Equal(t, DecisionAllow, CanMutateComment(Viewer{ID: 10}, comment, false))
	assert.Equal(t, DecisionRedirect, CanMutateComment(Viewer{ID: 20}, comment, false))
	assert.Equal(t, DecisionForbidden, CanMutateComment(Viewer{}, comment, false))
	assert.Equal(t, DecisionForbidden, CanMutateComment(Viewer{}, comment, true))

	// 超级管理员可以删除任何评论，但不能编辑
	super := Viewer{ID: 30, IsSuperuser: true}
	assert.Equal(t, DecisionAllow, CanMutateComment(super, comment, true))
	assert.Equal(t, DecisionRedirect, CanMutateComment(super, comment, false))
}
