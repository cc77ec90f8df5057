package service

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	now := time.Now()
	draft := &model.Post{ID: 1, AuthorID: 10, IsPublished: false, PubDate: now.Add(-time.Hour)}
	comments := newFakeCommentRepo()
	svc := NewCommentService(comments, newFakePostRepo(draft))

	// 帖子存在即可评论，不要求帖子公开
	err := svc.CreateComment(context.Background(), Viewer{ID: 20}, 1, &dto.CommentBaseDTO{Message: "留言"})
	require.NoError(t, err)
	require.Len(t, comments.comments, 1)
	for _, c := range comments.comments {
		assert.Equal(t, uint64(20), c.AuthorID)
		assert.Equal(t, uint64(1), c.PostID)
	}

	err = svc.CreateComment(context.Background(), Viewer{ID: 20}, 404, &dto.CommentBaseDTO{Message: "留言"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpdateComment(t *testing.T) {
	comments := newFakeCommentRepo(&model.Comment{ID: 1, PostID: 7, AuthorID: 10, Message: "原文"})
	svc := NewCommentService(comments, newFakePostRepo())

	decision, postID, err := svc.UpdateComment(context.Background(), Viewer{ID: 10}, 1, &dto.CommentBaseDTO{Message: "改过"})
	require.NoError(t, err)
	assert.Equal(t, DecisionAllow, decision)
	assert.Equal(t, uint64(7), postID)
	assert.Equal(t, "改过", comments.comments[1].Message)

	// 非作者不改动内容，返回跳转目标
	decision, postID, err = svc.UpdateComment(context.Background(), Viewer{ID: 20}, 1, &dto.CommentBaseDTO{Message: "篡改"})
	require.NoError(t, err)
	assert.Equal(t, DecisionRedirect, decision)
	assert.Equal(t, uint64(7), postID)
	assert.Equal(t, "改过", comments.comments[1].Message)

	// 超级管理员也不能编辑他人评论
	decision, _, err = svc.UpdateComment(context.Background(), Viewer{ID: 30, IsSuperuser: true}, 1, &dto.CommentBaseDTO{Message: "篡改"})
	require.NoError(t, err)
	assert.Equal(t, DecisionRedirect, decision)

	_, _, err = svc.UpdateComment(context.Background(), Viewer{ID: 10}, 404, &dto.CommentBaseDTO{Message: "改过"})
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestDeleteComment(t *testing.T) {
	comments := newFakeCommentRepo(
		&model.Comment{ID: 1, PostID: 7, AuthorID: 10},
		&model.Comment{ID: 2, PostID: 7, AuthorID: 10},
	)
	svc := NewCommentService(comments, newFakePostRepo())

	// 非作者删除只得到跳转
	decision, postID, err := svc.DeleteComment(context.Background(), Viewer{ID: 20}, 1)
	require.NoError(t, err)
	assert.Equal(t, DecisionRedirect, decision)
	assert.Equal(t, uint64(7), postID)
	assert.Len(t, comments.comments, 2)

	// 作者本人删除
	decision, _, err = svc.DeleteComment(context.Background(), Viewer{ID: 10}, 1)
	require.NoError(t, err)
	assert.Equal(t, DecisionAllow, decision)
	assert.Len(t, comments.comments, 1)

	// 超级管理员可以删除任何评论
	decision, _, err = svc.DeleteComment(context.Background(), Viewer{ID: 30, IsSuperuser: true}, 2)
	require.NoError(t, err)
	assert.Equal(t, DecisionAllow, decision)
	assert.Empty(t, comments.comments)
}
