package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestGetPostNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewPostRepository(gdb)

	mock.ExpectQuery("SELECT \\* FROM `posts`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	post, err := repo.GetPost(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, post)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountVisibleJoinsCategories(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewPostRepository(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM .posts. LEFT JOIN categories ON categories\.id = posts\.category_id`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountVisible(context.Background(), time.Now(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListVisibleShapesQuery(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewPostRepository(gdb)

	now := time.Now()
	postRows := sqlmock.NewRows([]string{"id", "title", "author_id", "is_published", "pub_date", "comment_count"}).
		AddRow(1, "标题", 10, true, now.Add(-time.Hour), 5)

	// 评论数由子查询聚合，排序为发布时间倒序
	mock.ExpectQuery(`SELECT posts\.\*, \(SELECT COUNT\(\*\) FROM comments WHERE comments\.post_id = posts\.id\) AS comment_count FROM .posts..*ORDER BY posts\.pub_date DESC, posts\.id DESC`).
		WillReturnRows(postRows)

	// 作者批量预加载
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(10, "author"))

	posts, err := repo.ListVisible(context.Background(), now, nil, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(5), posts[0].CommentCount)
	assert.Equal(t, "author", posts[0].Author.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePostCascadesComments(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewPostRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `comments`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `posts`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeletePost(context.Background(), 1)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPublishedBySlugHidesUnpublished(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCategoryRepo(gdb)

	mock.ExpectQuery("SELECT \\* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	category, err := repo.GetPublishedBySlug(context.Background(), "hidden")
	require.NoError(t, err)
	assert.Nil(t, category)
	assert.NoError(t, mock.ExpectationsWereMet())
}
