package service

import (
	"Blogicum/internal/model"
	"context"
	"sort"
	"time"
)

// 内存版仓储实现，供 service 层测试使用

type fakePostRepo struct {
	posts  map[uint64]*model.Post
	nextID uint64
}

func newFakePostRepo(posts ...*model.Post) *fakePostRepo {
	s := &fakePostRepo{posts: map[uint64]*model.Post{}, nextID: 1}
	for _, p := range posts {
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
		s.posts[p.ID] = p
	}
	return s
}

func (s *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	post.ID = s.nextID
	s.nextID++
	s.posts[post.ID] = post
	return nil
}

func (s *fakePostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, nil
	}
	return post, nil
}

func (s *fakePostRepo) UpdatePost(_ context.Context, post *model.Post) error {
	s.posts[post.ID] = post
	return nil
}

func (s *fakePostRepo) DeletePost(_ context.Context, id uint64) error {
	delete(s.posts, id)
	return nil
}

func (s *fakePostRepo) isVisible(post *model.Post, now time.Time) bool {
	if !post.IsPublished || post.PubDate.After(now) {
		return false
	}
	if post.Category != nil && !post.Category.IsPublished {
		return false
	}
	return true
}

func (s *fakePostRepo) sorted(filter func(*model.Post) bool) []*model.Post {
	var out []*model.Post
	for _, p := range s.posts {
		if filter(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PubDate.Equal(out[j].PubDate) {
			return out[i].PubDate.After(out[j].PubDate)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func paginate(posts []*model.Post, limit, offset int) []*model.Post {
	if offset >= len(posts) {
		return nil
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end]
}

func (s *fakePostRepo) ListVisible(_ context.Context, now time.Time, categoryID *uint64, limit, offset int) ([]*model.Post, error) {
	posts := s.sorted(func(p *model.Post) bool {
		if !s.isVisible(p, now) {
			return false
		}
		if categoryID != nil && (p.CategoryID == nil || *p.CategoryID != *categoryID) {
			return false
		}
		return true
	})
	return paginate(posts, limit, offset), nil
}

func (s *fakePostRepo) CountVisible(ctx context.Context, now time.Time, categoryID *uint64) (int64, error) {
	posts, _ := s.ListVisible(ctx, now, categoryID, len(s.posts)+1, 0)
	return int64(len(posts)), nil
}

func (s *fakePostRepo) ListByAuthor(_ context.Context, authorID uint64, now time.Time, includeHidden bool, limit, offset int) ([]*model.Post, error) {
	posts := s.sorted(func(p *model.Post) bool {
		if p.AuthorID != authorID {
			return false
		}
		return includeHidden || s.isVisible(p, now)
	})
	return paginate(posts, limit, offset), nil
}

func (s *fakePostRepo) CountByAuthor(ctx context.Context, authorID uint64, now time.Time, includeHidden bool) (int64, error) {
	posts, _ := s.ListByAuthor(ctx, authorID, now, includeHidden, len(s.posts)+1, 0)
	return int64(len(posts)), nil
}

type fakeCommentRepo struct {
	comments map[uint64]*model.Comment
	nextID   uint64
}

func newFakeCommentRepo(comments ...*model.Comment) *fakeCommentRepo {
	s := &fakeCommentRepo{comments: map[uint64]*model.Comment{}, nextID: 1}
	for _, c := range comments {
		if c.ID >= s.nextID {
			s.nextID = c.ID + 1
		}
		s.comments[c.ID] = c
	}
	return s
}

func (s *fakeCommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	comment.ID = s.nextID
	s.nextID++
	s.comments[comment.ID] = comment
	return nil
}

func (s *fakeCommentRepo) GetCommentByID(_ context.Context, id uint64) (*model.Comment, error) {
	comment, ok := s.comments[id]
	if !ok {
		return nil, nil
	}
	return comment, nil
}

func (s *fakeCommentRepo) UpdateComment(_ context.Context, id uint64, message string) error {
	if comment, ok := s.comments[id]; ok {
		comment.Message = message
	}
	return nil
}

func (s *fakeCommentRepo) DeleteComment(_ context.Context, id uint64) error {
	delete(s.comments, id)
	return nil
}

func (s *fakeCommentRepo) ListByPostID(_ context.Context, postID uint64) ([]*model.Comment, error) {
	var out []*model.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeCommentRepo) CountByPostID(ctx context.Context, postID uint64) (int64, error) {
	comments, _ := s.ListByPostID(ctx, postID)
	return int64(len(comments)), nil
}

type fakeCategoryRepo struct {
	categories map[uint64]*model.Category
}

func newFakeCategoryRepo(categories ...*model.Category) *fakeCategoryRepo {
	s := &fakeCategoryRepo{categories: map[uint64]*model.Category{}}
	for _, c := range categories {
		s.categories[c.ID] = c
	}
	return s
}

func (s *fakeCategoryRepo) GetPublishedBySlug(_ context.Context, slug string) (*model.Category, error) {
	for _, c := range s.categories {
		if c.Slug == slug && c.IsPublished {
			return c, nil
		}
	}
	return nil, nil
}

func (s *fakeCategoryRepo) GetByID(_ context.Context, id uint64) (*model.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	return category, nil
}

type fakeLocationRepo struct {
	locations map[uint64]*model.Location
}

func newFakeLocationRepo(locations ...*model.Location) *fakeLocationRepo {
	s := &fakeLocationRepo{locations: map[uint64]*model.Location{}}
	for _, l := range locations {
		s.locations[l.ID] = l
	}
	return s
}

func (s *fakeLocationRepo) GetByID(_ context.Context, id uint64) (*model.Location, error) {
	location, ok := s.locations[id]
	if !ok {
		return nil, nil
	}
	return location, nil
}

type fakeUserRepo struct {
	users  map[uint64]*model.User
	nextID uint64
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	s := &fakeUserRepo{users: map[uint64]*model.User{}, nextID: 1}
	for _, u := range users {
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (s *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	user, _ := s.GetUserByUsername(ctx, username)
	return user != nil, nil
}

func (s *fakeUserRepo) UpdateUser(_ context.Context, user *model.User) error {
	s.users[user.ID] = user
	return nil
}
