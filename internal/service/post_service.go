package service

import (
	"Blogicum/internal/api/config"
	"Blogicum/internal/api/dto"
	"Blogicum/internal/model"
	"Blogicum/internal/pkg/consts"
	"Blogicum/internal/pkg/minio"
	"Blogicum/internal/pkg/redis"
	"Blogicum/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

const timeLayout = "2006-01-02 15:04:05"

type PostService interface {
	GetIndexPage(ctx context.Context, page int) (*dto.PostPageDTO, error)
	GetCategoryPage(ctx context.Context, slug string, page int) (*dto.CategoryPageDTO, error)
	GetProfilePage(ctx context.Context, viewer Viewer, username string, page int) (*dto.ProfilePageDTO, error)
	GetPostDetail(ctx context.Context, viewer Viewer, postID uint64) (*dto.PostDetailDTO, error)
	CreatePost(ctx context.Context, viewer Viewer, postDTO *dto.PostBaseDTO) (*model.Post, error)
	UpdatePost(ctx context.Context, viewer Viewer, postID uint64, postDTO *dto.PostBaseDTO) (Decision, error)
	DeletePost(ctx context.Context, viewer Viewer, postID uint64) (Decision, error)
}

type postServiceImpl struct {
	postRepo     repository.PostRepo
	categoryRepo repository.CategoryRepo
	locationRepo repository.LocationRepo
	commentRepo  repository.CommentRepo
	userRepo     repository.UserRepo
}

func NewPostService(
	postRepo repository.PostRepo,
	categoryRepo repository.CategoryRepo,
	locationRepo repository.LocationRepo,
	commentRepo repository.CommentRepo,
	userRepo repository.UserRepo,
) PostService {
	return &postServiceImpl{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
	}
}

// PageSize 列表页固定条数
func PageSize() int {
	if config.Cfg != nil && config.Cfg.Server.PageSize > 0 {
		return config.Cfg.Server.PageSize
	}
	return consts.NumberPostsOnPage
}

// GetIndexPage 首页列表：全部公开可见的帖子
func (s *postServiceImpl) GetIndexPage(ctx context.Context, page int) (*dto.PostPageDTO, error) {
	now := time.Now()
	size := PageSize()

	total, err := s.postRepo.CountVisible(ctx, now, nil)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListVisible(ctx, now, nil, size, (page-1)*size)
	if err != nil {
		return nil, err
	}
	return s.buildPage(posts, page, size, total, false)
}

// GetCategoryPage 分类页：分类必须存在且已发布，否则 404
func (s *postServiceImpl) GetCategoryPage(ctx context.Context, slug string, page int) (*dto.CategoryPageDTO, error) {
	category, err := s.categoryRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	now := time.Now()
	size := PageSize()

	total, err := s.postRepo.CountVisible(ctx, now, &category.ID)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListVisible(ctx, now, &category.ID, size, (page-1)*size)
	if err != nil {
		return nil, err
	}

	pageDTO, err := s.buildPage(posts, page, size, total, false)
	if err != nil {
		return nil, err
	}
	categoryDTO := &dto.CategoryDTO{}
	if err = copier.Copy(categoryDTO, category); err != nil {
		return nil, err
	}
	return &dto.CategoryPageDTO{Category: categoryDTO, PostPageDTO: *pageDTO}, nil
}

// GetProfilePage 个人主页：本人可见全部自己的帖子，他人只见公开部分。
// 用户是否存在先单独判定，避免把“用户不存在”和“没有帖子”混为一谈。
func (s *postServiceImpl) GetProfilePage(ctx context.Context, viewer Viewer, username string, page int) (*dto.ProfilePageDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	isOwner := !viewer.IsAnonymous() && viewer.ID == user.ID

	now := time.Now()
	size := PageSize()

	total, err := s.postRepo.CountByAuthor(ctx, user.ID, now, isOwner)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListByAuthor(ctx, user.ID, now, isOwner, size, (page-1)*size)
	if err != nil {
		return nil, err
	}

	pageDTO, err := s.buildPage(posts, page, size, total, isOwner)
	if err != nil {
		return nil, err
	}
	return &dto.ProfilePageDTO{
		Profile: &dto.ProfileDTO{
			ID:        user.ID,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
		PostPageDTO: *pageDTO,
	}, nil
}

// GetPostDetail 帖子详情，按可见性策略裁决后附带全部评论
func (s *postServiceImpl) GetPostDetail(ctx context.Context, viewer Viewer, postID uint64) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || !CanViewPost(viewer, post, time.Now()) {
		return nil, ErrPostNotFound
	}

	comments, err := s.commentRepo.ListByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.CommentCount = int64(len(comments))
	item, err := s.toPostDTO(post, viewer.ID == post.AuthorID)
	if err != nil {
		return nil, err
	}

	commentDTOs := make([]*dto.CommentDTO, len(comments))
	for i, comment := range comments {
		commentDTOs[i] = &dto.CommentDTO{
			ID:             comment.ID,
			PostID:         comment.PostID,
			Message:        comment.Message,
			AuthorID:       comment.AuthorID,
			AuthorUsername: comment.Author.Username,
			CreatedAt:      comment.CreatedAt.Format(timeLayout),
		}
	}

	return &dto.PostDetailDTO{Post: item, Comments: commentDTOs}, nil
}

// CreatePost 创建帖子
func (s *postServiceImpl) CreatePost(ctx context.Context, viewer Viewer, postDTO *dto.PostBaseDTO) (*model.Post, error) {
	pubDate, err := parsePubDate(postDTO.PubDate)
	if err != nil {
		return nil, err
	}
	if err = s.checkReferences(ctx, postDTO); err != nil {
		return nil, err
	}
	if postDTO.ImageURL != nil {
		if err = verifyPendingImage(ctx, *postDTO.ImageURL); err != nil {
			return nil, err
		}
	}

	post := &model.Post{
		Title:       postDTO.Title,
		Text:        postDTO.Text,
		PubDate:     pubDate,
		AuthorID:    viewer.ID,
		CategoryID:  postDTO.CategoryID,
		LocationID:  postDTO.LocationID,
		ImageURL:    postDTO.ImageURL,
		IsPublished: true,
	}
	if postDTO.IsPublished != nil {
		post.IsPublished = *postDTO.IsPublished
	}

	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	if postDTO.ImageURL != nil {
		go func(key string) {
			_ = redis.HDel(context.Background(), consts.ImageTempKey, key)
		}(*postDTO.ImageURL)
	}

	return post, nil
}

// UpdatePost 更新帖子：目标只取一次，裁决与修改都基于同一份快照
func (s *postServiceImpl) UpdatePost(ctx context.Context, viewer Viewer, postID uint64, postDTO *dto.PostBaseDTO) (Decision, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return DecisionForbidden, err
	}
	if post == nil {
		return DecisionForbidden, ErrPostNotFound
	}

	decision := CanMutatePost(viewer, post)
	if decision != DecisionAllow {
		return decision, nil
	}

	pubDate, err := parsePubDate(postDTO.PubDate)
	if err != nil {
		return DecisionAllow, err
	}
	if err = s.checkReferences(ctx, postDTO); err != nil {
		return DecisionAllow, err
	}

	oldImage := post.ImageURL
	imageReplaced := postDTO.ImageURL != nil && (oldImage == nil || *oldImage != *postDTO.ImageURL)
	imageRemoved := postDTO.ImageURL == nil && oldImage != nil
	if imageReplaced {
		if err = verifyPendingImage(ctx, *postDTO.ImageURL); err != nil {
			return DecisionAllow, err
		}
	}

	post.Title = postDTO.Title
	post.Text = postDTO.Text
	post.PubDate = pubDate
	post.CategoryID = postDTO.CategoryID
	post.LocationID = postDTO.LocationID
	post.ImageURL = postDTO.ImageURL
	if postDTO.IsPublished != nil {
		post.IsPublished = *postDTO.IsPublished
	}

	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		return DecisionAllow, err
	}

	if imageReplaced {
		go func(newKey string, old *string) {
			bgCtx := context.Background()
			_ = redis.HDel(bgCtx, consts.ImageTempKey, newKey)
			if old != nil && *old != "" {
				_ = minio.DeleteFile(bgCtx, *old)
			}
		}(*postDTO.ImageURL, oldImage)
	} else if imageRemoved {
		go func(old string) {
			_ = minio.DeleteFile(context.Background(), old)
		}(*oldImage)
	}

	return DecisionAllow, nil
}

// DeletePost 删除帖子，评论级联删除
func (s *postServiceImpl) DeletePost(ctx context.Context, viewer Viewer, postID uint64) (Decision, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return DecisionForbidden, err
	}
	if post == nil {
		return DecisionForbidden, ErrPostNotFound
	}

	decision := CanMutatePost(viewer, post)
	if decision != DecisionAllow {
		return decision, nil
	}

	if err = s.postRepo.DeletePost(ctx, postID); err != nil {
		return DecisionAllow, err
	}

	if post.ImageURL != nil && *post.ImageURL != "" {
		go func(key string) {
			_ = minio.DeleteFile(context.Background(), key)
		}(*post.ImageURL)
	}

	return DecisionAllow, nil
}

// checkReferences 校验分类/地点引用存在
func (s *postServiceImpl) checkReferences(ctx context.Context, postDTO *dto.PostBaseDTO) error {
	if postDTO.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *postDTO.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrCategoryNotFound
		}
	}
	if postDTO.LocationID != nil {
		location, err := s.locationRepo.GetByID(ctx, *postDTO.LocationID)
		if err != nil {
			return err
		}
		if location == nil {
			return ErrLocationNotFound
		}
	}
	return nil
}

// verifyPendingImage 确认图片确实经由上传接口入库
func verifyPendingImage(ctx context.Context, key string) error {
	val, err := redis.HGet(ctx, consts.ImageTempKey, key)
	if err != nil {
		return err
	}
	if val == "" {
		return ErrFileNotExist
	}
	return nil
}

func parsePubDate(raw string) (time.Time, error) {
	for _, layout := range []string{timeLayout, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrParamInvalid
}

// toPostDTO 将 Model 转换为返回给前端的 DTO
func (s *postServiceImpl) toPostDTO(post *model.Post, forAuthor bool) (*dto.PostDTO, error) {
	out := &dto.PostDTO{}
	if err := copier.Copy(out, post); err != nil {
		return nil, err
	}
	out.PubDate = post.PubDate.Format(timeLayout)
	out.CreatedAt = post.CreatedAt.Format(timeLayout)
	out.CommentCount = post.CommentCount
	out.AuthorID = post.AuthorID
	out.AuthorUsername = post.Author.Username

	if post.Category != nil {
		out.CategoryTitle = &post.Category.Title
		out.CategorySlug = &post.Category.Slug
	}
	if post.Location != nil {
		out.LocationName = &post.Location.Name
	}
	if post.ImageURL != nil && *post.ImageURL != "" {
		url := minio.GetPublicURL(*post.ImageURL)
		out.ImageURL = &url
	} else {
		out.ImageURL = nil
	}

	// 发布状态只向作者本人暴露
	out.IsPublished = nil
	if forAuthor {
		isPublished := post.IsPublished
		out.IsPublished = &isPublished
	}

	return out, nil
}

// buildPage 组装固定条数的分页结果，越界页返回空列表而非错误
func (s *postServiceImpl) buildPage(posts []*model.Post, page, size int, total int64, forAuthor bool) (*dto.PostPageDTO, error) {
	list := make([]*dto.PostDTO, len(posts))
	for i, post := range posts {
		item, err := s.toPostDTO(post, forAuthor)
		if err != nil {
			return nil, err
		}
		list[i] = item
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return &dto.PostPageDTO{
		List:       list,
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
