package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"postboard/internal/adapter/out/storage"
	"postboard/internal/model"
	"postboard/pkg/pagination"
)

const DefaultQueryTimeout = 5 * time.Second

//go:generate mockgen -source=posts.go -destination=./post_storage_mock.go -package=service postboard/internal/service PostStorage
type PostStorage interface {
	CreatePost(ctx context.Context, post model.Post) (model.Post, error)
	GetPostByID(ctx context.Context, postID int64) (model.Post, error)
	ListPosts(ctx context.Context, params storage.ListPostsParams) ([]model.Post, error)
	UpdatePost(ctx context.Context, post model.Post) (bool, error)
	DeletePost(ctx context.Context, postID int64) (bool, error)
}

type PostService struct {
	postStorage  PostStorage
	queryTimeout time.Duration
	now          func() time.Time
}

func NewPostService(postStorage PostStorage, queryTimeout time.Duration) *PostService {
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}
	return &PostService{
		postStorage:  postStorage,
		queryTimeout: queryTimeout,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *PostService) CreatePost(ctx context.Context, req CreatePostRequest) (model.Post, error) {
	tags, err := validatePost(req)
	if err != nil {
		return model.Post{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	p, err := s.postStorage.CreatePost(ctx, model.Post{
		Title: req.Title,
		Body:  req.Body,
		Tags:  tags,
	})
	if err != nil {
		return model.Post{}, storageErr(err)
	}
	return p, nil
}

func (s *PostService) GetPostByID(ctx context.Context, postID int64) (model.Post, error) {
	if postID <= 0 {
		return model.Post{}, fmt.Errorf("postID must be > 0: %w", ErrInvalidRequest)
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	p, err := s.postStorage.GetPostByID(ctx, postID)
	if err != nil {
		return model.Post{}, storageErr(err)
	}
	return p, nil
}

func (s *PostService) ListPosts(ctx context.Context, page pagination.Paginator) ([]model.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	posts, err := s.postStorage.ListPosts(ctx, storage.ListPostsParams{
		Limit:  page.Limit(),
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, storageErr(err)
	}
	if posts == nil {
		posts = []model.Post{}
	}
	return posts, nil
}

// EditPost replaces title, body and tags and reports whether the post existed.
func (s *PostService) EditPost(ctx context.Context, postID int64, req CreatePostRequest) (bool, error) {
	if postID <= 0 {
		return false, fmt.Errorf("postID must be > 0: %w", ErrInvalidRequest)
	}
	tags, err := validatePost(req)
	if err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	ok, err := s.postStorage.UpdatePost(ctx, model.Post{
		ID:         postID,
		Title:      req.Title,
		Body:       req.Body,
		Tags:       tags,
		ModifiedAt: s.now(),
	})
	if err != nil {
		return false, storageErr(err)
	}
	return ok, nil
}

func (s *PostService) DeletePost(ctx context.Context, postID int64) (bool, error) {
	if postID <= 0 {
		return false, fmt.Errorf("postID must be > 0: %w", ErrInvalidRequest)
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	ok, err := s.postStorage.DeletePost(ctx, postID)
	if err != nil {
		return false, storageErr(err)
	}
	return ok, nil
}

func storageErr(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %v", ErrCanceled, err)
	}
	return err
}
