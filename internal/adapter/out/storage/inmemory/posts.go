package inmemory

import (
	"context"
	"slices"
	"sync"
	"time"

	"postboard/internal/adapter/out/storage"
	"postboard/internal/model"
	"postboard/internal/service"
)

// PostStorage keeps posts indexed by id; slot 0 is unused and deleted posts
// leave a zero Post behind so ids are never reused.
type PostStorage struct {
	mu    sync.RWMutex
	posts []model.Post
}

func NewPostStorage() *PostStorage {
	return &PostStorage{
		posts: []model.Post{{}},
	}
}

func (s *PostStorage) CreatePost(_ context.Context, in model.Post) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	in.ID = int64(len(s.posts))
	in.Tags = cloneTags(in.Tags)
	in.CreatedAt = now
	in.ModifiedAt = now
	s.posts = append(s.posts, in)

	return withTags(in), nil
}

func (s *PostStorage) GetPostByID(_ context.Context, postID int64) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.lookup(postID)
	if !ok {
		return model.Post{}, service.ErrNotFound
	}
	return withTags(p), nil
}

func (s *PostStorage) ListPosts(_ context.Context, params storage.ListPostsParams) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit := params.Limit
	if limit <= 0 {
		return nil, service.ErrInvalidRequest
	}

	skip := max(params.Offset, 0)
	out := make([]model.Post, 0, min(limit, len(s.posts)))
	for id := len(s.posts) - 1; id >= 1 && len(out) < limit; id-- {
		p := s.posts[id]
		if p.ID == 0 {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		out = append(out, withTags(p))
	}
	return out, nil
}

func (s *PostStorage) UpdatePost(_ context.Context, in model.Post) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.lookup(in.ID)
	if !ok {
		return false, nil
	}
	p.Title = in.Title
	p.Body = in.Body
	p.Tags = cloneTags(in.Tags)
	p.ModifiedAt = in.ModifiedAt
	s.posts[in.ID] = p
	return true, nil
}

func (s *PostStorage) DeletePost(_ context.Context, postID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookup(postID); !ok {
		return false, nil
	}
	s.posts[postID] = model.Post{}
	return true, nil
}

func (s *PostStorage) lookup(postID int64) (model.Post, bool) {
	if postID <= 0 || postID >= int64(len(s.posts)) {
		return model.Post{}, false
	}
	p := s.posts[postID]
	return p, p.ID != 0
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}

func withTags(p model.Post) model.Post {
	p.Tags = cloneTags(p.Tags)
	return p
}
