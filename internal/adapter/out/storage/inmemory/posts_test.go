package inmemory

import (
	"context"
	"testing"
	"time"

	"postboard/internal/adapter/out/storage"
	"postboard/internal/model"
	"postboard/internal/service"

	"github.com/stretchr/testify/require"
)

func TestPostStorage_CreateAndGetByID(t *testing.T) {
	t.Parallel()

	st := NewPostStorage()

	tests := []struct {
		name   string
		input  model.Post
		wantID int64
	}{
		{
			name:   "first post",
			input:  model.Post{Title: "t1", Body: "b1", Tags: []string{"go"}},
			wantID: 1,
		},
		{
			name:   "second post without tags",
			input:  model.Post{Title: "t2", Body: "b2"},
			wantID: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := st.CreatePost(context.Background(), tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.wantID, out.ID)
			require.Equal(t, tt.input.Title, out.Title)
			require.Equal(t, tt.input.Body, out.Body)
			require.NotNil(t, out.Tags)
			require.WithinDuration(t, time.Now(), out.CreatedAt, time.Second)
			require.Equal(t, out.CreatedAt, out.ModifiedAt)

			got, err := st.GetPostByID(context.Background(), tt.wantID)
			require.NoError(t, err)
			require.Equal(t, out, got)
		})
	}
}

func TestPostStorage_GetPostByID_NotFound(t *testing.T) {
	t.Parallel()

	st := NewPostStorage()

	for _, id := range []int64{-1, 0, 10} {
		_, err := st.GetPostByID(context.Background(), id)
		require.ErrorIs(t, err, service.ErrNotFound)
	}
}

func TestPostStorage_TagsAreCopied(t *testing.T) {
	t.Parallel()

	st := NewPostStorage()

	tags := []string{"a", "b"}
	p, err := st.CreatePost(context.Background(), model.Post{Title: "t", Body: "b", Tags: tags})
	require.NoError(t, err)

	tags[0] = "mutated"
	p.Tags[1] = "mutated"

	got, err := st.GetPostByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, got.Tags)
}

func TestPostStorage_UpdatePost(t *testing.T) {
	t.Parallel()

	st := NewPostStorage()
	later := time.Now().Add(time.Hour).UTC()

	ok, err := st.UpdatePost(context.Background(), model.Post{ID: 1, Title: "x", Body: "y", ModifiedAt: later})
	require.NoError(t, err)
	require.False(t, ok)

	p, err := st.CreatePost(context.Background(), model.Post{Title: "x", Body: "y"})
	require.NoError(t, err)

	ok, err = st.UpdatePost(context.Background(), model.Post{
		ID: p.ID, Title: "x2", Body: "y2", Tags: []string{"t"}, ModifiedAt: later,
	})
	require.NoError(t, err)
	require.True(t, ok)

	got, err := st.GetPostByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, "x2", got.Title)
	require.Equal(t, "y2", got.Body)
	require.Equal(t, []string{"t"}, got.Tags)
	require.Equal(t, p.CreatedAt, got.CreatedAt)
	require.Equal(t, later, got.ModifiedAt)
}

func TestPostStorage_DeletePost(t *testing.T) {
	t.Parallel()

	st := NewPostStorage()

	p, err := st.CreatePost(context.Background(), model.Post{Title: "x", Body: "y"})
	require.NoError(t, err)

	ok, err := st.DeletePost(context.Background(), p.ID)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = st.GetPostByID(context.Background(), p.ID)
	require.ErrorIs(t, err, service.ErrNotFound)

	ok, err = st.DeletePost(context.Background(), p.ID)
	require.NoError(t, err)
	require.False(t, ok)

	next, err := st.CreatePost(context.Background(), model.Post{Title: "x", Body: "y"})
	require.NoError(t, err)
	require.Equal(t, p.ID+1, next.ID)
}

func TestPostStorage_ListPosts_OrderDESC_LimitOffset(t *testing.T) {
	t.Parallel()

	st := NewPostStorage()

	for i := 1; i <= 5; i++ {
		_, err := st.CreatePost(context.Background(), model.Post{Title: "t", Body: "b"})
		require.NoError(t, err)
	}
	ok, err := st.DeletePost(context.Background(), 4)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := st.ListPosts(context.Background(), storage.ListPostsParams{Limit: 2})
	require.NoError(t, err)
	require.Equal(t, []int64{5, 3}, collectIDs(got))

	got, err = st.ListPosts(context.Background(), storage.ListPostsParams{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Equal(t, []int64{2, 1}, collectIDs(got))

	got, err = st.ListPosts(context.Background(), storage.ListPostsParams{Limit: 2, Offset: 10})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)

	_, err = st.ListPosts(context.Background(), storage.ListPostsParams{})
	require.ErrorIs(t, err, service.ErrInvalidRequest)

	empty, err := NewPostStorage().ListPosts(context.Background(), storage.ListPostsParams{Limit: 10})
	require.NoError(t, err)
	require.Empty(t, empty)
}

func collectIDs(posts []model.Post) []int64 {
	out := make([]int64, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}
