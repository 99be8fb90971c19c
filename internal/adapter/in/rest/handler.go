package rest

import (
	"context"
	"net/http"

	"postboard/internal/model"
	"postboard/internal/service"
	"postboard/pkg/pagination"

	"github.com/gorilla/mux"
)

type PostService interface {
	CreatePost(ctx context.Context, req service.CreatePostRequest) (model.Post, error)
	GetPostByID(ctx context.Context, postID int64) (model.Post, error)
	ListPosts(ctx context.Context, page pagination.Paginator) ([]model.Post, error)
	EditPost(ctx context.Context, postID int64, req service.CreatePostRequest) (bool, error)
	DeletePost(ctx context.Context, postID int64) (bool, error)
}

type PostHandler struct {
	posts PostService
}

func NewPostHandler(posts PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// Register mounts the post API on r. Mutating routes go through auth.
func (h *PostHandler) Register(r *mux.Router, auth func(http.Handler) http.Handler) {
	r.HandleFunc("/", h.ListPosts).Methods(http.MethodGet)
	r.Handle("/", auth(http.HandlerFunc(h.CreatePost))).Methods(http.MethodPost)
	r.Handle("/", auth(http.HandlerFunc(h.DeleteNone))).Methods(http.MethodDelete)

	r.HandleFunc("/{id}", h.GetPost).Methods(http.MethodGet)
	r.Handle("/{id}", auth(http.HandlerFunc(h.EditPost))).Methods(http.MethodPost)
	r.Handle("/{id}", auth(http.HandlerFunc(h.DeletePost))).Methods(http.MethodDelete)
}
