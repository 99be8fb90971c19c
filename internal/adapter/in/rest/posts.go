package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"postboard/internal/service"
	"postboard/pkg/logger"
	"postboard/pkg/pagination"

	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	req, err := decodePost(w, r)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	post, err := h.posts.CreatePost(r.Context(), req.toService())
	if err != nil {
		RespondError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("post created", "post_id", post.ID)
	respondJSON(w, r, http.StatusOK, idResponse{ID: post.ID})
}

func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	post, err := h.posts.GetPostByID(r.Context(), id)
	if err != nil {
		RespondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, post)
}

func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	page, err := pagination.FromQuery(r.URL.Query())
	if err != nil {
		RespondError(w, r, fmt.Errorf("%w: %v", service.ErrInvalidRequest, err))
		return
	}

	posts, err := h.posts.ListPosts(r.Context(), page)
	if err != nil {
		RespondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, posts)
}

func (h *PostHandler) EditPost(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		RespondError(w, r, err)
		return
	}
	req, err := decodePost(w, r)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	ok, err := h.posts.EditPost(r.Context(), id, req.toService())
	if err != nil {
		RespondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, statusResponse{Status: ok})
}

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	ok, err := h.posts.DeletePost(r.Context(), id)
	if err != nil {
		RespondError(w, r, err)
		return
	}
	if ok {
		logger.FromContext(r.Context()).Info("post deleted", "post_id", id)
	}
	respondJSON(w, r, http.StatusOK, statusResponse{Status: ok})
}

// DeleteNone answers DELETE on the collection: nothing is addressed, so
// nothing is deleted.
func (h *PostHandler) DeleteNone(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, statusResponse{Status: false})
}

func postID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: post id %q is not an integer", service.ErrInvalidRequest, raw)
	}
	return id, nil
}

func decodePost(w http.ResponseWriter, r *http.Request) (postRequest, error) {
	var req postRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, fmt.Errorf("%w: empty request body", service.ErrInvalidRequest)
		}
		return req, fmt.Errorf("%w: malformed request body: %v", service.ErrInvalidRequest, err)
	}
	return req, nil
}
