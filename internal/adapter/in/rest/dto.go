package rest

import "postboard/internal/service"

type postRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	// Tags is a comma-separated list.
	Tags *string `json:"tags"`
}

func (p postRequest) toService() service.CreatePostRequest {
	req := service.CreatePostRequest{Title: p.Title, Body: p.Body}
	if p.Tags != nil {
		req.Tags = *p.Tags
	}
	return req
}

type idResponse struct {
	ID int64 `json:"id"`
}

type statusResponse struct {
	Status bool `json:"status"`
}
