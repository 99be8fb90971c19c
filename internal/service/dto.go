package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MaxTags      = 16
	MaxTagLength = 64
)

var validate = validator.New()

// CreatePostRequest is also used for edits; Tags is the raw comma-separated
// list as sent by the client.
type CreatePostRequest struct {
	Title string `validate:"required"`
	Body  string `validate:"required"`
	Tags  string
}

type postFields struct {
	Title string   `validate:"required"`
	Body  string   `validate:"required"`
	Tags  []string `validate:"max=16,dive,max=64"`
}

// validatePost checks title and body with surrounding whitespace ignored and
// returns the normalized tag list.
func validatePost(req CreatePostRequest) ([]string, error) {
	fields := postFields{
		Title: strings.TrimSpace(req.Title),
		Body:  strings.TrimSpace(req.Body),
		Tags:  SplitTags(req.Tags),
	}
	if err := validate.Struct(fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return fields.Tags, nil
}

// SplitTags turns "a, b,,a" into ["a" "b"]. The result is never nil.
func SplitTags(raw string) []string {
	out := make([]string, 0)
	seen := make(map[string]struct{})
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
