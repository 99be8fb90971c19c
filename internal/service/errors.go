package service

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("unauthorized")
	// ErrUnavailable means storage did not answer before the deadline; the
	// caller may retry.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrCanceled means the caller's context was canceled mid-call, usually
	// because the client disconnected.
	ErrCanceled      = errors.New("request canceled")
	ErrInternalError = errors.New("internal error")
)
