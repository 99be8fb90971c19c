package rest

import (
	"errors"
	"net/http"

	"postboard/internal/service"
	"postboard/pkg/logger"
)

const errorPrefix = "Something went wrong: "

// StatusClientClosedRequest is the nginx convention for a request whose
// client hung up before the response was ready.
const StatusClientClosedRequest = 499

type errorResponse struct {
	Error string `json:"error"`
}

// StatusFor maps service errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrCanceled):
		return StatusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as a JSON error body. Details of 5xx errors are
// logged, not returned.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	status := StatusFor(err)

	msg := err.Error()
	switch status {
	case http.StatusUnauthorized:
		w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	case http.StatusServiceUnavailable:
		w.Header().Set("Retry-After", "1")
		log.Warn("storage unavailable", "error", err)
	case StatusClientClosedRequest:
		log.Debug("client went away", "error", err)
	case http.StatusInternalServerError:
		log.Error("request failed", "error", err)
		msg = service.ErrInternalError.Error()
	default:
		log.Debug("request rejected", "status", status, "error", err)
	}

	respondJSON(w, r, status, errorResponse{Error: errorPrefix + msg})
}
