package rest

import (
	"encoding/json"
	"net/http"

	"postboard/pkg/logger"
)

func respondJSON(w http.ResponseWriter, r *http.Request, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.FromContext(r.Context()).Error("encode response", "error", err)
		http.Error(w, errorPrefix+"internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		logger.FromContext(r.Context()).Debug("write response", "error", err)
	}
}
