package rest

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"postboard/internal/service"
)

const bearerPrefix = "Bearer "

// BearerAuth rejects requests whose Authorization header does not carry
// token. The wrapped handler is not invoked and the body is not read.
func BearerAuth(token string) func(http.Handler) http.Handler {
	want := []byte(token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := checkBearer(r.Header.Get("Authorization"), want); err != nil {
				RespondError(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func checkBearer(header string, want []byte) error {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return fmt.Errorf("%w: missing bearer token", service.ErrUnauthorized)
	}
	got := []byte(strings.TrimSpace(header[len(bearerPrefix):]))
	if len(want) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
		return fmt.Errorf("%w: invalid bearer token", service.ErrUnauthorized)
	}
	return nil
}
