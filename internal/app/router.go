package app

import (
	"io"
	"log/slog"
	"net/http"

	"postboard/internal/adapter/in/rest"
	"postboard/internal/adapter/in/web"

	"github.com/gorilla/mux"
)

const livenessBody = "It works"

type RouterDeps struct {
	Posts    rest.PostService
	Views    *web.ViewHandler
	APIToken string
	Logger   *slog.Logger
}

// NewRouter composes liveness, /api, /view and the not-found responder, with
// request tracing around all of it.
func NewRouter(deps RouterDeps) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", root).Methods(http.MethodGet)

	rest.NewPostHandler(deps.Posts).Register(
		r.PathPrefix("/api").Subrouter(),
		rest.BearerAuth(deps.APIToken),
	)
	deps.Views.Register(r.PathPrefix("/view").Subrouter())

	r.NotFoundHandler = http.HandlerFunc(notFound)

	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return rest.Trace(log, r)
}

func root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, livenessBody)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = io.WriteString(w, "Not found: "+r.URL.RequestURI())
}
