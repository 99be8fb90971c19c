package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"postboard/pkg/logger"

	"github.com/gorilla/mux"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	homeTitle = "ZZZ"
	homeBody  = "====="

	renderFailed = "Something went wrong: page could not be rendered"
)

type homePage struct {
	Title string
	Body  string
}

type ViewHandler struct {
	home  *template.Template
	login *template.Template
}

func NewViewHandler() (*ViewHandler, error) {
	home, err := template.ParseFS(templateFS, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("parse base template: %w", err)
	}
	login, err := template.ParseFS(templateFS, "templates/login.html")
	if err != nil {
		return nil, fmt.Errorf("parse login template: %w", err)
	}
	return &ViewHandler{home: home, login: login}, nil
}

func (h *ViewHandler) Register(r *mux.Router) {
	r.HandleFunc("/", h.Home).Methods(http.MethodGet)
	r.HandleFunc("/login", h.Login).Methods(http.MethodGet)
}

func (h *ViewHandler) Home(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.home, homePage{Title: homeTitle, Body: homeBody})
}

func (h *ViewHandler) Login(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.login, nil)
}

// render executes into a buffer first so a failing template never leaves a
// half-written page behind.
func render(w http.ResponseWriter, r *http.Request, t *template.Template, data any) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		logger.FromContext(r.Context()).Error("render page", "template", t.Name(), "error", err)
		http.Error(w, renderFailed, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
