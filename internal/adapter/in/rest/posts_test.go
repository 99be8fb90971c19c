package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"postboard/internal/adapter/out/storage/inmemory"
	"postboard/internal/model"
	"postboard/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	svc := service.NewPostService(inmemory.NewPostStorage(), time.Second)
	r := mux.NewRouter()
	NewPostHandler(svc).Register(r.PathPrefix("/api").Subrouter(), BearerAuth(testToken))
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string, auth bool) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPostHandler_CreateAndGet(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/", `{"title":"hello","body":"world","tags":"go, http"}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created idResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Positive(t, created.ID)

	rec = do(t, h, http.MethodGet, "/api/1", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "hello", got.Title)
	require.Equal(t, "world", got.Body)
	require.Equal(t, []string{"go", "http"}, got.Tags)
	require.True(t, got.CreatedAt.Equal(got.ModifiedAt))
}

func TestPostHandler_BadInput(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{name: "whitespace title", method: http.MethodPost, target: "/api/", body: `{"title":"   ","body":"b"}`, want: http.StatusBadRequest},
		{name: "missing body field", method: http.MethodPost, target: "/api/", body: `{"title":"t"}`, want: http.StatusBadRequest},
		{name: "malformed json", method: http.MethodPost, target: "/api/", body: `{"title":`, want: http.StatusBadRequest},
		{name: "empty body", method: http.MethodPost, target: "/api/", body: "", want: http.StatusBadRequest},
		{name: "non-integer id on get", method: http.MethodGet, target: "/api/abc", want: http.StatusBadRequest},
		{name: "non-integer id on edit", method: http.MethodPost, target: "/api/abc", body: `{"title":"t","body":"b"}`, want: http.StatusBadRequest},
		{name: "zero id", method: http.MethodGet, target: "/api/0", want: http.StatusBadRequest},
		{name: "bad page", method: http.MethodGet, target: "/api/?page=x", want: http.StatusBadRequest},
		{name: "page past offset range", method: http.MethodGet, target: "/api/?page=100000000000000001&page_size=100", want: http.StatusBadRequest},
		{name: "missing post", method: http.MethodGet, target: "/api/99", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.target, tt.body, true)
			require.Equal(t, tt.want, rec.Code, rec.Body.String())

			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.True(t, strings.HasPrefix(body.Error, "Something went wrong: "))
		})
	}

	rec := do(t, h, http.MethodGet, "/api/", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String(), "rejected creates insert nothing")
}

func TestPostHandler_EditAndDelete(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/", `{"title":"t","body":"b"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/1", `{"title":"t2","body":"b2","tags":"x"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":true}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/2", `{"title":"t2","body":"b2"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":false}`, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/api/", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":false}`, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/api/1", "", true)
	require.JSONEq(t, `{"status":true}`, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/api/1", "", true)
	require.JSONEq(t, `{"status":false}`, rec.Body.String())
}

func TestPostHandler_MutationsRequireToken(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)

	tests := []struct {
		method string
		target string
		body   string
	}{
		{method: http.MethodPost, target: "/api/", body: `{"title":"t","body":"b"}`},
		{method: http.MethodPost, target: "/api/", body: `{"title":""}`},
		{method: http.MethodPost, target: "/api/", body: `not json`},
		{method: http.MethodDelete, target: "/api/"},
		{method: http.MethodPost, target: "/api/1", body: `{"title":"t","body":"b"}`},
		{method: http.MethodDelete, target: "/api/1"},
	}

	for _, tt := range tests {
		rec := do(t, h, tt.method, tt.target, tt.body, false)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tt.method, tt.target)
	}

	rec := do(t, h, http.MethodGet, "/api/", "", false)
	require.JSONEq(t, `[]`, rec.Body.String())
}
