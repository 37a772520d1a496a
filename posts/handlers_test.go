package posts

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQueryInt(t *testing.T) {
	cases := []struct {
		url  string
		key  string
		def  int64
		want int64
	}{
		{"/api/posts", "page", 1, 1},
		{"/api/posts?page=3", "page", 1, 3},
		{"/api/posts?page=abc", "page", 1, 1},
		{"/api/posts?page=0", "page", 1, 1},
		{"/api/posts?page=-2", "page", 1, 1},
		{"/api/posts?limit=25", "limit", 10, 25},
		{"/api/posts?limit=", "limit", 10, 10},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.url, nil)
		assert.Equal(t, tc.want, parseQueryInt(req, tc.key, tc.def), "url %s", tc.url)
	}
}

// Mutating handlers refuse requests that skipped the auth middleware.
func TestHandlers_RequireAuthContext(t *testing.T) {
	h := NewPostHandlers(nil, nil)

	handlers := map[string]http.HandlerFunc{
		"create":  h.HandleCreate(),
		"like":    h.HandleToggleLike(),
		"comment": h.HandleAddComment(),
	}
	for name, handler := range handlers {
		req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "handler %s", name)
	}
}
