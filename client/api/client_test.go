package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/socialpost-go/auth"
	"github.com/user/socialpost-go/posts"
)

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req auth.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(auth.AuthResponse{
			Token: "issued-token",
			User:  auth.PublicProfile{ID: "abc", Name: "Ada", Email: req.Email},
		})
		require.NoError(t, err)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Login(context.Background(), auth.LoginRequest{Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "issued-token", resp.Token)
	assert.Equal(t, "Ada", resp.User.Name)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"abc","name":"Ada","email":"ada@example.com"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("tok123")
	_, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var sawHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"items":[],"page":1,"total":0,"hasMore":false}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ListPosts(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.False(t, sawHeader)
}

func TestClient_DecodesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials."}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), auth.LoginRequest{Email: "a@b.c", Password: "nope"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials.", apiErr.Message)
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ListPosts(context.Background(), 1, 10)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Contains(t, apiErr.Message, "Bad Gateway")
}

func TestClient_ListPostsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"items":[],"page":3,"total":12,"hasMore":false}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	page, err := client.ListPosts(context.Background(), 3, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Page)
	assert.Equal(t, int64(12), page.Total)
}

func TestClient_CreatePostMultipart(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "cat.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("png bytes"), 0o600))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "look at this", r.FormValue("text"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "cat.png", header.Filename)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"post":{"id":"p1","author":{"id":"abc","name":"Ada","email":"ada@example.com"},"likesCount":0,"commentsCount":0,"likedBy":[],"createdAt":"2026-01-02T03:04:05Z"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.CreatePost(context.Background(), "look at this", imagePath)
	require.NoError(t, err)
	assert.Equal(t, "p1", resp.Post.ID)
}

func TestClient_AddComment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/posts/p1/comments", r.URL.Path)

		var req posts.AddCommentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "nice", req.Text)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"post":{"id":"p1","author":{"id":"abc","name":"Ada","email":"ada@example.com"},"likesCount":0,"commentsCount":1,"likedBy":[],"createdAt":"2026-01-02T03:04:05Z"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.AddComment(context.Background(), "p1", "nice")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Post.CommentsCount)
}
