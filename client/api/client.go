// Package api implements the HTTP client the terminal application uses to
// talk to the socialpost server. All calls go through a shared doRequest
// helper; authenticated calls attach the bearer token set on the client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/user/socialpost-go/auth"
	"github.com/user/socialpost-go/posts"
)

// Client is the HTTP API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a new API client for the given server base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken sets the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a non-2xx server response, carrying the status code and the
// server's client-safe message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// Signup registers a new user and returns the issued token with the profile.
func (c *Client) Signup(ctx context.Context, req auth.SignupRequest) (*auth.AuthResponse, error) {
	var resp auth.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/signup", req, &resp); err != nil {
		return nil, fmt.Errorf("signup request failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates and returns the issued token with the profile.
func (c *Client) Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
	var resp auth.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*auth.UserResponse, error) {
	var resp auth.UserResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	return &resp, nil
}

// ListPosts fetches one feed page.
func (c *Client) ListPosts(ctx context.Context, page, limit int64) (*posts.FeedPage, error) {
	var resp posts.FeedPage
	path := fmt.Sprintf("/api/posts?page=%d&limit=%d", page, limit)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list posts request failed: %w", err)
	}
	return &resp, nil
}

// ToggleLike toggles the caller's like on a post and returns the updated
// feed item.
func (c *Client) ToggleLike(ctx context.Context, postID string) (*posts.PostResponse, error) {
	var resp posts.PostResponse
	path := fmt.Sprintf("/api/posts/%s/like", postID)
	if err := c.doRequest(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("like request failed: %w", err)
	}
	return &resp, nil
}

// AddComment appends a comment to a post and returns the updated feed item.
func (c *Client) AddComment(ctx context.Context, postID, text string) (*posts.PostResponse, error) {
	var resp posts.PostResponse
	path := fmt.Sprintf("/api/posts/%s/comments", postID)
	if err := c.doRequest(ctx, http.MethodPost, path, posts.AddCommentRequest{Text: text}, &resp); err != nil {
		return nil, fmt.Errorf("comment request failed: %w", err)
	}
	return &resp, nil
}

// CreatePost creates a post from text and/or an image file, sent as the
// multipart form the server expects. imagePath may be empty.
func (c *Client) CreatePost(ctx context.Context, text, imagePath string) (*posts.PostResponse, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if text != "" {
		if err := writer.WriteField("text", text); err != nil {
			return nil, fmt.Errorf("failed to write text field: %w", err)
		}
	}

	if imagePath != "" {
		file, err := os.Open(imagePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open image: %w", err)
		}
		defer file.Close()

		part, err := writer.CreateFormFile("image", filepath.Base(imagePath))
		if err != nil {
			return nil, fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return nil, fmt.Errorf("failed to copy image: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/posts", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	var resp posts.PostResponse
	if err := c.send(req, &resp); err != nil {
		return nil, fmt.Errorf("create post request failed: %w", err)
	}
	return &resp, nil
}

// doRequest performs a JSON request against the server.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	return c.send(req, result)
}

// authorize attaches the bearer token when one is set.
func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// send executes the request and decodes the response, converting non-2xx
// statuses into *APIError.
func (c *Client) send(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return &APIError{Status: resp.StatusCode, Message: errResp.Message}
		}
		return &APIError{Status: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
