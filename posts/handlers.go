// This file handles the HTTP surface of the posts module.
package posts

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/user/socialpost-go/apperror"
	"github.com/user/socialpost-go/auth"
	"github.com/user/socialpost-go/uploads"
)

// PostHandlers provides HTTP handlers for the post endpoints.
type PostHandlers struct {
	service *PostService
	media   *uploads.Saver
}

// NewPostHandlers creates new PostHandlers.
func NewPostHandlers(service *PostService, media *uploads.Saver) *PostHandlers {
	return &PostHandlers{service: service, media: media}
}

// RegisterRoutes registers the post routes. Listing is public; everything
// that writes goes through the auth middleware.
func (h *PostHandlers) RegisterRoutes(router chi.Router, requireAuth func(next http.Handler) http.Handler) {
	router.Get("/", h.HandleList())
	router.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", h.HandleCreate())
		r.Post("/{id}/like", h.HandleToggleLike())
		r.Post("/{id}/comments", h.HandleAddComment())
	})
}

// HandleList godoc
// @Summary Public feed
// @Description Returns one page of posts, newest first.
// @Tags Posts
// @Produce json
// @Param page query int false "Page number, 1-based" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} posts.FeedPage "Feed page"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/posts [get]
func (h *PostHandlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := parseQueryInt(r, "page", 1)
		limit := parseQueryInt(r, "limit", DefaultPageLimit)

		feed, err := h.service.List(r.Context(), page, limit)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, feed)
	}
}

// HandleCreate godoc
// @Summary Create a post
// @Description Creates a post from multipart text and/or image; at least one is required.
// @Tags Posts
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param text formData string false "Post text"
// @Param image formData file false "Image, at most 5 MiB"
// @Success 201 {object} posts.PostResponse "Created post"
// @Failure 400 {object} apperror.ErrorResponse "Neither text nor image"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/posts [post]
func (h *PostHandlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Authorization header missing", nil))
			return
		}

		var text, imageURL string
		contentType := r.Header.Get("Content-Type")
		if strings.HasPrefix(contentType, "multipart/form-data") {
			var err error
			imageURL, err = h.media.ImageFromRequest(w, r)
			if err != nil {
				auth.WriteError(w, r, err)
				return
			}
			text = r.FormValue("text")
		} else {
			// Text-only posts may also arrive as plain JSON.
			var req struct {
				Text string `json:"text"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				auth.WriteError(w, r, apperror.NewValidationError("Either text or image is required.", err))
				return
			}
			defer r.Body.Close()
			text = req.Text
		}

		item, err := h.service.Create(r.Context(), caller, text, imageURL)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, PostResponse{Post: *item})
	}
}

// HandleToggleLike godoc
// @Summary Toggle a like
// @Description Adds the caller to the post's like set, or removes them if already present.
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post id"
// @Success 200 {object} posts.PostResponse "Updated post"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 404 {object} apperror.ErrorResponse "Post not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/posts/{id}/like [post]
func (h *PostHandlers) HandleToggleLike() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Authorization header missing", nil))
			return
		}

		item, err := h.service.ToggleLike(r.Context(), chi.URLParam(r, "id"), caller)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, PostResponse{Post: *item})
	}
}

// HandleAddComment godoc
// @Summary Add a comment
// @Description Appends a comment to the post's comment sequence.
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post id"
// @Param commentBody body posts.AddCommentRequest true "Comment text"
// @Success 201 {object} posts.PostResponse "Updated post"
// @Failure 400 {object} apperror.ErrorResponse "Blank comment text"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 404 {object} apperror.ErrorResponse "Post not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/posts/{id}/comments [post]
func (h *PostHandlers) HandleAddComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Authorization header missing", nil))
			return
		}

		var req AddCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewValidationError("Comment text is required.", err))
			return
		}
		defer r.Body.Close()

		item, err := h.service.AddComment(r.Context(), chi.URLParam(r, "id"), req.Text, caller)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, PostResponse{Post: *item})
	}
}

// parseQueryInt reads a positive integer query parameter, falling back to
// def when absent or malformed.
func parseQueryInt(r *http.Request, key string, def int64) int64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 1 {
		return def
	}
	return value
}

// writeJSON mirrors the auth package helper; kept local so the posts package
// does not leak handler internals across packages.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"message":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}
