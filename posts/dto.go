// This file defines the feed projection and the request/response payloads
// for the post endpoints.
package posts

import (
	"time"

	"github.com/user/socialpost-go/auth"
)

// FeedAuthor is the author slot of a feed item. When the author reference
// was resolved it carries the public-profile fields; otherwise only the raw
// id. The projection decides which by an explicit flag, never by probing
// shape at runtime.
type FeedAuthor struct {
	ID        string `json:"id" example:"64f1c0a2e13e5a7d9c2b4567"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// FeedItem is the client-facing projection of a Post. Comment bodies never
// appear here, only their count; there is no endpoint that returns them.
type FeedItem struct {
	ID            string     `json:"id"`
	Author        FeedAuthor `json:"author"`
	Text          string     `json:"text"`
	ImageURL      string     `json:"imageUrl,omitempty"`
	LikesCount    int        `json:"likesCount"`
	CommentsCount int        `json:"commentsCount"`
	LikedBy       []string   `json:"likedBy"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// FeedPage is the paginated feed response.
type FeedPage struct {
	Items   []FeedItem `json:"items"`
	Page    int64      `json:"page"`
	Total   int64      `json:"total"`
	HasMore bool       `json:"hasMore"`
}

// PostResponse wraps a single feed item, as returned by the mutating
// endpoints.
type PostResponse struct {
	Post FeedItem `json:"post"`
}

// AddCommentRequest is the payload for the comment endpoint.
type AddCommentRequest struct {
	Text string `json:"text" example:"nice"`
}

// NewFeedItem projects a post onto its feed shape. resolved states whether
// author carries the looked-up user for post.Author; when false the author
// slot holds the bare id only.
func NewFeedItem(post *Post, author *auth.User, resolved bool) FeedItem {
	fa := FeedAuthor{ID: post.Author.Hex()}
	if resolved && author != nil {
		fa.Name = author.Name
		fa.Email = author.Email
		fa.AvatarURL = author.AvatarURL
	}

	likedBy := make([]string, 0, len(post.Likes))
	for _, id := range post.Likes {
		likedBy = append(likedBy, id.Hex())
	}

	return FeedItem{
		ID:            post.ID.Hex(),
		Author:        fa,
		Text:          post.Text,
		ImageURL:      post.ImageURL,
		LikesCount:    len(post.Likes),
		CommentsCount: len(post.Comments),
		LikedBy:       likedBy,
		CreatedAt:     post.CreatedAt,
	}
}

// hasMore reports whether posts exist beyond the current page window.
func hasMore(skip int64, returned int, total int64) bool {
	return skip+int64(returned) < total
}
