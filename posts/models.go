// Package posts owns the post domain: the post and embedded comment
// documents, the feed projection, and the list/create/like/comment
// operations with their HTTP handlers.
package posts

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is embedded in a Post and never independently addressable. The
// sequence is append-only; comments are not edited or removed.
type Comment struct {
	Author    primitive.ObjectID `bson:"author"`
	Text      string             `bson:"text"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// Post represents a post document in the posts collection.
//
// Likes has set semantics: each user id appears at most once, maintained by
// ToggleLike rather than by the store.
type Post struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Author    primitive.ObjectID   `bson:"author"`
	Text      string               `bson:"text"`
	ImageURL  string               `bson:"imageUrl,omitempty"`
	Likes     []primitive.ObjectID `bson:"likes"`
	Comments  []Comment            `bson:"comments"`
	CreatedAt time.Time            `bson:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt"`
}

// HasLiked reports whether userID is in the like set.
func (p *Post) HasLiked(userID primitive.ObjectID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// ToggleLike flips userID's membership in the like set: present means
// remove, absent means append. A repeated like therefore undoes the prior
// one rather than duplicating it. Returns true when the user is liked after
// the toggle.
func (p *Post) ToggleLike(userID primitive.ObjectID) bool {
	if p.HasLiked(userID) {
		kept := p.Likes[:0]
		for _, id := range p.Likes {
			if id != userID {
				kept = append(kept, id)
			}
		}
		p.Likes = kept
		return false
	}
	p.Likes = append(p.Likes, userID)
	return true
}

// AddComment appends a comment from the given author at time now.
func (p *Post) AddComment(author primitive.ObjectID, text string, now time.Time) {
	p.Comments = append(p.Comments, Comment{
		Author:    author,
		Text:      text,
		CreatedAt: now,
	})
}
