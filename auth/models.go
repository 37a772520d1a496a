// Package auth is responsible for identity: user records, password
// credentials, bearer tokens, and the middleware that resolves a request to
// an authenticated user.
package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user document in the users collection.
//
// PasswordHash is bson-only; it must never be serialized into an API
// response. Everything client-facing goes through PublicProfile instead.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
	AvatarURL    string             `bson:"avatarUrl,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// PublicProfile is the client-facing projection of a User. It omits the
// credential fields entirely.
type PublicProfile struct {
	ID        string    `json:"id" example:"64f1c0a2e13e5a7d9c2b4567"`
	Name      string    `json:"name" example:"Ann"`
	Email     string    `json:"email" example:"ann@example.com"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToPublicProfile projects the user onto its client-facing shape.
func (u *User) ToPublicProfile() PublicProfile {
	return PublicProfile{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}
