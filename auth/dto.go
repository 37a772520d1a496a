// This file defines the request and response payloads for the auth endpoints.
package auth

// SignupRequest represents the signup request payload.
type SignupRequest struct {
	Name     string `json:"name" example:"Ann"`
	Email    string `json:"email" example:"ann@example.com"`
	Password string `json:"password" example:"pw123456"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" example:"ann@example.com"`
	Password string `json:"password" example:"pw123456"`
}

// AuthResponse is returned on successful signup or login. The token is a
// self-contained bearer credential; the client sends it back verbatim in the
// Authorization header.
type AuthResponse struct {
	Token string        `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  PublicProfile `json:"user"`
}

// UserResponse wraps a public profile, as returned by the me endpoint.
type UserResponse struct {
	User PublicProfile `json:"user"`
}
