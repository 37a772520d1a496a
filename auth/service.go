// This file contains the business logic of the auth module: password
// hashing, token issuance and verification, and the signup/login/lookup
// operations against the users collection.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/socialpost-go/apperror"
	"github.com/user/socialpost-go/config"
	"github.com/user/socialpost-go/db"
)

// bcryptCost is the fixed work factor for password hashing. Tunable here,
// not per call.
const bcryptCost = 10

// invalidCredentials is the single message for every credential failure.
// Unknown email and wrong password are deliberately indistinguishable to
// avoid account enumeration.
const invalidCredentials = "Invalid credentials."

// AuthService provides authentication-related services.
type AuthService struct {
	users      *mongo.Collection
	authConfig config.AuthConfig
}

// NewAuthService creates a new AuthService bound to the users collection.
func NewAuthService(store *db.Store, authConfig config.AuthConfig) *AuthService {
	return &AuthService{
		users:      store.Users(),
		authConfig: authConfig,
	}
}

// Claims defines the payload of issued tokens. The subject user id and email
// ride alongside the registered expiry/issued-at claims; nothing else is
// stored server-side.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// HashPassword hashes a plaintext password with bcrypt. The salt is random
// per call and embedded in the output, so hashing the same password twice
// yields different strings that both verify.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash, using
// bcrypt's own comparison. Raw strings are never compared.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// IssueToken produces a signed token carrying the user id and email, valid
// for the configured duration (7 days by default).
func (s *AuthService) IssueToken(userID, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.authConfig.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.authConfig.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// VerifyToken parses and validates a token string, returning its claims.
// Any failure (bad signature, malformed payload, expiry in the past) comes
// back as an AuthError.
func (s *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.authConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, apperror.NewAuthError("Invalid or expired token", err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, apperror.NewAuthError("Invalid or expired token", nil)
	}
	return claims, nil
}

// Signup creates a new user and issues their first token. The email is
// trimmed and lower-cased before storage; uniqueness is enforced by the
// store's unique index, with a pre-check only to produce the friendlier
// conflict message.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	count, err := s.users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, apperror.NewDatabaseError("Failed to sign up.", err)
	}
	if count > 0 {
		return nil, apperror.NewConflictError("Email is already registered.", nil)
	}

	passwordHash, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperror.NewInternalError("Failed to sign up.", err)
	}

	now := time.Now().UTC()
	user := &User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		// The unique index closes the race the pre-check leaves open.
		if db.IsDuplicateKeyError(err) {
			return nil, apperror.NewConflictError("Email is already registered.", nil)
		}
		return nil, apperror.NewDatabaseError("Failed to sign up.", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)

	token, err := s.IssueToken(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, apperror.NewInternalError("Failed to sign up.", err)
	}

	return &AuthResponse{Token: token, User: user.ToPublicProfile()}, nil
}

// Login authenticates a user by email and password and issues a token.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewAuthError(invalidCredentials, nil)
		}
		return nil, apperror.NewDatabaseError("Failed to log in.", err)
	}

	if !VerifyPassword(req.Password, user.PasswordHash) {
		return nil, apperror.NewAuthError(invalidCredentials, nil)
	}

	token, err := s.IssueToken(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, apperror.NewInternalError("Failed to log in.", err)
	}

	return &AuthResponse{Token: token, User: user.ToPublicProfile()}, nil
}

// GetUserByID retrieves a user by their stringified object id. Callers use
// this both for the me endpoint and for the per-request existence check in
// the middleware.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.NewNotFoundError("user not found", err)
	}

	var user User
	if err := s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	return &user, nil
}
