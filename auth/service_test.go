package auth

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/user/socialpost-go/apperror"
	"github.com/user/socialpost-go/config"
)

func testAuthService(secret string, duration time.Duration) *AuthService {
	return &AuthService{
		authConfig: config.AuthConfig{
			JWTSecret:     secret,
			TokenDuration: duration,
		},
	}
}

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("pw123456")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123456", hash)

	assert.True(t, VerifyPassword("pw123456", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}

func TestHashPassword_RandomSalt(t *testing.T) {
	first, err := HashPassword("pw123456")
	require.NoError(t, err)
	second, err := HashPassword("pw123456")
	require.NoError(t, err)

	// Different salts, both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("pw123456", first))
	assert.True(t, VerifyPassword("pw123456", second))
}

func TestIssueToken_VerifyRoundTrip(t *testing.T) {
	svc := testAuthService("test-secret", 168*time.Hour)

	userID := primitive.NewObjectID().Hex()
	token, err := svc.IssueToken(userID, "ann@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ann@example.com", claims.Email)

	// Expiry rides seven days out from issuance.
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 167*time.Hour)
	assert.LessOrEqual(t, remaining, 168*time.Hour)
}

func TestVerifyToken_Expired(t *testing.T) {
	svc := testAuthService("test-secret", -time.Minute)

	token, err := svc.IssueToken(primitive.NewObjectID().Hex(), "ann@example.com")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	issuer := testAuthService("issuer-secret", time.Hour)
	verifier := testAuthService("other-secret", time.Hour)

	token, err := issuer.IssueToken(primitive.NewObjectID().Hex(), "ann@example.com")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestVerifyToken_Malformed(t *testing.T) {
	svc := testAuthService("test-secret", time.Hour)

	_, err := svc.VerifyToken("not-a-token")
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestPublicProfile_NeverCarriesPasswordHash(t *testing.T) {
	user := &User{
		ID:           primitive.NewObjectID(),
		Name:         "Ann",
		Email:        "ann@example.com",
		PasswordHash: "$2a$10$secret-hash",
		CreatedAt:    time.Now().UTC(),
	}

	profile := user.ToPublicProfile()
	assert.Equal(t, user.ID.Hex(), profile.ID)
	assert.Equal(t, "Ann", profile.Name)

	data, err := json.Marshal(AuthResponse{Token: "tok", User: profile})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret-hash")
	assert.NotContains(t, string(data), "passwordHash")
}
