// This file defines the bearer-token middleware guarding protected routes.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/user/socialpost-go/apperror"
)

// Authenticator is the slice of AuthService the middleware needs: token
// verification plus the per-request user lookup.
type Authenticator interface {
	VerifyToken(tokenString string) (*Claims, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
}

// RequireAuth returns middleware that authenticates the request from its
// Authorization header and stores the resolved user in the request context.
//
// The header must be exactly "Bearer <token>". After the token checks out,
// the user is looked up in the store again; a user that no longer exists is
// rejected even if their token has not expired. That lookup is the only
// revocation mechanism in the system.
func RequireAuth(svc Authenticator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError("Authorization header missing", nil))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				WriteError(w, r, apperror.NewAuthError("Authorization header missing", nil))
				return
			}

			claims, err := svc.VerifyToken(parts[1])
			if err != nil {
				WriteError(w, r, err)
				return
			}

			user, err := svc.GetUserByID(r.Context(), claims.UserID)
			if err != nil {
				if apperror.IsNotFound(err) {
					WriteError(w, r, apperror.NewAuthError("User no longer exists", nil))
					return
				}
				WriteError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContextWithUser(r.Context(), user)))
		})
	}
}
