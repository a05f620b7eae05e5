package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/user/schoolfinder-go/apperror"
	"github.com/user/schoolfinder-go/config"
)

// TokenCookieName is the cookie under which the session token travels.
const TokenCookieName = "token"

// UserResolver resolves a verified token's user identifier to a live
// principal. *AuthService satisfies it; tests substitute a stub.
type UserResolver interface {
	GetUserByID(ctx context.Context, id int64) (*User, error)
}

// Middleware returns the authentication gate for protected routes. The token
// is read from the session cookie, falling back to an Authorization bearer
// header. The request is rejected with 401 before the protected handler runs
// when the token is absent, invalid, expired, or does not resolve to an
// existing user. On success the resolved user is attached to the request
// context.
func Middleware(cfg *config.AuthConfig, resolver UserResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := extractToken(r)
			if !ok {
				WriteError(w, r, apperror.NewAuthError("Access denied. No token provided.", nil))
				return
			}

			claims, err := ParseToken(tokenString, []byte(cfg.JWTSecret))
			if err != nil {
				WriteError(w, r, apperror.NewAuthError("Invalid token", err))
				return
			}

			user, err := resolver.GetUserByID(r.Context(), claims.UserID)
			if err != nil {
				if apperror.IsNotFound(err) {
					WriteError(w, r, apperror.NewAuthError("User not found", nil))
					return
				}
				WriteError(w, r, err)
				return
			}

			ctx := NewContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken pulls the session token from the cookie or, failing that,
// from a "Bearer" Authorization header.
func extractToken(r *http.Request) (string, bool) {
	if cookie, err := r.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
