package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session-token payload: the user identity plus the standard
// registered claims (expiry, issued-at).
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// IssuedToken is a signed session token together with its expiration.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// GenerateToken mints an HS256-signed session token for the given user.
// Every token carries a finite expiration.
func GenerateToken(userID int64, secret []byte, duration time.Duration) (*IssuedToken, error) {
	now := time.Now()
	expiresAt := now.Add(duration)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "schoolfinder",
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &IssuedToken{Token: tokenString, ExpiresAt: expiresAt}, nil
}

// ParseToken verifies the signature and expiry of a session token and
// returns its claims. Any failure (bad signature, expired, malformed,
// missing user id) yields an error.
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	if claims.UserID == 0 {
		return nil, errors.New("token is missing the user_id claim")
	}
	return claims, nil
}
