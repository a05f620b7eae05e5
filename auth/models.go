// Package auth handles authentication: signup, login, session-token issuance
// and verification, and the middleware gate protecting authenticated routes.
package auth

import "time"

// User represents a registered account. The hashed credential is never
// serialized into API responses.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
