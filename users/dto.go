// Package users implements profile management for the authenticated user:
// fetching, updating and deleting the account resolved by the auth gate.
package users

import "github.com/user/schoolfinder-go/auth"

// UpdateProfileRequest carries the profile fields a user may change.
// Fields left null are not touched.
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" example:"Jane Doe"`
	Email *string `json:"email,omitempty" example:"jane@example.com"`
}

// ProfileResponse wraps the principal for profile endpoints.
type ProfileResponse struct {
	User *auth.User `json:"user"`
}

// MessageResponse is a simple confirmation payload.
type MessageResponse struct {
	Message string     `json:"message" example:"User profile updated successfully"`
	User    *auth.User `json:"user,omitempty"`
}
