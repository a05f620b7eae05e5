package users

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/user/schoolfinder-go/apperror"
	"github.com/user/schoolfinder-go/auth"
	"github.com/user/schoolfinder-go/validation"
)

// ProfileStore is the service surface the profile handlers depend on.
// *UserService satisfies it; tests substitute a fake.
type ProfileStore interface {
	UpdateProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) (*auth.User, error)
	DeleteProfile(ctx context.Context, userID int64) error
}

// UserHandlers provides the HTTP handlers for profile management.
type UserHandlers struct {
	service ProfileStore
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service ProfileStore) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleGetProfile godoc
// @Summary Get current user's profile
// @Description Returns the principal resolved by the auth middleware.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse "The authenticated user"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Router /profile [get]
func (h *UserHandlers) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Authentication required", nil))
			return
		}
		auth.WriteJSON(w, http.StatusOK, ProfileResponse{User: user})
	}
}

// HandleUpdateProfile godoc
// @Summary Update current user's profile
// @Description Updates the name and/or email of the authenticated user.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateBody body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} MessageResponse "Profile updated"
// @Failure 400 {object} apperror.ErrorResponse "Invalid or duplicate email"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /profile [put]
func (h *UserHandlers) HandleUpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Authentication required", nil))
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Email != nil && *req.Email != "" {
			if result := validation.Email(*req.Email); !result.IsValid {
				auth.WriteError(w, r, apperror.NewValidationError(result.Error, nil))
				return
			}
		}

		updated, err := h.service.UpdateProfile(r.Context(), user.ID, &req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, MessageResponse{
			Message: "User profile updated successfully",
			User:    updated,
		})
	}
}

// HandleDeleteProfile godoc
// @Summary Delete current user's account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse "Account deleted"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /profile [delete]
func (h *UserHandlers) HandleDeleteProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Authentication required", nil))
			return
		}

		if err := h.service.DeleteProfile(r.Context(), user.ID); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, MessageResponse{
			Message: "User profile deleted successfully",
		})
	}
}
