package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/user/schoolfinder-go/apperror"
	"github.com/user/schoolfinder-go/validation"
)

// Authenticator is the service surface the auth handlers depend on.
type Authenticator interface {
	Signup(ctx context.Context, req SignupRequest) (*User, error)
	Login(ctx context.Context, req LoginRequest) (*User, *IssuedToken, error)
}

// Handlers wraps the authentication service with HTTP handlers.
type Handlers struct {
	service Authenticator
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service Authenticator) *Handlers {
	return &Handlers{service: service}
}

// HandleSignup godoc
// @Summary User signup
// @Description Registers a new user account.
// @Tags Auth
// @Accept json
// @Produce json
// @Param signupBody body auth.SignupRequest true "User registration details"
// @Success 201 {object} auth.SignupResponse "User created successfully"
// @Failure 400 {object} apperror.ErrorResponse "Invalid field or duplicate email"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /signup [post]
func (h *Handlers) HandleSignup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if result := validation.Signup(req.Name, req.Email, req.Password); !result.IsValid {
			WriteError(w, r, apperror.NewValidationError(result.Error, nil))
			return
		}

		user, err := h.service.Signup(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, SignupResponse{
			Message: "User registered successfully",
			User:    user,
		})
	}
}

// HandleLogin godoc
// @Summary User login
// @Description Authenticates a user, sets the session-token cookie and returns the principal.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.LoginResponse "Login successful"
// @Failure 400 {object} apperror.ErrorResponse "Missing fields"
// @Failure 401 {object} apperror.ErrorResponse "Invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Email == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("email and password are required", nil))
			return
		}

		user, issued, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     TokenCookieName,
			Value:    issued.Token,
			Path:     "/",
			Expires:  issued.ExpiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, http.StatusOK, LoginResponse{
			Message:   "User logged in successfully",
			User:      user,
			Token:     issued.Token,
			ExpiresIn: int64(time.Until(issued.ExpiresAt).Seconds()),
		})
	}
}

// writeJSON serializes data to JSON with the given status code. The payload
// is encoded to a buffer first so an encoding failure can still become a
// clean 500 instead of trailing a committed status line.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if data == nil {
		w.WriteHeader(status)
		return
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
		http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

// WriteJSON exposes the JSON response helper to the other handler packages.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, data)
}

// WriteError converts any error into the standard {"error": ...} response.
// Errors that are not *apperror.AppError are treated as internal failures
// with a generic message; the detail stays server-side.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("Internal server error", err)
	}
	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
