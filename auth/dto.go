package auth

// SignupRequest represents the signup request payload.
type SignupRequest struct {
	Name     string `json:"name" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"Str0ng!pass"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"Str0ng!pass"`
}

// SignupResponse is returned on successful registration.
type SignupResponse struct {
	Message string `json:"message" example:"User registered successfully"`
	User    *User  `json:"user"`
}

// LoginResponse is returned on successful login. The token is also set as a
// cookie so both cookie and Authorization-header clients are served.
type LoginResponse struct {
	Message   string `json:"message" example:"User logged in successfully"`
	User      *User  `json:"user"`
	Token     string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresIn int64  `json:"expires_in" example:"3600"` // seconds until the token expires
}
