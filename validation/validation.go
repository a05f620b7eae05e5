// Package validation implements the field validators used by the signup and
// school endpoints. Each validator is a pure function returning an explicit
// Result value; handlers compose the results instead of relying on panics or
// a catch-all.
package validation

import (
	"math"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Result is the outcome of a validation check. Error names the offending
// field when IsValid is false.
type Result struct {
	IsValid bool
	Error   string
}

var valid = Result{IsValid: true}

func invalid(msg string) Result {
	return Result{IsValid: false, Error: msg}
}

// validate is the shared validator instance. It is safe for concurrent use.
var validate = validator.New()

const (
	maxNameLength    = 100
	maxAddressLength = 500
	minPasswordLen   = 8
)

// Email checks that the value is a syntactically valid email address.
func Email(email string) Result {
	if err := validate.Var(email, "required,email"); err != nil {
		return invalid("Invalid email format")
	}
	return valid
}

// StrongPassword enforces the password policy: at least 8 characters with
// upper, lower, digit and symbol classes all present.
func StrongPassword(password string) Result {
	if len(password) < minPasswordLen {
		return invalid("Password must be at least 8 characters long")
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return invalid("Password must contain upper and lower case letters, a digit and a symbol")
	}
	return valid
}

// Signup validates the fields of a signup request.
func Signup(name, email, password string) Result {
	if strings.TrimSpace(name) == "" {
		return invalid("Name must be a non-empty string")
	}
	if len(strings.TrimSpace(name)) > maxNameLength {
		return invalid("Name must be at most 100 characters")
	}
	if r := Email(email); !r.IsValid {
		return r
	}
	return StrongPassword(password)
}

// Coordinates checks that a latitude/longitude pair lies within valid
// geographic range. Out-of-range values are rejected, never clamped.
// NaN compares false against both range bounds, so it is rejected
// explicitly.
func Coordinates(latitude, longitude float64) Result {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return invalid("Latitude must be between -90 and 90 degrees")
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return invalid("Longitude must be between -180 and 180 degrees")
	}
	return valid
}

// School validates the fields of an add-school request.
func School(name, address string, latitude, longitude float64) Result {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	if name == "" {
		return invalid("Name must be a non-empty string")
	}
	if len(name) > maxNameLength {
		return invalid("Name must be at most 100 characters")
	}
	if address == "" {
		return invalid("Address must be a non-empty string")
	}
	if len(address) > maxAddressLength {
		return invalid("Address must be at most 500 characters")
	}
	return Coordinates(latitude, longitude)
}
