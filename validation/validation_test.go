package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"jane@example.com", "a.b+c@sub.domain.org"}
	for _, email := range valid {
		assert.True(t, Email(email).IsValid, "email %q", email)
	}

	invalid := []string{"", "not-an-email", "missing@tld@twice", "@example.com"}
	for _, email := range invalid {
		result := Email(email)
		assert.False(t, result.IsValid, "email %q", email)
		assert.NotEmpty(t, result.Error)
	}
}

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		password string
		valid    bool
	}{
		{"Str0ng!pass", true},
		{"Aa1!aaaa", true},
		{"short1!", false},     // under 8 characters
		{"alllower1!", false},  // no upper
		{"ALLUPPER1!", false},  // no lower
		{"NoDigits!!", false},  // no digit
		{"NoSymbol11", false},  // no symbol
		{"", false},
	}
	for _, tc := range cases {
		result := StrongPassword(tc.password)
		assert.Equal(t, tc.valid, result.IsValid, "password %q", tc.password)
	}
}

func TestSignup(t *testing.T) {
	t.Parallel()

	assert.True(t, Signup("Jane", "jane@example.com", "Str0ng!pass").IsValid)

	assert.False(t, Signup("   ", "jane@example.com", "Str0ng!pass").IsValid)
	assert.False(t, Signup(strings.Repeat("x", 101), "jane@example.com", "Str0ng!pass").IsValid)
	assert.False(t, Signup("Jane", "bad-email", "Str0ng!pass").IsValid)
	assert.False(t, Signup("Jane", "jane@example.com", "weak").IsValid)
}

func TestCoordinates_Boundaries(t *testing.T) {
	t.Parallel()

	// The poles and the antimeridian are valid; anything beyond is not.
	assert.True(t, Coordinates(90, 180).IsValid)
	assert.True(t, Coordinates(-90, -180).IsValid)
	assert.True(t, Coordinates(0, 0).IsValid)

	assert.False(t, Coordinates(90.0001, 0).IsValid)
	assert.False(t, Coordinates(-90.0001, 0).IsValid)
	assert.False(t, Coordinates(200, 0).IsValid)
	assert.False(t, Coordinates(0, 180.0001).IsValid)
	assert.False(t, Coordinates(0, -181).IsValid)
}

func TestCoordinates_NaNRejected(t *testing.T) {
	t.Parallel()

	// NaN compares false against both range bounds and must not slip
	// through as "in range".
	assert.False(t, Coordinates(math.NaN(), 0).IsValid)
	assert.False(t, Coordinates(0, math.NaN()).IsValid)
	assert.False(t, Coordinates(math.NaN(), math.NaN()).IsValid)
}

func TestCoordinates_ErrorNamesField(t *testing.T) {
	t.Parallel()

	assert.Contains(t, Coordinates(91, 0).Error, "Latitude")
	assert.Contains(t, Coordinates(0, 181).Error, "Longitude")
}

func TestSchool(t *testing.T) {
	t.Parallel()

	assert.True(t, School("Riverdale High", "1 River St", 40.7, -74.0).IsValid)
	assert.True(t, School("  padded  ", "  addr  ", 0, 0).IsValid, "surrounding whitespace is trimmed")

	assert.False(t, School("", "1 River St", 0, 0).IsValid)
	assert.False(t, School("   ", "1 River St", 0, 0).IsValid)
	assert.False(t, School("Riverdale", "", 0, 0).IsValid)
	assert.False(t, School(strings.Repeat("n", 101), "addr", 0, 0).IsValid)
	assert.False(t, School("name", strings.Repeat("a", 501), 0, 0).IsValid)
	assert.False(t, School("name", "addr", 91, 0).IsValid)
	assert.False(t, School("name", "addr", 0, -181).IsValid)
}
