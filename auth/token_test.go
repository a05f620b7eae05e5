package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken_RoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	issued, err := GenerateToken(42, secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, issued.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, 5*time.Second)

	claims, err := ParseToken(issued.Token, secret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	issued, err := GenerateToken(1, secret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(issued.Token, secret)
	assert.Error(t, err, "expired token must not verify")
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	issued, err := GenerateToken(7, []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(issued.Token, []byte("wrong-secret"))
	assert.Error(t, err)
}

func TestParseToken_Tampered(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	issued, err := GenerateToken(7, secret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(issued.Token+"x", secret)
	assert.Error(t, err)
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("not.a.jwt", []byte("k"))
	assert.Error(t, err)
}

func TestParseToken_MissingUserID(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	issued, err := GenerateToken(0, secret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(issued.Token, secret)
	assert.Error(t, err, "a token without a user identity must be rejected")
}
