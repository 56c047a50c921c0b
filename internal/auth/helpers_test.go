package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("Operator", "op@example.com", time.Hour)
	require.NoError(t, err)

	email, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "op@example.com", email)
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT("Operator", "op@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
