package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDanValidateToken(t *testing.T) {
	tokenStr, err := GenerateToken(42, 3)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	token, err := ValidateToken(tokenStr)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	// JSON number di-decode jadi float64
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, float64(3), claims["role_id"])
}

func TestValidateTokenNgawur(t *testing.T) {
	_, err := ValidateToken("bukan.token.jwt")
	assert.Error(t, err)
}

func TestStringToUint64(t *testing.T) {
	assert.Equal(t, uint64(123), StringToUint64("123"))
	assert.Equal(t, uint64(0), StringToUint64("abc"))
	assert.Equal(t, uint64(0), StringToUint64("-5"))
}

func TestHashDanCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)

	assert.True(t, CheckPassword("rahasia123", hash))
	assert.False(t, CheckPassword("salah", hash))
}
