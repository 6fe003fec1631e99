package helper

import (
	"testing"

	"cinema_booking/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestAccessTokenRoundtrip(t *testing.T) {
	claim := model.TokenClaim{UserId: 12, Name: "Front Desk", Role: "admin"}

	tokenString, err := GenerateAccessToken(claim)
	require.NoError(t, err)

	token, err := ParseToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(12), claims["userId"])
	assert.Equal(t, "Front Desk", claims["name"])
	assert.Equal(t, "admin", claims["role"])
}

func TestRefreshTokenRoundtrip(t *testing.T) {
	claim := model.TokenClaim{UserId: 3, Name: "Cashier", Role: "user"}

	tokenString, err := GenerateRefreshToken(claim)
	require.NoError(t, err)

	token, err := ParseToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)
}
