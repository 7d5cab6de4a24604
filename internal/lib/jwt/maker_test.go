package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	tokenTTL := 15 * time.Minute
	maker := NewJWTMaker("test_secret_key_1234567890", tokenTTL)

	tests := []struct {
		name   string
		claims Claims
	}{
		{
			name:   "коуч",
			claims: Claims{UserID: "1", Email: "coach@fitcoachpro.com", Role: "coach", Name: "Alex Thompson"},
		},
		{
			name:   "администратор",
			claims: Claims{UserID: "2", Email: "admin@fitcoachpro.com", Role: "admin", Name: "Admin User"},
		},
		{
			name:   "uuid в качестве id",
			claims: Claims{UserID: "9b2c3d4e-0000-4000-8000-000000000000", Email: "new@example.com", Role: "coach", Name: "New Coach"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.claims)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.claims, claims.Claims)
			assert.Equal(t, tt.claims.UserID, claims.Subject)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewJWTMaker(secretKey, 15*time.Minute)

	validToken, err := maker.GenerateToken(Claims{UserID: "1", Role: "coach"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "malformed token", token: "invalid.token.here"},
		{name: "expired token", token: createExpiredToken(t, secretKey)},
		{name: "wrong secret key", token: createTokenWithWrongSecret(t)},
		{name: "tampered token", token: validToken + "tampered"},
		{name: "token without user id", token: createTokenWithoutUser(t, maker)},
		{name: "unexpected signing method", token: createNoneToken(t)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTMaker_DifferentSecretKeys(t *testing.T) {
	maker1 := NewJWTMaker("first_secret_key", 15*time.Minute)
	maker2 := NewJWTMaker("different_secret_key", 15*time.Minute)

	token, err := maker1.GenerateToken(Claims{UserID: "1"})
	require.NoError(t, err)

	claims, err := maker2.ParseToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = maker1.ParseToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
}

func TestJWTMaker_TTL(t *testing.T) {
	assert.Equal(t, 168*time.Hour, NewJWTMaker("k", 168*time.Hour).TTL())
}

func createExpiredToken(t *testing.T, secretKey string) string {
	maker := NewJWTMaker(secretKey, -time.Hour)
	token, err := maker.GenerateToken(Claims{UserID: "1"})
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	wrongMaker := NewJWTMaker("wrong_secret_key", 15*time.Minute)
	token, err := wrongMaker.GenerateToken(Claims{UserID: "1"})
	require.NoError(t, err)
	return token
}

func createTokenWithoutUser(t *testing.T, maker *MakerImpl) string {
	token, err := maker.GenerateToken(Claims{Email: "ghost@example.com"})
	require.NoError(t, err)
	return token
}

func createNoneToken(t *testing.T) string {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, CustomClaims{Claims: Claims{UserID: "1"}})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return signed
}
