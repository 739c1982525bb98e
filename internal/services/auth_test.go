package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokens() TokenService {
	return TokenService{Secret: []byte("test-secret"), Issuer: "fittrack", TTL: time.Hour}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	tokens := testTokens()
	signed, exp, err := tokens.CreateSessionToken(42)
	require.NoError(t, err)
	assert.Greater(t, exp, time.Now().Unix())

	userID, err := tokens.UserIDFromToken(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestSessionTokenRejectsTampering(t *testing.T) {
	tokens := testTokens()
	signed, _, err := tokens.CreateSessionToken(42)
	require.NoError(t, err)

	other := tokens
	other.Secret = []byte("another-secret")
	_, err = other.UserIDFromToken(signed)
	requireKind(t, err, KindUnauthorized)

	other = tokens
	other.Issuer = "someone-else"
	_, err = other.UserIDFromToken(signed)
	requireKind(t, err, KindUnauthorized)

	_, err = tokens.UserIDFromToken("not-a-token")
	requireKind(t, err, KindUnauthorized)
}

func TestSessionTokenRejectsExpiredAndWrongType(t *testing.T) {
	tokens := testTokens()
	tokens.TTL = -time.Minute
	expired, _, err := tokens.CreateSessionToken(42)
	require.NoError(t, err)
	_, err = testTokens().UserIDFromToken(expired)
	requireKind(t, err, KindUnauthorized)

	claims := jwt.MapClaims{"iss": "fittrack", "sub": "42", "typ": "refresh", "exp": time.Now().Add(time.Hour).Unix()}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = testTokens().UserIDFromToken(refresh)
	requireKind(t, err, KindUnauthorized)
}
