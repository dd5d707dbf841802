package tokenx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestInspect(t *testing.T) {
	exp := time.Now().Add(7 * 24 * time.Hour).Truncate(time.Second)
	token := mintToken(t, jwt.MapClaims{"user_id": 42, "exp": exp.Unix()})

	claims, err := Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.True(t, claims.ExpiresAt.Equal(exp))
	assert.False(t, claims.Expired(time.Now()))
}

func TestInspect_ExpiredToken(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{"user_id": 1, "exp": time.Now().Add(-time.Hour).Unix()})

	claims, err := Inspect(token)
	require.NoError(t, err, "inspection never validates, so an expired token still parses")
	assert.True(t, claims.Expired(time.Now()))
}

func TestInspect_MissingClaims(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{"sub": "whatever"})

	claims, err := Inspect(token)
	require.NoError(t, err)
	assert.Zero(t, claims.UserID)
	assert.True(t, claims.ExpiresAt.IsZero())
	assert.False(t, claims.Expired(time.Now()))
}

func TestInspect_Malformed(t *testing.T) {
	_, err := Inspect("not-a-jwt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedToken)
}
