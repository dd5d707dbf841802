// Package tokenx peeks inside the bearer credential for display purposes.
// The server issues HS256 JWTs carrying user_id and exp; the client holds no
// signing key and treats the credential as opaque for all access decisions —
// claims read here must never gate anything.
package tokenx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed token")

// Claims is the displayable subset of the credential's payload.
type Claims struct {
	UserID    int64
	ExpiresAt time.Time
}

// Expired reports whether the credential's exp has passed. Expiry is only
// discovered server-side via a failed request; this is informational.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Inspect decodes token without verifying its signature.
func Inspect(token string) (*Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}

	out := &Claims{}
	if v, ok := claims["user_id"].(float64); ok {
		out.UserID = int64(v)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
