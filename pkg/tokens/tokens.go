// Package tokens inspects JWT access tokens without verifying them; the
// backend is the verifier, the client only needs the expiry.
package tokens

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresWithin reports whether the token's exp claim falls inside the
// given window. Unparseable tokens and tokens without exp report true, so
// the caller falls through to a refresh attempt.
func ExpiresWithin(raw string, window time.Duration) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return time.Until(exp.Time) < window
}
