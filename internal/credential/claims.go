package credential

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo holds diagnostic claims extracted from a JWT bearer token.
// Zero time values mean the claim was not present.
type TokenInfo struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Expired   bool
}

// Inspect parses a bearer token as a JWT without verifying its signature
// and returns the claims useful for operator diagnostics.
//
// Signature verification and authorization are the broker's
// responsibility; this exists solely to surface "the token you loaded is
// for subject X and expired yesterday" before a confusing auth failure.
//
// Returns:
//   - *TokenInfo: Extracted claims
//   - error: ErrNotJWT (wrapped) if the token is not a structurally valid
//     JWT. Callers should treat this as informational, not fatal.
func Inspect(token string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}

	info := &TokenInfo{}

	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
		info.Expired = exp.Time.Before(time.Now())
	}

	return info, nil
}
