package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens.
// Short-lived for security - typical range is 15m to 1h.
const DefaultAccessTokenTTL = 15 * time.Minute

var (
	ErrInvalidToken = errors.New("jwtx: invalid token")
	ErrIssuer       = errors.New("jwtx: unexpected issuer")
)

// Claims are the access-token claims used across the service. Keep changes
// additive to preserve compatibility for already-issued tokens.
type Claims struct {
	jwt.RegisteredClaims

	// Name is the display name of the authenticated user.
	Name string `json:"name,omitempty"`
}

// NewAccessClaims builds minimally-correct claims. Subject is the user ID.
func NewAccessClaims(subject, name, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Name: name,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// Signer signs and verifies HS256 access tokens with a shared secret.
type Signer struct {
	secret []byte
	issuer string
}

func NewSigner(secret []byte, issuer string) *Signer {
	return &Signer{secret: secret, issuer: issuer}
}

// Sign produces a signed compact JWT for the given claims.
func (s *Signer) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a compact JWT (signature, exp/nbf, issuer).
func (s *Signer) Verify(raw string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	if s.issuer != "" && claims.Issuer != s.issuer {
		return Claims{}, ErrIssuer
	}
	return claims, nil
}
