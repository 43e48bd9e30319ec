package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is how long access tokens stay valid. Sessions are
// revocable server-side, so the JWT itself can afford a longer lifetime.
const DefaultAccessTokenTTL = 24 * time.Hour

var (
	// ErrInvalidToken is returned for any token that fails verification.
	ErrInvalidToken = errors.New("jwtx: invalid token")
)

// Claims are the claims embedded in access tokens. Subject carries the user
// id, SessionID the revocable server-side session backing the token.
type Claims struct {
	jwt.RegisteredClaims

	Role      string `json:"role"`
	SessionID string `json:"sid"`
}

// Signer signs and verifies HS256 access tokens with a shared server secret.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewSigner(secret []byte, issuer string, ttl time.Duration) *Signer {
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	return &Signer{secret: secret, issuer: issuer, ttl: ttl}
}

// Sign mints a new access token for the given user and session.
func (s *Signer) Sign(userID, role, sessionID string) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role:      role,
		SessionID: sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates an access token, enforcing the HMAC signing
// method, issuer, and expiry. All failures collapse to ErrInvalidToken.
func (s *Signer) Verify(raw string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
