package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/lagoshomes/homefind/pkg/idx"
)

// Session is a revocable server-side login session. The opaque session token
// handed to the client is stored only as a SHA-256 fingerprint. Access JWTs
// reference the session by id, so revoking the session invalidates them.
type Session struct {
	ID        idx.ID
	UserID    uuid.UUID
	TokenHash string // deterministic fingerprint (base64url SHA-256)
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Live reports whether the session can still back requests at time now.
func (s Session) Live(now time.Time) bool {
	return !s.Revoked && now.Before(s.ExpiresAt)
}
