package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionClaims are the verified contents of a session token.
type SessionClaims struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
	Role      string
	ExpiresAt time.Time
}

// TokenService issues and verifies signed session tokens. A valid signature
// is necessary but not sufficient: callers must still find the matching
// server-side session record.
type TokenService interface {
	// GenerateSessionToken signs a token for the given session.
	GenerateSessionToken(userID, sessionID uuid.UUID, role string) (token string, expiresAt time.Time, err error)

	// ValidateSessionToken checks signature and expiry and returns the claims.
	ValidateSessionToken(token string) (*SessionClaims, error)

	// HashToken returns the digest stored in place of the raw token.
	HashToken(token string) string

	// SessionTTL returns how long issued tokens stay valid.
	SessionTTL() time.Duration
}
