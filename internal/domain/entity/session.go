package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side record behind a session token. The raw token is
// never stored; TokenHash holds its SHA-256 digest so that every request can
// be checked against, and revoked through, this row.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session is no longer usable at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
