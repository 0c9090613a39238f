package repository

import (
	"context"

	"recruit/internal/domain/entity"
	"recruit/internal/errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session matches the lookup.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores server-side session records behind session tokens.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves the session for a token digest.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash ends the session for a token digest. Missing sessions are not an error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// CountActiveByUserID returns the number of unexpired sessions of a user.
	CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int, error)

	// DeleteExpired removes every session that expired before now.
	DeleteExpired(ctx context.Context) error
}
