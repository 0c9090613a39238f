package service

import (
	"context"

	"recruit/internal/errors"

	"github.com/google/uuid"
)

// ErrInvalidResume is returned for an empty file name or an oversized file.
var ErrInvalidResume = errors.New("invalid resume")

// ResumeStorage stores a student's resume and returns an opaque reference URL.
// The application never reads the stored content back.
type ResumeStorage interface {
	Store(ctx context.Context, userID uuid.UUID, fileName string, size int64) (string, error)
}
