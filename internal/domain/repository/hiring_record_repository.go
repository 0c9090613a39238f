package repository

import (
	"context"

	"recruit/internal/domain/entity"
	"recruit/internal/errors"

	"github.com/google/uuid"
)

// ErrHiringRecordNotFound is returned when a hiring record does not exist.
var ErrHiringRecordNotFound = errors.New("hiring record not found")

// HiringRecordRepository persists the hiring ledger. Records are never deleted.
type HiringRecordRepository interface {
	// Create appends a record. ID and timestamps are filled in on success.
	Create(ctx context.Context, record *entity.HiringRecord) error

	// FindByID retrieves a single record.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.HiringRecord, error)

	// ListByRecruiter returns the recruiter's records, newest hire date first.
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]*entity.HiringRecord, error)

	// ListByStudentEmail returns every record for a student email, newest hire date first.
	ListByStudentEmail(ctx context.Context, email string) ([]*entity.HiringRecord, error)

	// Update overwrites status, position title and notes of an existing record.
	Update(ctx context.Context, record *entity.HiringRecord) error
}
