package usecase

import (
	"context"

	"recruit/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordHireInput appends a hire to the ledger. StudentName may be left
// empty when the student has an account; it is then copied from there.
type RecordHireInput struct {
	RecruiterID   uuid.UUID `validate:"required"`
	Company       string    `validate:"required"`
	StudentEmail  string    `validate:"required,email"`
	StudentName   string    `validate:"max=100"`
	PositionTitle string    `validate:"max=255"`
	Cycle         string    `validate:"required,max=64"`
	Notes         string
}

// UpdateHiringInput is a partial update; nil fields are left unchanged.
type UpdateHiringInput struct {
	Status        *entity.HiringStatus
	PositionTitle *string
	Notes         *string
}

// MajorCount is the number of registered students with a primary major.
type MajorCount struct {
	Major      string
	Count      int
	Percentage float64
}

// HiringStats summarises the student directory and one recruiter's ledger.
// Percentages are of TotalStudents, rounded to one decimal.
type HiringStats struct {
	TotalStudents int
	// StudentsHired counts distinct emails with a hired record, registered or not
	StudentsHired int
	// HiringRate is the share of registered students this recruiter has hired
	HiringRate float64
	Majors     []MajorCount
	Undeclared int
}

// HiringUsecase manages the hiring ledger.
type HiringUsecase interface {
	RecordHire(ctx context.Context, input *RecordHireInput) (*entity.HiringRecord, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]*entity.HiringRecord, error)
	IsHired(ctx context.Context, recruiterID uuid.UUID, email string) (bool, error)
	UpdateStatus(ctx context.Context, recruiterID, recordID uuid.UUID, input *UpdateHiringInput) (*entity.HiringRecord, error)
	ListByStudent(ctx context.Context, email string) ([]*entity.HiringRecord, error)
	Stats(ctx context.Context, recruiterID uuid.UUID) (*HiringStats, error)
}
